package postgres

import (
	"context"
	"fmt"
	"testing"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogRepository(db)
	ctx := context.Background()
	author := seedUser(t, db, "author@example.com")

	blog := &entity.Blog{Title: "  first post ", Body: "hello", Image: "http://img/1", CreatorID: author.ID}
	require.NoError(t, repo.Create(ctx, blog))
	assert.NotEqual(t, uuid.Nil, blog.ID)
	assert.Equal(t, "first post", blog.Title)
	assert.False(t, blog.CreatedAt.IsZero())

	found, err := repo.FindByID(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, author.ID, found.CreatorID)
	assert.Equal(t, "hello", found.Body)
}

func TestBlogRepository_DuplicateTitleIsConflict(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogRepository(db)
	author := seedUser(t, db, "author@example.com")
	seedBlog(t, db, author, "same title")

	err := repo.Create(context.Background(), &entity.Blog{Title: " Same Title ", Body: "b", Image: "i", CreatorID: author.ID})
	assert.ErrorIs(t, err, domainerrors.NewConflictError("title"))
}

func TestBlogRepository_MissingCreator(t *testing.T) {
	repo := NewBlogRepository(newTestDB(t))

	err := repo.Create(context.Background(), &entity.Blog{Title: "orphan", Body: "b", Image: "i", CreatorID: uuid.New()})
	require.Error(t, err)
}

func TestBlogRepository_CreatorScopedAccess(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	blog := seedBlog(t, db, owner, "owned")

	t.Run("owner finds it", func(t *testing.T) {
		found, err := repo.FindByIDAndCreator(ctx, blog.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, blog.ID, found.ID)
	})

	t.Run("other creator sees not found", func(t *testing.T) {
		_, err := repo.FindByIDAndCreator(ctx, blog.ID, other.ID)
		assert.ErrorIs(t, err, repository.ErrBlogNotFound)
	})

	t.Run("other creator cannot update", func(t *testing.T) {
		forged := *blog
		forged.CreatorID = other.ID
		forged.Title = "hijacked"

		err := repo.Update(ctx, &forged)
		assert.ErrorIs(t, err, repository.ErrBlogNotFound)

		stored, err := repo.FindByID(ctx, blog.ID)
		require.NoError(t, err)
		assert.Equal(t, "owned", stored.Title)
		assert.Equal(t, owner.ID, stored.CreatorID)
	})

	t.Run("other creator cannot delete", func(t *testing.T) {
		err := repo.Delete(ctx, blog.ID, other.ID)
		assert.ErrorIs(t, err, repository.ErrBlogNotFound)

		_, err = repo.FindByID(ctx, blog.ID)
		assert.NoError(t, err)
	})

	t.Run("owner updates", func(t *testing.T) {
		updated := *blog
		updated.Title = "renamed"
		updated.Body = "new body"
		require.NoError(t, repo.Update(ctx, &updated))

		stored, err := repo.FindByID(ctx, blog.ID)
		require.NoError(t, err)
		assert.Equal(t, "renamed", stored.Title)
		assert.Equal(t, "new body", stored.Body)
		assert.True(t, stored.CreatedAt.Equal(blog.CreatedAt), "created_at is immutable")
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, blog.ID, owner.ID))

		_, err := repo.FindByID(ctx, blog.ID)
		assert.ErrorIs(t, err, repository.ErrBlogNotFound)
	})
}

func TestBlogRepository_DeleteByCreator(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogRepository(db)
	ctx := context.Background()

	leaving := seedUser(t, db, "leaving@example.com")
	staying := seedUser(t, db, "staying@example.com")
	seedBlog(t, db, leaving, "one")
	seedBlog(t, db, leaving, "two")
	kept := seedBlog(t, db, staying, "three")

	deleted, err := repo.DeleteByCreator(ctx, leaving.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	_, err = repo.FindByID(ctx, kept.ID)
	assert.NoError(t, err)
}

func TestBlogRepository_List(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")

	for i := range 11 {
		seedBlog(t, db, alice, fmt.Sprintf("alice post %02d", i))
	}
	newest := seedBlog(t, db, bob, "bob on gophers")

	t.Run("newest first across creators", func(t *testing.T) {
		result, err := repo.List(ctx, entity.BlogFilter{}, entity.NewPage(1, 10))
		require.NoError(t, err)
		assert.EqualValues(t, 12, result.Total)
		require.Len(t, result.Items, 10)
		assert.Equal(t, newest.ID, result.Items[0].ID)
	})

	t.Run("by creator", func(t *testing.T) {
		result, err := repo.List(ctx, entity.BlogFilter{CreatorID: &bob.ID}, entity.NewPage(1, 10))
		require.NoError(t, err)
		assert.EqualValues(t, 1, result.Total)
	})

	t.Run("by term", func(t *testing.T) {
		result, err := repo.List(ctx, entity.BlogFilter{Term: "GOPHER"}, entity.NewPage(1, 10))
		require.NoError(t, err)
		assert.EqualValues(t, 1, result.Total)
	})

	t.Run("by creator and term", func(t *testing.T) {
		result, err := repo.List(ctx, entity.BlogFilter{CreatorID: &alice.ID, Term: "gopher"}, entity.NewPage(1, 10))
		require.NoError(t, err)
		assert.EqualValues(t, 0, result.Total)
		assert.Empty(t, result.Items)
	})
}
