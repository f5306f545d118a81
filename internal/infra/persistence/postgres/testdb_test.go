package postgres

import (
	"context"
	"testing"
	"time"

	"blog/internal/domain/entity"
	"blog/internal/infra/persistence/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with the schema applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.OpenSQLite(":memory:", logger.Discard)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(context.Background(), db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := &entity.User{
		Email:     email,
		Password:  "$2a$04$notarealhashbutlongenoughforthecolumn",
		FirstName: "Test",
		LastName:  "User",
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedBlog(t *testing.T, db *gorm.DB, creator *entity.User, title string) *entity.Blog {
	t.Helper()

	blog := &entity.Blog{
		Title:     title,
		Body:      "body of " + title,
		Image:     "http://img.example/" + title,
		CreatorID: creator.ID,
	}
	require.NoError(t, NewBlogRepository(db).Create(context.Background(), blog))

	// Keep created_at strictly increasing so newest-first ordering is deterministic.
	time.Sleep(2 * time.Millisecond)

	return blog
}
