// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// Implementations enforce email uniqueness and report violations as a
// *domainerrors.ConflictError on the "email" field.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address, ignoring case.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity and fills in its generated fields.
	Create(ctx context.Context, user *entity.User) error

	// Update writes every mutable column of an existing user except the admin flag.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns users ordered by creation time.
	List(ctx context.Context, page entity.Page) (*entity.PageResult[*entity.User], error)

	// Search matches term against email, names and job title, ignoring case.
	Search(ctx context.Context, term string, page entity.Page) (*entity.PageResult[*entity.User], error)
}
