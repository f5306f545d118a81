// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"blog/internal/domain/entity"
	"blog/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	JobTitle  string
	Avatar    string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateUserInput carries a partial profile update. Nil fields are left
// untouched. There is deliberately no admin field.
type UpdateUserInput struct {
	Email     *string
	Password  *string
	FirstName *string
	LastName  *string
	JobTitle  *string
	Avatar    *string
}

// --- Output DTOs ---

// SessionOutput returns the authenticated user and its fresh session token.
type SessionOutput struct {
	User  *entity.User
	Token *service.IssuedToken
}

// UpdateUserOutput returns the updated user. Token is set only when the
// password changed and every earlier session was revoked.
type UpdateUserOutput struct {
	User  *entity.User
	Token *service.IssuedToken
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Signup registers a new account and opens a session for it.
	Signup(ctx context.Context, input *SignupInput) (*SessionOutput, error)

	// Login checks credentials and opens a session.
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)

	// GetUser loads a single account.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpdateUser applies input to targetID on behalf of subject, who must own it.
	UpdateUser(ctx context.Context, subject *entity.User, targetID uuid.UUID, input *UpdateUserInput) (*UpdateUserOutput, error)

	// DeleteAccount removes subject together with every blog it created.
	DeleteAccount(ctx context.Context, subject *entity.User) error

	// ListUsers returns one page of accounts.
	ListUsers(ctx context.Context, page entity.Page) (*entity.PageResult[*entity.User], error)

	// SearchUsers returns one page of accounts matching term.
	SearchUsers(ctx context.Context, term string, page entity.Page) (*entity.PageResult[*entity.User], error)
}
