package handler

import (
	"time"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileResponse is the full view of an account, shown to its owner and admins.
type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	JobTitle  string    `json:"jobTitle,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PublicUserResponse is what any signed-in user may see of another account.
type PublicUserResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	JobTitle  string    `json:"jobTitle,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlogResponse is the public view of a blog.
type BlogResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Image     string    `json:"image"`
	CreatorID uuid.UUID `json:"creatorId"`
	ShareURL  string    `json:"shareUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func presentProfile(user *entity.User) ProfileResponse {
	return ProfileResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		JobTitle:  user.JobTitle,
		Avatar:    user.Avatar,
		Admin:     user.Admin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func presentPublicUser(user *entity.User) PublicUserResponse {
	return PublicUserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		JobTitle:  user.JobTitle,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
	}
}
