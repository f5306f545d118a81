package entity

import (
	"time"

	"github.com/google/uuid"
)

// Blog is a post authored by exactly one user.
type Blog struct {
	ID        uuid.UUID
	Title     string
	Body      string
	Image     string    // Reference to the cover image.
	CreatorID uuid.UUID // Set once from the session subject, never reassigned.
	CreatedAt time.Time // Set once on creation.
	UpdatedAt time.Time
}

// OwnerID implements Owned.
func (b *Blog) OwnerID() uuid.UUID {
	return b.CreatorID
}

// BlogFilter narrows blog listings.
type BlogFilter struct {
	CreatorID *uuid.UUID
	Term      string
}
