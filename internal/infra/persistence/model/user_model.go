package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are generated by the application
// so the same model works against PostgreSQL and SQLite.
type UserModel struct {
	ID                  uuid.UUID `gorm:"primaryKey"`
	Email               string    `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash        string    `gorm:"size:100;not null"`
	FirstName           string    `gorm:"size:100"`
	LastName            string    `gorm:"size:100"`
	JobTitle            string    `gorm:"size:100"`
	Avatar              string    `gorm:"size:200"`
	Admin               bool      `gorm:"not null;default:false"`
	TokensInvalidBefore *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
