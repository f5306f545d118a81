package model

import (
	"time"

	"github.com/google/uuid"
)

// BlogModel mirrors the 'blogs' table. CreatorID references users.id.
type BlogModel struct {
	ID        uuid.UUID `gorm:"primaryKey"`
	Title     string    `gorm:"size:50;not null"`
	Body      string    `gorm:"size:500;not null"`
	Image     string    `gorm:"size:50;not null"`
	CreatorID uuid.UUID `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	Creator *UserModel `gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BlogModel) TableName() string {
	return "blogs"
}

// All returns every model in dependency order, for schema auto-migration.
func All() []any {
	return []any{&UserModel{}, &BlogModel{}}
}
