package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders share codes for blogs.
type QRCodeService interface {
	// ShareURL returns the public URL a blog's share code points to.
	ShareURL(blogID uuid.UUID) string

	// GenerateBlogQR renders the share URL of a blog as a PNG.
	GenerateBlogQR(blogID uuid.UUID) ([]byte, error)
}
