package service

import "github.com/google/uuid"

// Owned is a resource with a single owning identity.
type Owned interface {
	OwnerID() uuid.UUID
}

// IsOwner reports whether subjectID owns resource. A nil resource or a nil
// subject is never an owner.
func IsOwner(subjectID uuid.UUID, resource Owned) bool {
	if resource == nil || subjectID == uuid.Nil {
		return false
	}

	return resource.OwnerID() == subjectID
}
