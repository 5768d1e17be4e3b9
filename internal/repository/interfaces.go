package repository

import (
	"context"

	"github.com/2400031249Gowtham/Certification-Trackerr/internal/models"
)

type Users interface {
	// Create persists a new user and returns it with server-assigned
	// fields. Duplicate usernames fail with ErrUsernameTaken.
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int, error)
}

type Certifications interface {
	// List returns every certification in insertion order.
	List(ctx context.Context) ([]models.Certification, error)
	// ListByUser returns the certifications owned by userID; an unknown or
	// empty userID yields an empty slice, not an error.
	ListByUser(ctx context.Context, userID string) ([]models.Certification, error)
	GetByID(ctx context.Context, id string) (models.Certification, error)
	// Create persists c with a fresh server-assigned id.
	Create(ctx context.Context, c models.Certification) (models.Certification, error)
	// Update shallow-merges patch onto the stored record and returns the
	// result. Unknown ids fail with ErrNotFound.
	Update(ctx context.Context, id string, patch models.CertificationPatch) (models.Certification, error)
	// Delete removes the record. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id string) error
}

// Repositories bundles the store implementations handed to the services.
type Repositories struct {
	Users          Users
	Certifications Certifications
}
