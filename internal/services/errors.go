package services

import (
	"errors"

	"github.com/2400031249Gowtham/Certification-Trackerr/internal/models"
)

var (
	// ErrInvalidCredentials is returned by Login for an unknown username or
	// a wrong password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden is returned when a caller touches a record they do not
	// own and is not an admin.
	ErrForbidden = errors.New("forbidden")
)

// Actor identifies the authenticated caller on every service call.
type Actor struct {
	ID   string
	Role string
}

func (a Actor) IsAdmin() bool { return a.Role == models.RoleAdmin }
