package models

import (
	"time"

	"github.com/2400031249Gowtham/Certification-Trackerr/internal/api/validate"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u *User) Validate() error {
	if u.Role == "" {
		u.Role = RoleUser
	}
	var errs validate.Errs
	errs.Add(validate.Required("username", u.Username))
	errs.Add(validate.MinLen("username", u.Username, 3))
	errs.Add(validate.Required("fullName", u.FullName))
	errs.Add(validate.Email("email", u.Email))
	if u.Role != RoleAdmin && u.Role != RoleUser {
		errs.Add(&validate.ErrField{Field: "role", Msg: "must be admin or user"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
