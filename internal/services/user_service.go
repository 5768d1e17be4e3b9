package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/2400031249Gowtham/Certification-Trackerr/internal/api/validate"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/auth"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/models"
	repo "github.com/2400031249Gowtham/Certification-Trackerr/internal/repository"
)

type UserService struct {
	r repo.Users
}

func NewUserService(r repo.Users) *UserService { return &UserService{r: r} }

func (s *UserService) Register(ctx context.Context, username, password, fullName, email string) (models.User, error) {
	u := models.User{
		Username: strings.TrimSpace(username),
		FullName: strings.TrimSpace(fullName),
		Email:    strings.TrimSpace(email),
		Role:     models.RoleUser,
	}
	if err := u.Validate(); err != nil {
		return models.User{}, err
	}
	if len(password) < 6 {
		return models.User{}, validate.Errs{{Field: "password", Msg: "must be at least 6 characters"}}
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = hash
	return s.r.Create(ctx, u)
}

// Login checks the credentials and returns the matching user. Unknown
// usernames and wrong passwords both come back as ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, username, password string) (models.User, error) {
	u, err := s.r.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, repo.ErrNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}
	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) { return s.r.List(ctx) }

func (s *UserService) GetByID(ctx context.Context, id string) (models.User, error) {
	return s.r.GetByID(ctx, id)
}

// demo bootstrap accounts, created only when the store starts out empty
var demoUsers = []struct {
	username, password, fullName, email, role string
}{
	{"admin", "admin123", "Admin User", "admin@certtracker.local", models.RoleAdmin},
	{"user", "user123", "Demo User", "user@certtracker.local", models.RoleUser},
}

// SeedDemo creates the two demo accounts on an empty user store so a fresh
// deployment has something to log in with. Passwords are bcrypt-hashed like
// any other account; there is no special login path for them.
func (s *UserService) SeedDemo(ctx context.Context) error {
	n, err := s.r.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		return nil
	}
	for _, d := range demoUsers {
		hash, err := auth.HashPassword(d.password)
		if err != nil {
			return fmt.Errorf("hash demo password: %w", err)
		}
		_, err = s.r.Create(ctx, models.User{
			Username:     d.username,
			FullName:     d.fullName,
			Email:        d.email,
			Role:         d.role,
			PasswordHash: hash,
		})
		if err != nil {
			return fmt.Errorf("seed demo user %s: %w", d.username, err)
		}
		slog.Info("seeded demo account", "username", d.username, "role", d.role)
	}
	return nil
}
