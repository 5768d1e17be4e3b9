package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/2400031249Gowtham/Certification-Trackerr/internal/models"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/repository"
)

type usersRepo struct{ pool *pgxpool.Pool }

const userColumns = `id, username, full_name, email, role, password_hash, created_at`

func (r *usersRepo) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = uuid.NewString()
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users(id, username, full_name, email, role, password_hash)
		 VALUES($1,$2,$3,$4,$5,$6)
		 RETURNING created_at`,
		u.ID, u.Username, u.FullName, u.Email, u.Role, u.PasswordHash,
	).Scan(&u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, repository.ErrUsernameTaken
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (models.User, error) {
	return r.getBy(ctx, "username", username)
}

func (r *usersRepo) getBy(ctx context.Context, column, value string) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE `+column+`=$1`, value,
	).Scan(&u.ID, &u.Username, &u.FullName, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, repository.ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("select user by %s: %w", column, err)
	}
	return u, nil
}

func (r *usersRepo) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.FullName, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n)
	return n, err
}
