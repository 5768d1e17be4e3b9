// Package postgres implements the repository interfaces on top of a pgx
// connection pool. List queries are assembled with squirrel so the optional
// owner scope stays in one builder.
package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	repo "github.com/2400031249Gowtham/Certification-Trackerr/internal/repository"
)

func NewRepositories(pool *pgxpool.Pool) repo.Repositories {
	return repo.Repositories{
		Users:          &usersRepo{pool},
		Certifications: &certificationsRepo{pool},
	}
}
