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

type certificationsRepo struct{ pool *pgxpool.Pool }

func (r *certificationsRepo) List(ctx context.Context) ([]models.Certification, error) {
	return r.list(ctx, "")
}

func (r *certificationsRepo) ListByUser(ctx context.Context, userID string) ([]models.Certification, error) {
	if userID == "" {
		return []models.Certification{}, nil
	}
	return r.list(ctx, userID)
}

func (r *certificationsRepo) list(ctx context.Context, userID string) ([]models.Certification, error) {
	sql, args, err := listCertificationsQuery(userID)
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list certifications: %w", err)
	}
	defer rows.Close()

	out := []models.Certification{}
	for rows.Next() {
		var c models.Certification
		if err := scanCertification(rows, &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *certificationsRepo) GetByID(ctx context.Context, id string) (models.Certification, error) {
	sql, args, err := getCertificationQuery(id)
	if err != nil {
		return models.Certification{}, err
	}
	var c models.Certification
	err = scanCertification(r.pool.QueryRow(ctx, sql, args...), &c)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Certification{}, repository.ErrNotFound
	}
	if err != nil {
		return models.Certification{}, fmt.Errorf("get certification: %w", err)
	}
	return c, nil
}

func (r *certificationsRepo) Create(ctx context.Context, c models.Certification) (models.Certification, error) {
	c.ID = uuid.NewString()
	sql, args, err := insertCertificationQuery(c)
	if err != nil {
		return models.Certification{}, err
	}
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		return models.Certification{}, fmt.Errorf("insert certification: %w", err)
	}
	return c, nil
}

func (r *certificationsRepo) Update(ctx context.Context, id string, patch models.CertificationPatch) (models.Certification, error) {
	if patch.IsZero() {
		return r.GetByID(ctx, id)
	}
	sql, args, err := updateCertificationQuery(id, patch)
	if err != nil {
		return models.Certification{}, err
	}
	var c models.Certification
	err = scanCertification(r.pool.QueryRow(ctx, sql, args...), &c)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Certification{}, repository.ErrNotFound
	}
	if err != nil {
		return models.Certification{}, fmt.Errorf("update certification: %w", err)
	}
	return c, nil
}

// Delete removes the row if present. A missing id is a silent no-op, the
// uniform policy for the whole application.
func (r *certificationsRepo) Delete(ctx context.Context, id string) error {
	sql, args, err := deleteCertificationQuery(id)
	if err != nil {
		return err
	}
	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete certification: %w", err)
	}
	return nil
}

func scanCertification(row pgx.Row, c *models.Certification) error {
	return row.Scan(&c.ID, &c.UserID, &c.Name, &c.IssuingOrganization,
		&c.IssueDate.Time, &c.ExpirationDate.Time,
		&c.CredentialID, &c.CertificateURL, &c.Notes,
		&c.CreatedAt, &c.UpdatedAt)
}
