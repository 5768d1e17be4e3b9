package services

import (
	"context"
	"errors"
	"time"

	"github.com/2400031249Gowtham/Certification-Trackerr/internal/api/validate"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/models"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/query"
	repo "github.com/2400031249Gowtham/Certification-Trackerr/internal/repository"
)

// Sort names accepted by ListOptions.
const (
	SortExpiration = "expiration" // expiration date ascending (renewal views)
	SortRecent     = "recent"     // issue date descending (recently added views)
)

type ListOptions struct {
	UserID string // admin-only scope; ignored (forced to the actor) otherwise
	Query  string
	Status query.StatusFilter
	Sort   string
}

// CertificationService owns the CRUD contract and the role scoping around
// it. Admins and regular users go through the same methods; a non-admin
// actor is always confined to their own records here, never in the handler.
type CertificationService struct {
	r         repo.Certifications
	users     repo.Users
	refresher *StatsRefresher
}

func NewCertificationService(r repo.Certifications, users repo.Users, refresher *StatsRefresher) *CertificationService {
	return &CertificationService{r: r, users: users, refresher: refresher}
}

func (s *CertificationService) List(ctx context.Context, actor Actor, opts ListOptions) ([]models.Certification, error) {
	if !actor.IsAdmin() {
		opts.UserID = actor.ID
	}

	var (
		certs []models.Certification
		err   error
	)
	if opts.UserID != "" {
		certs, err = s.r.ListByUser(ctx, opts.UserID)
	} else {
		certs, err = s.r.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	now := time.Now() // one instant for the whole batch
	certs = query.Filter(certs, opts.Query, opts.Status, now)

	switch opts.Sort {
	case SortRecent:
		query.SortByIssueDesc(certs)
	case SortExpiration:
		query.SortByExpirationAsc(certs)
	}
	return certs, nil
}

func (s *CertificationService) Get(ctx context.Context, actor Actor, id string) (models.Certification, error) {
	c, err := s.r.GetByID(ctx, id)
	if err != nil {
		return models.Certification{}, err
	}
	if !actor.IsAdmin() && c.UserID != actor.ID {
		return models.Certification{}, ErrForbidden
	}
	return c, nil
}

func (s *CertificationService) Create(ctx context.Context, actor Actor, c models.Certification) (models.Certification, error) {
	if c.UserID == "" {
		c.UserID = actor.ID
	}
	if !actor.IsAdmin() && c.UserID != actor.ID {
		return models.Certification{}, ErrForbidden
	}
	if err := c.Validate(); err != nil {
		return models.Certification{}, err
	}
	if _, err := s.users.GetByID(ctx, c.UserID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.Certification{}, validate.Errs{{Field: "userId", Msg: "unknown user"}}
		}
		return models.Certification{}, err
	}

	created, err := s.r.Create(ctx, c)
	if err != nil {
		return models.Certification{}, err
	}
	s.refresh()
	return created, nil
}

// Update shallow-merges the patch onto the stored record. Renewal is just
// this with new issue/expiration dates; prior validity is not kept.
func (s *CertificationService) Update(ctx context.Context, actor Actor, id string, patch models.CertificationPatch) (models.Certification, error) {
	existing, err := s.r.GetByID(ctx, id)
	if err != nil {
		return models.Certification{}, err
	}
	if !actor.IsAdmin() && existing.UserID != actor.ID {
		return models.Certification{}, ErrForbidden
	}
	if patch.UserID != nil && !actor.IsAdmin() {
		// only admins may move a certification to another user
		return models.Certification{}, ErrForbidden
	}

	merged := existing
	patch.Apply(&merged)
	if err := merged.Validate(); err != nil {
		return models.Certification{}, err
	}
	if patch.UserID != nil && *patch.UserID != existing.UserID {
		if _, err := s.users.GetByID(ctx, *patch.UserID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return models.Certification{}, validate.Errs{{Field: "userId", Msg: "unknown user"}}
			}
			return models.Certification{}, err
		}
	}

	updated, err := s.r.Update(ctx, id, patch)
	if err != nil {
		return models.Certification{}, err
	}
	s.refresh()
	return updated, nil
}

// Delete removes the record if the actor may touch it. Deleting an id that
// does not exist succeeds quietly; a second delete is safe.
func (s *CertificationService) Delete(ctx context.Context, actor Actor, id string) error {
	existing, err := s.r.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && existing.UserID != actor.ID {
		return ErrForbidden
	}
	if err := s.r.Delete(ctx, id); err != nil {
		return err
	}
	s.refresh()
	return nil
}

func (s *CertificationService) refresh() {
	if s.refresher != nil {
		s.refresher.Refresh()
	}
}
