package services

import (
	"context"
	"time"

	"github.com/2400031249Gowtham/Certification-Trackerr/internal/models"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/query"
	repo "github.com/2400031249Gowtham/Certification-Trackerr/internal/repository"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/status"
)

// listLimit caps the expiring/recent lists on the dashboard.
const listLimit = 5

// CertificationStatus decorates a certification with its derived urgency
// for display: bucket, days remaining, and the human label.
type CertificationStatus struct {
	models.Certification
	Status   status.Status `json:"status"`
	DaysLeft int           `json:"daysLeft"`
	Label    string        `json:"label"`
}

type Overview struct {
	Total    int                   `json:"total"`
	Counts   status.Counts         `json:"counts"`
	Expiring []CertificationStatus `json:"expiring"`
	Recent   []CertificationStatus `json:"recent"`
}

// DashboardService assembles the role-scoped overview: admins see the whole
// data set, users only their own certifications. It holds no state of its
// own; everything is derived per call.
type DashboardService struct {
	r repo.Certifications
}

func NewDashboardService(r repo.Certifications) *DashboardService {
	return &DashboardService{r: r}
}

func (s *DashboardService) Overview(ctx context.Context, actor Actor) (Overview, error) {
	var (
		certs []models.Certification
		err   error
	)
	if actor.IsAdmin() {
		certs, err = s.r.List(ctx)
	} else {
		certs, err = s.r.ListByUser(ctx, actor.ID)
	}
	if err != nil {
		return Overview{}, err
	}

	now := time.Now() // single instant for every classification below

	expiring := query.Filter(certs, "", query.FilterExpiring, now)
	query.SortByExpirationAsc(expiring)
	if len(expiring) > listLimit {
		expiring = expiring[:listLimit]
	}

	recent := make([]models.Certification, len(certs))
	copy(recent, certs)
	query.SortByIssueDesc(recent)
	if len(recent) > listLimit {
		recent = recent[:listLimit]
	}

	return Overview{
		Total:    len(certs),
		Counts:   status.Count(certs, now),
		Expiring: decorate(expiring, now),
		Recent:   decorate(recent, now),
	}, nil
}

func decorate(certs []models.Certification, now time.Time) []CertificationStatus {
	out := make([]CertificationStatus, 0, len(certs))
	for i := range certs {
		days := status.Days(certs[i].ExpirationDate, now)
		out = append(out, CertificationStatus{
			Certification: certs[i],
			Status:        status.FromDays(days),
			DaysLeft:      days,
			Label:         status.Label(days),
		})
	}
	return out
}
