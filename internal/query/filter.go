// Package query applies the list-view predicates: free-text search, the
// coarse status filter, and the explicit sorts the views use.
package query

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2400031249Gowtham/Certification-Trackerr/internal/models"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/status"
)

// StatusFilter is the four-way grouping used by list filters. It is coarser
// than status.Status: the critical/warning/soon buckets collapse into a
// single "expiring" bucket here.
type StatusFilter string

const (
	FilterAll      StatusFilter = "all"
	FilterActive   StatusFilter = "active"   // more than 90 days left
	FilterExpiring StatusFilter = "expiring" // 0-90 days left inclusive
	FilterExpired  StatusFilter = "expired"  // past expiration
)

// ParseStatusFilter maps a query-string value to a StatusFilter. An empty
// value means no filtering.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch StatusFilter(strings.ToLower(s)) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterActive:
		return FilterActive, nil
	case FilterExpiring:
		return FilterExpiring, nil
	case FilterExpired:
		return FilterExpired, nil
	}
	return "", fmt.Errorf("unknown status filter %q", s)
}

// Filter returns the certifications matching both the search text and the
// status filter. now is captured once by the caller so the whole batch is
// classified against the same instant.
func Filter(certs []models.Certification, text string, f StatusFilter, now time.Time) []models.Certification {
	text = strings.ToLower(strings.TrimSpace(text))
	out := make([]models.Certification, 0, len(certs))
	for i := range certs {
		c := certs[i]
		if !matchesText(&c, text) {
			continue
		}
		if !matchesStatus(status.Days(c.ExpirationDate, now), f) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesText(c *models.Certification, text string) bool {
	if text == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), text) ||
		strings.Contains(strings.ToLower(c.IssuingOrganization), text) ||
		(c.CredentialID != "" && strings.Contains(strings.ToLower(c.CredentialID), text))
}

func matchesStatus(days int, f StatusFilter) bool {
	switch f {
	case FilterActive:
		return days > 90
	case FilterExpiring:
		return days >= 0 && days <= 90
	case FilterExpired:
		return days < 0
	default:
		return true
	}
}

// SortByExpirationAsc orders soonest-expiring first. The sort is stable:
// equal dates keep their insertion order.
func SortByExpirationAsc(certs []models.Certification) {
	sort.SliceStable(certs, func(i, j int) bool {
		return certs[i].ExpirationDate.Before(certs[j].ExpirationDate)
	})
}

// SortByIssueDesc orders most recently issued first, stable on ties.
func SortByIssueDesc(certs []models.Certification) {
	sort.SliceStable(certs, func(i, j int) bool {
		return certs[j].IssueDate.Before(certs[i].IssueDate)
	})
}
