// Package status derives renewal urgency from a certification's expiration
// date. Every counting view (dashboard cards, list badges, filters) goes
// through Classify so the bucket boundaries live in exactly one place.
package status

import (
	"strconv"
	"time"

	"github.com/2400031249Gowtham/Certification-Trackerr/internal/models"
)

type Status string

const (
	Expired  Status = "expired"  // already past expiration
	Critical Status = "critical" // 0-30 days left
	Warning  Status = "warning"  // 31-60 days left
	Soon     Status = "soon"     // 61-90 days left
	Active   Status = "active"   // more than 90 days left
)

// Days returns the whole number of calendar days from now until expiration.
// Negative once the date has passed. Both sides are truncated to UTC
// midnight, so the result does not depend on the time of day.
func Days(expiration models.Date, now time.Time) int {
	return int(expiration.Sub(models.DateOf(now).Time).Hours() / 24)
}

// Classify maps an expiration date to its urgency bucket as of now.
func Classify(expiration models.Date, now time.Time) Status {
	return FromDays(Days(expiration, now))
}

// FromDays buckets a days-remaining count.
func FromDays(days int) Status {
	switch {
	case days < 0:
		return Expired
	case days <= 30:
		return Critical
	case days <= 60:
		return Warning
	case days <= 90:
		return Soon
	default:
		return Active
	}
}

// Label renders a days-remaining count the way the dashboards display it.
func Label(days int) string {
	switch {
	case days < 0:
		return "Expired"
	case days == 0:
		return "Expires today"
	case days == 1:
		return "1 day left"
	default:
		return strconv.Itoa(days) + " days left"
	}
}

// Counts holds per-bucket totals for one batch of certifications.
type Counts struct {
	Expired  int `json:"expired"`
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
	Soon     int `json:"soon"`
	Active   int `json:"active"`
}

func (c *Counts) Add(s Status) {
	switch s {
	case Expired:
		c.Expired++
	case Critical:
		c.Critical++
	case Warning:
		c.Warning++
	case Soon:
		c.Soon++
	case Active:
		c.Active++
	}
}

// Count classifies every certification against a single instant.
func Count(certs []models.Certification, now time.Time) Counts {
	var c Counts
	for i := range certs {
		c.Add(Classify(certs[i].ExpirationDate, now))
	}
	return c
}
