package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2400031249Gowtham/Certification-Trackerr/internal/models"
)

// fixed reference instant; time of day is deliberately not midnight to
// prove classification only depends on the calendar date
var now = time.Date(2025, 6, 15, 17, 42, 3, 0, time.UTC)

func dateIn(t *testing.T, days int) models.Date {
	t.Helper()
	return models.DateOf(now.AddDate(0, 0, days))
}

func TestFromDaysBoundaries(t *testing.T) {
	tests := []struct {
		days int
		want Status
	}{
		{-100, Expired},
		{-1, Expired},
		{0, Critical},
		{1, Critical},
		{29, Critical},
		{30, Critical},
		{31, Warning},
		{59, Warning},
		{60, Warning},
		{61, Soon},
		{90, Soon},
		{91, Active},
		{365, Active},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromDays(tt.days), "days=%d", tt.days)
	}
}

func TestClassifyMatchesDayCount(t *testing.T) {
	for _, days := range []int{-5, -1, 0, 30, 31, 60, 61, 90, 91} {
		d := dateIn(t, days)
		require.Equal(t, days, Days(d, now), "date %s", d)
		assert.Equal(t, FromDays(days), Classify(d, now))
	}
}

func TestDaysIgnoresTimeOfDay(t *testing.T) {
	d := dateIn(t, 29)
	lateNight := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)
	earlyMorning := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 1, 0, time.UTC)
	assert.Equal(t, 29, Days(d, lateNight))
	assert.Equal(t, 29, Days(d, earlyMorning))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Expired", Label(-5))
	assert.Equal(t, "Expired", Label(-1))
	assert.Equal(t, "Expires today", Label(0))
	assert.Equal(t, "1 day left", Label(1))
	assert.Equal(t, "29 days left", Label(29))
}

func TestCountClassifiesWholeBatch(t *testing.T) {
	certs := []models.Certification{
		{ExpirationDate: dateIn(t, -5)},
		{ExpirationDate: dateIn(t, 0)},
		{ExpirationDate: dateIn(t, 30)},
		{ExpirationDate: dateIn(t, 45)},
		{ExpirationDate: dateIn(t, 75)},
		{ExpirationDate: dateIn(t, 200)},
	}
	got := Count(certs, now)
	assert.Equal(t, Counts{Expired: 1, Critical: 2, Warning: 1, Soon: 1, Active: 1}, got)
}
