package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2400031249Gowtham/Certification-Trackerr/internal/models"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func date(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func expIn(days int) models.Date {
	return models.DateOf(now.AddDate(0, 0, days))
}

func names(certs []models.Certification) []string {
	out := make([]string, len(certs))
	for i, c := range certs {
		out[i] = c.Name
	}
	return out
}

func TestParseStatusFilter(t *testing.T) {
	for in, want := range map[string]StatusFilter{
		"":         FilterAll,
		"all":      FilterAll,
		"active":   FilterActive,
		"Expiring": FilterExpiring,
		"EXPIRED":  FilterExpired,
	} {
		got, err := ParseStatusFilter(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseStatusFilter("bogus")
	assert.Error(t, err)
}

func TestFilterTextMatch(t *testing.T) {
	certs := []models.Certification{
		{Name: "AWS Solutions Architect", IssuingOrganization: "Amazon", ExpirationDate: expIn(200)},
		{Name: "PMP", IssuingOrganization: "PMI", ExpirationDate: expIn(200)},
		{Name: "Scrum Master", IssuingOrganization: "Scrum.org", CredentialID: "aws-linked-99", ExpirationDate: expIn(200)},
	}

	got := Filter(certs, "aws", FilterAll, now)
	assert.Equal(t, []string{"AWS Solutions Architect", "Scrum Master"}, names(got))

	// no field of PMP contains the text
	got = Filter(certs, "azure", FilterAll, now)
	assert.Empty(t, got)

	// empty credentialId is simply not a match, not an error
	got = Filter(certs, "pmp", FilterAll, now)
	assert.Equal(t, []string{"PMP"}, names(got))
}

func TestFilterStatusCollapsesExpiringBuckets(t *testing.T) {
	certs := []models.Certification{
		{Name: "gone", ExpirationDate: expIn(-1)},
		{Name: "critical", ExpirationDate: expIn(0)},
		{Name: "warning", ExpirationDate: expIn(45)},
		{Name: "soon", ExpirationDate: expIn(90)},
		{Name: "active", ExpirationDate: expIn(91)},
	}

	assert.Equal(t, []string{"critical", "warning", "soon"}, names(Filter(certs, "", FilterExpiring, now)))
	assert.Equal(t, []string{"gone"}, names(Filter(certs, "", FilterExpired, now)))
	assert.Equal(t, []string{"active"}, names(Filter(certs, "", FilterActive, now)))
	assert.Len(t, Filter(certs, "", FilterAll, now), 5)
}

func TestFilterCombinesTextAndStatus(t *testing.T) {
	certs := []models.Certification{
		{Name: "AWS Old", ExpirationDate: expIn(-10)},
		{Name: "AWS Fresh", ExpirationDate: expIn(400)},
		{Name: "GCP Fresh", ExpirationDate: expIn(400)},
	}
	got := Filter(certs, "aws", FilterActive, now)
	assert.Equal(t, []string{"AWS Fresh"}, names(got))
}

func TestSortByExpirationAscStableOnTies(t *testing.T) {
	certs := []models.Certification{
		{Name: "b", ExpirationDate: date(t, "2025-09-01")},
		{Name: "a", ExpirationDate: date(t, "2025-08-01")},
		{Name: "c", ExpirationDate: date(t, "2025-09-01")},
	}
	SortByExpirationAsc(certs)
	assert.Equal(t, []string{"a", "b", "c"}, names(certs))
}

func TestSortByIssueDescStableOnTies(t *testing.T) {
	certs := []models.Certification{
		{Name: "old", IssueDate: date(t, "2023-01-01")},
		{Name: "new1", IssueDate: date(t, "2025-01-01")},
		{Name: "new2", IssueDate: date(t, "2025-01-01")},
	}
	SortByIssueDesc(certs)
	assert.Equal(t, []string{"new1", "new2", "old"}, names(certs))
}
