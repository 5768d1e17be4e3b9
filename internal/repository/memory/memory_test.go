package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2400031249Gowtham/Certification-Trackerr/internal/models"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/repository"
)

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func newCert(t *testing.T, userID, name string) models.Certification {
	return models.Certification{
		UserID:              userID,
		Name:                name,
		IssuingOrganization: "Org",
		IssueDate:           mustDate(t, "2024-01-01"),
		ExpirationDate:      mustDate(t, "2026-01-01"),
	}
}

func TestUsersCreateAndLookup(t *testing.T) {
	ctx := context.Background()
	users := NewUsers()

	u, err := users.Create(ctx, models.User{Username: "alice", FullName: "Alice A", Role: models.RoleUser})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)

	byID, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byName, err := users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	_, err = users.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	n, err := users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestUsersDuplicateUsernameConflicts(t *testing.T) {
	ctx := context.Background()
	users := NewUsers()

	first, err := users.Create(ctx, models.User{Username: "bob", FullName: "Bob One"})
	require.NoError(t, err)

	_, err = users.Create(ctx, models.User{Username: "bob", FullName: "Bob Two"})
	assert.ErrorIs(t, err, repository.ErrUsernameTaken)

	// the first registration is unaffected
	got, err := users.GetByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "Bob One", got.FullName)
}

func TestCertificationsCreateAssignsFreshID(t *testing.T) {
	ctx := context.Background()
	certs := NewCertifications()

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		c, err := certs.Create(ctx, newCert(t, "u-1", "cert"))
		require.NoError(t, err)
		require.NotEmpty(t, c.ID)
		assert.False(t, seen[c.ID], "id reused")
		seen[c.ID] = true
	}

	all, err := certs.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestCertificationsListByUserIsExactSubset(t *testing.T) {
	ctx := context.Background()
	certs := NewCertifications()

	for _, owner := range []string{"u-1", "u-2", "u-1", "u-3", "u-1"} {
		_, err := certs.Create(ctx, newCert(t, owner, "c"))
		require.NoError(t, err)
	}

	all, err := certs.List(ctx)
	require.NoError(t, err)

	mine, err := certs.ListByUser(ctx, "u-1")
	require.NoError(t, err)
	assert.Len(t, mine, 3)
	for _, c := range mine {
		assert.Equal(t, "u-1", c.UserID)
	}

	var expected int
	for _, c := range all {
		if c.UserID == "u-1" {
			expected++
		}
	}
	assert.Equal(t, expected, len(mine))

	// unknown or empty owner yields an empty sequence, not an error
	none, err := certs.ListByUser(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, none)

	none, err = certs.ListByUser(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCertificationsUpdateMergesNotReplaces(t *testing.T) {
	ctx := context.Background()
	certs := NewCertifications()

	c, err := certs.Create(ctx, newCert(t, "u-1", "Kubernetes Administrator"))
	require.NoError(t, err)

	newExp := mustDate(t, "2028-02-02")
	updated, err := certs.Update(ctx, c.ID, models.CertificationPatch{ExpirationDate: &newExp})
	require.NoError(t, err)

	assert.Equal(t, newExp, updated.ExpirationDate)
	assert.Equal(t, "Kubernetes Administrator", updated.Name)
	assert.Equal(t, c.IssueDate, updated.IssueDate)
	assert.Equal(t, c.UserID, updated.UserID)

	got, err := certs.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, newExp, got.ExpirationDate)
}

func TestCertificationsUpdateUnknownIDNotFound(t *testing.T) {
	ctx := context.Background()
	certs := NewCertifications()

	name := "x"
	_, err := certs.Update(ctx, "missing", models.CertificationPatch{Name: &name})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCertificationsDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	certs := NewCertifications()

	a, err := certs.Create(ctx, newCert(t, "u-1", "a"))
	require.NoError(t, err)
	b, err := certs.Create(ctx, newCert(t, "u-1", "b"))
	require.NoError(t, err)

	require.NoError(t, certs.Delete(ctx, a.ID))
	require.NoError(t, certs.Delete(ctx, a.ID)) // second delete is a no-op

	all, err := certs.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, b.ID, all[0].ID)

	// the survivor is still reachable after reindexing
	got, err := certs.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "b", got.Name)
}

func TestCertificationsListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	certs := NewCertifications()

	for _, name := range []string{"first", "second", "third"} {
		_, err := certs.Create(ctx, newCert(t, "u-1", name))
		require.NoError(t, err)
	}
	all, err := certs.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first", all[0].Name)
	assert.Equal(t, "second", all[1].Name)
	assert.Equal(t, "third", all[2].Name)
}
