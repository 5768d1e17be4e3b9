package postgres

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/2400031249Gowtham/Certification-Trackerr/internal/models"
)

// psql binds every builder to PostgreSQL-style $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var certColumns = []string{
	"id", "user_id", "name", "issuing_organization",
	"issue_date", "expiration_date",
	"credential_id", "certificate_url", "notes",
	"created_at", "updated_at",
}

// listCertificationsQuery selects all certifications, optionally scoped to
// one owner. Ordering by seq preserves insertion order so the stable sorts
// upstream break ties deterministically.
func listCertificationsQuery(userID string) (string, []any, error) {
	b := psql.Select(certColumns...).
		From("certifications").
		OrderBy("seq ASC")
	if userID != "" {
		b = b.Where(sq.Eq{"user_id": userID})
	}
	return b.ToSql()
}

func getCertificationQuery(id string) (string, []any, error) {
	return psql.Select(certColumns...).
		From("certifications").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func insertCertificationQuery(c models.Certification) (string, []any, error) {
	return psql.Insert("certifications").
		Columns("id", "user_id", "name", "issuing_organization",
			"issue_date", "expiration_date",
			"credential_id", "certificate_url", "notes").
		Values(c.ID, c.UserID, c.Name, c.IssuingOrganization,
			c.IssueDate.Time, c.ExpirationDate.Time,
			c.CredentialID, c.CertificateURL, c.Notes).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
}

// updateCertificationQuery builds a SET clause from the non-nil patch
// fields only, so untouched columns keep their stored values.
func updateCertificationQuery(id string, patch models.CertificationPatch) (string, []any, error) {
	b := psql.Update("certifications").Set("updated_at", sq.Expr("now()"))
	if patch.UserID != nil {
		b = b.Set("user_id", *patch.UserID)
	}
	if patch.Name != nil {
		b = b.Set("name", *patch.Name)
	}
	if patch.IssuingOrganization != nil {
		b = b.Set("issuing_organization", *patch.IssuingOrganization)
	}
	if patch.IssueDate != nil {
		b = b.Set("issue_date", patch.IssueDate.Time)
	}
	if patch.ExpirationDate != nil {
		b = b.Set("expiration_date", patch.ExpirationDate.Time)
	}
	if patch.CredentialID != nil {
		b = b.Set("credential_id", *patch.CredentialID)
	}
	if patch.CertificateURL != nil {
		b = b.Set("certificate_url", *patch.CertificateURL)
	}
	if patch.Notes != nil {
		b = b.Set("notes", *patch.Notes)
	}
	return b.Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(certColumns, ", ")).
		ToSql()
}

func deleteCertificationQuery(id string) (string, []any, error) {
	return psql.Delete("certifications").Where(sq.Eq{"id": id}).ToSql()
}
