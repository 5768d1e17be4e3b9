package models

import (
	"time"

	"github.com/2400031249Gowtham/Certification-Trackerr/internal/api/validate"
)

// Certification is a professional credential owned by a single user.
// IssueDate and ExpirationDate are calendar dates, not instants.
type Certification struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"userId"`
	Name                string    `json:"name"`
	IssuingOrganization string    `json:"issuingOrganization"`
	IssueDate           Date      `json:"issueDate"`
	ExpirationDate      Date      `json:"expirationDate"`
	CredentialID        string    `json:"credentialId"`
	CertificateURL      string    `json:"certificateUrl"`
	Notes               string    `json:"notes"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func (c *Certification) Validate() error {
	var errs validate.Errs
	errs.Add(validate.Required("userId", c.UserID))
	errs.Add(validate.Required("name", c.Name))
	errs.Add(validate.Required("issuingOrganization", c.IssuingOrganization))
	if c.IssueDate.IsZero() {
		errs.Add(&validate.ErrField{Field: "issueDate", Msg: "required"})
	}
	if c.ExpirationDate.IsZero() {
		errs.Add(&validate.ErrField{Field: "expirationDate", Msg: "required"})
	}
	if !c.IssueDate.IsZero() && !c.ExpirationDate.IsZero() && c.ExpirationDate.Before(c.IssueDate) {
		errs.Add(&validate.ErrField{Field: "expirationDate", Msg: "must not be before issueDate"})
	}
	errs.Add(validate.URL("certificateUrl", c.CertificateURL))
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CertificationPatch is a partial update. Nil fields are left untouched;
// non-nil fields overwrite the stored value (shallow merge).
type CertificationPatch struct {
	UserID              *string `json:"userId"`
	Name                *string `json:"name"`
	IssuingOrganization *string `json:"issuingOrganization"`
	IssueDate           *Date   `json:"issueDate"`
	ExpirationDate      *Date   `json:"expirationDate"`
	CredentialID        *string `json:"credentialId"`
	CertificateURL      *string `json:"certificateUrl"`
	Notes               *string `json:"notes"`
}

// Apply merges the patch onto c field by field.
func (p CertificationPatch) Apply(c *Certification) {
	if p.UserID != nil {
		c.UserID = *p.UserID
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.IssuingOrganization != nil {
		c.IssuingOrganization = *p.IssuingOrganization
	}
	if p.IssueDate != nil {
		c.IssueDate = *p.IssueDate
	}
	if p.ExpirationDate != nil {
		c.ExpirationDate = *p.ExpirationDate
	}
	if p.CredentialID != nil {
		c.CredentialID = *p.CredentialID
	}
	if p.CertificateURL != nil {
		c.CertificateURL = *p.CertificateURL
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
}

// IsZero reports whether the patch carries no fields at all.
func (p CertificationPatch) IsZero() bool {
	return p.UserID == nil && p.Name == nil && p.IssuingOrganization == nil &&
		p.IssueDate == nil && p.ExpirationDate == nil && p.CredentialID == nil &&
		p.CertificateURL == nil && p.Notes == nil
}
