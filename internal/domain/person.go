// Package domain contains entity without logic, just meta-data
package domain

type PersonID string

// Person is a seeded identity record. The directory owns the canonical copy;
// everything other components hold is a value snapshot.
type Person struct {
	ID          PersonID `json:"id" validate:"required"`
	Emails      []string `json:"emails" validate:"required,min=1,dive,email"`
	DisplayName string   `json:"displayName" validate:"required"`
	OrgID       string   `json:"orgId" validate:"required"`
}
