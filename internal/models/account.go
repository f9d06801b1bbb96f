package models

import "time"

// Account represents a sponsor account owned by an organization.
type Account struct {
	ID             int       `json:"id"`
	OrganizationID int       `json:"organization_id"`
	Name           string    `json:"name"`
	ContactEmail   string    `json:"contact_email"`
	ContactPhone   string    `json:"contact_phone"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type AccountPatch struct {
	OrganizationID *int
	Name           *string
	ContactEmail   *string
	ContactPhone   *string
}
