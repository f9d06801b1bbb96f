package testutil

import (
	"fmt"

	"github.com/shopspring/decimal"

	"sponsortrack/internal/models"
)

func NewTestOrganization(name string) *models.Organization {
	return &models.Organization{Name: name}
}

func NewTestAccount(organizationID int, name string) *models.Account {
	return &models.Account{
		OrganizationID: organizationID,
		Name:           name,
		ContactEmail:   fmt.Sprintf("contact@%s.com", name),
		ContactPhone:   "555-123-4567",
	}
}

func NewTestDeal(accountID int, value int64, status models.DealStatus) *models.Deal {
	return &models.Deal{
		AccountID: accountID,
		StartDate: "2024-02-01",
		EndDate:   "2025-01-15",
		Value:     decimal.NewFromInt(value),
		Status:    status,
	}
}
