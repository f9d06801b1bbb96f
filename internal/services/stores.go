package services

import (
	"context"

	"sponsortrack/internal/models"
)

// Хранилища, которые нужны сервисам; реализованы в internal/repositories.

type OrganizationStore interface {
	List(ctx context.Context) ([]*models.Organization, error)
	GetByID(ctx context.Context, id int) (*models.Organization, error)
	Create(ctx context.Context, org *models.Organization) error
	Update(ctx context.Context, id int, patch models.OrganizationPatch) (*models.Organization, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type AccountStore interface {
	List(ctx context.Context) ([]*models.Account, error)
	ListByOrganization(ctx context.Context, organizationID int) ([]*models.Account, error)
	GetByID(ctx context.Context, id int) (*models.Account, error)
	Create(ctx context.Context, account *models.Account) error
	Update(ctx context.Context, id int, patch models.AccountPatch) (*models.Account, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type DealStore interface {
	List(ctx context.Context) ([]models.Deal, error)
	ListByAccount(ctx context.Context, accountID int) ([]models.Deal, error)
	ListByOrganization(ctx context.Context, organizationID int) ([]models.Deal, error)
	ListByStatus(ctx context.Context, status models.DealStatus) ([]models.Deal, error)
	GetByID(ctx context.Context, id int) (*models.Deal, error)
	Create(ctx context.Context, deal *models.Deal) error
	Update(ctx context.Context, id int, patch models.DealPatch) (*models.Deal, error)
	Delete(ctx context.Context, id int) (bool, error)
}
