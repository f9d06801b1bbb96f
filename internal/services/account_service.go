package services

import (
	"context"
	"strings"

	"sponsortrack/internal/models"
)

type AccountService struct {
	Repo AccountStore
}

func NewAccountService(repo AccountStore) *AccountService {
	return &AccountService{Repo: repo}
}

func (s *AccountService) List(ctx context.Context) ([]*models.Account, error) {
	return s.Repo.List(ctx)
}

func (s *AccountService) ListByOrganization(ctx context.Context, organizationID int) ([]*models.Account, error) {
	return s.Repo.ListByOrganization(ctx, organizationID)
}

func (s *AccountService) GetByID(ctx context.Context, id int) (*models.Account, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *AccountService) Create(ctx context.Context, account *models.Account) error {
	if strings.TrimSpace(account.Name) == "" {
		return validationError("name is required")
	}
	if account.OrganizationID <= 0 {
		return validationError("organization_id is required")
	}
	return s.Repo.Create(ctx, account)
}

func (s *AccountService) Update(ctx context.Context, id int, patch models.AccountPatch) (*models.Account, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, validationError("name must not be empty")
	}
	if patch.OrganizationID != nil && *patch.OrganizationID <= 0 {
		return nil, validationError("organization_id must be positive")
	}
	return s.Repo.Update(ctx, id, patch)
}

func (s *AccountService) Delete(ctx context.Context, id int) (bool, error) {
	return s.Repo.Delete(ctx, id)
}
