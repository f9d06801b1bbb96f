package services

import (
	"context"
	"strings"

	"sponsortrack/internal/models"
)

type OrganizationService struct {
	Repo OrganizationStore
}

func NewOrganizationService(repo OrganizationStore) *OrganizationService {
	return &OrganizationService{Repo: repo}
}

func (s *OrganizationService) List(ctx context.Context) ([]*models.Organization, error) {
	return s.Repo.List(ctx)
}

func (s *OrganizationService) GetByID(ctx context.Context, id int) (*models.Organization, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *OrganizationService) Create(ctx context.Context, org *models.Organization) error {
	org.Name = strings.TrimSpace(org.Name)
	if org.Name == "" {
		return validationError("name is required")
	}
	return s.Repo.Create(ctx, org)
}

func (s *OrganizationService) Update(ctx context.Context, id int, patch models.OrganizationPatch) (*models.Organization, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, validationError("name must not be empty")
	}
	return s.Repo.Update(ctx, id, patch)
}

func (s *OrganizationService) Delete(ctx context.Context, id int) (bool, error) {
	return s.Repo.Delete(ctx, id)
}
