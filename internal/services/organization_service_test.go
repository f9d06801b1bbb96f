package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sponsortrack/internal/models"
)

type fakeOrgs struct {
	created []*models.Organization
}

func (f *fakeOrgs) List(context.Context) ([]*models.Organization, error)       { return f.created, nil }
func (f *fakeOrgs) GetByID(context.Context, int) (*models.Organization, error) { return nil, nil }
func (f *fakeOrgs) Delete(context.Context, int) (bool, error)                  { return false, nil }
func (f *fakeOrgs) Create(_ context.Context, o *models.Organization) error {
	o.ID = len(f.created) + 1
	f.created = append(f.created, o)
	return nil
}
func (f *fakeOrgs) Update(_ context.Context, id int, p models.OrganizationPatch) (*models.Organization, error) {
	return &models.Organization{ID: id, Name: *p.Name}, nil
}

func TestOrganizationService(t *testing.T) {
	ctx := context.Background()
	repo := &fakeOrgs{}
	svc := NewOrganizationService(repo)

	org := &models.Organization{Name: "  SponsorTech "}
	require.NoError(t, svc.Create(ctx, org))
	assert.Equal(t, "SponsorTech", org.Name)

	assert.ErrorIs(t, svc.Create(ctx, &models.Organization{Name: "   "}), ErrValidation)

	blank := ""
	_, err := svc.Update(ctx, 1, models.OrganizationPatch{Name: &blank})
	assert.ErrorIs(t, err, ErrValidation)

	name := "EventMasters"
	updated, err := svc.Update(ctx, 1, models.OrganizationPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "EventMasters", updated.Name)
}

func TestAccountService(t *testing.T) {
	ctx := context.Background()
	svc := NewAccountService(&fakeAccounts{})

	assert.ErrorIs(t, svc.Create(ctx, &models.Account{Name: "Nike"}), ErrValidation)
	assert.ErrorIs(t, svc.Create(ctx, &models.Account{OrganizationID: 1}), ErrValidation)

	acc := &models.Account{Name: "Nike", OrganizationID: 1}
	require.NoError(t, svc.Create(ctx, acc))
	assert.Equal(t, 1, acc.ID)

	zero := 0
	_, err := svc.Update(ctx, 1, models.AccountPatch{OrganizationID: &zero})
	assert.ErrorIs(t, err, ErrValidation)
}
