package handlers

import (
	"context"
	"sort"

	"sponsortrack/internal/models"
	"sponsortrack/internal/repositories"
)

// memStore: хранилище в памяти для организаций, аккаунтов и сделок.
type memStore struct {
	orgs     map[int]*models.Organization
	accounts map[int]*models.Account
	deals    map[int]*models.Deal
	nextID   int
	err      error
}

func newMemStore() *memStore {
	return &memStore{
		orgs:     map[int]*models.Organization{},
		accounts: map[int]*models.Account{},
		deals:    map[int]*models.Deal{},
	}
}

func (m *memStore) id() int {
	m.nextID++
	return m.nextID
}

type memOrgs struct{ *memStore }
type memAccounts struct{ *memStore }
type memDeals struct{ *memStore }

func (s memOrgs) List(context.Context) ([]*models.Organization, error) {
	out := []*models.Organization{}
	for _, o := range s.orgs {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, s.err
}
func (s memOrgs) GetByID(_ context.Context, id int) (*models.Organization, error) {
	return s.orgs[id], s.err
}
func (s memOrgs) Create(_ context.Context, o *models.Organization) error {
	o.ID = s.id()
	s.orgs[o.ID] = o
	return s.err
}
func (s memOrgs) Update(_ context.Context, id int, p models.OrganizationPatch) (*models.Organization, error) {
	o := s.orgs[id]
	if o != nil && p.Name != nil {
		o.Name = *p.Name
	}
	return o, s.err
}
func (s memOrgs) Delete(_ context.Context, id int) (bool, error) {
	for _, a := range s.accounts {
		if a.OrganizationID == id {
			return false, repositories.ErrForeignKey
		}
	}
	_, ok := s.orgs[id]
	delete(s.orgs, id)
	return ok, s.err
}

func (s memAccounts) List(context.Context) ([]*models.Account, error) {
	return s.filter(func(*models.Account) bool { return true }), s.err
}
func (s memAccounts) ListByOrganization(_ context.Context, orgID int) ([]*models.Account, error) {
	return s.filter(func(a *models.Account) bool { return a.OrganizationID == orgID }), s.err
}
func (s memAccounts) filter(keep func(*models.Account) bool) []*models.Account {
	out := []*models.Account{}
	for _, a := range s.accounts {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
func (s memAccounts) GetByID(_ context.Context, id int) (*models.Account, error) {
	return s.accounts[id], s.err
}
func (s memAccounts) Create(_ context.Context, a *models.Account) error {
	if _, ok := s.orgs[a.OrganizationID]; !ok {
		return repositories.ErrForeignKey
	}
	a.ID = s.id()
	s.accounts[a.ID] = a
	return s.err
}
func (s memAccounts) Update(_ context.Context, id int, p models.AccountPatch) (*models.Account, error) {
	a := s.accounts[id]
	if a == nil {
		return nil, s.err
	}
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.ContactEmail != nil {
		a.ContactEmail = *p.ContactEmail
	}
	if p.ContactPhone != nil {
		a.ContactPhone = *p.ContactPhone
	}
	if p.OrganizationID != nil {
		a.OrganizationID = *p.OrganizationID
	}
	return a, s.err
}
func (s memAccounts) Delete(_ context.Context, id int) (bool, error) {
	_, ok := s.accounts[id]
	delete(s.accounts, id)
	return ok, s.err
}

func (s memDeals) sorted(keep func(models.Deal) bool) []models.Deal {
	out := []models.Deal{}
	for _, d := range s.deals {
		if keep(*d) {
			out = append(out, *d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
func (s memDeals) List(context.Context) ([]models.Deal, error) {
	return s.sorted(func(models.Deal) bool { return true }), s.err
}
func (s memDeals) ListByAccount(_ context.Context, accountID int) ([]models.Deal, error) {
	return s.sorted(func(d models.Deal) bool { return d.AccountID == accountID }), s.err
}
func (s memDeals) ListByOrganization(_ context.Context, orgID int) ([]models.Deal, error) {
	return s.sorted(func(d models.Deal) bool {
		a := s.accounts[d.AccountID]
		return a != nil && a.OrganizationID == orgID
	}), s.err
}
func (s memDeals) ListByStatus(_ context.Context, status models.DealStatus) ([]models.Deal, error) {
	return s.sorted(func(d models.Deal) bool { return d.Status == status }), s.err
}
func (s memDeals) GetByID(_ context.Context, id int) (*models.Deal, error) {
	d, ok := s.deals[id]
	if !ok {
		return nil, s.err
	}
	out := *d
	return &out, s.err
}
func (s memDeals) Create(_ context.Context, d *models.Deal) error {
	if _, ok := s.accounts[d.AccountID]; !ok {
		return repositories.ErrForeignKey
	}
	d.ID = s.id()
	stored := *d
	s.deals[d.ID] = &stored
	return s.err
}
func (s memDeals) Update(_ context.Context, id int, p models.DealPatch) (*models.Deal, error) {
	d, ok := s.deals[id]
	if !ok {
		return nil, s.err
	}
	if p.AccountID != nil {
		d.AccountID = *p.AccountID
	}
	if p.StartDate != nil {
		d.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		d.EndDate = *p.EndDate
	}
	if p.Value != nil {
		d.Value = *p.Value
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	out := *d
	return &out, s.err
}
func (s memDeals) Delete(_ context.Context, id int) (bool, error) {
	_, ok := s.deals[id]
	delete(s.deals, id)
	return ok, s.err
}
