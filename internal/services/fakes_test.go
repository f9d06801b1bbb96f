package services

import (
	"context"
	"errors"
	"sync"

	"sponsortrack/internal/models"
)

type fakeAccounts struct {
	items map[int]*models.Account
	err   error
}

func (f *fakeAccounts) List(context.Context) ([]*models.Account, error) { return nil, f.err }
func (f *fakeAccounts) ListByOrganization(context.Context, int) ([]*models.Account, error) {
	return nil, f.err
}
func (f *fakeAccounts) GetByID(_ context.Context, id int) (*models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items[id], nil
}
func (f *fakeAccounts) Create(_ context.Context, a *models.Account) error {
	if f.items == nil {
		f.items = map[int]*models.Account{}
	}
	a.ID = len(f.items) + 1
	f.items[a.ID] = a
	return f.err
}
func (f *fakeAccounts) Update(_ context.Context, id int, p models.AccountPatch) (*models.Account, error) {
	a := f.items[id]
	if a == nil {
		return nil, f.err
	}
	if p.Name != nil {
		a.Name = *p.Name
	}
	return a, f.err
}
func (f *fakeAccounts) Delete(context.Context, int) (bool, error) { return true, f.err }

// fakeDeals хранит сделки в памяти и запоминает, какую выборку вызвали.
type fakeDeals struct {
	deals  []models.Deal
	called string
	err    error
}

func (f *fakeDeals) List(context.Context) ([]models.Deal, error) {
	f.called = "all"
	return f.deals, f.err
}
func (f *fakeDeals) ListByAccount(_ context.Context, accountID int) ([]models.Deal, error) {
	f.called = "account"
	var out []models.Deal
	for _, d := range f.deals {
		if d.AccountID == accountID {
			out = append(out, d)
		}
	}
	return out, f.err
}
func (f *fakeDeals) ListByOrganization(context.Context, int) ([]models.Deal, error) {
	f.called = "organization"
	return f.deals, f.err
}
func (f *fakeDeals) ListByStatus(_ context.Context, status models.DealStatus) ([]models.Deal, error) {
	var out []models.Deal
	for _, d := range f.deals {
		if d.Status == status {
			out = append(out, d)
		}
	}
	return out, f.err
}
func (f *fakeDeals) GetByID(_ context.Context, id int) (*models.Deal, error) {
	for i := range f.deals {
		if f.deals[i].ID == id {
			d := f.deals[i]
			return &d, f.err
		}
	}
	return nil, f.err
}
func (f *fakeDeals) Create(_ context.Context, d *models.Deal) error {
	if f.err != nil {
		return f.err
	}
	d.ID = len(f.deals) + 1
	f.deals = append(f.deals, *d)
	return nil
}
func (f *fakeDeals) Update(_ context.Context, id int, p models.DealPatch) (*models.Deal, error) {
	for i := range f.deals {
		if f.deals[i].ID != id {
			continue
		}
		d := &f.deals[i]
		if p.Status != nil {
			d.Status = *p.Status
		}
		if p.Value != nil {
			d.Value = *p.Value
		}
		if p.StartDate != nil {
			d.StartDate = *p.StartDate
		}
		if p.EndDate != nil {
			d.EndDate = *p.EndDate
		}
		out := *d
		return &out, f.err
	}
	return nil, f.err
}
func (f *fakeDeals) Delete(_ context.Context, id int) (bool, error) {
	for i := range f.deals {
		if f.deals[i].ID == id {
			f.deals = append(f.deals[:i], f.deals[i+1:]...)
			return true, nil
		}
	}
	return false, f.err
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []DealEvent
	err    error
}

func (r *recordingNotifier) Notify(_ context.Context, ev DealEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return r.err
}

var errBoom = errors.New("boom")
