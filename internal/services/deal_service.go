package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"sponsortrack/internal/dealview"
	"sponsortrack/internal/logger"
	"sponsortrack/internal/models"
)

const dateLayout = "2006-01-02"

// DealScope ограничивает выборку организацией или аккаунтом.
// Если заданы оба, побеждает организация.
type DealScope struct {
	OrganizationID int
	AccountID      int
}

type DealService struct {
	Repo     DealStore
	Accounts AccountStore
	Notifier Notifier
	Log      *logrus.Logger
}

func NewDealService(repo DealStore, accounts AccountStore, notifier Notifier, log *logrus.Logger) *DealService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if log == nil {
		log = logger.Get()
	}
	return &DealService{Repo: repo, Accounts: accounts, Notifier: notifier, Log: log}
}

// Snapshot returns the unfiltered deals of a scope.
func (s *DealService) Snapshot(ctx context.Context, scope DealScope) ([]models.Deal, error) {
	switch {
	case scope.OrganizationID > 0:
		return s.Repo.ListByOrganization(ctx, scope.OrganizationID)
	case scope.AccountID > 0:
		return s.Repo.ListByAccount(ctx, scope.AccountID)
	default:
		return s.Repo.List(ctx)
	}
}

// List применяет один и тот же фильтр для любого scope.
func (s *DealService) List(ctx context.Context, scope DealScope, f dealview.Filter) ([]models.Deal, error) {
	deals, err := s.Snapshot(ctx, scope)
	if err != nil {
		return nil, err
	}
	return dealview.FilterDeals(deals, f), nil
}

func (s *DealService) View(ctx context.Context, scope DealScope, f dealview.Filter) (dealview.View, error) {
	deals, err := s.Snapshot(ctx, scope)
	if err != nil {
		return dealview.View{}, err
	}
	return dealview.Build(deals, f), nil
}

func (s *DealService) ListByStatus(ctx context.Context, status models.DealStatus) ([]models.Deal, error) {
	return s.Repo.ListByStatus(ctx, status)
}

func (s *DealService) GetByID(ctx context.Context, id int) (*models.Deal, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DealService) Create(ctx context.Context, deal *models.Deal) error {
	if err := validateDeal(deal); err != nil {
		return err
	}
	if err := s.Repo.Create(ctx, deal); err != nil {
		return err
	}
	s.notify(ctx, DealEvent{Kind: DealCreated, Deal: *deal})
	return nil
}

// Update применяет частичное обновление; nil, nil если сделки нет.
func (s *DealService) Update(ctx context.Context, id int, patch models.DealPatch) (*models.Deal, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	var previous models.DealStatus
	if patch.Status != nil {
		current, err := s.Repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, nil
		}
		previous = current.Status
	}

	updated, err := s.Repo.Update(ctx, id, patch)
	if err != nil || updated == nil {
		return updated, err
	}
	if patch.Status != nil && previous != updated.Status {
		s.notify(ctx, DealEvent{Kind: DealStatusChanged, Deal: *updated, PreviousStatus: previous})
	}
	return updated, nil
}

func (s *DealService) Delete(ctx context.Context, id int) (bool, error) {
	return s.Repo.Delete(ctx, id)
}

// уведомления best-effort, ошибки только в лог
func (s *DealService) notify(ctx context.Context, ev DealEvent) {
	if s.Accounts != nil {
		account, err := s.Accounts.GetByID(ctx, ev.Deal.AccountID)
		if err != nil {
			logger.LogError(s.Log, "deals", "notify", "load account", ev.Deal.AccountID, err)
		}
		ev.Account = account
	}
	if err := s.Notifier.Notify(ctx, ev); err != nil {
		logger.LogError(s.Log, "deals", "notify", string(ev.Kind), ev.Deal.ID, err)
	}
}

func validateDeal(d *models.Deal) error {
	if d.AccountID <= 0 {
		return validationError("account_id is required")
	}
	if err := validateDate("start_date", d.StartDate); err != nil {
		return err
	}
	if err := validateDate("end_date", d.EndDate); err != nil {
		return err
	}
	if d.Value.IsNegative() {
		return validationError("value must not be negative")
	}
	if !d.Status.Valid() {
		return validationError("unknown status %q", d.Status)
	}
	return nil
}

func validatePatch(p models.DealPatch) error {
	if p.AccountID != nil && *p.AccountID <= 0 {
		return validationError("account_id must be positive")
	}
	if p.StartDate != nil {
		if err := validateDate("start_date", *p.StartDate); err != nil {
			return err
		}
	}
	if p.EndDate != nil {
		if err := validateDate("end_date", *p.EndDate); err != nil {
			return err
		}
	}
	if p.Value != nil && p.Value.IsNegative() {
		return validationError("value must not be negative")
	}
	if p.Status != nil && !p.Status.Valid() {
		return validationError("unknown status %q", *p.Status)
	}
	return nil
}

func validateDate(field, value string) error {
	if _, err := time.Parse(dateLayout, value); err != nil {
		return validationError("%s must be a YYYY-MM-DD date", field)
	}
	return nil
}
