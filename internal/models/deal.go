package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// суммы уходят в JSON числами, дашборд складывает их как number
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type DealStatus string

const (
	DealStatusDraft     DealStatus = "draft"
	DealStatusActive    DealStatus = "active"
	DealStatusExpired   DealStatus = "expired"
	DealStatusCancelled DealStatus = "cancelled"
)

// DealStatuses в порядке отображения на доске.
var DealStatuses = []DealStatus{
	DealStatusDraft,
	DealStatusActive,
	DealStatusExpired,
	DealStatusCancelled,
}

func (s DealStatus) Valid() bool {
	for _, known := range DealStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type Deal struct {
	ID        int             `json:"id" validate:"required,gt=0"`
	AccountID int             `json:"account_id" validate:"required,gt=0"`
	StartDate string          `json:"start_date" validate:"required,isodate"`
	EndDate   string          `json:"end_date" validate:"required,isodate"`
	Value     decimal.Decimal `json:"value"`
	Status    DealStatus      `json:"status" validate:"required,oneof=draft active expired cancelled"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// DealPatch: частичное обновление, nil означает "не трогать".
type DealPatch struct {
	AccountID *int
	StartDate *string
	EndDate   *string
	Value     *decimal.Decimal
	Status    *DealStatus
}

func (p DealPatch) Empty() bool {
	return p.AccountID == nil && p.StartDate == nil && p.EndDate == nil && p.Value == nil && p.Status == nil
}
