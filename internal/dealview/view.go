package dealview

import (
	"github.com/shopspring/decimal"

	"sponsortrack/internal/models"
)

// View is everything the deals dashboard shows for one snapshot and filter.
type View struct {
	Filter      Filter          `json:"filter"`
	Deals       []models.Deal   `json:"deals"`
	ByStage     []Bucket        `json:"by_stage"`
	ByStatus    []Bucket        `json:"by_status"`
	TotalValue  decimal.Decimal `json:"total_value"`
	ActiveValue decimal.Decimal `json:"active_value"`
	Years       Years           `json:"years"`
}

// Build filters the snapshot and derives the boards and totals from the
// filtered deals. Years come from the unfiltered snapshot so the year
// selector keeps offering every year while a filter is applied.
func Build(snapshot []models.Deal, f Filter) View {
	filtered := FilterDeals(snapshot, f)
	return View{
		Filter:      f,
		Deals:       filtered,
		ByStage:     BucketByStage(filtered),
		ByStatus:    BucketByStatus(filtered),
		TotalValue:  TotalValue(filtered),
		ActiveValue: ActiveValue(filtered),
		Years:       DistinctYears(snapshot),
	}
}
