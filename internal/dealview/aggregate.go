package dealview

import (
	"github.com/shopspring/decimal"

	"sponsortrack/internal/models"
)

// TotalValue sums the value of every deal given.
func TotalValue(deals []models.Deal) decimal.Decimal {
	total := decimal.Zero
	for _, d := range deals {
		total = total.Add(d.Value)
	}
	return total
}

// ActiveValue sums the value of active deals only.
func ActiveValue(deals []models.Deal) decimal.Decimal {
	total := decimal.Zero
	for _, d := range deals {
		if d.Status == models.DealStatusActive {
			total = total.Add(d.Value)
		}
	}
	return total
}
