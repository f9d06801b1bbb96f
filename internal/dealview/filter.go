package dealview

import (
	"strconv"
	"strings"

	"sponsortrack/internal/models"
)

// Filter holds the dashboard filter state. A nil Status or Year and an empty
// Search disable that dimension.
type Filter struct {
	Status *models.DealStatus `json:"status"`
	Year   *int               `json:"year"`
	Search string             `json:"search"`
}

// IsZero reports whether the filter keeps every deal.
func (f Filter) IsZero() bool {
	return f.Status == nil && f.Year == nil && f.Search == ""
}

// FilterDeals returns the deals matching every active predicate, in input order.
func FilterDeals(deals []models.Deal, f Filter) []models.Deal {
	out := make([]models.Deal, 0, len(deals))
	for _, d := range deals {
		if matchesStatus(d, f.Status) && matchesYear(d, f.Year) && matchesSearch(d, f.Search) {
			out = append(out, d)
		}
	}
	return out
}

func matchesStatus(d models.Deal, status *models.DealStatus) bool {
	if status == nil {
		return true
	}
	return d.Status == *status
}

// start_date OR end_date falls in the year; the range in between is not checked
func matchesYear(d models.Deal, year *int) bool {
	if year == nil {
		return true
	}
	return YearOf(d.StartDate).Is(*year) || YearOf(d.EndDate).Is(*year)
}

func matchesSearch(d models.Deal, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strconv.Itoa(d.ID), search) ||
		strings.Contains(strconv.Itoa(d.AccountID), search) ||
		strings.Contains(strings.ToLower(string(d.Status)), strings.ToLower(search)) ||
		strings.Contains(d.Value.String(), search)
}
