// Package dealview turns a snapshot of deals into the views the dashboard
// renders: the filtered list, the stage and status boards, the value totals
// and the years offered by the year selector.
//
// Every function here is pure. Inputs are never mutated and no state is kept
// between calls.
package dealview

import (
	"strings"
	"time"
)

// Year is a calendar year derived from a deal date. A date that cannot be
// parsed yields an invalid Year, which never equals any filter value.
type Year struct {
	Value int
	Valid bool
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
}

// YearOf returns the calendar year of an ISO date string.
func YearOf(date string) Year {
	date = strings.TrimSpace(date)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return Year{Value: t.Year(), Valid: true}
		}
	}
	return Year{}
}

// Is reports whether y is a valid year equal to v.
func (y Year) Is(v int) bool {
	return y.Valid && y.Value == v
}
