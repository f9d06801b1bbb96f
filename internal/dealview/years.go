package dealview

import (
	"sort"

	"sponsortrack/internal/models"
)

// Years is the sorted set of years found in deal dates. HasInvalid is set
// when at least one date could not be parsed; all such dates collapse into
// that single marker.
type Years struct {
	Values     []int `json:"values"`
	HasInvalid bool  `json:"has_invalid"`
}

// DistinctYears collects the start and end years of every deal, deduplicated
// and sorted ascending.
func DistinctYears(deals []models.Deal) Years {
	seen := make(map[int]struct{})
	res := Years{Values: []int{}}
	for _, d := range deals {
		for _, y := range []Year{YearOf(d.StartDate), YearOf(d.EndDate)} {
			if !y.Valid {
				res.HasInvalid = true
				continue
			}
			if _, ok := seen[y.Value]; ok {
				continue
			}
			seen[y.Value] = struct{}{}
			res.Values = append(res.Values, y.Value)
		}
	}
	sort.Ints(res.Values)
	return res
}
