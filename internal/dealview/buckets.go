package dealview

import (
	"github.com/shopspring/decimal"

	"sponsortrack/internal/models"
)

// Stage board names, in board order.
const (
	StageBuildProposal = "Build Proposal"
	StagePitchProposal = "Pitch Proposal"
	StageNegotiation   = "Negotiation"
)

// Bucket is one column of a board: its deals and their summed value.
type Bucket struct {
	Name       string          `json:"name"`
	Deals      []models.Deal   `json:"deals"`
	TotalValue decimal.Decimal `json:"total_value"`
}

func newBucket(name string, deals []models.Deal) Bucket {
	return Bucket{Name: name, Deals: deals, TotalValue: TotalValue(deals)}
}

// BucketByStage splits deals by position, not by any deal attribute: the
// first half goes to "Build Proposal", up to three quarters to "Pitch
// Proposal", the rest to "Negotiation". The order of deals decides the stage.
func BucketByStage(deals []models.Deal) []Bucket {
	n := len(deals)
	half := ceilFraction(n, 1, 2)
	threeQuarters := ceilFraction(n, 3, 4)

	return []Bucket{
		newBucket(StageBuildProposal, clone(deals[:half])),
		newBucket(StagePitchProposal, clone(deals[half:threeQuarters])),
		newBucket(StageNegotiation, clone(deals[threeQuarters:])),
	}
}

// ceil(n*num/den) for non-negative n
func ceilFraction(n, num, den int) int {
	return (n*num + den - 1) / den
}

// BucketByStatus groups deals into the four known statuses in display order.
// Deals carrying any other status are dropped.
func BucketByStatus(deals []models.Deal) []Bucket {
	grouped := make(map[models.DealStatus][]models.Deal, len(models.DealStatuses))
	for _, d := range deals {
		grouped[d.Status] = append(grouped[d.Status], d)
	}

	buckets := make([]Bucket, 0, len(models.DealStatuses))
	for _, status := range models.DealStatuses {
		members := grouped[status]
		if members == nil {
			members = []models.Deal{}
		}
		buckets = append(buckets, newBucket(string(status), members))
	}
	return buckets
}

func clone(deals []models.Deal) []models.Deal {
	out := make([]models.Deal, len(deals))
	copy(out, deals)
	return out
}
