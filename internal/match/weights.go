package match

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultThreshold is the minimum score a package needs to be
// recommended.
const DefaultThreshold = 50

// Weights holds the per-dimension point budgets plus the decay and
// credit knobs. Dimension weights are renormalized to a 100-point
// total before scoring.
type Weights struct {
	Budget      float64 `json:"budget"`
	Duration    float64 `json:"duration"`
	Style       float64 `json:"style"`
	Destination float64 `json:"destination"`
	Rating      float64 `json:"rating"`

	// BudgetGapRatio sets where the budget score hits zero, as a
	// multiple of the traveler's budget max beyond its edge.
	BudgetGapRatio float64 `json:"budget_gap_ratio"`
	// DurationTolerance is the fraction of the requested length that
	// still counts as a full duration match.
	DurationTolerance float64 `json:"duration_tolerance"`
	// RegionCredit is the destination credit for a same-region match.
	RegionCredit float64 `json:"region_credit"`
}

// DefaultWeights returns the stock scoring table.
func DefaultWeights() Weights {
	return Weights{
		Budget:      30,
		Duration:    20,
		Style:       25,
		Destination: 15,
		Rating:      10,

		BudgetGapRatio:    1.0,
		DurationTolerance: 0.2,
		RegionCredit:      0.7,
	}
}

// LoadWeights reads a JSON weights file over the defaults, so a
// partial file tunes single dimensions without restating the rest.
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights()
	b, err := os.ReadFile(path)
	if err != nil {
		return w, err
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return w, fmt.Errorf("weights file %s: %w", path, err)
	}
	return w.normalized(), nil
}

// normalized rescales the dimension weights to sum to 100. A
// non-positive total falls back to the defaults.
func (w Weights) normalized() Weights {
	total := w.Budget + w.Duration + w.Style + w.Destination + w.Rating
	if total <= 0 {
		return DefaultWeights()
	}
	if total != 100 {
		f := 100 / total
		w.Budget *= f
		w.Duration *= f
		w.Style *= f
		w.Destination *= f
		w.Rating *= f
	}
	return w
}
