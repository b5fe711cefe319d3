// Package match scores travel packages against a traveler profile and
// picks the recommendations worth showing.
package match

import (
	"math"
	"sort"
	"strings"

	"github.com/tripagent/tripagent/internal/catalog"
	"github.com/tripagent/tripagent/internal/profile"
)

// SubScore is one dimension's contribution to a package score.
type SubScore struct {
	Dimension string  `json:"dimension"`
	Points    float64 `json:"points"`
	Max       float64 `json:"max"`
}

// ScoredMatch is a package with its 0-100 compatibility score and the
// per-dimension breakdown behind it.
type ScoredMatch struct {
	Package   catalog.Package `json:"package"`
	Score     int             `json:"score"`
	SubScores []SubScore      `json:"breakdown"`
}

// Scorer scores packages with a fixed weights table.
type Scorer struct {
	weights Weights
}

// NewScorer builds a scorer. The table is renormalized so a perfect
// match always scores 100.
func NewScorer(w Weights) *Scorer {
	return &Scorer{weights: w.normalized()}
}

// Score rates one package against the profile. Unspecified dimensions
// award their full weight, so an empty profile ranks purely by rating.
func (s *Scorer) Score(p *profile.Profile, pkg catalog.Package) ScoredMatch {
	subs := []SubScore{
		s.budgetScore(p.Budget, pkg),
		s.durationScore(p.Duration, pkg),
		s.styleScore(p.Style, pkg),
		s.destinationScore(p.Destination, pkg),
		s.ratingScore(pkg),
	}
	total := 0.0
	for _, ss := range subs {
		total += ss.Points
	}
	score := int(math.Round(total))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return ScoredMatch{Package: pkg, Score: score, SubScores: subs}
}

// Recommend filters the catalog by group capacity, scores the rest,
// and returns everything at or above threshold, best first. Ties break
// by rating, then catalog order. An empty result is a normal outcome.
func (s *Scorer) Recommend(p *profile.Profile, pkgs []catalog.Package, threshold int) []ScoredMatch {
	var out []ScoredMatch
	for _, pkg := range pkgs {
		if p.Group.Specified() && !pkg.FitsGroup(p.Group.Size) {
			continue
		}
		m := s.Score(p, pkg)
		if m.Score < threshold {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Package.Rating > out[j].Package.Rating
	})
	return out
}

func (s *Scorer) budgetScore(b profile.Budget, pkg catalog.Package) SubScore {
	ss := SubScore{Dimension: "budget", Max: s.weights.Budget}
	if !b.Specified() {
		ss.Points = ss.Max
		return ss
	}
	// Any range overlap is a full match.
	if b.Max >= pkg.PriceMin && pkg.PriceMax >= b.Min {
		ss.Points = ss.Max
		return ss
	}
	gap := pkg.PriceMin - b.Max
	if gap < 0 {
		gap = b.Min - pkg.PriceMax
	}
	reach := s.weights.BudgetGapRatio * b.Max
	if reach <= 0 || gap >= reach {
		return ss
	}
	ss.Points = ss.Max * (1 - gap/reach)
	return ss
}

func (s *Scorer) durationScore(d profile.Duration, pkg catalog.Package) SubScore {
	ss := SubScore{Dimension: "duration", Max: s.weights.Duration}
	if !d.Specified() {
		ss.Points = ss.Max
		return ss
	}
	want := float64(d.Days)
	diff := math.Abs(float64(pkg.DurationDays) - want)
	tol := s.weights.DurationTolerance * want
	switch {
	case diff <= tol:
		ss.Points = ss.Max
	case diff >= want:
		// zero: package at double the requested length or near zero
	default:
		ss.Points = ss.Max * (want - diff) / (want - tol)
	}
	return ss
}

// styleAffinity gives partial credit between related styles when the
// exact one is missing from a package.
var styleAffinity = func() map[profile.Style]map[profile.Style]float64 {
	pairs := []struct {
		a, b   profile.Style
		credit float64
	}{
		{profile.StyleRomantic, profile.StyleLuxury, 0.6},
		{profile.StyleRomantic, profile.StyleRelaxation, 0.5},
		{profile.StyleLuxury, profile.StyleRelaxation, 0.5},
		{profile.StyleAdventure, profile.StyleCultural, 0.4},
		{profile.StyleBudget, profile.StyleAdventure, 0.4},
		{profile.StyleFamily, profile.StyleRelaxation, 0.4},
		{profile.StyleCultural, profile.StyleFamily, 0.3},
	}
	m := make(map[profile.Style]map[profile.Style]float64)
	add := func(a, b profile.Style, credit float64) {
		if m[a] == nil {
			m[a] = make(map[profile.Style]float64)
		}
		m[a][b] = credit
	}
	for _, p := range pairs {
		add(p.a, p.b, p.credit)
		add(p.b, p.a, p.credit)
	}
	return m
}()

func (s *Scorer) styleScore(sc profile.StyleChoice, pkg catalog.Package) SubScore {
	ss := SubScore{Dimension: "style", Max: s.weights.Style}
	if !sc.Specified() || sc.Value == profile.StyleUnspecified {
		ss.Points = ss.Max
		return ss
	}
	if pkg.Styles.Has(string(sc.Value)) {
		ss.Points = ss.Max
		return ss
	}
	best := 0.0
	for _, raw := range pkg.Styles {
		if credit := styleAffinity[sc.Value][profile.Style(strings.ToLower(raw))]; credit > best {
			best = credit
		}
	}
	ss.Points = ss.Max * best
	return ss
}

func (s *Scorer) destinationScore(d profile.Destination, pkg catalog.Package) SubScore {
	ss := SubScore{Dimension: "destination", Max: s.weights.Destination}
	if !d.Specified() {
		ss.Points = ss.Max
		return ss
	}
	want := strings.ToLower(strings.TrimSpace(d.Region))
	have := strings.ToLower(strings.TrimSpace(pkg.Destination))
	if want == "" || have == "" {
		ss.Points = ss.Max
		return ss
	}
	if strings.Contains(have, want) || strings.Contains(want, have) {
		ss.Points = ss.Max
		return ss
	}
	if r := regionOf(want); r != "" && r == regionOf(have) {
		ss.Points = ss.Max * s.weights.RegionCredit
	}
	return ss
}

func (s *Scorer) ratingScore(pkg catalog.Package) SubScore {
	ss := SubScore{Dimension: "rating", Max: s.weights.Rating}
	ss.Points = ss.Max * pkg.Rating / 5
	return ss
}
