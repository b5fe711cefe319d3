package match

import (
	"math"
	"testing"

	"github.com/tripagent/tripagent/internal/catalog"
	"github.com/tripagent/tripagent/internal/profile"
)

func subPoints(t *testing.T, m ScoredMatch, dim string) float64 {
	t.Helper()
	for _, ss := range m.SubScores {
		if ss.Dimension == dim {
			return ss.Points
		}
	}
	t.Fatalf("no %q sub-score in %+v", dim, m.SubScores)
	return 0
}

func approx(got, want float64) bool {
	return math.Abs(got-want) < 0.01
}

func TestScoreBreakdown(t *testing.T) {
	p := profile.NewProfile()
	p.Budget = profile.Budget{Min: 2000, Max: 3000, Source: profile.SourcePattern}
	p.Duration = profile.Duration{Days: 10, Source: profile.SourcePattern}
	p.Style = profile.StyleChoice{Value: profile.StyleRomantic, Source: profile.SourcePattern}
	p.Destination = profile.Destination{Region: "Europe", Source: profile.SourcePattern}

	pkg := catalog.Package{
		Name:         "Alpine Escape",
		Destination:  "Zurich, Switzerland",
		PriceMin:     2000,
		PriceMax:     5000,
		DurationDays: 21,
		Rating:       4.1,
		Styles:       catalog.StyleList{"romantic", "luxury"},
	}

	m := NewScorer(DefaultWeights()).Score(p, pkg)

	if got := subPoints(t, m, "budget"); !approx(got, 30) {
		t.Errorf("budget = %v, want 30 for overlapping ranges", got)
	}
	if got := subPoints(t, m, "duration"); !approx(got, 0) {
		t.Errorf("duration = %v, want 0 at double the requested length", got)
	}
	if got := subPoints(t, m, "style"); !approx(got, 25) {
		t.Errorf("style = %v, want 25 for a direct style match", got)
	}
	if got := subPoints(t, m, "destination"); !approx(got, 10.5) {
		t.Errorf("destination = %v, want 10.5 region credit", got)
	}
	if got := subPoints(t, m, "rating"); !approx(got, 8.2) {
		t.Errorf("rating = %v, want 8.2 for a 4.1 rating", got)
	}
	if m.Score != 74 {
		t.Errorf("score = %d, want 74", m.Score)
	}
}

func TestScoreAllUnspecified(t *testing.T) {
	s := NewScorer(DefaultWeights())
	p := profile.NewProfile()

	perfect := catalog.Package{Name: "x", Destination: "y", PriceMin: 1, PriceMax: 2, DurationDays: 7, Rating: 5.0}
	if m := s.Score(p, perfect); m.Score != 100 {
		t.Errorf("score = %d, want 100 at rating 5.0", m.Score)
	}

	good := perfect
	good.Rating = 4.0
	if m := s.Score(p, good); m.Score != 98 {
		t.Errorf("score = %d, want 90 + 2*rating = 98", m.Score)
	}
}

func TestBudgetDecay(t *testing.T) {
	s := NewScorer(DefaultWeights())
	pkgAt := func(min, max float64) catalog.Package {
		return catalog.Package{Name: "x", Destination: "y", PriceMin: min, PriceMax: max, DurationDays: 7, Rating: 4}
	}
	p := profile.NewProfile()
	p.Budget = profile.Budget{Min: 0, Max: 1000, Source: profile.SourcePattern}

	if got := subPoints(t, s.Score(p, pkgAt(500, 900)), "budget"); !approx(got, 30) {
		t.Errorf("overlap = %v, want full", got)
	}
	// Gap of half the budget max halves the points.
	if got := subPoints(t, s.Score(p, pkgAt(1500, 2000)), "budget"); !approx(got, 15) {
		t.Errorf("half gap = %v, want 15", got)
	}
	// Beyond roughly double the budget there is nothing left.
	if got := subPoints(t, s.Score(p, pkgAt(2500, 3000)), "budget"); !approx(got, 0) {
		t.Errorf("far gap = %v, want 0", got)
	}
}

func TestBudgetDecayBelowRange(t *testing.T) {
	s := NewScorer(DefaultWeights())
	p := profile.NewProfile()
	p.Budget = profile.Budget{Min: 4000, Max: 6000, Source: profile.SourcePattern}

	cheap := catalog.Package{Name: "x", Destination: "y", PriceMin: 500, PriceMax: 1000, DurationDays: 7, Rating: 4}
	got := subPoints(t, s.Score(p, cheap), "budget")
	want := 30 * (1 - 3000.0/6000.0)
	if !approx(got, want) {
		t.Errorf("below range = %v, want %v", got, want)
	}
}

func TestDurationDecay(t *testing.T) {
	s := NewScorer(DefaultWeights())
	p := profile.NewProfile()
	p.Duration = profile.Duration{Days: 10, Source: profile.SourcePattern}
	pkgDays := func(d int) catalog.Package {
		return catalog.Package{Name: "x", Destination: "y", PriceMin: 1, PriceMax: 2, DurationDays: d, Rating: 4}
	}

	if got := subPoints(t, s.Score(p, pkgDays(12)), "duration"); !approx(got, 20) {
		t.Errorf("within tolerance = %v, want full", got)
	}
	if got := subPoints(t, s.Score(p, pkgDays(13)), "duration"); !approx(got, 17.5) {
		t.Errorf("3 days off = %v, want 17.5", got)
	}
	if got := subPoints(t, s.Score(p, pkgDays(20)), "duration"); !approx(got, 0) {
		t.Errorf("double length = %v, want 0", got)
	}
	if got := subPoints(t, s.Score(p, pkgDays(1)), "duration"); !approx(got, 2.5) {
		t.Errorf("near zero length = %v, want 2.5", got)
	}
}

func TestStyleAffinity(t *testing.T) {
	s := NewScorer(DefaultWeights())
	pkgStyles := func(styles ...string) catalog.Package {
		return catalog.Package{Name: "x", Destination: "y", PriceMin: 1, PriceMax: 2, DurationDays: 7, Rating: 4, Styles: styles}
	}
	withStyle := func(v profile.Style) *profile.Profile {
		p := profile.NewProfile()
		p.Style = profile.StyleChoice{Value: v, Source: profile.SourcePattern}
		return p
	}

	tests := []struct {
		name   string
		style  profile.Style
		pkg    catalog.Package
		points float64
	}{
		{"exact match", profile.StyleRomantic, pkgStyles("romantic", "cultural"), 25},
		{"case-insensitive match", profile.StyleLuxury, pkgStyles("Luxury"), 25},
		{"romantic to luxury", profile.StyleRomantic, pkgStyles("luxury"), 15},
		{"romantic to relaxation", profile.StyleRomantic, pkgStyles("relaxation"), 12.5},
		{"best affinity wins", profile.StyleRomantic, pkgStyles("relaxation", "luxury"), 15},
		{"budget to adventure", profile.StyleBudget, pkgStyles("adventure", "cultural"), 10},
		{"disjoint", profile.StyleRomantic, pkgStyles("adventure"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := subPoints(t, s.Score(withStyle(tt.style), tt.pkg), "style")
			if !approx(got, tt.points) {
				t.Errorf("style points = %v, want %v", got, tt.points)
			}
		})
	}
}

func TestDestinationMatch(t *testing.T) {
	s := NewScorer(DefaultWeights())
	pkgIn := func(dest string) catalog.Package {
		return catalog.Package{Name: "x", Destination: dest, PriceMin: 1, PriceMax: 2, DurationDays: 7, Rating: 4}
	}
	withDest := func(region string) *profile.Profile {
		p := profile.NewProfile()
		p.Destination = profile.Destination{Region: region, Source: profile.SourcePattern}
		return p
	}

	tests := []struct {
		name   string
		want   string
		pkg    catalog.Package
		points float64
	}{
		{"city substring", "Paris", pkgIn("Paris, France"), 15},
		{"country substring", "france", pkgIn("Paris, France"), 15},
		{"same region", "Italy", pkgIn("Paris, France"), 10.5},
		{"region name", "Europe", pkgIn("Zurich, Switzerland"), 10.5},
		{"different region", "Tokyo", pkgIn("Paris, France"), 0},
		{"unknown place", "Atlantis", pkgIn("Paris, France"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := subPoints(t, s.Score(withDest(tt.want), tt.pkg), "destination")
			if !approx(got, tt.points) {
				t.Errorf("destination points = %v, want %v", got, tt.points)
			}
		})
	}
}

func TestRegionOf(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Zurich, Switzerland", "europe"},
		{"Tokyo", "asia"},
		{"Hong Kong", "asia"},
		{"New York, USA", "north america"},
		{"South America", "south america"},
		{"somewhere", ""},
		// word-aligned: "usa" inside another word must not count
		{"Jerusalem", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := regionOf(tt.in); got != tt.want {
			t.Errorf("regionOf(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRecommendFiltersAndSorts(t *testing.T) {
	s := NewScorer(DefaultWeights())
	p := profile.NewProfile()

	pkgs := []catalog.Package{
		{ID: "a", Name: "a", Destination: "x", PriceMin: 1, PriceMax: 2, DurationDays: 7, Rating: 4.8},
		{ID: "b", Name: "b", Destination: "x", PriceMin: 1, PriceMax: 2, DurationDays: 7, Rating: 5.0},
		{ID: "c", Name: "c", Destination: "x", PriceMin: 1, PriceMax: 2, DurationDays: 7, Rating: 3.0},
	}

	got := s.Recommend(p, pkgs, DefaultThreshold)
	if len(got) != 3 {
		t.Fatalf("got %d matches, want 3", len(got))
	}
	// a and b both round to 100; the higher rating leads.
	if got[0].Package.ID != "b" || got[1].Package.ID != "a" || got[2].Package.ID != "c" {
		t.Errorf("order = %s, %s, %s", got[0].Package.ID, got[1].Package.ID, got[2].Package.ID)
	}
}

func TestRecommendThreshold(t *testing.T) {
	s := NewScorer(DefaultWeights())
	p := profile.NewProfile()

	pkgs := []catalog.Package{
		{ID: "hi", Name: "hi", Destination: "x", PriceMin: 1, PriceMax: 2, DurationDays: 7, Rating: 5.0},
		{ID: "lo", Name: "lo", Destination: "x", PriceMin: 1, PriceMax: 2, DurationDays: 7, Rating: 1.0},
	}

	got := s.Recommend(p, pkgs, 95)
	if len(got) != 1 || got[0].Package.ID != "hi" {
		t.Fatalf("got %+v, want only the high scorer", got)
	}

	if got := s.Recommend(p, pkgs, 101); len(got) != 0 {
		t.Errorf("expected empty result above max score, got %d", len(got))
	}
}

func TestRecommendCapacityFilter(t *testing.T) {
	s := NewScorer(DefaultWeights())

	pkgs := []catalog.Package{
		{ID: "couples", Name: "c", Destination: "x", PriceMin: 1, PriceMax: 2, DurationDays: 7, Rating: 5, MinGuests: 2, MaxGuests: 2},
		{ID: "open", Name: "o", Destination: "x", PriceMin: 1, PriceMax: 2, DurationDays: 7, Rating: 4},
	}

	family := profile.NewProfile()
	family.Group = profile.Group{Size: 5, Comp: profile.CompFamily, Source: profile.SourcePattern}
	got := s.Recommend(family, pkgs, 0)
	if len(got) != 1 || got[0].Package.ID != "open" {
		t.Fatalf("family of 5 should skip the couples-only package, got %+v", got)
	}

	// Unspecified group passes everything.
	if got := s.Recommend(profile.NewProfile(), pkgs, 0); len(got) != 2 {
		t.Errorf("unspecified group filtered to %d, want 2", len(got))
	}
}

func TestRecommendKeepsCatalogOrderOnFullTie(t *testing.T) {
	s := NewScorer(DefaultWeights())
	p := profile.NewProfile()

	pkgs := []catalog.Package{
		{ID: "first", Name: "f", Destination: "x", PriceMin: 1, PriceMax: 2, DurationDays: 7, Rating: 4.2},
		{ID: "second", Name: "s", Destination: "x", PriceMin: 1, PriceMax: 2, DurationDays: 7, Rating: 4.2},
	}

	got := s.Recommend(p, pkgs, 0)
	if got[0].Package.ID != "first" || got[1].Package.ID != "second" {
		t.Errorf("full tie should keep catalog order, got %s then %s", got[0].Package.ID, got[1].Package.ID)
	}
}
