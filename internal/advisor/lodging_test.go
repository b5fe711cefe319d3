package advisor

import (
	"strings"
	"testing"

	"github.com/tripagent/tripagent/internal/profile"
)

func joined(lines []string) string { return strings.Join(lines, "\n") }

func TestLodgingBudgetTier(t *testing.T) {
	p := profile.NewProfile()
	p.Budget = profile.Budget{Min: 0, Max: 800, Source: profile.SourcePattern}

	got := joined(LodgingSuggestions(p))
	if !strings.Contains(got, "Budget-friendly") {
		t.Errorf("expected budget section, got:\n%s", got)
	}
}

func TestLodgingLuxuryFromRange(t *testing.T) {
	p := profile.NewProfile()
	p.Budget = profile.Budget{Min: 4000, Max: 8000, Source: profile.SourcePattern}

	got := joined(LodgingSuggestions(p))
	if !strings.Contains(got, "Luxury accommodations") {
		t.Errorf("expected luxury section, got:\n%s", got)
	}
}

func TestLodgingLuxuryFromStyle(t *testing.T) {
	p := profile.NewProfile()
	p.Budget = profile.Budget{Min: 800, Max: 2000, Source: profile.SourcePattern}
	p.Style = profile.StyleChoice{Value: profile.StyleLuxury, Source: profile.SourceAI}

	got := joined(LodgingSuggestions(p))
	if !strings.Contains(got, "Luxury accommodations") {
		t.Errorf("style choice should outrank the mid-range budget, got:\n%s", got)
	}
}

func TestLodgingDefaultsToMidRange(t *testing.T) {
	got := joined(LodgingSuggestions(profile.NewProfile()))
	if !strings.Contains(got, "Mid-range options") {
		t.Errorf("expected mid-range section, got:\n%s", got)
	}
	if strings.Contains(got, "Extended stay") {
		t.Error("no extended-stay tips without a duration")
	}
}

func TestLodgingStyleSection(t *testing.T) {
	p := profile.NewProfile()
	p.Style = profile.StyleChoice{Value: profile.StyleAdventure, Source: profile.SourcePattern}

	got := joined(LodgingSuggestions(p))
	if !strings.Contains(got, "Adventure-focused") {
		t.Errorf("expected adventure section, got:\n%s", got)
	}
}

func TestLodgingExtendedStay(t *testing.T) {
	p := profile.NewProfile()
	p.Duration = profile.Duration{Days: 10, Source: profile.SourcePattern}

	got := joined(LodgingSuggestions(p))
	if !strings.Contains(got, "Extended stay tips") {
		t.Errorf("expected extended-stay tips for 10 days, got:\n%s", got)
	}

	p.Duration.Days = 5
	if strings.Contains(joined(LodgingSuggestions(p)), "Extended stay tips") {
		t.Error("no extended-stay tips under a week")
	}
}
