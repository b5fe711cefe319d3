package profile

import (
	"reflect"
	"testing"
)

func TestNewProfileAllUnspecified(t *testing.T) {
	p := NewProfile()
	missing := p.Unspecified()
	if !reflect.DeepEqual(missing, Categories) {
		t.Errorf("Unspecified() = %v, want all categories", missing)
	}
	for _, c := range Categories {
		if got := p.Display(c); got != "not specified" {
			t.Errorf("Display(%s) = %q", c, got)
		}
	}
}

func TestApplyStampsSource(t *testing.T) {
	p := NewProfile()
	p.Apply(Answer{
		Category:    CategoryDestination,
		Source:      SourceAI,
		Destination: &Destination{Region: "Paris"},
	})
	if p.Destination.Region != "Paris" {
		t.Errorf("region = %q", p.Destination.Region)
	}
	if p.Destination.Source != SourceAI {
		t.Errorf("source = %s, want ai", p.Destination.Source)
	}
	if !p.Destination.Specified() {
		t.Error("destination should be specified")
	}
}

func TestApplyReplacesWholesale(t *testing.T) {
	p := NewProfile()
	p.Apply(Answer{
		Category: CategoryBudget,
		Source:   SourcePattern,
		Budget:   &Budget{Min: 1000, Max: 2000},
	})
	p.Apply(Answer{
		Category: CategoryBudget,
		Source:   SourcePattern,
		Budget:   &Budget{Min: 0, Max: 500},
	})
	if p.Budget.Min != 0 || p.Budget.Max != 500 {
		t.Errorf("budget = %v-%v, want replacement to win", p.Budget.Min, p.Budget.Max)
	}
}

func TestApplyUnspecifiedResets(t *testing.T) {
	p := NewProfile()
	p.Apply(Answer{
		Category: CategoryGroup,
		Source:   SourcePattern,
		Group:    &Group{Size: 4, Comp: CompFamily},
	})
	p.Apply(Answer{Category: CategoryGroup, Source: SourceUnspecified})

	if p.Group.Specified() {
		t.Error("group should be reset to unspecified")
	}
	if p.Group.Size != 0 {
		t.Errorf("size = %d, want 0 after reset", p.Group.Size)
	}
}

func TestUnspecifiedKeepsInterviewOrder(t *testing.T) {
	p := NewProfile()
	p.Apply(Answer{Category: CategoryBudget, Source: SourcePattern, Budget: &Budget{Min: 500, Max: 900}})
	p.Apply(Answer{Category: CategorySeason, Source: SourcePattern, Season: &Season{Name: "summer"}})

	want := []Category{CategoryDestination, CategoryDuration, CategoryStyle, CategoryGroup}
	if got := p.Unspecified(); !reflect.DeepEqual(got, want) {
		t.Errorf("Unspecified() = %v, want %v", got, want)
	}
}

func TestBudgetString(t *testing.T) {
	tests := []struct {
		name string
		b    Budget
		want string
	}{
		{"unspecified", Budget{Source: SourceUnspecified}, "not specified"},
		{"up to", Budget{Max: 2000, Source: SourcePattern}, "up to 2000"},
		{"around", Budget{Min: 2500, Max: 2500, Source: SourceAI}, "around 2500"},
		{"range", Budget{Min: 1500, Max: 3000, Source: SourcePattern}, "1500-3000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDimensionStrings(t *testing.T) {
	if got := (Duration{Days: 1, Source: SourcePattern}).String(); got != "1 day" {
		t.Errorf("singular day: %q", got)
	}
	if got := (Duration{Days: 7, Source: SourcePattern}).String(); got != "7 days" {
		t.Errorf("plural days: %q", got)
	}
	if got := (Group{Size: 2, Comp: CompCouple, Source: SourcePattern}).String(); got != "2 (couple)" {
		t.Errorf("group with comp: %q", got)
	}
	if got := (Group{Size: 3, Source: SourcePattern}).String(); got != "3" {
		t.Errorf("group without comp: %q", got)
	}
	if got := (StyleChoice{Value: StyleRomantic, Source: SourceAI}).String(); got != "romantic" {
		t.Errorf("style: %q", got)
	}
}
