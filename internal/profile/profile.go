// Package profile turns free-text trip answers into a typed traveler
// profile the scorer consumes.
package profile

import "fmt"

// Category identifies one of the six profile dimensions.
type Category string

const (
	CategoryDestination Category = "destination"
	CategoryBudget      Category = "budget"
	CategoryDuration    Category = "duration"
	CategoryStyle       Category = "style"
	CategoryGroup       Category = "group"
	CategorySeason      Category = "season"
)

// Categories lists the six dimensions in interview order.
var Categories = []Category{
	CategoryDestination,
	CategoryBudget,
	CategoryDuration,
	CategoryStyle,
	CategoryGroup,
	CategorySeason,
}

// Question returns the default interview question for the category.
func (c Category) Question() string {
	switch c {
	case CategoryDestination:
		return "Where would you like to travel?"
	case CategoryBudget:
		return "What is your budget range for this trip?"
	case CategoryDuration:
		return "How many days are you planning to travel?"
	case CategoryStyle:
		return "What type of travel experience are you looking for? (adventure, relaxation, cultural, romantic, ...)"
	case CategoryGroup:
		return "How many people will be traveling?"
	case CategorySeason:
		return "When are you planning to go?"
	}
	return fmt.Sprintf("Tell me about your %s.", c)
}

// Label returns the human-readable name used in summaries.
func (c Category) Label() string {
	switch c {
	case CategoryDestination:
		return "Destination"
	case CategoryBudget:
		return "Budget"
	case CategoryDuration:
		return "Duration"
	case CategoryStyle:
		return "Travel style"
	case CategoryGroup:
		return "Group"
	case CategorySeason:
		return "Season"
	}
	return string(c)
}

// Source records which strategy produced a dimension's value.
type Source string

const (
	SourceAI          Source = "ai"
	SourcePattern     Source = "pattern"
	SourceUnspecified Source = "unspecified"
)

// Specified reports whether the source carries an actual extracted value.
func (s Source) Specified() bool {
	return s == SourceAI || s == SourcePattern
}

// Style is the canonical travel style vocabulary.
type Style string

const (
	StyleRomantic    Style = "romantic"
	StyleAdventure   Style = "adventure"
	StyleRelaxation  Style = "relaxation"
	StyleCultural    Style = "cultural"
	StyleFamily      Style = "family"
	StyleBudget      Style = "budget"
	StyleLuxury      Style = "luxury"
	StyleUnspecified Style = "unspecified"
)

// Group composition labels.
const (
	CompSolo   = "solo"
	CompCouple = "couple"
	CompFamily = "family"
	CompGroup  = "group"
)

// Destination is a free-text region, country, or city preference.
type Destination struct {
	Region string `json:"region,omitempty"`
	Source Source `json:"source"`
}

// Budget is a price range in a single currency unit. Min 0 with a
// positive Max means "up to Max".
type Budget struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Source Source  `json:"source"`
}

// Duration is the trip length in days.
type Duration struct {
	Days   int    `json:"days"`
	Source Source `json:"source"`
}

// StyleChoice is the traveler's chosen style.
type StyleChoice struct {
	Value  Style  `json:"value"`
	Source Source `json:"source"`
}

// Group is the party size plus an optional composition label.
type Group struct {
	Size   int    `json:"size"`
	Comp   string `json:"comp,omitempty"`
	Source Source `json:"source"`
}

// Season is a free-text travel window token like "summer" or "winter".
type Season struct {
	Name   string `json:"name,omitempty"`
	Source Source `json:"source"`
}

func (d Destination) Specified() bool { return d.Source.Specified() }
func (b Budget) Specified() bool      { return b.Source.Specified() }
func (d Duration) Specified() bool    { return d.Source.Specified() }
func (s StyleChoice) Specified() bool { return s.Source.Specified() }
func (g Group) Specified() bool       { return g.Source.Specified() }
func (s Season) Specified() bool      { return s.Source.Specified() }

func (d Destination) String() string {
	if !d.Specified() {
		return "not specified"
	}
	return d.Region
}

func (b Budget) String() string {
	if !b.Specified() {
		return "not specified"
	}
	if b.Min == 0 && b.Max > 0 {
		return fmt.Sprintf("up to %.0f", b.Max)
	}
	if b.Min == b.Max {
		return fmt.Sprintf("around %.0f", b.Max)
	}
	return fmt.Sprintf("%.0f-%.0f", b.Min, b.Max)
}

func (d Duration) String() string {
	if !d.Specified() {
		return "not specified"
	}
	if d.Days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", d.Days)
}

func (s StyleChoice) String() string {
	if !s.Specified() {
		return "not specified"
	}
	return string(s.Value)
}

func (g Group) String() string {
	if !g.Specified() {
		return "not specified"
	}
	if g.Comp != "" {
		return fmt.Sprintf("%d (%s)", g.Size, g.Comp)
	}
	return fmt.Sprintf("%d", g.Size)
}

func (s Season) String() string {
	if !s.Specified() {
		return "not specified"
	}
	return s.Name
}

// Profile is the six-dimension traveler profile. Every dimension is
// always present; unknown ones carry SourceUnspecified.
type Profile struct {
	Destination Destination `json:"destination"`
	Budget      Budget      `json:"budget"`
	Duration    Duration    `json:"duration"`
	Style       StyleChoice `json:"style"`
	Group       Group       `json:"group"`
	Season      Season      `json:"season"`
}

// NewProfile returns a profile with every dimension unspecified.
func NewProfile() *Profile {
	return &Profile{
		Destination: Destination{Source: SourceUnspecified},
		Budget:      Budget{Source: SourceUnspecified},
		Duration:    Duration{Source: SourceUnspecified},
		Style:       StyleChoice{Value: StyleUnspecified, Source: SourceUnspecified},
		Group:       Group{Source: SourceUnspecified},
		Season:      Season{Source: SourceUnspecified},
	}
}

// Answer is one normalized dimension value. Exactly one typed field is
// set, matching Category; an unspecified answer sets none.
type Answer struct {
	Category Category `json:"category"`
	Source   Source   `json:"source"`
	Raw      string   `json:"raw,omitempty"`

	Destination *Destination `json:"destination,omitempty"`
	Budget      *Budget      `json:"budget,omitempty"`
	Duration    *Duration    `json:"duration,omitempty"`
	Style       *StyleChoice `json:"style,omitempty"`
	Group       *Group       `json:"group,omitempty"`
	Season      *Season      `json:"season,omitempty"`
}

// Apply replaces one dimension of the profile with the answer's value,
// wholesale. An unspecified answer resets the dimension.
func (p *Profile) Apply(a Answer) {
	switch a.Category {
	case CategoryDestination:
		p.Destination = Destination{Source: SourceUnspecified}
		if a.Destination != nil {
			p.Destination = *a.Destination
		}
		p.Destination.Source = a.Source
	case CategoryBudget:
		p.Budget = Budget{Source: SourceUnspecified}
		if a.Budget != nil {
			p.Budget = *a.Budget
		}
		p.Budget.Source = a.Source
	case CategoryDuration:
		p.Duration = Duration{Source: SourceUnspecified}
		if a.Duration != nil {
			p.Duration = *a.Duration
		}
		p.Duration.Source = a.Source
	case CategoryStyle:
		p.Style = StyleChoice{Value: StyleUnspecified, Source: SourceUnspecified}
		if a.Style != nil {
			p.Style = *a.Style
		}
		p.Style.Source = a.Source
	case CategoryGroup:
		p.Group = Group{Source: SourceUnspecified}
		if a.Group != nil {
			p.Group = *a.Group
		}
		p.Group.Source = a.Source
	case CategorySeason:
		p.Season = Season{Source: SourceUnspecified}
		if a.Season != nil {
			p.Season = *a.Season
		}
		p.Season.Source = a.Source
	}
}

// Unspecified returns the categories still without a value, in
// interview order.
func (p *Profile) Unspecified() []Category {
	var missing []Category
	for _, c := range Categories {
		if !p.specified(c) {
			missing = append(missing, c)
		}
	}
	return missing
}

func (p *Profile) specified(c Category) bool {
	switch c {
	case CategoryDestination:
		return p.Destination.Specified()
	case CategoryBudget:
		return p.Budget.Specified()
	case CategoryDuration:
		return p.Duration.Specified()
	case CategoryStyle:
		return p.Style.Specified()
	case CategoryGroup:
		return p.Group.Specified()
	case CategorySeason:
		return p.Season.Specified()
	}
	return false
}

// Display returns the summary string for one dimension.
func (p *Profile) Display(c Category) string {
	switch c {
	case CategoryDestination:
		return p.Destination.String()
	case CategoryBudget:
		return p.Budget.String()
	case CategoryDuration:
		return p.Duration.String()
	case CategoryStyle:
		return p.Style.String()
	case CategoryGroup:
		return p.Group.String()
	case CategorySeason:
		return p.Season.String()
	}
	return ""
}
