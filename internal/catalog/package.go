// Package catalog defines the travel package model, its CSV codec, and the
// SQLite-backed store recommendations are drawn from.
package catalog

import (
	"fmt"
	"strings"
)

// Package represents one bookable travel package in the catalog.
type Package struct {
	ID           string    `csv:"id" json:"id"`
	Name         string    `csv:"name" json:"name"`
	Destination  string    `csv:"destination" json:"destination"`
	PriceMin     float64   `csv:"price_min" json:"price_min"`
	PriceMax     float64   `csv:"price_max" json:"price_max"`
	DurationDays int       `csv:"duration_days" json:"duration_days"`
	Rating       float64   `csv:"rating" json:"rating"`
	Styles       StyleList `csv:"styles" json:"styles,omitempty"`
	MinGuests    int       `csv:"min_guests" json:"min_guests,omitempty"`
	MaxGuests    int       `csv:"max_guests" json:"max_guests,omitempty"`
	BestSeason   string    `csv:"best_season" json:"best_season,omitempty"`
	Activities   string    `csv:"activities" json:"activities,omitempty"`
	Includes     string    `csv:"includes" json:"includes,omitempty"`
}

// StyleList holds the travel styles a package serves. CSV renders it as a
// pipe-separated list, JSON as a plain array.
type StyleList []string

// MarshalCSV implements the gocsv field marshaller.
func (s StyleList) MarshalCSV() (string, error) {
	return strings.Join(s, "|"), nil
}

// UnmarshalCSV implements the gocsv field unmarshaller. Entries are
// lowercased and trimmed; empties are dropped.
func (s *StyleList) UnmarshalCSV(field string) error {
	*s = nil
	for _, part := range strings.Split(field, "|") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			*s = append(*s, part)
		}
	}
	return nil
}

// Has reports whether the list contains the given style, ignoring case.
func (s StyleList) Has(style string) bool {
	style = strings.ToLower(strings.TrimSpace(style))
	for _, v := range s {
		if v == style {
			return true
		}
	}
	return false
}

// FitsGroup reports whether a party of the given size can book the package.
// Size 0 means the group size is unknown and always fits. MaxGuests 0 means
// the package has no upper bound.
func (p *Package) FitsGroup(size int) bool {
	if size <= 0 {
		return true
	}
	if p.MinGuests > 0 && size < p.MinGuests {
		return false
	}
	if p.MaxGuests > 0 && size > p.MaxGuests {
		return false
	}
	return true
}

// Validate checks the fields scoring depends on. Rating is clamped to the
// 0-5 scale rather than rejected; everything else fails the record.
func (p *Package) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("package %s: empty name", p.ID)
	}
	if strings.TrimSpace(p.Destination) == "" {
		return fmt.Errorf("package %s: empty destination", p.ID)
	}
	if p.PriceMin < 0 || p.PriceMax < 0 {
		return fmt.Errorf("package %s: negative price", p.ID)
	}
	if p.PriceMin > p.PriceMax {
		return fmt.Errorf("package %s: price_min %.0f above price_max %.0f", p.ID, p.PriceMin, p.PriceMax)
	}
	if p.DurationDays < 1 {
		return fmt.Errorf("package %s: duration_days must be at least 1", p.ID)
	}
	if p.MinGuests > 0 && p.MaxGuests > 0 && p.MinGuests > p.MaxGuests {
		return fmt.Errorf("package %s: min_guests %d above max_guests %d", p.ID, p.MinGuests, p.MaxGuests)
	}
	if p.Rating < 0 {
		p.Rating = 0
	}
	if p.Rating > 5 {
		p.Rating = 5
	}
	return nil
}
