package catalog

import "testing"

func TestValidate(t *testing.T) {
	valid := Package{
		ID: "P1", Name: "Trip", Destination: "Rome, Italy",
		PriceMin: 500, PriceMax: 1000, DurationDays: 7, Rating: 4.0,
	}

	tests := []struct {
		name    string
		mutate  func(*Package)
		wantErr bool
	}{
		{"valid", func(p *Package) {}, false},
		{"empty name", func(p *Package) { p.Name = " " }, true},
		{"empty destination", func(p *Package) { p.Destination = "" }, true},
		{"negative price", func(p *Package) { p.PriceMin = -10 }, true},
		{"inverted prices", func(p *Package) { p.PriceMin = 2000 }, true},
		{"zero duration", func(p *Package) { p.DurationDays = 0 }, true},
		{"inverted guests", func(p *Package) { p.MinGuests = 5; p.MaxGuests = 2 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateClampsRating(t *testing.T) {
	p := Package{ID: "P1", Name: "N", Destination: "D", PriceMin: 1, PriceMax: 2, DurationDays: 1, Rating: 9.5}
	if err := p.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if p.Rating != 5 {
		t.Errorf("expected rating clamped to 5, got %v", p.Rating)
	}

	p.Rating = -1
	p.Validate()
	if p.Rating != 0 {
		t.Errorf("expected rating clamped to 0, got %v", p.Rating)
	}
}

func TestStyleListCSV(t *testing.T) {
	s := StyleList{"romantic", "luxury"}
	out, err := s.MarshalCSV()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if out != "romantic|luxury" {
		t.Errorf("expected 'romantic|luxury', got %q", out)
	}

	var parsed StyleList
	if err := parsed.UnmarshalCSV(" Romantic | LUXURY |"); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(parsed) != 2 || parsed[0] != "romantic" || parsed[1] != "luxury" {
		t.Errorf("expected [romantic luxury], got %v", parsed)
	}

	var empty StyleList
	empty.UnmarshalCSV("")
	if len(empty) != 0 {
		t.Errorf("expected empty list, got %v", empty)
	}
}

func TestStyleListHas(t *testing.T) {
	s := StyleList{"romantic", "cultural"}
	if !s.Has("Romantic") {
		t.Error("expected case-insensitive match")
	}
	if s.Has("luxury") {
		t.Error("expected no match for luxury")
	}
}

func TestFitsGroup(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		size     int
		want     bool
	}{
		{"unspecified size always fits", 2, 4, 0, true},
		{"within range", 2, 4, 3, true},
		{"below min", 2, 4, 1, false},
		{"above max", 2, 4, 5, false},
		{"no upper bound", 1, 0, 12, true},
		{"no bounds at all", 0, 0, 7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Package{MinGuests: tt.min, MaxGuests: tt.max}
			if got := p.FitsGroup(tt.size); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
