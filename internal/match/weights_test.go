package match

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultWeightsSumTo100(t *testing.T) {
	w := DefaultWeights()
	total := w.Budget + w.Duration + w.Style + w.Destination + w.Rating
	if total != 100 {
		t.Errorf("default weights sum to %v", total)
	}
}

func TestLoadWeightsPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.json")
	if err := os.WriteFile(path, []byte(`{"rating": 20}`), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := LoadWeights(path)
	if err != nil {
		t.Fatalf("LoadWeights: %v", err)
	}
	total := w.Budget + w.Duration + w.Style + w.Destination + w.Rating
	if !approx(total, 100) {
		t.Errorf("renormalized total = %v, want 100", total)
	}
	// 20 of a 110-point table scales to 18.18 of 100.
	if !approx(w.Rating, 20*100.0/110) {
		t.Errorf("rating = %v, want %v", w.Rating, 20*100.0/110)
	}
	if w.BudgetGapRatio != 1.0 || w.DurationTolerance != 0.2 || w.RegionCredit != 0.7 {
		t.Errorf("knobs should keep defaults, got %+v", w)
	}
}

func TestLoadWeightsScalesDown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.json")
	body := `{"budget": 60, "duration": 40, "style": 50, "destination": 30, "rating": 20}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := LoadWeights(path)
	if err != nil {
		t.Fatalf("LoadWeights: %v", err)
	}
	if !approx(w.Budget, 30) || !approx(w.Duration, 20) || !approx(w.Style, 25) {
		t.Errorf("scaled weights = %+v", w)
	}
}

func TestLoadWeightsMissingFile(t *testing.T) {
	if _, err := LoadWeights(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadWeightsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadWeights(path); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}

func TestNormalizedRejectsZeroTable(t *testing.T) {
	w := Weights{}.normalized()
	if w.Budget != 30 || w.Rating != 10 {
		t.Errorf("zero table should fall back to defaults, got %+v", w)
	}
}
