package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
)

// ReadFile loads packages from a CSV file. Every row is validated; one bad
// row fails the whole load so a half-imported catalog never gets scored.
func ReadFile(path string) ([]Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	var pkgs []Package
	if err := gocsv.UnmarshalFile(f, &pkgs); err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	for i := range pkgs {
		if err := pkgs[i].Validate(); err != nil {
			// +2: header line plus 1-based row numbering
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	return pkgs, nil
}

// Write writes packages as CSV to w.
func Write(w io.Writer, pkgs []Package) error {
	if err := gocsv.Marshal(&pkgs, w); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// WriteFile writes packages to a CSV file, creating or truncating it.
func WriteFile(path string, pkgs []Package) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	return Write(f, pkgs)
}
