package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

// Store keeps the catalog in a local SQLite database. Listing follows
// insertion order, which is also the tie-break order for equal scores.
type Store struct {
	db      *sql.DB
	entropy *rand.Rand
}

// Open opens or creates the catalog database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *Store) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS packages (
		pos           INTEGER PRIMARY KEY AUTOINCREMENT,
		id            TEXT NOT NULL UNIQUE,
		name          TEXT NOT NULL,
		destination   TEXT NOT NULL,
		price_min     REAL NOT NULL DEFAULT 0,
		price_max     REAL NOT NULL DEFAULT 0,
		duration_days INTEGER NOT NULL,
		rating        REAL NOT NULL DEFAULT 0,
		styles        TEXT,
		min_guests    INTEGER NOT NULL DEFAULT 0,
		max_guests    INTEGER NOT NULL DEFAULT 0,
		best_season   TEXT,
		activities    TEXT,
		includes      TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_packages_destination ON packages(destination);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Add validates and upserts one package, minting a ULID when the record
// carries no id. An existing id keeps its catalog position.
func (s *Store) Add(ctx context.Context, p Package) (*Package, error) {
	if p.ID == "" {
		p.ID = s.newID()
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var stylesJSON *string
	if len(p.Styles) > 0 {
		b, _ := json.Marshal(p.Styles)
		v := string(b)
		stylesJSON = &v
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO packages (id, name, destination, price_min, price_max, duration_days, rating,
		                       styles, min_guests, max_guests, best_season, activities, includes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name, destination = excluded.destination,
		   price_min = excluded.price_min, price_max = excluded.price_max,
		   duration_days = excluded.duration_days, rating = excluded.rating,
		   styles = excluded.styles, min_guests = excluded.min_guests,
		   max_guests = excluded.max_guests, best_season = excluded.best_season,
		   activities = excluded.activities, includes = excluded.includes`,
		p.ID, p.Name, p.Destination, p.PriceMin, p.PriceMax, p.DurationDays, p.Rating,
		stylesJSON, p.MinGuests, p.MaxGuests, p.BestSeason, p.Activities, p.Includes)
	if err != nil {
		return nil, fmt.Errorf("insert package: %w", err)
	}

	return &p, nil
}

// PutAll upserts packages in one transaction, in the order given.
// Returns the number written.
func (s *Store) PutAll(ctx context.Context, pkgs []Package) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	written := 0
	for i := range pkgs {
		p := pkgs[i]
		if p.ID == "" {
			p.ID = s.newID()
		}
		if err := p.Validate(); err != nil {
			return written, err
		}

		var stylesJSON *string
		if len(p.Styles) > 0 {
			b, _ := json.Marshal(p.Styles)
			v := string(b)
			stylesJSON = &v
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO packages (id, name, destination, price_min, price_max, duration_days, rating,
			                       styles, min_guests, max_guests, best_season, activities, includes)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET
			   name = excluded.name, destination = excluded.destination,
			   price_min = excluded.price_min, price_max = excluded.price_max,
			   duration_days = excluded.duration_days, rating = excluded.rating,
			   styles = excluded.styles, min_guests = excluded.min_guests,
			   max_guests = excluded.max_guests, best_season = excluded.best_season,
			   activities = excluded.activities, includes = excluded.includes`,
			p.ID, p.Name, p.Destination, p.PriceMin, p.PriceMax, p.DurationDays, p.Rating,
			stylesJSON, p.MinGuests, p.MaxGuests, p.BestSeason, p.Activities, p.Includes)
		if err != nil {
			return written, fmt.Errorf("insert package %s: %w", p.ID, err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return written, err
	}
	return written, nil
}

// List returns the whole catalog in insertion order.
func (s *Store) List(ctx context.Context) ([]Package, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, destination, price_min, price_max, duration_days, rating,
		        styles, min_guests, max_guests, best_season, activities, includes
		 FROM packages ORDER BY pos`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pkgs []Package
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, p)
	}
	return pkgs, rows.Err()
}

// Get retrieves a single package by id.
func (s *Store) Get(ctx context.Context, id string) (*Package, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, destination, price_min, price_max, duration_days, rating,
		        styles, min_guests, max_guests, best_season, activities, includes
		 FROM packages WHERE id = ?`, id)

	p, err := scanPackage(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("package not found: %s", id)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Count returns the number of packages in the catalog.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM packages`).Scan(&n)
	return n, err
}

// Clear removes every package.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM packages`)
	return err
}

// Close closes the store.
func (s *Store) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPackage(row scanner) (Package, error) {
	var p Package
	var stylesJSON, bestSeason, activities, includes sql.NullString

	err := row.Scan(
		&p.ID, &p.Name, &p.Destination, &p.PriceMin, &p.PriceMax,
		&p.DurationDays, &p.Rating, &stylesJSON,
		&p.MinGuests, &p.MaxGuests, &bestSeason, &activities, &includes,
	)
	if err != nil {
		return p, err
	}

	if stylesJSON.Valid {
		json.Unmarshal([]byte(stylesJSON.String), &p.Styles)
	}
	if bestSeason.Valid {
		p.BestSeason = bestSeason.String
	}
	if activities.Valid {
		p.Activities = activities.String
	}
	if includes.Valid {
		p.Includes = includes.String
	}

	return p, nil
}
