package citystore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store persists the user's city list. Weather data itself is never
// persisted; only the names the dashboard should load on startup.
type Store struct {
	path string
}

// Open creates the database file (and its directory) if needed and
// ensures the schema exists.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	s := &Store{path: path}
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS cities (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_cities_name ON cities(name);
	`)
	if err != nil {
		return nil, fmt.Errorf("creating cities table: %w", err)
	}

	return s, nil
}

func (s *Store) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// List returns the saved cities in insertion order.
func (s *Store) List() ([]string, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT name FROM cities ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying cities: %w", err)
	}
	defer rows.Close()

	var cities []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning city: %w", err)
		}
		cities = append(cities, name)
	}
	return cities, rows.Err()
}

// Save adds a city to the list. Saving an already-saved city is a no-op.
func (s *Store) Save(name string) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec("INSERT INTO cities (name) VALUES (?) ON CONFLICT(name) DO NOTHING", name)
	if err != nil {
		return fmt.Errorf("saving city: %w", err)
	}
	return nil
}

// Delete removes a city by name.
func (s *Store) Delete(name string) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec("DELETE FROM cities WHERE name = ?", name); err != nil {
		return fmt.Errorf("deleting city: %w", err)
	}
	return nil
}

// Seed populates an empty store with the given defaults. A store that
// already holds cities is left alone so user edits survive restarts.
func (s *Store) Seed(defaults []string) error {
	existing, err := s.List()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, name := range defaults {
		if err := s.Save(name); err != nil {
			return err
		}
	}
	return nil
}
