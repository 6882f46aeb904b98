package database

import (
	"log/slog"

	"airport_search/internal/dataset"
	"airport_search/internal/models"
)

// Source reads the airport table from a SQLite mirror built by build-airport-db.
// The database is opened read-only, scanned in full, and closed on every Load.
type Source struct {
	Path string
}

func NewSource(path string) *Source {
	return &Source{Path: path}
}

func (s *Source) Load() ([]*models.Airport, error) {
	db, err := Open(s.Path)
	if err != nil {
		return nil, &dataset.LoadError{Path: s.Path, Err: err}
	}
	defer db.Close()

	airports, err := db.AirportRepository().All()
	if err != nil {
		return nil, &dataset.LoadError{Path: s.Path, Err: err}
	}

	slog.Debug("Loaded airport dataset", "path", s.Path, "source", "sqlite", "rows", len(airports))
	return airports, nil
}
