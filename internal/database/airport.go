package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"airport_search/internal/dataset"
	"airport_search/internal/models"
)

type AirportRepository interface {
	InsertBatch(airports []*models.Airport) error
	IsTablePopulated() (bool, error)
	LoadFromCSV(src *dataset.CSVSource, batchSize int, replace bool) (int, error)
	All() ([]*models.Airport, error)
}

type airportRepository struct {
	db *sql.DB
}

func NewAirportRepository(db *sql.DB) AirportRepository {
	return &airportRepository{db: db}
}

// InsertBatch appends one or more airports in a single transaction.
// Rows receive increasing positions, so insertion order is the scan order.
func (r *airportRepository) InsertBatch(airports []*models.Airport) error {
	if len(airports) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertAirports(tx, airports); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// insertAirports writes airports using an open transaction
func insertAirports(tx *sql.Tx, airports []*models.Airport) error {
	stmt, err := tx.Prepare(`INSERT INTO airports (
		iata_code, iso_country, name, fields
	) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, ap := range airports {
		fields, err := json.Marshal(ap.Fields)
		if err != nil {
			return fmt.Errorf("failed to encode fields: %w", err)
		}
		if _, err := stmt.Exec(ap.IATACode, ap.ISOCountry, ap.Name, string(fields)); err != nil {
			return fmt.Errorf("failed to insert airport: %w", err)
		}
	}

	return nil
}

func (r *airportRepository) IsTablePopulated() (bool, error) {
	var ignored int
	err := r.db.QueryRow("SELECT 1 FROM airports LIMIT 1").Scan(&ignored)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check airports table: %w", err)
	}
	return true, nil
}

// LoadFromCSV imports a CSV dataset and returns the number of rows written.
// The file is read in full before the table is touched. With replace set the
// existing rows are deleted in the same transaction as the inserts, so a failed
// import leaves the previous table intact.
func (r *airportRepository) LoadFromCSV(src *dataset.CSVSource, batchSize int, replace bool) (int, error) {
	if batchSize <= 0 {
		return 0, fmt.Errorf("batch size must be greater than 0")
	}

	airports, err := src.Load()
	if err != nil {
		return 0, err
	}

	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if replace {
		if _, err := tx.Exec("DELETE FROM airports"); err != nil {
			return 0, fmt.Errorf("failed to clear airports table: %w", err)
		}
	}

	for start := 0; start < len(airports); start += batchSize {
		end := min(start+batchSize, len(airports))
		if err := insertAirports(tx, airports[start:end]); err != nil {
			return 0, fmt.Errorf("failed to insert batch: %w", err)
		}
		slog.Debug("Inserted batch of airports", "batch_size", end-start, "total", end)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return len(airports), nil
}

// All returns every airport in source order
func (r *airportRepository) All() ([]*models.Airport, error) {
	rows, err := r.db.Query(`SELECT iata_code, iso_country, name, fields FROM airports ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query airports: %w", err)
	}
	defer rows.Close()

	airports := make([]*models.Airport, 0)
	for rows.Next() {
		var (
			ap     models.Airport
			fields string
		)
		if err := rows.Scan(&ap.IATACode, &ap.ISOCountry, &ap.Name, &fields); err != nil {
			return nil, fmt.Errorf("failed to scan airport: %w", err)
		}
		if err := json.Unmarshal([]byte(fields), &ap.Fields); err != nil {
			return nil, fmt.Errorf("failed to decode fields: %w", err)
		}
		airports = append(airports, &ap)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read airports: %w", err)
	}

	return airports, nil
}
