// Package dataset reads the airport table from a delimited text file.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"airport_search/internal/models"
)

// Default header names of the airport-codes CSV
const (
	DefaultCodeColumn    = "iata_code"
	DefaultCountryColumn = "iso_country"
	DefaultNameColumn    = "name"
)

// Columns names the header columns the lookup interprets
type Columns struct {
	Code    string
	Country string
	Name    string
}

// DefaultColumns returns the header names used by the airport-codes CSV
func DefaultColumns() Columns {
	return Columns{
		Code:    DefaultCodeColumn,
		Country: DefaultCountryColumn,
		Name:    DefaultNameColumn,
	}
}

// CSVSource loads airports from a delimited file on disk
type CSVSource struct {
	Path      string
	Delimiter rune
	Columns   Columns
}

// NewCSVSource creates a comma separated source with the default columns
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{
		Path:      path,
		Delimiter: ',',
		Columns:   DefaultColumns(),
	}
}

// Load reads the whole file into memory, preserving row order.
// The file is closed before Load returns.
func (s *CSVSource) Load() ([]*models.Airport, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, &LoadError{Path: s.Path, Err: err}
	}
	defer file.Close()

	airports, err := ReadAirports(file, s.Delimiter, s.Columns)
	if err != nil {
		return nil, &LoadError{Path: s.Path, Err: err}
	}

	slog.Debug("Loaded airport dataset", "path", s.Path, "source", "csv", "rows", len(airports))
	return airports, nil
}

// ReadAirports parses a header row followed by data rows.
// Header names are trimmed and must be unique. Every row must have as many
// fields as the header; values are kept exactly as read.
func ReadAirports(r io.Reader, delimiter rune, cols Columns) ([]*models.Airport, error) {
	reader := csv.NewReader(r)
	if delimiter != 0 {
		reader.Comma = delimiter
	}
	reader.LazyQuotes = true   // Handle stray quotes inside names
	reader.FieldsPerRecord = 0 // Every row must match the header width

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("missing CSV header")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	headerMap := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		if _, dup := headerMap[h]; dup {
			return nil, fmt.Errorf("duplicate column %q in CSV header", h)
		}
		header[i] = h
		headerMap[h] = i
	}

	for _, required := range []string{cols.Code, cols.Country, cols.Name} {
		if _, ok := headerMap[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	airports := make([]*models.Airport, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		airports = append(airports, NewAirport(header, record, cols))
	}

	return airports, nil
}

// NewAirport builds an Airport from one row and its header.
// header and record must have the same length.
func NewAirport(header, record []string, cols Columns) *models.Airport {
	fields := make([]models.Field, len(header))
	for i, name := range header {
		fields[i] = models.Field{Name: name, Value: record[i]}
	}

	ap := &models.Airport{Fields: fields}
	ap.IATACode = getField(fields, cols.Code)
	ap.ISOCountry = getField(fields, cols.Country)
	ap.Name = getField(fields, cols.Name)
	return ap
}

// getField retrieves a field value by header name
func getField(fields []models.Field, name string) string {
	for _, f := range fields {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}
