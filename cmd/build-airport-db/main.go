// Command build-airport-db imports the airport CSV dataset into a SQLite database
// that airport_search can read with dataset.source set to sqlite.
package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"airport_search/internal/database"
	"airport_search/internal/dataset"

	"github.com/spf13/pflag"
)

func run(args []string, stderr io.Writer) int {
	fs := pflag.NewFlagSet("build-airport-db", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	source := fs.String("source", "airport-codes_csv.csv", "Path to the airport CSV dataset")
	target := fs.String("target", "airports.db", "Path of the SQLite database to write")
	delimiter := fs.String("delimiter", ",", "Field delimiter of the CSV dataset")
	batchSize := fs.Int("batch-size", 5000, "Number of rows written per transaction")
	codeColumn := fs.String("code-column", dataset.DefaultCodeColumn, "Header name of the IATA code column")
	countryColumn := fs.String("country-column", dataset.DefaultCountryColumn, "Header name of the ISO country column")
	nameColumn := fs.String("name-column", dataset.DefaultNameColumn, "Header name of the airport name column")
	force := fs.Bool("force", false, "Replace existing rows instead of leaving a populated database untouched; the old rows are kept if the import fails")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	if utf8.RuneCountInString(*delimiter) != 1 {
		logger.Error("Delimiter must be a single character", "delimiter", *delimiter)
		return 2
	}
	delim, _ := utf8.DecodeRuneInString(*delimiter)

	if *codeColumn == "" || *countryColumn == "" || *nameColumn == "" {
		logger.Error("Column names must not be empty")
		return 2
	}

	db, err := database.New(*target)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return 1
	}
	defer db.Close()

	repo := db.AirportRepository()

	populated, err := repo.IsTablePopulated()
	if err != nil {
		logger.Error("Failed to check airports table", "error", err)
		return 1
	}

	if populated && !*force {
		logger.Info("Airports table is already populated, use --force to rebuild", "target", *target)
		return 0
	}

	src := &dataset.CSVSource{
		Path:      *source,
		Delimiter: delim,
		Columns: dataset.Columns{
			Code:    *codeColumn,
			Country: *countryColumn,
			Name:    *nameColumn,
		},
	}

	logger.Info("Loading airports from CSV", "source", *source, "target", *target, "batch_size", *batchSize)

	n, err := repo.LoadFromCSV(src, *batchSize, populated)
	if err != nil {
		logger.Error("Failed to load airports from CSV", "error", err)
		return 1
	}

	if err := db.Compact(); err != nil {
		logger.Error("Failed to compact database", "error", err)
		return 1
	}

	logger.Info("Successfully built airport database", "rows", n, "target", *target)
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}
