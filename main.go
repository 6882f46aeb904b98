// Command airport_search looks airports up in the airport-codes dataset.
//
// Usage:
//
//	airport_search -i | --iata_code <CODE>
//	airport_search -c | --country <ISO>
//	airport_search -n | --name <FRAGMENT>
//
// Exactly one selector is required. Results go to stdout; errors go to stderr
// and the exit status is non-zero.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"airport_search/internal/config"
	"airport_search/internal/database"
	"airport_search/internal/dataset"
	"airport_search/internal/finder"
	"airport_search/internal/output"
	"airport_search/internal/validation"

	charmlog "github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Version information set by ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func initLogger(cfg *config.Config, w io.Writer) {
	var logLevel slog.Level
	switch cfg.Log.Level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	switch cfg.Log.Format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "pretty":
		level, err := charmlog.ParseLevel(cfg.Log.Level)
		if err != nil {
			level = charmlog.InfoLevel
		}
		handler = charmlog.NewWithOptions(w, charmlog.Options{
			Level:           level,
			ReportTimestamp: true,
		})
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
}

// newSource picks the dataset reader named by the configuration
func newSource(cfg *config.Config) finder.Source {
	if cfg.Dataset.Source == "sqlite" {
		return database.NewSource(cfg.Dataset.Path)
	}
	return &dataset.CSVSource{
		Path:      cfg.Dataset.Path,
		Delimiter: cfg.Dataset.DelimiterRune(),
		Columns: dataset.Columns{
			Code:    cfg.Dataset.Columns.Code,
			Country: cfg.Dataset.Columns.Country,
			Name:    cfg.Dataset.Columns.Name,
		},
	}
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("airport_search", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	code := fs.StringP("iata_code", "i", "", "IATA airport code, three capital letters")
	country := fs.StringP("country", "c", "", "ISO country code, e.g. US, UA, CA")
	name := fs.StringP("name", "n", "", "Airport name or part of it")
	fs.String("config", "", "Path to config file (YAML)")
	fs.String("dataset", "", "Path to the airport dataset (overrides config)")
	fs.String("format", "", "Output format: text, csv, json, or table (overrides config)")
	showVersion := fs.BoolP("version", "v", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "airport_search %s (commit: %s, built: %s)\n", version, commit, date)
		return 0
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return 2
	}

	// Selectors are checked before any configuration or dataset is read
	sel, err := validation.Validate(*code, *country, *name)
	if err != nil {
		return fail(stderr, err)
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return fail(stderr, err)
	}

	initLogger(cfg, stderr)

	nameMatch, err := finder.ParseNameMatch(cfg.Match.Name)
	if err != nil {
		return fail(stderr, err)
	}
	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return fail(stderr, err)
	}

	slog.Debug("Looking up airports",
		"selector", sel.Kind.String(),
		"query", sel.Value,
		"dataset", cfg.Dataset.Path,
		"source", cfg.Dataset.Source,
	)

	result, err := finder.New(newSource(cfg), finder.WithNameMatch(nameMatch)).Find(sel)
	if err != nil {
		return fail(stderr, err)
	}

	if err := output.Render(stdout, result, format); err != nil {
		return fail(stderr, fmt.Errorf("failed to write result: %w", err))
	}

	return 0
}

// fail reports err on stderr and returns the exit status for it
func fail(stderr io.Writer, err error) int {
	var loadErr *dataset.LoadError
	if errors.As(err, &loadErr) {
		slog.Debug("Dataset could not be read", "path", loadErr.Path, "cause", loadErr.Err)
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

func main() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
