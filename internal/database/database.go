package database

import (
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/mattn/go-sqlite3"
)

// DB holds a connection to the SQLite airport mirror
type DB struct {
	db *sql.DB
}

// New opens (creating if needed) a writable database and initializes the schema
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dsn(dbPath, "rwc"))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := optimizeSQLite(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to optimize database: %w", err)
	}

	database := &DB{db: db}

	if err := database.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return database, nil
}

// Open opens an existing database read-only. A missing file is an error.
func Open(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dsn(dbPath, "ro"))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{db: db}, nil
}

// dsn builds a SQLite URI filename for path. The path is escaped so that
// '?' and '#' in file names are not read as query or fragment delimiters.
func dsn(path, mode string) string {
	u := url.URL{
		Scheme:   "file",
		Path:     path,
		OmitHost: true,
		RawQuery: url.Values{"mode": {mode}}.Encode(),
	}
	return u.String()
}

// optimizeSQLite applies settings for a bulk import
func optimizeSQLite(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Negative value is in KiB, 64MB
	if _, err := db.Exec("PRAGMA cache_size=-64000"); err != nil {
		return fmt.Errorf("failed to set cache size: %w", err)
	}

	if _, err := db.Exec("PRAGMA synchronous=NORMAL"); err != nil {
		return fmt.Errorf("failed to set synchronous mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA temp_store=MEMORY"); err != nil {
		return fmt.Errorf("failed to set temp_store: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	return nil
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.db.Close()
}

// Compact checkpoints the WAL back into the main file and leaves WAL mode,
// so the finished database can be opened read-only from a read-only location.
func (d *DB) Compact() error {
	if _, err := d.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return fmt.Errorf("failed to checkpoint WAL: %w", err)
	}
	if _, err := d.db.Exec("PRAGMA journal_mode=DELETE"); err != nil {
		return fmt.Errorf("failed to disable WAL mode: %w", err)
	}
	return nil
}

// AirportRepository returns the repository for the airports table
func (d *DB) AirportRepository() AirportRepository {
	return NewAirportRepository(d.db)
}

// initSchema creates the database schema if it doesn't exist.
// position keeps the source row order; lookups always scan the whole table.
func (d *DB) initSchema() error {
	airportsSchema := `CREATE TABLE IF NOT EXISTS airports (
		position INTEGER PRIMARY KEY,
		iata_code TEXT NOT NULL DEFAULT '',
		iso_country TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL DEFAULT '',
		fields TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := d.db.Exec(airportsSchema); err != nil {
		return fmt.Errorf("failed to create airports table: %w", err)
	}

	return nil
}
