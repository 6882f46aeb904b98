package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"airport_search/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, dir, content string) string {
	t.Helper()
	return writeCSVNamed(t, dir, "airports.csv", content)
}

func writeCSVNamed(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func countRows(t *testing.T, dbPath string) int {
	t.Helper()
	airports, err := database.NewSource(dbPath).Load()
	require.NoError(t, err)
	return len(airports)
}

func TestRun_Build(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeCSV(t, dir, "name,iso_country,iata_code\nLos Angeles,US,LAX\nArusha,TZ,JRO\n")
	dbPath := filepath.Join(dir, "airports.db")

	var stderr bytes.Buffer
	code := run([]string{"--source", csvPath, "--target", dbPath, "--batch-size", "1"}, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "Successfully built airport database")
	assert.Equal(t, 2, countRows(t, dbPath))
}

func TestRun_PopulatedWithoutForce(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeCSV(t, dir, "name,iso_country,iata_code\nLos Angeles,US,LAX\n")
	dbPath := filepath.Join(dir, "airports.db")

	var stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"--source", csvPath, "--target", dbPath}, &stderr))

	stderr.Reset()
	code := run([]string{"--source", csvPath, "--target", dbPath}, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "already populated")
	assert.Equal(t, 1, countRows(t, dbPath))

	stderr.Reset()
	code = run([]string{"--source", csvPath, "--target", dbPath, "--force"}, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, 1, countRows(t, dbPath))
}

func TestRun_SemicolonDelimiter(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeCSV(t, dir, "name;iso_country;iata_code\nLos Angeles;US;LAX\n")
	dbPath := filepath.Join(dir, "airports.db")

	var stderr bytes.Buffer
	code := run([]string{"--source", csvPath, "--target", dbPath, "--delimiter", ";"}, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, 1, countRows(t, dbPath))
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "airports.db")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"missing source", []string{"--source", filepath.Join(dir, "missing.csv"), "--target", dbPath}, 1},
		{"bad delimiter", []string{"--delimiter", ";;", "--target", dbPath}, 2},
		{"empty column name", []string{"--name-column", "", "--target", dbPath}, 2},
		{"unknown flag", []string{"--nope"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			assert.Equal(t, tt.want, run(tt.args, &stderr))
		})
	}
}

func TestRun_ForceRebuildFailureKeepsRows(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "airports.db")
	good := writeCSV(t, dir, "name,iso_country,iata_code\nLos Angeles,US,LAX\nArusha,TZ,JRO\n")

	var stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"--source", good, "--target", dbPath}, &stderr))

	tests := []struct {
		name   string
		source string
	}{
		{"malformed row", writeCSVNamed(t, dir, "bad.csv", "name,iso_country,iata_code\nBroken\n")},
		{"missing file", filepath.Join(dir, "missing.csv")},
		{"missing column", writeCSVNamed(t, dir, "nocode.csv", "name,iso_country\nLos Angeles,US\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stderr.Reset()
			code := run([]string{"--source", tt.source, "--target", dbPath, "--force"}, &stderr)

			assert.Equal(t, 1, code)
			assert.Equal(t, 2, countRows(t, dbPath))
		})
	}
}

func TestRun_ForceRebuildReplacesRows(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "airports.db")
	first := writeCSVNamed(t, dir, "first.csv", "name,iso_country,iata_code\nLos Angeles,US,LAX\nArusha,TZ,JRO\n")
	second := writeCSVNamed(t, dir, "second.csv", "name,iso_country,iata_code\nNew York,US,JFK\n")

	var stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"--source", first, "--target", dbPath}, &stderr))
	require.Equal(t, 0, run([]string{"--source", second, "--target", dbPath, "--force"}, &stderr))

	airports, err := database.NewSource(dbPath).Load()
	require.NoError(t, err)
	require.Len(t, airports, 1)
	assert.Equal(t, "JFK", airports[0].IATACode)
}

func TestRun_CustomColumns(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeCSV(t, dir, "airport,country,code\nLos Angeles International Airport,US,LAX\n")
	dbPath := filepath.Join(dir, "airports.db")

	var stderr bytes.Buffer
	code := run([]string{
		"--source", csvPath, "--target", dbPath,
		"--code-column", "code", "--country-column", "country", "--name-column", "airport",
	}, &stderr)
	require.Equal(t, 0, code)

	airports, err := database.NewSource(dbPath).Load()
	require.NoError(t, err)
	require.Len(t, airports, 1)
	assert.Equal(t, "LAX", airports[0].IATACode)
	assert.Equal(t, "US", airports[0].ISOCountry)
	assert.Equal(t, "Los Angeles International Airport", airports[0].Name)
}

func TestRun_CustomColumnsMissingFromHeader(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeCSV(t, dir, "name,iso_country,iata_code\nLos Angeles,US,LAX\n")

	var stderr bytes.Buffer
	code := run([]string{"--source", csvPath, "--target", filepath.Join(dir, "airports.db"), "--code-column", "code"}, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), `missing required column \"code\"`)
}
