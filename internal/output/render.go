// Package output writes lookup results to the terminal.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"airport_search/internal/finder"
	"airport_search/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Format is an output representation of a result
type Format string

const (
	FormatText  Format = "text"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// ParseFormat validates a configured output format
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatCSV, FormatJSON, FormatTable:
		return f, nil
	default:
		return "", fmt.Errorf("invalid output format: %s (must be text, csv, json, or table)", s)
	}
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Render writes result to w. Every airport is a separate line or entry,
// in the order the lookup returned them.
func Render(w io.Writer, result *finder.Result, format Format) error {
	switch format {
	case FormatText:
		return renderText(w, result.Airports)
	case FormatCSV:
		return renderCSV(w, result.Airports)
	case FormatJSON:
		return renderJSON(w, result)
	case FormatTable:
		return renderTable(w, result.Airports)
	default:
		return fmt.Errorf("invalid output format: %s", format)
	}
}

func renderText(w io.Writer, airports []*models.Airport) error {
	for _, ap := range airports {
		pairs := make([]string, len(ap.Fields))
		for i, f := range ap.Fields {
			pairs[i] = f.Name + "=" + f.Value
		}
		if _, err := fmt.Fprintln(w, strings.Join(pairs, ", ")); err != nil {
			return err
		}
	}
	return nil
}

func renderCSV(w io.Writer, airports []*models.Airport) error {
	cw := csv.NewWriter(w)
	if len(airports) > 0 {
		if err := cw.Write(airports[0].Columns()); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	for _, ap := range airports {
		if err := cw.Write(ap.Values()); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// renderJSON writes one object for a code lookup and an array otherwise.
// Object keys follow the dataset header order.
func renderJSON(w io.Writer, result *finder.Result) error {
	var raw bytes.Buffer
	if result.Single() && len(result.Airports) == 1 {
		if err := writeObject(&raw, result.Airports[0]); err != nil {
			return err
		}
	} else {
		raw.WriteByte('[')
		for i, ap := range result.Airports {
			if i > 0 {
				raw.WriteByte(',')
			}
			if err := writeObject(&raw, ap); err != nil {
				return err
			}
		}
		raw.WriteByte(']')
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw.Bytes(), "", "  "); err != nil {
		return fmt.Errorf("failed to format JSON: %w", err)
	}
	out.WriteByte('\n')
	_, err := out.WriteTo(w)
	return err
}

func writeObject(buf *bytes.Buffer, ap *models.Airport) error {
	buf.WriteByte('{')
	for i, f := range ap.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return fmt.Errorf("failed to encode key: %w", err)
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return fmt.Errorf("failed to encode value: %w", err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return nil
}

func renderTable(w io.Writer, airports []*models.Airport) error {
	if len(airports) == 0 {
		return nil
	}

	rows := make([][]string, len(airports))
	for i, ap := range airports {
		rows[i] = ap.Values()
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(airports[0].Columns()...).
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
