// Package finder scans the airport dataset with one of three match strategies.
package finder

import (
	"fmt"
	"log/slog"
	"strings"

	"airport_search/internal/models"
)

// Source provides the full airport table in dataset order
type Source interface {
	Load() ([]*models.Airport, error)
}

// NameMatch selects how a name fragment is compared against airport names
type NameMatch string

const (
	// NameMatchContains matches when the fragment appears anywhere in the name
	NameMatchContains NameMatch = "contains"
	// NameMatchPrefix matches when the name starts with the fragment
	NameMatchPrefix NameMatch = "prefix"
)

// ParseNameMatch validates a configured name match mode
func ParseNameMatch(s string) (NameMatch, error) {
	switch NameMatch(strings.ToLower(s)) {
	case NameMatchContains:
		return NameMatchContains, nil
	case NameMatchPrefix:
		return NameMatchPrefix, nil
	default:
		return "", fmt.Errorf("invalid name match mode: %s (must be contains or prefix)", s)
	}
}

// Result is the outcome of a successful lookup
type Result struct {
	Selector models.Selector
	Airports []*models.Airport
}

// Single reports whether the result is the one-record form of a code lookup
func (r *Result) Single() bool {
	return r.Selector.Kind == models.SelectorCode
}

// Option configures a Finder
type Option func(*Finder)

// WithNameMatch sets the name comparison mode, contains by default
func WithNameMatch(m NameMatch) Option {
	return func(f *Finder) {
		f.nameMatch = m
	}
}

// Finder looks airports up in a Source.
// The source is loaded again on every lookup, nothing is cached between calls.
type Finder struct {
	source    Source
	nameMatch NameMatch
}

func New(source Source, opts ...Option) *Finder {
	f := &Finder{
		source:    source,
		nameMatch: NameMatchContains,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Find runs the lookup selected by sel
func (f *Finder) Find(sel models.Selector) (*Result, error) {
	var airports []*models.Airport

	switch sel.Kind {
	case models.SelectorCode:
		ap, err := f.FindByCode(sel.Value)
		if err != nil {
			return nil, err
		}
		airports = []*models.Airport{ap}
	case models.SelectorCountry:
		found, err := f.FindByCountry(sel.Value)
		if err != nil {
			return nil, err
		}
		airports = found
	case models.SelectorName:
		found, err := f.FindByName(sel.Value)
		if err != nil {
			return nil, err
		}
		airports = found
	default:
		return nil, fmt.Errorf("unknown selector kind: %d", sel.Kind)
	}

	slog.Debug("Lookup complete", "selector", sel.Kind.String(), "query", sel.Value, "matches", len(airports))
	return &Result{Selector: sel, Airports: airports}, nil
}

// FindByCode returns the first airport whose IATA code equals code.
// code is uppercased before comparison.
func (f *Finder) FindByCode(code string) (*models.Airport, error) {
	airports, err := f.source.Load()
	if err != nil {
		return nil, err
	}

	want := strings.ToUpper(code)
	for _, ap := range airports {
		if ap.IATACode == want {
			return ap, nil
		}
	}
	return nil, &AirportNotFoundError{Query: code}
}

// FindByCountry returns every airport in country, in dataset order.
// The comparison is exact and case sensitive.
func (f *Finder) FindByCountry(country string) ([]*models.Airport, error) {
	airports, err := f.source.Load()
	if err != nil {
		return nil, err
	}

	var found []*models.Airport
	for _, ap := range airports {
		if ap.ISOCountry == country {
			found = append(found, ap)
		}
	}
	if len(found) == 0 {
		return nil, &CountryNotFoundError{Country: country}
	}
	return found, nil
}

// FindByName returns every airport whose name matches fragment case-insensitively.
// The fragment is compared literally according to the finder's NameMatch mode.
func (f *Finder) FindByName(fragment string) ([]*models.Airport, error) {
	airports, err := f.source.Load()
	if err != nil {
		return nil, err
	}

	match := f.nameMatcher(strings.ToLower(fragment))

	var found []*models.Airport
	for _, ap := range airports {
		if match(strings.ToLower(ap.Name)) {
			found = append(found, ap)
		}
	}
	if len(found) == 0 {
		return nil, &AirportNotFoundError{Query: fragment}
	}
	return found, nil
}

func (f *Finder) nameMatcher(fragment string) func(name string) bool {
	if f.nameMatch == NameMatchPrefix {
		return func(name string) bool {
			return strings.HasPrefix(name, fragment)
		}
	}
	return func(name string) bool {
		return strings.Contains(name, fragment)
	}
}
