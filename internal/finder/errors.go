package finder

import "fmt"

// AirportNotFoundError is returned when a code or name lookup has no match.
// Query holds the request as supplied, before any case normalization.
type AirportNotFoundError struct {
	Query string
}

func (e *AirportNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", e.Message(), e.Query)
}

func (e *AirportNotFoundError) Message() string { return "airport not found" }

func (e *AirportNotFoundError) Input() string { return e.Query }

// CountryNotFoundError is returned when a country lookup has no match
type CountryNotFoundError struct {
	Country string
}

func (e *CountryNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", e.Message(), e.Country)
}

func (e *CountryNotFoundError) Message() string { return "country not found" }

func (e *CountryNotFoundError) Input() string { return e.Country }
