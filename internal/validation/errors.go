package validation

import (
	"fmt"
	"strconv"
)

// NoSelectorError is returned when none of the selectors is supplied
type NoSelectorError struct{}

func (e *NoSelectorError) Error() string { return e.Message() }

func (e *NoSelectorError) Message() string { return "one selector required" }

func (e *NoSelectorError) Input() string { return "" }

// MultipleSelectorsError is returned when more than one selector is supplied
type MultipleSelectorsError struct {
	Count int
}

func (e *MultipleSelectorsError) Error() string {
	return fmt.Sprintf("%s: %d supplied", e.Message(), e.Count)
}

func (e *MultipleSelectorsError) Message() string { return "only one selector allowed" }

func (e *MultipleSelectorsError) Input() string { return strconv.Itoa(e.Count) }

// InvalidCodeFormatError is returned when the IATA code is not three uppercase ASCII letters.
// Code holds the input exactly as supplied.
type InvalidCodeFormatError struct {
	Code string
}

func (e *InvalidCodeFormatError) Error() string {
	return fmt.Sprintf("%s: %q", e.Message(), e.Code)
}

func (e *InvalidCodeFormatError) Message() string {
	return "invalid IATA code format, expected three capital letters"
}

func (e *InvalidCodeFormatError) Input() string { return e.Code }
