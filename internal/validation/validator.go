// Package validation checks raw selector input before any dataset access.
package validation

import "airport_search/internal/models"

// Validate turns the three optional selector values into a Selector.
// Arity is checked before the code format, so an invalid code supplied
// together with another selector reports MultipleSelectorsError.
func Validate(code, country, name string) (models.Selector, error) {
	count := 0
	for _, v := range []string{code, country, name} {
		if v != "" {
			count++
		}
	}

	switch {
	case count == 0:
		return models.Selector{}, &NoSelectorError{}
	case count > 1:
		return models.Selector{}, &MultipleSelectorsError{Count: count}
	}

	switch {
	case code != "":
		if !IsValidIATA(code) {
			return models.Selector{}, &InvalidCodeFormatError{Code: code}
		}
		return models.ByCode(code), nil
	case country != "":
		return models.ByCountry(country), nil
	default:
		return models.ByName(name), nil
	}
}

// IsValidIATA reports whether s is exactly three uppercase ASCII letters
func IsValidIATA(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isUpperASCIILetter(s[i]) {
			return false
		}
	}
	return true
}

func isUpperASCIILetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
