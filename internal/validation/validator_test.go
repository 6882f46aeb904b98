package validation

import (
	"errors"
	"testing"

	"airport_search/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidIATA(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		// Valid codes
		{"SFO", true},
		{"JFK", true},
		{"LAX", true},
		{"AAA", true},
		{"ZZZ", true},

		// Invalid: wrong length
		{"", false},
		{"A", false},
		{"US", false},
		{"USAA", false},
		{"OESD", false},

		// Invalid: lowercase
		{"lax", false},
		{"us", false},
		{"Lax", false},

		// Invalid: digits and punctuation
		{"U1A", false},
		{"A1B", false},
		{"123", false},
		{"A-B", false},
		{"A B", false},
		{"AB!", false},
		{" LA", false},
		{"LAX\n", false},

		// Invalid: non-ASCII
		{"ИКУ", false},
		{"ÄBC", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidIATA(tt.code), "IsValidIATA(%q)", tt.code)
		})
	}
}

func TestValidate_NoSelector(t *testing.T) {
	_, err := Validate("", "", "")
	require.Error(t, err)

	var target *NoSelectorError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "one selector required", target.Message())
	assert.Empty(t, target.Input())
}

func TestValidate_MultipleSelectors(t *testing.T) {
	tests := []struct {
		name              string
		code, country, nm string
		wantCount         int
	}{
		{"code and country", "LAX", "US", "", 2},
		{"code and name", "LAX", "", "liman", 2},
		{"country and name", "", "US", "liman", 2},
		{"all three", "LAX", "US", "liman", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.code, tt.country, tt.nm)
			var target *MultipleSelectorsError
			require.ErrorAs(t, err, &target)
			assert.Equal(t, tt.wantCount, target.Count)
		})
	}
}

func TestValidate_ArityBeforeFormat(t *testing.T) {
	_, err := Validate("bad!", "US", "")

	var multi *MultipleSelectorsError
	require.ErrorAs(t, err, &multi)
	assert.Equal(t, 2, multi.Count)

	var format *InvalidCodeFormatError
	assert.False(t, errors.As(err, &format))
}

func TestValidate_InvalidCode(t *testing.T) {
	for _, code := range []string{"us", "USAA", "U1A", "lax", "bad!"} {
		t.Run(code, func(t *testing.T) {
			_, err := Validate(code, "", "")
			var target *InvalidCodeFormatError
			require.ErrorAs(t, err, &target)
			assert.Equal(t, code, target.Code)
			assert.Equal(t, code, target.Input())
			assert.Contains(t, err.Error(), code)
		})
	}
}

func TestValidate_Success(t *testing.T) {
	tests := []struct {
		name              string
		code, country, nm string
		want              models.Selector
	}{
		{"code", "LAX", "", "", models.ByCode("LAX")},
		{"country", "", "US", "", models.ByCountry("US")},
		{"lowercase country is not format checked", "", "us", "", models.ByCountry("us")},
		{"name", "", "", "liman", models.ByName("liman")},
		{"name keeps original casing", "", "", "Liman", models.ByName("Liman")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.code, tt.country, tt.nm)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "one selector required", (&NoSelectorError{}).Error())
	assert.Equal(t, "only one selector allowed: 3 supplied", (&MultipleSelectorsError{Count: 3}).Error())
	assert.Equal(t, "3", (&MultipleSelectorsError{Count: 3}).Input())
	assert.Equal(t,
		`invalid IATA code format, expected three capital letters: "U1A"`,
		(&InvalidCodeFormatError{Code: "U1A"}).Error(),
	)
}
