package models

// SelectorKind identifies which lookup a Selector performs
type SelectorKind int

const (
	SelectorCode SelectorKind = iota
	SelectorCountry
	SelectorName
)

func (k SelectorKind) String() string {
	switch k {
	case SelectorCode:
		return "iata_code"
	case SelectorCountry:
		return "country"
	case SelectorName:
		return "name"
	default:
		return "unknown"
	}
}

// Selector is a validated lookup request with exactly one active variant.
// Build it through validation.Validate rather than directly from raw input.
type Selector struct {
	Kind  SelectorKind
	Value string
}

func ByCode(code string) Selector {
	return Selector{Kind: SelectorCode, Value: code}
}

func ByCountry(country string) Selector {
	return Selector{Kind: SelectorCountry, Value: country}
}

func ByName(fragment string) Selector {
	return Selector{Kind: SelectorName, Value: fragment}
}
