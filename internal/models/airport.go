package models

// Field is a single dataset column value, kept in header order
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Airport represents one row of the airport dataset.
// IATACode, ISOCountry and Name are the columns the lookup interprets;
// Fields carries every column of the row (including those three) in header order.
type Airport struct {
	IATACode   string // may be empty, many rows have no IATA code
	ISOCountry string // ISO 3166-1 alpha-2, casing as stored
	Name       string
	Fields     []Field
}

// Get returns the value of an arbitrary dataset column
func (a *Airport) Get(column string) (string, bool) {
	for _, f := range a.Fields {
		if f.Name == column {
			return f.Value, true
		}
	}
	return "", false
}

// Columns returns the column names of the row in header order
func (a *Airport) Columns() []string {
	cols := make([]string, len(a.Fields))
	for i, f := range a.Fields {
		cols[i] = f.Name
	}
	return cols
}

// Values returns the column values of the row in header order
func (a *Airport) Values() []string {
	vals := make([]string, len(a.Fields))
	for i, f := range a.Fields {
		vals[i] = f.Value
	}
	return vals
}
