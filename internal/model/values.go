package model

import "strings"

// ListSeparator joins list values for display in text-like controls.
const ListSeparator = ", "

// Values is a flat mapping of form field names to their values. Single-value
// fields hold one entry; multi-value fields hold the full ordered sequence.
type Values map[string][]string

// Get returns the first value for name, or "" when absent.
func (v Values) Get(name string) string {
	if values := v[name]; len(values) > 0 {
		return values[0]
	}
	return ""
}

// All returns a copy of every value stored for name.
func (v Values) All(name string) []string {
	values, ok := v[name]
	if !ok {
		return nil
	}
	return append([]string{}, values...)
}

// Set replaces the values stored for name.
func (v Values) Set(name string, values ...string) {
	v[name] = append([]string{}, values...)
}

// Add appends a value for name.
func (v Values) Add(name, value string) {
	v[name] = append(v[name], value)
}

// Has reports whether name is present, even with an empty sequence.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// Multi reports whether name currently carries more than one value.
func (v Values) Multi(name string) bool {
	return len(v[name]) > 1
}

// Del removes name.
func (v Values) Del(name string) {
	delete(v, name)
}

// Clone returns a deep copy.
func (v Values) Clone() Values {
	if v == nil {
		return nil
	}
	out := make(Values, len(v))
	for name, values := range v {
		out[name] = append([]string{}, values...)
	}
	return out
}

// SplitList parses a delimited list: it splits on "," and trims every piece.
// Empty pieces are dropped, so "" yields an empty list.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// JoinList renders a list for a text-like control.
func JoinList(values []string) string {
	return strings.Join(values, ListSeparator)
}
