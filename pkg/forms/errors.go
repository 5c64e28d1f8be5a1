package forms

import "sort"

// FieldErrors maps a field key to the single message reported for it. A
// field absent from the map is valid; an empty map means the form is
// acceptable for submission. Each validation call returns a fresh map, so
// callers can hold or mutate the result without affecting later calls.
type FieldErrors map[string]string

// Valid reports whether the form passed every check.
func (e FieldErrors) Valid() bool {
	return len(e) == 0
}

// Has reports whether the given field failed.
func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Message returns the reported message for a field, or "" when the field is
// valid.
func (e FieldErrors) Message(field string) string {
	return e[field]
}

// Fields returns the failing field keys in sorted order.
func (e FieldErrors) Fields() []string {
	if len(e) == 0 {
		return nil
	}
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
