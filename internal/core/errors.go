package core

import (
	"sort"
	"strings"
)

// FieldErrors maps a form field name to a human readable problem.
type FieldErrors map[string]string

func (f FieldErrors) Add(field, msg string) {
	if _, exists := f[field]; !exists {
		f[field] = msg
	}
}

func (f FieldErrors) Empty() bool {
	return len(f) == 0
}

// Error joins the messages ordered by field name.
func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for k := range f {
		fields = append(fields, k)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, k := range fields {
		parts = append(parts, k+": "+f[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
