package models

import (
	"strings"
	"time"
)

// Months lists the recognised month names in calendar order.
var Months = func() []string {
	names := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		names = append(names, m.String())
	}
	return names
}()

// ParseMonth resolves a month name case-insensitively. The second return
// value is false for anything that is not one of [Months].
func ParseMonth(name string) (time.Month, bool) {
	name = strings.TrimSpace(name)
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(m.String(), name) {
			return m, true
		}
	}

	return 0, false
}

// CanonicalMonth returns the canonical spelling of a month name, or an empty
// string when the name is not recognised.
func CanonicalMonth(name string) string {
	m, ok := ParseMonth(name)
	if !ok {
		return ""
	}
	return m.String()
}
