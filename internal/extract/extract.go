// Package extract pulls month and category slot values out of free
// text with plain string matching, no model calls.
package extract

import (
	"fmt"
	"strings"
)

// monthNames is scanned in calendar order; the first name contained in
// the text wins.
var monthNames = []string{
	"january", "february", "march",
	"april", "may", "june",
	"july", "august", "september",
	"october", "november", "december",
}

// Month returns the "year-MM" key for the first English month name
// mentioned in text. The year is the injected reference year, never
// derived from the current date.
func Month(text string, year int) (string, bool) {
	lower := strings.ToLower(text)
	for i, name := range monthNames {
		if strings.Contains(lower, name) {
			return fmt.Sprintf("%d-%02d", year, i+1), true
		}
	}
	return "", false
}

// Category returns the first label mentioned in text. Labels must be
// passed in lexicographic order; that order decides ties, independent
// of the categorization rule order. A label matches as an exact
// substring, with a y->ies plural ("groceries") or with a naive +s
// plural ("rents").
func Category(text string, labels []string) (string, bool) {
	lower := strings.ToLower(text)
	for _, label := range labels {
		base := strings.ToLower(label)

		if strings.Contains(lower, base) {
			return label, true
		}
		if strings.HasSuffix(base, "y") && strings.Contains(lower, base[:len(base)-1]+"ies") {
			return label, true
		}
		if strings.Contains(lower, base+"s") {
			return label, true
		}
	}
	return "", false
}
