package category

import "strings"

// Uncategorized is the fallback category for expenses submitted without one.
const Uncategorized = "Uncategorized"

// Category is an expense category. Key is the normalized identity used for
// grouping; Label is the text shown to the user, taken from the first time
// the category was seen.
type Category struct {
	Key   string
	Label string
}

// Normalize derives the grouping key for a category label. Trimming and
// case-folding keeps "Groceries" and " groceries " from fragmenting into two
// subtotals.
func Normalize(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
