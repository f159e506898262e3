package frequency

import (
	"fmt"
	"strings"
)

// Frequency is a recurrence rate for an income or expense entry. The set of
// valid frequencies is closed: every value maps to an exact number of
// occurrences per year, which is the basis for all conversions.
type Frequency string

const (
	Daily       Frequency = "Daily"
	Weekly      Frequency = "Weekly"
	Fortnightly Frequency = "Fortnightly"
	Monthly     Frequency = "Monthly"
	Yearly      Frequency = "Yearly"
)

// occurrencesPerYear is the canonical conversion table. Monthly amounts use
// the fixed 12-per-year average rather than calendar month lengths.
var occurrencesPerYear = map[Frequency]float64{
	Daily:       365,
	Weekly:      52,
	Fortnightly: 26,
	Monthly:     12,
	Yearly:      1,
}

// All returns every valid frequency in display order, for populating
// selection controls.
func All() []Frequency {
	return []Frequency{Daily, Weekly, Fortnightly, Monthly, Yearly}
}

// Parse converts user-supplied text into a Frequency. Matching is
// case-insensitive and ignores surrounding whitespace; "biweekly" is accepted
// as an alias for Fortnightly. Anything outside the closed set is rejected
// with ErrUnknownFrequency - never silently defaulted.
func Parse(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily":
		return Daily, nil
	case "weekly":
		return Weekly, nil
	case "fortnightly", "biweekly":
		return Fortnightly, nil
	case "monthly":
		return Monthly, nil
	case "yearly":
		return Yearly, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFrequency, s)
}

// IsValid reports whether f is a member of the closed frequency set.
func (f Frequency) IsValid() bool {
	_, ok := occurrencesPerYear[f]
	return ok
}

func (f Frequency) String() string {
	return string(f)
}
