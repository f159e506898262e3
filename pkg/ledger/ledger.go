package ledger

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/SoloAbyss/Financio/pkg/frequency"
)

var (
	// ErrEmptyLabel rejects entries whose label is empty after trimming.
	ErrEmptyLabel = errors.New("label must not be empty")
	// ErrMissingCategory rejects uncategorized expenses when the service is
	// configured to require explicit categorization.
	ErrMissingCategory = errors.New("category must not be empty")
)

// Entry is one recorded income source or expense line. Entries are immutable
// once stored and live for the duration of the session.
type Entry struct {
	Label  string
	Amount float64
	// Frequency is how often the amount recurs.
	Frequency frequency.Frequency
	// Category is set for expenses only; income entries leave it empty.
	Category string
}

// EntryInput is the raw entry data collected by the presentation layer,
// before validation.
type EntryInput struct {
	Label     string
	Amount    float64
	Frequency string
	Category  string
}

// CategoryGroup is a read-only view of the expenses belonging to one
// category, in insertion order.
type CategoryGroup struct {
	Category string
	Entries  []Entry
}

// ValidationError reports which field of a submitted entry failed
// validation. It wraps one of the taxonomy sentinels (ErrEmptyLabel,
// frequency.ErrInvalidAmount, frequency.ErrUnknownFrequency,
// ErrMissingCategory) so callers can branch with errors.Is.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// validateEntry checks the shared entry invariants and returns the validated
// entry with its label trimmed and frequency parsed. The category field is
// handled separately by AddExpense.
func validateEntry(in EntryInput) (Entry, error) {
	label := strings.TrimSpace(in.Label)
	if label == "" {
		return Entry{}, &ValidationError{Field: "label", Err: ErrEmptyLabel}
	}
	if math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) || in.Amount < 0 {
		return Entry{}, &ValidationError{
			Field: "amount",
			Err:   fmt.Errorf("%w: %v", frequency.ErrInvalidAmount, in.Amount),
		}
	}
	freq, err := frequency.Parse(in.Frequency)
	if err != nil {
		return Entry{}, &ValidationError{Field: "frequency", Err: err}
	}
	return Entry{Label: label, Amount: in.Amount, Frequency: freq}, nil
}
