package frequency

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidAmount rejects amounts that are negative, NaN, or infinite.
	ErrInvalidAmount = errors.New("amount must be a finite, non-negative number")
	// ErrUnknownFrequency rejects values outside the closed frequency set.
	ErrUnknownFrequency = errors.New("unknown frequency")
)

// Normalize expresses amount, recurring at the given frequency, as a total
// per year.
func Normalize(amount float64, from Frequency) (float64, error) {
	if err := checkAmount(amount); err != nil {
		return 0, err
	}
	perYear, ok := occurrencesPerYear[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFrequency, from)
	}
	return amount * perYear, nil
}

// Denormalize expresses a per-year total as an amount per occurrence of the
// given frequency.
func Denormalize(amountPerYear float64, to Frequency) (float64, error) {
	if err := checkAmount(amountPerYear); err != nil {
		return 0, err
	}
	perYear, ok := occurrencesPerYear[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFrequency, to)
	}
	return amountPerYear / perYear, nil
}

// Convert maps an amount recurring at one frequency to the equivalent amount
// at another, using a linear constant-rate model. Converting between
// identical frequencies returns the input unchanged, so a round trip never
// introduces floating point drift. No rounding is applied at this layer.
func Convert(amount float64, from, to Frequency) (float64, error) {
	if from == to {
		if err := checkAmount(amount); err != nil {
			return 0, err
		}
		if !from.IsValid() {
			return 0, fmt.Errorf("%w: %q", ErrUnknownFrequency, from)
		}
		return amount, nil
	}
	perYear, err := Normalize(amount, from)
	if err != nil {
		return 0, err
	}
	return Denormalize(perYear, to)
}

func checkAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	return nil
}
