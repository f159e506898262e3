package insights

import (
	"github.com/SoloAbyss/Financio/pkg/frequency"
)

// CategoryTotal is the expense subtotal for one category, expressed in the
// snapshot's frequency.
type CategoryTotal struct {
	Category string
	Total    float64
}

// Snapshot holds the computed totals for one target frequency. It is
// ephemeral: recomputed on every request, never stored.
type Snapshot struct {
	Frequency     frequency.Frequency
	TotalIncome   float64
	TotalExpenses float64
	Balance       float64
	// Categories lists per-category expense subtotals in first-seen order.
	Categories []CategoryTotal
	hasEntries bool
}

// Status is the human-readable budget verdict shown under the totals.
func (s Snapshot) Status() string {
	switch {
	case !s.hasEntries:
		return "Enter income and expenses to see insights."
	case s.Balance > 0:
		return "You are within your budget!"
	case s.Balance < 0:
		return "Your expenses currently exceed your income."
	}
	return "Your income perfectly matches your expenses."
}
