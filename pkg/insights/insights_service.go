package insights

import (
	"context"
	"fmt"

	"github.com/SoloAbyss/Financio/pkg/category"
	"github.com/SoloAbyss/Financio/pkg/frequency"
	"github.com/SoloAbyss/Financio/pkg/ledger"
)

type InsightsService interface {
	// Compute converts every stored entry to the target frequency and folds
	// the results into a Snapshot. An empty ledger yields all-zero totals and
	// no per-category rows; it is not an error.
	Compute(ctx context.Context, target frequency.Frequency) (Snapshot, error)
}

type InsightsServiceImpl struct {
	ledgerService ledger.LedgerService
}

func NewInsightsServiceImpl(ledgerService ledger.LedgerService) *InsightsServiceImpl {
	return &InsightsServiceImpl{ledgerService: ledgerService}
}

func (s *InsightsServiceImpl) Compute(ctx context.Context, target frequency.Frequency) (Snapshot, error) {
	if !target.IsValid() {
		return Snapshot{}, fmt.Errorf("%w: %q", frequency.ErrUnknownFrequency, target)
	}

	incomes, err := s.ledgerService.ListIncome(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	expenses, err := s.ledgerService.ListExpenses(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	snapshot := Snapshot{
		Frequency:  target,
		hasEntries: len(incomes) > 0 || len(expenses) > 0,
	}

	for _, entry := range incomes {
		converted, err := frequency.Convert(entry.Amount, entry.Frequency, target)
		if err != nil {
			return Snapshot{}, fmt.Errorf("failed to convert income %q: %w", entry.Label, err)
		}
		snapshot.TotalIncome += converted
	}

	var order []string
	perCategory := map[string]*CategoryTotal{}
	for _, entry := range expenses {
		converted, err := frequency.Convert(entry.Amount, entry.Frequency, target)
		if err != nil {
			return Snapshot{}, fmt.Errorf("failed to convert expense %q: %w", entry.Label, err)
		}
		snapshot.TotalExpenses += converted

		key := category.Normalize(entry.Category)
		total, ok := perCategory[key]
		if !ok {
			total = &CategoryTotal{Category: entry.Category}
			perCategory[key] = total
			order = append(order, key)
		}
		total.Total += converted
	}

	snapshot.Categories = make([]CategoryTotal, 0, len(order))
	for _, key := range order {
		snapshot.Categories = append(snapshot.Categories, *perCategory[key])
	}
	snapshot.Balance = snapshot.TotalIncome - snapshot.TotalExpenses
	return snapshot, nil
}
