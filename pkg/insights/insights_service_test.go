package insights

import (
	"context"
	"testing"

	"github.com/SoloAbyss/Financio/internal/event_bus"
	"github.com/SoloAbyss/Financio/pkg/category"
	"github.com/SoloAbyss/Financio/pkg/frequency"
	"github.com/SoloAbyss/Financio/pkg/ledger"
	"github.com/SoloAbyss/Financio/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*InsightsServiceImpl, ledger.LedgerService, context.Context) {
	repo := ledger.NewStubLedgerRepo()
	registry := category.NewRegistry([]string{"Food & Groceries", "Housing"})
	ledgerService := ledger.NewLedgerServiceImpl(repo, registry, event_bus.NewEventBus(), false)
	insightsService := NewInsightsServiceImpl(ledgerService)
	ctx := session.WithSession(context.Background(), session.Session{Id: "insights-test-session"})
	return insightsService, ledgerService, ctx
}

func TestInsightsServiceImpl_Compute(t *testing.T) {
	insightsService, ledgerService, ctx := setup(t)

	// given a monthly income and a weekly expense
	_, err := ledgerService.AddIncome(ctx, ledger.EntryInput{Label: "Salary", Amount: 2000, Frequency: "Monthly"})
	require.NoError(t, err)
	_, err = ledgerService.AddExpense(ctx, ledger.EntryInput{Label: "Weekly shop", Amount: 500, Frequency: "Weekly", Category: "Groceries"})
	require.NoError(t, err)

	// when insights are computed per month
	snapshot, err := insightsService.Compute(ctx, frequency.Monthly)

	// then the weekly expense is scaled by 52/12
	require.NoError(t, err)
	assert.Equal(t, frequency.Monthly, snapshot.Frequency)
	assert.InDelta(t, 2000, snapshot.TotalIncome, 0.01)
	assert.InDelta(t, 2166.67, snapshot.TotalExpenses, 0.01)
	assert.InDelta(t, -166.67, snapshot.Balance, 0.01)
	require.Len(t, snapshot.Categories, 1)
	assert.Equal(t, "Groceries", snapshot.Categories[0].Category)
	assert.InDelta(t, 2166.67, snapshot.Categories[0].Total, 0.01)
	assert.Equal(t, "Your expenses currently exceed your income.", snapshot.Status())
}

func TestInsightsServiceImpl_Compute_emptyLedger(t *testing.T) {
	insightsService, _, ctx := setup(t)

	for _, f := range frequency.All() {
		snapshot, err := insightsService.Compute(ctx, f)

		require.NoError(t, err)
		assert.Zero(t, snapshot.TotalIncome)
		assert.Zero(t, snapshot.TotalExpenses)
		assert.Zero(t, snapshot.Balance)
		assert.Empty(t, snapshot.Categories)
		assert.Equal(t, "Enter income and expenses to see insights.", snapshot.Status())
	}
}

// Total expenses must equal the sum of per-category subtotals for any target
// frequency.
func TestInsightsServiceImpl_Compute_additivity(t *testing.T) {
	insightsService, ledgerService, ctx := setup(t)

	inputs := []ledger.EntryInput{
		{Label: "Rent", Amount: 900, Frequency: "Monthly", Category: "Housing"},
		{Label: "Groceries", Amount: 120, Frequency: "Weekly", Category: "Food & Groceries"},
		{Label: "Coffee", Amount: 4.5, Frequency: "Daily"},
		{Label: "Insurance", Amount: 600, Frequency: "Yearly", Category: "housing"},
	}
	for _, in := range inputs {
		_, err := ledgerService.AddExpense(ctx, in)
		require.NoError(t, err)
	}

	for _, f := range frequency.All() {
		snapshot, err := insightsService.Compute(ctx, f)
		require.NoError(t, err)

		var sum float64
		for _, categoryTotal := range snapshot.Categories {
			sum += categoryTotal.Total
		}
		assert.InDelta(t, snapshot.TotalExpenses, sum, 1e-6, "additivity at %s", f)
	}

	// Casing variants of a category land in one subtotal.
	snapshot, err := insightsService.Compute(ctx, frequency.Monthly)
	require.NoError(t, err)
	assert.Len(t, snapshot.Categories, 3)
	assert.Equal(t, "Housing", snapshot.Categories[0].Category)
	assert.InDelta(t, 900+600.0/12.0, snapshot.Categories[0].Total, 0.01)
}

func TestInsightsServiceImpl_Compute_balancedStatuses(t *testing.T) {
	insightsService, ledgerService, ctx := setup(t)

	_, err := ledgerService.AddIncome(ctx, ledger.EntryInput{Label: "Salary", Amount: 100, Frequency: "Weekly"})
	require.NoError(t, err)
	_, err = ledgerService.AddExpense(ctx, ledger.EntryInput{Label: "Rent", Amount: 100, Frequency: "Weekly", Category: "Housing"})
	require.NoError(t, err)

	snapshot, err := insightsService.Compute(ctx, frequency.Weekly)
	require.NoError(t, err)
	assert.Zero(t, snapshot.Balance)
	assert.Equal(t, "Your income perfectly matches your expenses.", snapshot.Status())

	_, err = ledgerService.AddIncome(ctx, ledger.EntryInput{Label: "Side gig", Amount: 50, Frequency: "Weekly"})
	require.NoError(t, err)
	snapshot, err = insightsService.Compute(ctx, frequency.Weekly)
	require.NoError(t, err)
	assert.Equal(t, "You are within your budget!", snapshot.Status())
}

func TestInsightsServiceImpl_Compute_unknownFrequency(t *testing.T) {
	insightsService, _, ctx := setup(t)

	_, err := insightsService.Compute(ctx, frequency.Frequency("Quarterly"))
	assert.ErrorIs(t, err, frequency.ErrUnknownFrequency)
}

// Recomputation always reflects the current ledger; nothing is cached.
func TestInsightsServiceImpl_Compute_recomputes(t *testing.T) {
	insightsService, ledgerService, ctx := setup(t)

	snapshot, err := insightsService.Compute(ctx, frequency.Weekly)
	require.NoError(t, err)
	assert.Zero(t, snapshot.TotalIncome)

	_, err = ledgerService.AddIncome(ctx, ledger.EntryInput{Label: "Salary", Amount: 100, Frequency: "Weekly"})
	require.NoError(t, err)

	snapshot, err = insightsService.Compute(ctx, frequency.Weekly)
	require.NoError(t, err)
	assert.InDelta(t, 100, snapshot.TotalIncome, 1e-9)
}
