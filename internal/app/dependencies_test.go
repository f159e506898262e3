package app

import (
	"context"
	"testing"

	"github.com/SoloAbyss/Financio/internal/config"
	"github.com/SoloAbyss/Financio/internal/event_bus"
	"github.com/SoloAbyss/Financio/pkg/ledger"
	"github.com/SoloAbyss/Financio/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Application {
	return config.Application{
		Host: ":0",
		Budget: config.Budget{
			DefaultFrequency: "Weekly",
			Categories:       []string{"Housing"},
		},
		Session: config.Session{MaxIdleMinutes: 60},
	}
}

func TestBuildDependencies_invalidDefaultFrequency(t *testing.T) {
	cfg := testConfig()
	cfg.Budget.DefaultFrequency = "Quarterly"

	_, err := BuildDependencies(cfg)
	assert.Error(t, err)
}

// Adding an expense with an unknown category must make that category
// available for selection, through the entry-added subscription.
func TestBuildDependencies_registersCustomCategories(t *testing.T) {
	deps, err := BuildDependencies(testConfig())
	require.NoError(t, err)
	ctx := session.WithSession(context.Background(), session.Session{Id: "wiring-test-session"})

	_, err = deps.LedgerService.AddExpense(ctx, ledger.EntryInput{
		Label:     "Dog food",
		Amount:    30,
		Frequency: "Monthly",
		Category:  "Pets",
	})
	require.NoError(t, err)

	labels := make([]string, 0)
	for _, c := range deps.CategoryRegistry.All() {
		labels = append(labels, c.Label)
	}
	assert.Equal(t, []string{"Housing", "Pets"}, labels)

	// A second submission with different casing reuses the registered form.
	entry, err := deps.LedgerService.AddExpense(ctx, ledger.EntryInput{
		Label:     "Vet",
		Amount:    80,
		Frequency: "Yearly",
		Category:  "  pets ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pets", entry.Category)
	assert.Len(t, deps.CategoryRegistry.All(), 2)
}

// A session eviction announcement must release that session's ledger
// without touching other sessions.
func TestBuildDependencies_releasesEvictedSessionLedger(t *testing.T) {
	deps, err := BuildDependencies(testConfig())
	require.NoError(t, err)
	evictedCtx := session.WithSession(context.Background(), session.Session{Id: "evicted-session"})
	survivorCtx := session.WithSession(context.Background(), session.Session{Id: "survivor-session"})

	_, err = deps.LedgerService.AddIncome(evictedCtx, ledger.EntryInput{Label: "Salary", Amount: 100, Frequency: "Weekly"})
	require.NoError(t, err)
	_, err = deps.LedgerService.AddIncome(survivorCtx, ledger.EntryInput{Label: "Salary", Amount: 200, Frequency: "Weekly"})
	require.NoError(t, err)

	evt := event_bus.NewEvent(context.Background(), event_bus.SessionEvicted,
		event_bus.SessionEvictedEvent{SessionId: "evicted-session"})
	require.NoError(t, deps.Bus.Publish(evt))

	stored, err := deps.LedgerService.ListIncome(evictedCtx)
	require.NoError(t, err)
	assert.Empty(t, stored)

	kept, err := deps.LedgerService.ListIncome(survivorCtx)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}
