package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/SoloAbyss/Financio/internal/event_bus"
	"github.com/SoloAbyss/Financio/pkg/category"
	"github.com/SoloAbyss/Financio/pkg/session"
	log "github.com/sirupsen/logrus"
)

type LedgerService interface {
	// AddIncome validates and stores one income entry. On validation failure
	// it returns a *ValidationError and the ledger is left unchanged.
	AddIncome(ctx context.Context, in EntryInput) (Entry, error)
	// AddExpense validates and stores one expense entry. A blank category
	// falls back to category.Uncategorized unless the service requires
	// explicit categorization.
	AddExpense(ctx context.Context, in EntryInput) (Entry, error)
	ListIncome(ctx context.Context) ([]Entry, error)
	ListExpenses(ctx context.Context) ([]Entry, error)
	// ListExpensesGrouped buckets expenses by category; category order is
	// first appearance, entries within a group stay in insertion order.
	ListExpensesGrouped(ctx context.Context) ([]CategoryGroup, error)
}

type LedgerServiceImpl struct {
	repo            LedgerRepo
	categories      category.Registry
	bus             *event_bus.EventBus
	requireCategory bool
}

func NewLedgerServiceImpl(repo LedgerRepo, categories category.Registry, bus *event_bus.EventBus, requireCategory bool) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		repo:            repo,
		categories:      categories,
		bus:             bus,
		requireCategory: requireCategory,
	}
}

func (s *LedgerServiceImpl) AddIncome(ctx context.Context, in EntryInput) (Entry, error) {
	sessionId, err := session.CurrentId(ctx)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to get current session: %w", err)
	}
	entry, err := validateEntry(in)
	if err != nil {
		return Entry{}, err
	}

	if err := s.repo.AppendIncome(ctx, sessionId, entry); err != nil {
		return Entry{}, err
	}
	s.publishEntryAdded(ctx, sessionId, "income", entry)
	return entry, nil
}

func (s *LedgerServiceImpl) AddExpense(ctx context.Context, in EntryInput) (Entry, error) {
	sessionId, err := session.CurrentId(ctx)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to get current session: %w", err)
	}
	entry, err := validateEntry(in)
	if err != nil {
		return Entry{}, err
	}

	label := strings.TrimSpace(in.Category)
	if label == "" {
		if s.requireCategory {
			return Entry{}, &ValidationError{Field: "category", Err: ErrMissingCategory}
		}
		label = category.Uncategorized
	}
	// Reuse the registered display form so differently-cased submissions
	// land in the same subtotal.
	if known, ok := s.categories.Lookup(label); ok {
		label = known.Label
	}
	entry.Category = label

	if err := s.repo.AppendExpense(ctx, sessionId, entry); err != nil {
		return Entry{}, err
	}
	s.publishEntryAdded(ctx, sessionId, "expense", entry)
	return entry, nil
}

func (s *LedgerServiceImpl) ListIncome(ctx context.Context) ([]Entry, error) {
	sessionId, err := session.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current session: %w", err)
	}
	return s.repo.Incomes(ctx, sessionId)
}

func (s *LedgerServiceImpl) ListExpenses(ctx context.Context) ([]Entry, error) {
	sessionId, err := session.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current session: %w", err)
	}
	return s.repo.Expenses(ctx, sessionId)
}

func (s *LedgerServiceImpl) ListExpensesGrouped(ctx context.Context) ([]CategoryGroup, error) {
	expenses, err := s.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	return groupByCategory(expenses), nil
}

// groupByCategory derives the grouped view from the flat expense list.
// Grouping keys are normalized category labels, so the grouping itself never
// fragments on casing or whitespace.
func groupByCategory(expenses []Entry) []CategoryGroup {
	var order []string
	byKey := map[string]*CategoryGroup{}
	for _, e := range expenses {
		key := category.Normalize(e.Category)
		group, ok := byKey[key]
		if !ok {
			group = &CategoryGroup{Category: e.Category}
			byKey[key] = group
			order = append(order, key)
		}
		group.Entries = append(group.Entries, e)
	}

	groups := make([]CategoryGroup, 0, len(order))
	for _, key := range order {
		groups = append(groups, *byKey[key])
	}
	return groups
}

func (s *LedgerServiceImpl) publishEntryAdded(ctx context.Context, sessionId, kind string, entry Entry) {
	if s.bus == nil {
		return
	}
	evt := event_bus.NewEvent(ctx, event_bus.EntryAdded, event_bus.EntryAddedEvent{
		SessionId: sessionId,
		Kind:      kind,
		Label:     entry.Label,
		Amount:    entry.Amount,
		Frequency: entry.Frequency.String(),
		Category:  entry.Category,
	})
	if err := s.bus.Publish(evt); err != nil {
		log.Errorf("failed to publish entry added event: %v", err)
	}
}
