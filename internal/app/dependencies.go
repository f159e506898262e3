package app

import (
	"fmt"
	"time"

	"github.com/SoloAbyss/Financio/internal/config"
	"github.com/SoloAbyss/Financio/internal/event_bus"
	"github.com/SoloAbyss/Financio/internal/utils"
	"github.com/SoloAbyss/Financio/pkg/category"
	"github.com/SoloAbyss/Financio/pkg/frequency"
	"github.com/SoloAbyss/Financio/pkg/insights"
	"github.com/SoloAbyss/Financio/pkg/ledger"
	"github.com/SoloAbyss/Financio/pkg/session"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus *event_bus.EventBus

	SessionStore   session.Store
	SessionHandler *session.Handler

	FrequencyHandler *frequency.Handler

	CategoryRegistry category.Registry
	CategoryHandler  *category.Handler

	LedgerRepo    ledger.LedgerRepo
	LedgerService *ledger.LedgerServiceImpl
	LedgerHandler *ledger.LedgerHandler

	InsightsService  *insights.InsightsServiceImpl
	SnapshotRenderer *insights.CsvSnapshotRendererImpl
	InsightsHandler  *insights.InsightsHandler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	defaultFrequency, err := frequency.Parse(cfg.Budget.DefaultFrequency)
	if err != nil {
		return nil, fmt.Errorf("invalid budget.defaultfrequency: %w", err)
	}

	deps.Bus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	maxIdle := time.Duration(cfg.Session.MaxIdleMinutes) * time.Minute
	deps.SessionStore = session.NewInMemoryStore(deps.Clock, maxIdle, deps.Bus)
	deps.SessionHandler = session.NewHandler(deps.SessionStore)

	deps.FrequencyHandler = frequency.NewHandler()

	deps.CategoryRegistry = category.NewRegistry(cfg.Budget.Categories)
	deps.CategoryHandler = category.NewHandler(deps.CategoryRegistry)

	ledgerRepo := ledger.NewInMemoryLedgerRepo()
	deps.LedgerRepo = ledgerRepo
	deps.LedgerService = ledger.NewLedgerServiceImpl(deps.LedgerRepo, deps.CategoryRegistry, deps.Bus, cfg.Budget.RequireCategory)
	deps.LedgerHandler = ledger.NewLedgerHandler(deps.LedgerService)

	deps.InsightsService = insights.NewInsightsServiceImpl(deps.LedgerService)
	deps.SnapshotRenderer = insights.NewCsvSnapshotRenderer()
	deps.InsightsHandler = insights.NewInsightsHandler(deps.InsightsService, deps.SnapshotRenderer, defaultFrequency)

	// Custom categories become available for selection as soon as an
	// expense referencing them is stored.
	event_bus.SubscribeTyped[event_bus.EntryAddedEvent](deps.Bus, event_bus.EntryAdded,
		func(e event_bus.EventT[event_bus.EntryAddedEvent]) error {
			if e.Data.Category != "" {
				deps.CategoryRegistry.Register(e.Data.Category)
			}
			return nil
		})

	// Evicted sessions must not leak their ledgers.
	event_bus.SubscribeTyped[event_bus.SessionEvictedEvent](deps.Bus, event_bus.SessionEvicted,
		func(e event_bus.EventT[event_bus.SessionEvictedEvent]) error {
			ledgerRepo.DropSession(e.Data.SessionId)
			return nil
		})

	return deps, nil
}
