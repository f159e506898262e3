package app

import (
	"github.com/SoloAbyss/Financio/internal/config"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Sessions
	r.HandleFunc("/api/session", deps.SessionHandler.CreateSession).Methods("POST")
	r.HandleFunc("/api/session/current", deps.SessionHandler.CurrentSession).Methods("GET")

	// Selection controls
	r.HandleFunc("/api/frequencies", deps.FrequencyHandler.ListFrequencies).Methods("GET")
	r.HandleFunc("/api/categories", deps.CategoryHandler.ListCategories).Methods("GET")

	// Ledger entries
	r.HandleFunc("/api/income", deps.LedgerHandler.RegisterIncome).Methods("POST")
	r.HandleFunc("/api/income", deps.LedgerHandler.ListIncome).Methods("GET")
	r.HandleFunc("/api/expense", deps.LedgerHandler.RegisterExpense).Methods("POST")
	r.HandleFunc("/api/expenses", deps.LedgerHandler.ListExpenses).Methods("GET")

	// Insights
	r.HandleFunc("/api/insights", deps.InsightsHandler.GetInsights).Methods("GET")
}
