package insights

import (
	"encoding/json"
	"net/http"

	"github.com/SoloAbyss/Financio/internal/rest"
	"github.com/SoloAbyss/Financio/pkg/frequency"
)

type CategoryTotalDTO struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type SnapshotDTO struct {
	Frequency     string             `json:"frequency"`
	TotalIncome   float64            `json:"totalIncome"`
	TotalExpenses float64            `json:"totalExpenses"`
	Balance       float64            `json:"balance"`
	Categories    []CategoryTotalDTO `json:"categories"`
	Status        string             `json:"status"`
}

type InsightsHandler struct {
	insightsService  InsightsService
	snapshotRenderer SnapshotRenderer
	defaultFrequency frequency.Frequency
}

func NewInsightsHandler(insightsService InsightsService, snapshotRenderer SnapshotRenderer, defaultFrequency frequency.Frequency) *InsightsHandler {
	return &InsightsHandler{insightsService, snapshotRenderer, defaultFrequency}
}

// GetInsights computes totals for the frequency given in the "frequency"
// query parameter (falling back to the configured default). With
// "Accept: text/csv" the snapshot is rendered as CSV instead of JSON.
func (handler *InsightsHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	target := handler.defaultFrequency
	if frequencyParam := r.URL.Query().Get("frequency"); frequencyParam != "" {
		parsed, err := frequency.Parse(frequencyParam)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid frequency",
				Details: err.Error(),
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		target = parsed
	}

	snapshot, err := handler.insightsService.Compute(r.Context(), target)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.Header.Get("Accept") == "text/csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		csv, err := handler.snapshotRenderer.RenderSnapshot(snapshot)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(csv)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(snapshotToDTO(snapshot)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func snapshotToDTO(snapshot Snapshot) SnapshotDTO {
	categories := make([]CategoryTotalDTO, 0, len(snapshot.Categories))
	for _, categoryTotal := range snapshot.Categories {
		categories = append(categories, CategoryTotalDTO{
			Category: categoryTotal.Category,
			Total:    categoryTotal.Total,
		})
	}
	return SnapshotDTO{
		Frequency:     snapshot.Frequency.String(),
		TotalIncome:   snapshot.TotalIncome,
		TotalExpenses: snapshot.TotalExpenses,
		Balance:       snapshot.Balance,
		Categories:    categories,
		Status:        snapshot.Status(),
	}
}
