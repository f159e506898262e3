package category

import (
	"encoding/json"
	"net/http"
)

type Handler struct {
	registry Registry
}

func NewHandler(registry Registry) *Handler {
	return &Handler{registry}
}

// ListCategories returns all available expense categories, including custom
// ones picked up from submitted expenses.
func (handler *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	categories := handler.registry.All()
	labels := make([]string, 0, len(categories))
	for _, c := range categories {
		labels = append(labels, c.Label)
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(labels); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
