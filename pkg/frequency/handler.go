package frequency

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// ListFrequencies returns every valid frequency in display order.
func (handler *Handler) ListFrequencies(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	frequencies := All()
	names := make([]string, 0, len(frequencies))
	for _, f := range frequencies {
		names = append(names, f.String())
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(names); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
