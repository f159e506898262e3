package ledger

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SoloAbyss/Financio/internal/rest"
	log "github.com/sirupsen/logrus"
)

type EntryDTO struct {
	Label     string  `json:"label"`
	Amount    float64 `json:"amount"`
	Frequency string  `json:"frequency"`
	Category  string  `json:"category,omitempty"`
}

type CategoryGroupDTO struct {
	Category string     `json:"category"`
	Entries  []EntryDTO `json:"entries"`
}

type LedgerHandler struct {
	ledgerService LedgerService
}

func NewLedgerHandler(ledgerService LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService}
}

func (handler *LedgerHandler) RegisterIncome(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new income entry")
	w.Header().Set("Content-Type", "application/json")

	var dto EntryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := handler.ledgerService.AddIncome(r.Context(), EntryInput{
		Label:     dto.Label,
		Amount:    dto.Amount,
		Frequency: dto.Frequency,
	})
	if err != nil {
		writeAddEntryError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(entryToDTO(entry)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *LedgerHandler) RegisterExpense(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new expense entry")
	w.Header().Set("Content-Type", "application/json")

	var dto EntryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := handler.ledgerService.AddExpense(r.Context(), EntryInput{
		Label:     dto.Label,
		Amount:    dto.Amount,
		Frequency: dto.Frequency,
		Category:  dto.Category,
	})
	if err != nil {
		writeAddEntryError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(entryToDTO(entry)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *LedgerHandler) ListIncome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	entries, err := handler.ledgerService.ListIncome(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]EntryDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, entryToDTO(entry))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// ListExpenses returns stored expenses either flat (insertion order) or
// grouped by category when the "grouped" query parameter is present.
func (handler *LedgerHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	grouped := r.URL.Query().Has("grouped")

	if grouped {
		groups, err := handler.ledgerService.ListExpensesGrouped(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		dtos := make([]CategoryGroupDTO, 0, len(groups))
		for _, group := range groups {
			entries := make([]EntryDTO, 0, len(group.Entries))
			for _, entry := range group.Entries {
				entries = append(entries, entryToDTO(entry))
			}
			dtos = append(dtos, CategoryGroupDTO{Category: group.Category, Entries: entries})
		}
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(dtos); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	entries, err := handler.ledgerService.ListExpenses(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]EntryDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, entryToDTO(entry))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeAddEntryError(w http.ResponseWriter, err error) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid " + validationErr.Field,
			Details: validationErr.Err.Error(),
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func entryToDTO(entry Entry) EntryDTO {
	return EntryDTO{
		Label:     entry.Label,
		Amount:    entry.Amount,
		Frequency: entry.Frequency.String(),
		Category:  entry.Category,
	}
}
