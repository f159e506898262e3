package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SoloAbyss/Financio/internal/event_bus"
	"github.com/SoloAbyss/Financio/pkg/category"
	"github.com/SoloAbyss/Financio/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithSession(ctx context.Context) context.Context {
	return session.WithSession(ctx, session.Session{Id: "handler-test-session"})
}

// Test setup helper
func setupHandlerTest(t *testing.T) *LedgerHandler {
	repo := NewStubLedgerRepo()
	registry := category.NewRegistry([]string{"Housing"})
	service := NewLedgerServiceImpl(repo, registry, event_bus.NewEventBus(), false)
	return NewLedgerHandler(service)
}

func postEntry(t *testing.T, handler http.HandlerFunc, path string, dto EntryDTO) *httptest.ResponseRecorder {
	body, err := json.Marshal(dto)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req.WithContext(contextWithSession(req.Context())))
	return w
}

func TestRegisterIncome(t *testing.T) {
	handler := setupHandlerTest(t)

	w := postEntry(t, handler.RegisterIncome, "/api/income", EntryDTO{
		Label:     "Salary",
		Amount:    2000,
		Frequency: "Monthly",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var created EntryDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	assert.Equal(t, EntryDTO{Label: "Salary", Amount: 2000, Frequency: "Monthly"}, created)
}

func TestRegisterIncome_emptyLabel(t *testing.T) {
	handler := setupHandlerTest(t)

	w := postEntry(t, handler.RegisterIncome, "/api/income", EntryDTO{
		Label:     "",
		Amount:    100,
		Frequency: "Weekly",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var errResponse struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&errResponse))
	assert.Equal(t, "Invalid label", errResponse.Error)

	// And the ledger stays empty.
	req := httptest.NewRequest(http.MethodGet, "/api/income", nil)
	list := httptest.NewRecorder()
	handler.ListIncome(list, req.WithContext(contextWithSession(req.Context())))
	assert.Equal(t, http.StatusOK, list.Code)
	assert.JSONEq(t, "[]", list.Body.String())
}

func TestRegisterExpense_negativeAmount(t *testing.T) {
	handler := setupHandlerTest(t)

	w := postEntry(t, handler.RegisterExpense, "/api/expense", EntryDTO{
		Label:     "Rent",
		Amount:    -50,
		Frequency: "Monthly",
		Category:  "Housing",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var errResponse struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&errResponse))
	assert.Equal(t, "Invalid amount", errResponse.Error)
}

func TestListExpenses_grouped(t *testing.T) {
	handler := setupHandlerTest(t)

	for _, dto := range []EntryDTO{
		{Label: "Rent", Amount: 900, Frequency: "Monthly", Category: "Housing"},
		{Label: "Netflix", Amount: 15, Frequency: "Monthly", Category: "Subscriptions"},
		{Label: "Electricity", Amount: 60, Frequency: "Monthly", Category: "Housing"},
	} {
		w := postEntry(t, handler.RegisterExpense, "/api/expense", dto)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/expenses?grouped", nil)
	w := httptest.NewRecorder()
	handler.ListExpenses(w, req.WithContext(contextWithSession(req.Context())))

	assert.Equal(t, http.StatusOK, w.Code)
	var groups []CategoryGroupDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&groups))
	require.Len(t, groups, 2)
	assert.Equal(t, "Housing", groups[0].Category)
	assert.Len(t, groups[0].Entries, 2)
	assert.Equal(t, "Subscriptions", groups[1].Category)
}
