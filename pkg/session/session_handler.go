package session

import (
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

type SessionDTO struct {
	Id        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store}
}

// CreateSession starts a new session and returns its ID. Callers pass the ID
// back in the X-Session-Id header on subsequent requests.
func (handler *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new session")
	w.Header().Set("Content-Type", "application/json")

	created, err := handler.store.Create(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(SessionDTO{Id: created.Id, CreatedAt: created.CreatedAt}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// CurrentSession returns the session resolved for this request.
func (handler *Handler) CurrentSession(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	current, err := Current(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	if err := json.NewEncoder(w).Encode(SessionDTO{Id: current.Id, CreatedAt: current.CreatedAt}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
