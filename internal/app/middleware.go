package app

import (
	"errors"
	"net/http"

	"github.com/SoloAbyss/Financio/internal/config"
	"github.com/SoloAbyss/Financio/pkg/session"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Resolve X-Session-Id header into context for downstream services.
	// Requests without the header fall back to the shared default session,
	// matching the single-user desktop embedding.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			sessionIdHeader := req.Header.Get("X-Session-Id")
			if sessionIdHeader == "" {
				sessionIdHeader = session.DefaultId
			}
			ctx := req.Context()

			s, err := deps.SessionStore.Get(ctx, sessionIdHeader)
			if err != nil {
				if errors.Is(err, session.ErrNoSession) {
					log.Debugf("session not found: %s", sessionIdHeader)
					http.Error(w, "session not found", http.StatusForbidden)
					return
				}
				log.Errorf("failed to get session: %v", err)
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			ctx = session.WithSession(ctx, s)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
}
