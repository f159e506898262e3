package session

import (
	"context"
	"sync"
	"time"

	"github.com/SoloAbyss/Financio/internal/event_bus"
	"github.com/SoloAbyss/Financio/internal/utils"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Store interface {
	// Create registers a new session with a generated ID.
	Create(ctx context.Context) (Session, error)
	// Get returns the session with the given ID and marks it as seen.
	Get(ctx context.Context, id string) (Session, error)
}

type InMemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	clock    utils.Clock
	maxIdle  time.Duration
	bus      *event_bus.EventBus
}

// NewInMemoryStore creates a session store that evicts sessions idle for
// longer than maxIdle. The default session is created eagerly and is never
// evicted. Evictions are announced on the event bus so session-scoped state
// held elsewhere (the ledger) can be released.
func NewInMemoryStore(clock utils.Clock, maxIdle time.Duration, bus *event_bus.EventBus) *InMemoryStore {
	now := clock.Now()
	return &InMemoryStore{
		sessions: map[string]*Session{
			DefaultId: {Id: DefaultId, CreatedAt: now, LastSeen: now},
		},
		clock:   clock,
		maxIdle: maxIdle,
		bus:     bus,
	}
}

func (s *InMemoryStore) Create(ctx context.Context) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictIdle(ctx)

	now := s.clock.Now()
	created := &Session{
		Id:        uuid.NewString(),
		CreatedAt: now,
		LastSeen:  now,
	}
	s.sessions[created.Id] = created
	log.Debugf("created session %s", created.Id)
	return *created, nil
}

func (s *InMemoryStore) Get(ctx context.Context, id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictIdle(ctx)

	found, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrNoSession
	}
	found.LastSeen = s.clock.Now()
	return *found, nil
}

// evictIdle drops sessions whose last activity is older than maxIdle.
// Callers must hold the lock.
func (s *InMemoryStore) evictIdle(ctx context.Context) {
	if s.maxIdle <= 0 {
		return
	}
	cutoff := s.clock.Now().Add(-s.maxIdle)
	for id, sess := range s.sessions {
		if id == DefaultId || !sess.LastSeen.Before(cutoff) {
			continue
		}
		delete(s.sessions, id)
		log.Infof("evicted idle session %s (last seen %s)", id, sess.LastSeen)
		if s.bus != nil {
			evt := event_bus.NewEvent(ctx, event_bus.SessionEvicted, event_bus.SessionEvictedEvent{SessionId: id})
			if err := s.bus.Publish(evt); err != nil {
				log.Errorf("failed to publish session eviction: %v", err)
			}
		}
	}
}
