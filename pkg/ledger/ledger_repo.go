package ledger

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// LedgerRepo stores the entry collections, keyed by session. Entries are
// append-only and kept in insertion order.
type LedgerRepo interface {
	AppendIncome(ctx context.Context, sessionId string, entry Entry) error
	AppendExpense(ctx context.Context, sessionId string, entry Entry) error
	Incomes(ctx context.Context, sessionId string) ([]Entry, error)
	Expenses(ctx context.Context, sessionId string) ([]Entry, error)
}

type sessionLedger struct {
	incomes  []Entry
	expenses []Entry
}

// InMemoryLedgerRepo keeps every session's ledger in process memory. The
// mutex protects the session map when the repo is shared by an embedding
// server; within one session each ledger is mutated by a single actor.
type InMemoryLedgerRepo struct {
	mu      sync.RWMutex
	ledgers map[string]*sessionLedger
}

func NewInMemoryLedgerRepo() *InMemoryLedgerRepo {
	return &InMemoryLedgerRepo{ledgers: map[string]*sessionLedger{}}
}

func (r *InMemoryLedgerRepo) AppendIncome(ctx context.Context, sessionId string, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := r.ledgerForSession(sessionId)
	l.incomes = append(l.incomes, entry)
	return nil
}

func (r *InMemoryLedgerRepo) AppendExpense(ctx context.Context, sessionId string, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := r.ledgerForSession(sessionId)
	l.expenses = append(l.expenses, entry)
	return nil
}

func (r *InMemoryLedgerRepo) Incomes(ctx context.Context, sessionId string) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if l, ok := r.ledgers[sessionId]; ok {
		out := make([]Entry, len(l.incomes))
		copy(out, l.incomes)
		return out, nil
	}
	return nil, nil
}

func (r *InMemoryLedgerRepo) Expenses(ctx context.Context, sessionId string) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if l, ok := r.ledgers[sessionId]; ok {
		out := make([]Entry, len(l.expenses))
		copy(out, l.expenses)
		return out, nil
	}
	return nil, nil
}

// DropSession releases all entries held for the given session. Wired to
// session eviction events by the application.
func (r *InMemoryLedgerRepo) DropSession(sessionId string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ledgers[sessionId]; ok {
		delete(r.ledgers, sessionId)
		log.Debugf("dropped ledger for session %s", sessionId)
	}
}

// ledgerForSession returns the ledger for sessionId, creating it on first
// use. Callers must hold the write lock.
func (r *InMemoryLedgerRepo) ledgerForSession(sessionId string) *sessionLedger {
	l, ok := r.ledgers[sessionId]
	if !ok {
		l = &sessionLedger{}
		r.ledgers[sessionId] = l
	}
	return l
}
