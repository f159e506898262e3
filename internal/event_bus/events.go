package event_bus

const (
	// EntryAdded is published after an income or expense entry is stored.
	EntryAdded EventType = "ledger.entry.added"
	// SessionEvicted is published when an idle session is dropped, so
	// session-scoped state can be released.
	SessionEvicted EventType = "session.evicted"
)

type EntryAddedEvent struct {
	SessionId string
	// Kind is "income" or "expense".
	Kind      string
	Label     string
	Amount    float64
	Frequency string
	// Category is set for expenses only.
	Category string
}

type SessionEvictedEvent struct {
	SessionId string
}
