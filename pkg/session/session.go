package session

import "time"

// Session identifies one user interaction with the application. Each session
// owns an independent ledger; nothing is shared between sessions.
type Session struct {
	Id        string
	CreatedAt time.Time
	LastSeen  time.Time
}

// DefaultId is the session used when a caller does not identify itself.
// It matches the single-user desktop embedding, where the whole process is
// one session.
const DefaultId = "default"
