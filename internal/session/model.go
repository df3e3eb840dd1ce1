package session

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/fkhayef/dutreat/internal/participant"
	"github.com/fkhayef/dutreat/internal/split"
)

// Session is one browser's calculator: its own participant registry
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	registry   *participant.Registry
	lastAccess atomic.Int64
}

func (s *Session) touch(now time.Time) {
	s.lastAccess.Store(now.UnixNano())
}

func (s *Session) lastSeen() time.Time {
	return time.Unix(0, s.lastAccess.Load())
}

// Snapshot is a read-only view of a session
type Snapshot struct {
	ID           string
	CreatedAt    time.Time
	Participants []participant.Participant
}

// Calculation is the outcome of splitting a total among a session's participants
type Calculation struct {
	Results []split.Result
	Total   int64
}
