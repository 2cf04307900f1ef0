package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/game"
)

// hostedGame guards one session; every access goes through mu.
type hostedGame struct {
	mu        sync.Mutex
	id        uuid.UUID
	session   *game.Session
	startedAt time.Time
	endedAt   *time.Time
}

// markEnded records the end time once. Callers hold mu.
func (h *hostedGame) markEnded() {
	if h.endedAt == nil && h.session.Over() {
		now := time.Now().UTC()
		h.endedAt = &now
	}
}

type registry struct {
	mu    sync.RWMutex
	games map[uuid.UUID]*hostedGame
}

func newRegistry() *registry {
	return &registry{games: make(map[uuid.UUID]*hostedGame)}
}

func (r *registry) add(s *game.Session) *hostedGame {
	h := &hostedGame{
		id:        uuid.New(),
		session:   s,
		startedAt: time.Now().UTC(),
	}
	r.mu.Lock()
	r.games[h.id] = h
	r.mu.Unlock()
	return h
}

func (r *registry) get(id string) (*hostedGame, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, false
	}
	r.mu.RLock()
	h, ok := r.games[parsed]
	r.mu.RUnlock()
	return h, ok
}

func (r *registry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}
