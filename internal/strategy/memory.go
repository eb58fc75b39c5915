package strategy

import (
	"sync"
	"time"

	"SignalSentry/internal/model"
)

// Memory holds per-symbol signal state: the last emitted direction (for
// dedup) and the last cooldown reservation time. The two maps are tracked
// independently; reserving the cooldown clock does not touch dedup state.
// Lifecycle is tied to the process, nothing is persisted — a restart costs
// at most one duplicate signal.
type Memory struct {
	mu            sync.Mutex
	lastDirection map[string]model.Direction
	lastReserved  map[string]time.Time
	now           func() time.Time
}

// NewMemory creates empty signal memory.
func NewMemory() *Memory {
	return &Memory{
		lastDirection: make(map[string]model.Direction),
		lastReserved:  make(map[string]time.Time),
		now:           time.Now,
	}
}

// LastDirection returns the direction last emitted for symbol, if any.
func (m *Memory) LastDirection(symbol string) (model.Direction, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.lastDirection[symbol]
	return d, ok
}

// RecordEmission stores the direction of an actually emitted signal.
// Called only when a signal goes out, never for suppressed candidates.
func (m *Memory) RecordEmission(symbol string, dir model.Direction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastDirection[symbol] = dir
}

// TryReserve reports whether the cooldown window for symbol has elapsed.
// A symbol never seen before is granted, and every grant resets the clock
// immediately — so the first check for a symbol starts its cooldown even
// if no signal ends up being emitted.
func (m *Memory) TryReserve(symbol string, cooldown time.Duration) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	last, seen := m.lastReserved[symbol]
	if !seen || now.Sub(last) > cooldown {
		m.lastReserved[symbol] = now
		return true
	}
	return false
}
