package tbool

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Sync is a Bool guarded by a mutex, for values shared between goroutines.
// Like Bool it owns no timer; readers still observe expiry lazily.
type Sync struct {
	mu sync.Mutex
	b  Bool
}

// NewSync returns a false Sync with the given life, clamped as in
// NewWithLife.
func NewSync(life time.Duration) *Sync {
	return &Sync{b: NewWithLife(life)}
}

func newSyncWithClock(c clock.Clock, life time.Duration) *Sync {
	return &Sync{b: newWithClock(c, life)}
}

// Set assigns v and returns it.
func (s *Sync) Set(v bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Set(v)
}

// Get reports whether the value is still true.
func (s *Sync) Get() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Get()
}

// Equal reports whether the current value is v.
func (s *Sync) Equal(v bool) bool {
	return s.Get() == v
}

// Life returns the configured life.
func (s *Sync) Life() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Life()
}

// SetLife replaces the life, applied retroactively as in (*Bool).SetLife.
func (s *Sync) SetLife(life time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.b.SetLife(life)
}

// Snapshot returns a copy of the underlying Bool. The copy decays on its own
// and is not affected by later changes to s.
func (s *Sync) Snapshot() Bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b
}
