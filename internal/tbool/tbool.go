// Package tbool provides a temporal boolean: a value that reads true for a
// fixed life after being set true and then decays back to false on its own.
//
// There is no timer or goroutine behind a Bool. Expiry is never an event; it
// is recomputed on every read from the instant the value was last set and
// the configured life.
package tbool

import (
	"time"

	"github.com/benbjohnson/clock"
)

// DefaultLife is the life of a Bool built with New.
const DefaultLife = 500 * time.Millisecond

// Bool is a boolean that reverts from true to false once its life has
// elapsed since the last Set(true).
//
// The zero value is usable: it has a zero life and always reads false.
// Copying a Bool produces an independent value. A Bool is not safe for
// concurrent use; see Sync.
type Bool struct {
	setAt time.Time
	life  time.Duration
	clock clock.Clock
}

// New returns a false Bool with DefaultLife.
func New() Bool {
	return NewWithLife(DefaultLife)
}

// NewWithLife returns a false Bool with the given life. A negative life is
// clamped to zero, and a Bool with zero life never reads true.
func NewWithLife(life time.Duration) Bool {
	return newWithClock(nil, life)
}

func newWithClock(c clock.Clock, life time.Duration) Bool {
	b := Bool{clock: c}
	b.SetLife(life)
	b.SetFalse()
	return b
}

// now uses time.Now, whose monotonic reading keeps Sub immune to wall
// clock adjustments.
func (b *Bool) now() time.Time {
	if b.clock == nil {
		return time.Now()
	}
	return b.clock.Now()
}

// Set assigns v and returns it. Setting true while already true restarts
// the life from now.
func (b *Bool) Set(v bool) bool {
	if v {
		b.SetTrue()
	} else {
		b.SetFalse()
	}
	return v
}

// SetTrue anchors the value at the current instant.
func (b *Bool) SetTrue() {
	b.setAt = b.now()
}

// SetFalse backdates the set instant by one life so the value has already
// expired.
func (b *Bool) SetFalse() {
	b.setAt = b.now().Add(-b.life)
}

// Get reports whether less than one life has elapsed since the value was
// last set true.
func (b *Bool) Get() bool {
	return b.now().Sub(b.setAt) < b.life
}

// Equal reports whether the current value is v.
func (b *Bool) Equal(v bool) bool {
	return b.Get() == v
}

// Equal reports whether v matches the current value of b. It is the
// reversed-operand form of (*Bool).Equal.
func Equal(v bool, b *Bool) bool {
	return v == b.Get()
}

// Life returns the configured life.
func (b *Bool) Life() time.Duration {
	return b.life
}

// SetLife replaces the life. The set instant is left alone, so the new life
// applies retroactively: a true value may expire at once, and a recently
// cleared value may read true again if the new life covers the time since
// it was last set. Negative values are clamped to zero.
func (b *Bool) SetLife(life time.Duration) {
	if life < 0 {
		life = 0
	}
	b.life = life
}

func (b *Bool) String() string {
	if b.Get() {
		return "true"
	}
	return "false"
}
