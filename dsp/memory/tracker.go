package memory

import (
	"errors"
	"fmt"
	"sync"
)

// ErrBudgetExceeded is returned by Reserve when the requested bytes would
// push the ledger past its limit.
var ErrBudgetExceeded = errors.New("memory: budget exceeded")

// Stats is a snapshot of the ledger counters.
type Stats struct {
	// Reserves counts successful Reserve calls.
	Reserves int
	// Releases counts Release calls.
	Releases int
	// InUse is the currently reserved byte total.
	InUse int
	// Peak is the highest InUse value observed.
	Peak int
}

// Tracker accounts for scratch memory in bytes.
//
// Each reservation is keyed by its exact byte size: callers pass the same
// size to Release that they passed to Reserve. Fixed-footprint collaborators
// (such as FFT plans) report their internal memory through the same
// Reserve/Release pairing so the ledger covers them too.
//
// A Tracker is safe for concurrent use.
type Tracker struct {
	mu    sync.Mutex
	limit int
	stats Stats
}

// NewTracker returns a Tracker with the given byte limit.
// A limit of 0 or less means unbounded.
func NewTracker(limit int) *Tracker {
	if limit < 0 {
		limit = 0
	}
	return &Tracker{limit: limit}
}

// Reserve records an allocation of the given byte size.
//
// It fails with ErrBudgetExceeded when the reservation would exceed the
// limit; a failed reservation does not change the ledger.
func (t *Tracker) Reserve(bytes int) error {
	if bytes < 0 {
		return fmt.Errorf("memory: reservation size must be >= 0: %d", bytes)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.limit > 0 && t.stats.InUse+bytes > t.limit {
		return fmt.Errorf("%w: %d + %d > limit %d", ErrBudgetExceeded, t.stats.InUse, bytes, t.limit)
	}

	t.stats.Reserves++
	t.stats.InUse += bytes
	if t.stats.InUse > t.stats.Peak {
		t.stats.Peak = t.stats.InUse
	}

	return nil
}

// Release records the return of a reservation of the given byte size.
// Sizes that would drive the ledger negative are clamped.
func (t *Tracker) Release(bytes int) {
	if bytes < 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.stats.Releases++
	t.stats.InUse -= bytes
	if t.stats.InUse < 0 {
		t.stats.InUse = 0
	}
}

// Stats returns a snapshot of the ledger counters.
func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.stats
}

// Limit returns the configured byte limit, 0 meaning unbounded.
func (t *Tracker) Limit() int {
	return t.limit
}

// Balanced reports whether every reservation has been released.
func (t *Tracker) Balanced() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.stats.Reserves == t.stats.Releases && t.stats.InUse == 0
}
