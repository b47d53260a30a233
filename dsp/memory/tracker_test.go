package memory

import (
	"errors"
	"sync"
	"testing"
)

func TestTracker_ReserveRelease(t *testing.T) {
	tr := NewTracker(0)

	if err := tr.Reserve(64); err != nil {
		t.Fatalf("Reserve(64): %v", err)
	}

	if err := tr.Reserve(32); err != nil {
		t.Fatalf("Reserve(32): %v", err)
	}

	s := tr.Stats()
	if s.Reserves != 2 || s.InUse != 96 || s.Peak != 96 {
		t.Errorf("after reserves: %+v", s)
	}

	tr.Release(64)
	tr.Release(32)

	s = tr.Stats()
	if s.Releases != 2 || s.InUse != 0 {
		t.Errorf("after releases: %+v", s)
	}

	if s.Peak != 96 {
		t.Errorf("Peak: got %d, want 96", s.Peak)
	}

	if !tr.Balanced() {
		t.Error("tracker should be balanced")
	}
}

func TestTracker_Limit(t *testing.T) {
	tr := NewTracker(100)

	if err := tr.Reserve(100); err != nil {
		t.Fatalf("Reserve(100): %v", err)
	}

	err := tr.Reserve(1)
	if !errors.Is(err, ErrBudgetExceeded) {
		t.Fatalf("Reserve over limit: got %v, want ErrBudgetExceeded", err)
	}

	// A failed reservation must not change the ledger.
	s := tr.Stats()
	if s.Reserves != 1 || s.InUse != 100 {
		t.Errorf("after failed reserve: %+v", s)
	}

	tr.Release(100)

	if !tr.Balanced() {
		t.Error("tracker should be balanced after releasing")
	}
}

func TestTracker_NegativeSize(t *testing.T) {
	tr := NewTracker(0)

	if err := tr.Reserve(-1); err == nil {
		t.Error("Reserve(-1) should fail")
	}

	tr.Release(-1)

	s := tr.Stats()
	if s.Reserves != 0 || s.Releases != 0 || s.InUse != 0 {
		t.Errorf("negative sizes must not touch the ledger: %+v", s)
	}
}

func TestTracker_ZeroBytes(t *testing.T) {
	tr := NewTracker(8)

	if err := tr.Reserve(0); err != nil {
		t.Fatalf("Reserve(0): %v", err)
	}

	tr.Release(0)

	if !tr.Balanced() {
		t.Error("tracker should be balanced")
	}
}

func TestTracker_Concurrent(t *testing.T) {
	tr := NewTracker(0)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 1000 {
				if err := tr.Reserve(16); err != nil {
					t.Errorf("Reserve: %v", err)
					return
				}
				tr.Release(16)
			}
		}()
	}

	wg.Wait()

	s := tr.Stats()
	if s.Reserves != 8000 || s.Releases != 8000 || s.InUse != 0 {
		t.Errorf("concurrent ledger: %+v", s)
	}
}
