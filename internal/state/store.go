package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/Jithendhar18/recipe-ideas/internal/mealdb"
	"github.com/Jithendhar18/recipe-ideas/internal/search"
)

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Index    search.Index
	HasIndex bool

	Sample        []mealdb.Meal
	SampleVersion uint64 // bumped on every successful SetSample
	SampleLoading bool

	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // failed loads since the last success
}

// IsOffline returns true when loads have failed repeatedly.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// SetIndex records the base name lists. An error keeps whatever index was
// there before and is recorded for visibility.
func (s *Store) SetIndex(idx search.Index, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}
	s.snapshot.Index = idx.Clone()
	s.snapshot.HasIndex = true
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// BeginSample marks a sample load as in flight.
func (s *Store) BeginSample() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.SampleLoading = true
}

// SetSample replaces the sample set. When err is non-nil the previous sample
// is kept but the error is recorded.
func (s *Store) SetSample(meals []mealdb.Meal, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.SampleLoading = false
	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}
	s.snapshot.Sample = cloneMeals(meals)
	s.snapshot.SampleVersion++
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Index = s.snapshot.Index.Clone()
	snap.Sample = cloneMeals(s.snapshot.Sample)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneMeals(items []mealdb.Meal) []mealdb.Meal {
	if len(items) == 0 {
		return nil
	}
	dup := make([]mealdb.Meal, len(items))
	copy(dup, items)
	return dup
}
