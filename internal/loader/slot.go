// Package loader tracks one query's fetch lifecycle. Each Slot moves
// Idle -> Loading -> Loaded|Failed, and a newer Begin invalidates the result
// of any fetch still in flight.
package loader

import (
	"sync"
	"time"
)

type State int

const (
	Idle State = iota
	Loading
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Token identifies one Begin call. Only the most recent token may complete.
type Token struct {
	gen   uint64
	query string
}

func (t Token) Query() string { return t.query }

type Snapshot[T any] struct {
	State     State
	Query     string
	Data      T
	Err       error
	UpdatedAt time.Time
	// Last is the most recent successful result. It survives Begin and
	// failures; only Reset clears it.
	Last       T
	LastLoaded time.Time
}

type Slot[T any] struct {
	mu    sync.RWMutex
	gen   uint64
	snap  Snapshot[T]
	empty T
	now   func() time.Time
}

// NewSlot returns an idle slot. empty is the value Data takes while loading
// and after a failure.
func NewSlot[T any](empty T) *Slot[T] {
	return &Slot[T]{
		empty: empty,
		snap:  Snapshot[T]{State: Idle, Data: empty, Last: empty},
		now:   time.Now,
	}
}

// NewSlotWithClock is NewSlot with UpdatedAt read from now.
func NewSlotWithClock[T any](empty T, now func() time.Time) *Slot[T] {
	s := NewSlot(empty)
	s.now = now
	return s
}

// Begin starts a fetch for query and supersedes any fetch in flight.
func (s *Slot[T]) Begin(query string) Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.snap = Snapshot[T]{
		State:      Loading,
		Query:      query,
		Data:       s.empty,
		Last:       s.snap.Last,
		LastLoaded: s.snap.LastLoaded,
	}
	return Token{gen: s.gen, query: query}
}

// Complete records the outcome of the fetch started by tok. It reports false
// and changes nothing when a newer Begin has superseded tok.
func (s *Slot[T]) Complete(tok Token, data T, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tok.gen != s.gen {
		return false
	}

	s.snap.UpdatedAt = s.now()
	if err != nil {
		s.snap.State = Failed
		s.snap.Data = s.empty
		s.snap.Err = err
		return true
	}
	s.snap.State = Loaded
	s.snap.Data = data
	s.snap.Err = nil
	s.snap.Last = data
	s.snap.LastLoaded = s.snap.UpdatedAt
	return true
}

func (s *Slot[T]) Snapshot() Snapshot[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Reset returns the slot to Idle and invalidates any fetch in flight.
func (s *Slot[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.snap = Snapshot[T]{State: Idle, Data: s.empty, Last: s.empty}
}
