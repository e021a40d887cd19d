package loader

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestSlotLifecycle(t *testing.T) {
	s := NewSlot([]string{})

	if got := s.Snapshot().State; got != Idle {
		t.Fatalf("expected idle, got %v", got)
	}

	tok := s.Begin("2024-01-15")
	if got := s.Snapshot(); got.State != Loading || got.Query != "2024-01-15" {
		t.Fatalf("expected loading for query, got %+v", got)
	}

	if !s.Complete(tok, []string{"a", "b"}, nil) {
		t.Fatal("expected current token to complete")
	}
	snap := s.Snapshot()
	if snap.State != Loaded || len(snap.Data) != 2 || snap.UpdatedAt.IsZero() {
		t.Errorf("unexpected snapshot %+v", snap)
	}
}

func TestSlotFailureUsesEmpty(t *testing.T) {
	s := NewSlot([]string{})
	tok := s.Begin("q")

	boom := errors.New("boom")
	s.Complete(tok, []string{"partial"}, boom)

	snap := s.Snapshot()
	if snap.State != Failed {
		t.Fatalf("expected failed, got %v", snap.State)
	}
	if !errors.Is(snap.Err, boom) {
		t.Errorf("expected error to be kept, got %v", snap.Err)
	}
	if snap.Data == nil || len(snap.Data) != 0 {
		t.Errorf("expected empty data, got %v", snap.Data)
	}
}

func TestSlotDiscardsStaleResult(t *testing.T) {
	s := NewSlot(0)

	first := s.Begin("week")
	second := s.Begin("month")

	if s.Complete(first, 1, nil) {
		t.Error("stale token should not complete")
	}
	if got := s.Snapshot(); got.State != Loading || got.Query != "month" {
		t.Errorf("stale result leaked into snapshot: %+v", got)
	}

	s.Complete(second, 2, nil)
	if got := s.Snapshot(); got.Data != 2 {
		t.Errorf("expected newest data, got %d", got.Data)
	}

	// a late stale completion must not overwrite a finished newer query
	if s.Complete(first, 1, nil) {
		t.Error("stale token completed after newer result")
	}
	if got := s.Snapshot().Data; got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
}

func TestSlotReset(t *testing.T) {
	s := NewSlot("")
	tok := s.Begin("q")
	s.Reset()

	if s.Complete(tok, "late", nil) {
		t.Error("reset should invalidate in-flight fetch")
	}
	if got := s.Snapshot(); got.State != Idle || got.Data != "" {
		t.Errorf("expected idle empty slot, got %+v", got)
	}
}

func TestSlotConcurrentCompletions(t *testing.T) {
	s := NewSlot(-1)

	var wg sync.WaitGroup
	tokens := make([]Token, 50)
	for i := range tokens {
		tokens[i] = s.Begin("q")
	}
	for i, tok := range tokens {
		wg.Add(1)
		go func(i int, tok Token) {
			defer wg.Done()
			s.Complete(tok, i, nil)
		}(i, tok)
	}
	wg.Wait()

	if got := s.Snapshot().Data; got != len(tokens)-1 {
		t.Errorf("expected only the last token to land, got %d", got)
	}
}

func TestStateString(t *testing.T) {
	if Loaded.String() != "loaded" || State(42).String() != "unknown" {
		t.Error("unexpected state names")
	}
}

func TestSlotKeepsLastResultAcrossFailures(t *testing.T) {
	at := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	s := NewSlotWithClock("", func() time.Time { return at })

	s.Complete(s.Begin("q"), "good", nil)
	at = at.Add(time.Hour)
	s.Complete(s.Begin("q"), "", errors.New("boom"))

	snap := s.Snapshot()
	if snap.State != Failed || snap.Data != "" {
		t.Fatalf("expected failed empty slot, got %+v", snap)
	}
	if snap.Last != "good" {
		t.Errorf("expected last result kept, got %q", snap.Last)
	}
	if !snap.LastLoaded.Equal(at.Add(-time.Hour)) {
		t.Errorf("expected last load time %v, got %v", at.Add(-time.Hour), snap.LastLoaded)
	}

	s.Reset()
	if got := s.Snapshot().Last; got != "" {
		t.Errorf("expected reset to clear last result, got %q", got)
	}
}
