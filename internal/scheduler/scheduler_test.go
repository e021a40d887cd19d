package scheduler

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"
)

type fakeRefresher struct {
	mu    sync.Mutex
	calls map[string]int
	err   error
}

func (f *fakeRefresher) RefreshTeams(_ context.Context, sport string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[sport]++
	return 30, f.err
}

func (f *fakeRefresher) count(sport string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[sport]
}

type fakeSweeper struct {
	mu    sync.Mutex
	swept int
}

func (f *fakeSweeper) Sweep() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.swept++
	return 1
}

func TestSchedulerRegistersJobs(t *testing.T) {
	s, err := NewScheduler(&fakeRefresher{}, Options{
		Sports:          []string{"nba"},
		RefreshInterval: time.Hour,
		SweepInterval:   time.Minute,
		Sweeper:         &fakeSweeper{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Stop()

	names := s.Jobs()
	sort.Strings(names)
	if len(names) != 2 || names[0] != "refresh-teams-nba" || names[1] != "sweep-cache" {
		t.Errorf("unexpected jobs %v", names)
	}
}

func TestSchedulerRefreshesImmediately(t *testing.T) {
	ref := &fakeRefresher{}
	s, err := NewScheduler(ref, Options{Sports: []string{"nba"}, RefreshInterval: time.Hour})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for ref.count("nba") == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if ref.count("nba") != 1 {
		t.Errorf("expected one immediate refresh, got %d", ref.count("nba"))
	}
	if len(s.Jobs()) != 1 {
		t.Errorf("expected no sweep job without a sweeper, got %v", s.Jobs())
	}
}

func TestRefreshTeamsLogsFailure(t *testing.T) {
	ref := &fakeRefresher{err: errors.New("upstream down")}
	s := &Scheduler{refresher: ref, opts: Options{RefreshTimeout: time.Second}}

	s.refreshTeams("nba")
	if ref.count("nba") != 1 {
		t.Errorf("expected refresh attempt, got %d", ref.count("nba"))
	}
}
