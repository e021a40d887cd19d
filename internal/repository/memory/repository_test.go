package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/omarshaarawi/courtside/internal/cache"
	"github.com/omarshaarawi/courtside/internal/loader"
	"github.com/omarshaarawi/courtside/internal/models"
	"github.com/omarshaarawi/courtside/internal/teams"
)

func TestDirectorySlotPerSport(t *testing.T) {
	repo := NewRepository()

	nba := repo.Directory("nba")
	if nba != repo.Directory("nba") {
		t.Error("expected the same slot on repeated lookups")
	}
	if nba == repo.Directory("wnba") {
		t.Error("expected separate slots per sport")
	}

	if ix := nba.Snapshot().Data; ix == nil || ix.Len() != 0 {
		t.Errorf("expected an empty index before loading, got %v", ix)
	}

	tok := nba.Begin("teams")
	nba.Complete(tok, teams.BuildIndex([]models.Team{{ID: 1, Name: "Boston Celtics"}}), nil)

	states := repo.States()
	if states["nba"] != loader.Loaded || states["wnba"] != loader.Idle {
		t.Errorf("unexpected states %v", states)
	}
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache(time.Minute)
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	ctx := context.Background()
	if err := c.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := c.Get(ctx, "k")
	if err != nil || string(got) != "v" {
		t.Fatalf("expected hit, got %q %v", got, err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := c.Get(ctx, "k"); !errors.Is(err, cache.ErrMiss) {
		t.Errorf("expected miss after ttl, got %v", err)
	}
	if removed := c.Sweep(); removed != 1 {
		t.Errorf("expected 1 swept entry, got %d", removed)
	}
	if _, err := c.Get(ctx, "missing"); !errors.Is(err, cache.ErrMiss) {
		t.Errorf("expected miss for unknown key, got %v", err)
	}
}
