package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/omarshaarawi/courtside/internal/api/sports"
	"github.com/omarshaarawi/courtside/internal/calendar"
	"github.com/omarshaarawi/courtside/internal/loader"
	"github.com/omarshaarawi/courtside/internal/models"
	"github.com/omarshaarawi/courtside/internal/repository/memory"
	"github.com/omarshaarawi/courtside/internal/teams"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Sources resolves a sport key to its statistics source.
type Sources interface {
	Source(key string) (sports.Source, error)
	List() []sports.League
}

// DashboardService turns upstream collections into dashboard views. Upstream
// failures never reach callers: they are logged and the affected part of the
// view is left empty. Errors returned are limited to bad input, unknown
// sports and unknown teams.
type DashboardService struct {
	sports Sources
	repo   *memory.Repository
	loc    *time.Location
	maxAge time.Duration
	now    func() time.Time
}

func NewDashboardService(src Sources, repo *memory.Repository, loc *time.Location, maxAge time.Duration) *DashboardService {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardService{
		sports: src,
		repo:   repo,
		loc:    loc,
		maxAge: maxAge,
		now:    time.Now,
	}
}

func (s *DashboardService) Sports() []sports.League {
	return s.sports.List()
}

// Today is the current calendar date in the configured timezone.
func (s *DashboardService) Today() string {
	return calendar.Today(s.now(), s.loc)
}

func (s *DashboardService) source(sport string) (sports.Source, error) {
	return s.sports.Source(sport)
}

// directory returns the sport's team index, refreshing it when missing or
// older than maxAge.
func (s *DashboardService) directory(ctx context.Context, sport string, src sports.Source) *teams.Index {
	snap := s.repo.Directory(sport).Snapshot()
	if snap.State == loader.Loaded && s.now().Sub(snap.UpdatedAt) < s.maxAge {
		return snap.Data
	}

	ix, err := s.refresh(ctx, sport, src)
	if err != nil && snap.Last != nil && snap.Last.Len() > 0 {
		slog.Warn("Serving stale team directory", "sport", sport, "age", s.now().Sub(snap.LastLoaded))
		return snap.Last
	}
	return ix
}

// RefreshTeams reloads the sport's team directory and reports how many teams
// it holds.
func (s *DashboardService) RefreshTeams(ctx context.Context, sport string) (int, error) {
	src, err := s.source(sport)
	if err != nil {
		return 0, err
	}
	ix, err := s.refresh(ctx, sport, src)
	if err != nil {
		return 0, err
	}
	return ix.Len(), nil
}

func (s *DashboardService) refresh(ctx context.Context, sport string, src sports.Source) (*teams.Index, error) {
	slot := s.repo.Directory(sport)
	tok := slot.Begin("teams")

	list, err := src.Teams(ctx)
	if err != nil {
		slot.Complete(tok, nil, err)
		slog.Error("Failed to load team directory", "sport", sport, "error", err)
		return teams.BuildIndex(nil), err
	}

	for i := range list {
		if list[i].LogoURL == "" {
			list[i].LogoURL = teams.LogoURL(list[i].ID)
		}
	}
	ix := teams.BuildIndex(list)
	for key, ids := range ix.Collisions() {
		slog.Warn("Team name key withheld, shared by several teams", "sport", sport, "key", key, "teams", ids)
	}

	if !slot.Complete(tok, ix, nil) {
		slog.Debug("Team directory refresh superseded", "sport", sport)
	}
	return ix, nil
}

// DirectoryStates reports the load state of every sport's team directory.
func (s *DashboardService) DirectoryStates() map[string]string {
	out := make(map[string]string)
	for sport, state := range s.repo.States() {
		out[sport] = state.String()
	}
	return out
}

func (s *DashboardService) parseDate(date string) (string, error) {
	if strings.TrimSpace(date) == "" {
		return s.Today(), nil
	}
	t, err := calendar.ParseISO(date, s.loc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return calendar.FormatISO(t), nil
}

// lookupTeam resolves ref against ix. known is false when the directory
// holds no teams, in which case a numeric ref still yields a Team carrying
// only its id and logo, and no error is returned.
func lookupTeam(ix *teams.Index, ref string) (team models.Team, known bool, err error) {
	if ix.Len() == 0 {
		if id, err := strconv.Atoi(strings.TrimSpace(ref)); err == nil {
			return models.Team{ID: id, LogoURL: teams.LogoURL(id)}, false, nil
		}
		return models.Team{}, false, nil
	}
	team, err = resolveTeam(ix, ref)
	if err != nil {
		return models.Team{}, false, err
	}
	return team, true, nil
}

// resolveTeam accepts a numeric team id or a team name.
func resolveTeam(ix *teams.Index, ref string) (models.Team, error) {
	if id, err := strconv.Atoi(strings.TrimSpace(ref)); err == nil {
		if t, ok := ix.Team(id); ok {
			return t, nil
		}
		return models.Team{}, fmt.Errorf("%w: team %d", ErrNotFound, id)
	}
	t, err := ix.Find(ref)
	if err != nil {
		return models.Team{}, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return t, nil
}

func emptyOnError[T any](items []T, err error, msg string, args ...any) []T {
	if err != nil {
		slog.Error(msg, append(args, "error", err)...)
		return make([]T, 0)
	}
	if items == nil {
		return make([]T, 0)
	}
	return items
}
