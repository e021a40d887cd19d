// Package sports maps sport keys from the URL to the statistics source that
// serves them. Only basketball has a source; the other sports are listed so
// the dashboard can show them as coming soon.
package sports

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/omarshaarawi/courtside/internal/api/statsapi"
	"github.com/omarshaarawi/courtside/internal/models"
)

var (
	ErrUnknownSport     = errors.New("unknown sport")
	ErrSportUnavailable = errors.New("sport not available yet")
)

// Source is the read-only statistics surface one sport exposes.
type Source interface {
	ScheduleRange(ctx context.Context, start, end string) ([]models.Game, error)
	ScheduleDay(ctx context.Context, date string) ([]models.Game, error)
	Teams(ctx context.Context) ([]models.Team, error)
	Standings(ctx context.Context) ([]models.StandingRow, error)
	Roster(ctx context.Context, teamID int) ([]models.RosterPlayer, error)
	TeamSeasonStats(ctx context.Context, teamID int) ([]models.SeasonStat, error)
	Leaders(ctx context.Context, q statsapi.LeadersQuery) (*models.LeadersResponse, error)
	PlayerSearch(ctx context.Context, query string) ([]models.PlayerSummary, error)
	PlayerGameLog(ctx context.Context, playerID, lastN int) ([]models.GameLogRow, error)
	MatchupInsights(ctx context.Context, date, away, home string) (*models.MatchupInsights, error)
}

type League struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
	source  Source
}

type Registry struct {
	leagues map[string]League
}

// NewRegistry lists the placeholder sports. Register wires real sources.
func NewRegistry() *Registry {
	r := &Registry{leagues: make(map[string]League)}
	for _, l := range []League{
		{Key: "nfl", Name: "Football"},
		{Key: "mlb", Name: "Baseball"},
		{Key: "nhl", Name: "Hockey"},
	} {
		r.leagues[l.Key] = l
	}
	return r
}

func (r *Registry) Register(key, name string, source Source) {
	key = strings.ToLower(key)
	r.leagues[key] = League{Key: key, Name: name, Enabled: source != nil, source: source}
}

// Source returns the statistics source for key.
func (r *Registry) Source(key string) (Source, error) {
	l, ok := r.leagues[strings.ToLower(key)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSport, key)
	}
	if l.source == nil {
		return nil, fmt.Errorf("%w: %s", ErrSportUnavailable, l.Name)
	}
	return l.source, nil
}

// Enabled returns the keys of sports with a source, sorted.
func (r *Registry) Enabled() []string {
	var keys []string
	for k, l := range r.leagues {
		if l.Enabled {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// List returns enabled sports first, then placeholders, each by name.
func (r *Registry) List() []League {
	out := make([]League, 0, len(r.leagues))
	for _, l := range r.leagues {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Enabled != out[j].Enabled {
			return out[i].Enabled
		}
		return out[i].Name < out[j].Name
	})
	return out
}
