// Package statsapi reads the pre-aggregated basketball statistics API. Every
// endpoint is a GET with query parameters; list endpoints must answer with a
// JSON array and the rest with a JSON object.
package statsapi

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/omarshaarawi/courtside/internal/calendar"
	"github.com/omarshaarawi/courtside/internal/models"
)

type API struct {
	client *Client
	league string
	loc    *time.Location
}

// NewAPI reads the endpoints of one league, e.g. "nba", which prefixes every
// path. Game dates are interpreted in loc.
func NewAPI(client *Client, league string, loc *time.Location) *API {
	if loc == nil {
		loc = time.UTC
	}
	return &API{client: client, league: league, loc: loc}
}

func (a *API) path(format string, args ...interface{}) string {
	return "/" + a.league + fmt.Sprintf(format, args...)
}

func (a *API) ScheduleRange(ctx context.Context, start, end string) ([]models.Game, error) {
	var games []models.Game
	params := map[string]string{"start": start, "end": end}
	if err := a.client.Get(ctx, a.path("/schedule/range"), params, ListShape, &games); err != nil {
		return nil, fmt.Errorf("fetching schedule %s..%s: %w", start, end, err)
	}
	return a.normalizeDates(games), nil
}

func (a *API) ScheduleDay(ctx context.Context, date string) ([]models.Game, error) {
	var games []models.Game
	params := map[string]string{"date": date}
	if err := a.client.Get(ctx, a.path("/schedule/daily"), params, ListShape, &games); err != nil {
		return nil, fmt.Errorf("fetching schedule for %s: %w", date, err)
	}
	return a.normalizeDates(games), nil
}

func (a *API) Teams(ctx context.Context) ([]models.Team, error) {
	var list []models.Team
	if err := a.client.Get(ctx, a.path("/teams"), nil, ListShape, &list); err != nil {
		return nil, fmt.Errorf("fetching teams: %w", err)
	}
	return list, nil
}

func (a *API) Standings(ctx context.Context) ([]models.StandingRow, error) {
	var rows []models.StandingRow
	if err := a.client.Get(ctx, a.path("/standings"), nil, ListShape, &rows); err != nil {
		return nil, fmt.Errorf("fetching standings: %w", err)
	}
	return rows, nil
}

func (a *API) Roster(ctx context.Context, teamID int) ([]models.RosterPlayer, error) {
	var roster []models.RosterPlayer
	if err := a.client.Get(ctx, a.path("/teams/%d/roster", teamID), nil, ListShape, &roster); err != nil {
		return nil, fmt.Errorf("fetching roster for team %d: %w", teamID, err)
	}
	return roster, nil
}

func (a *API) TeamSeasonStats(ctx context.Context, teamID int) ([]models.SeasonStat, error) {
	var rows []models.SeasonStat
	if err := a.client.Get(ctx, a.path("/teams/%d/stats", teamID), nil, ListShape, &rows); err != nil {
		return nil, fmt.Errorf("fetching season stats for team %d: %w", teamID, err)
	}
	return rows, nil
}

type LeadersQuery struct {
	MinGP int
	Limit int
	Mode  string
}

func (a *API) Leaders(ctx context.Context, q LeadersQuery) (*models.LeadersResponse, error) {
	var resp models.LeadersResponse
	params := map[string]string{
		"min_gp": strconv.Itoa(q.MinGP),
		"limit":  strconv.Itoa(q.Limit),
	}
	if q.Mode != "" {
		params["mode"] = q.Mode
	}
	if err := a.client.Get(ctx, a.path("/leaders"), params, ObjectShape, &resp); err != nil {
		return nil, fmt.Errorf("fetching leaders: %w", err)
	}
	return &resp, nil
}

func (a *API) PlayerSearch(ctx context.Context, query string) ([]models.PlayerSummary, error) {
	var players []models.PlayerSummary
	params := map[string]string{"q": query}
	if err := a.client.Get(ctx, a.path("/players/search"), params, ListShape, &players); err != nil {
		return nil, fmt.Errorf("searching players for %q: %w", query, err)
	}
	return players, nil
}

func (a *API) PlayerGameLog(ctx context.Context, playerID, lastN int) ([]models.GameLogRow, error) {
	var rows []models.GameLogRow
	params := map[string]string{"last_n": strconv.Itoa(lastN)}
	if err := a.client.Get(ctx, a.path("/players/%d/gamelog", playerID), params, ListShape, &rows); err != nil {
		return nil, fmt.Errorf("fetching game log for player %d: %w", playerID, err)
	}
	for i := range rows {
		rows[i].GameDate = a.isoDate(rows[i].GameDate)
	}
	return rows, nil
}

func (a *API) MatchupInsights(ctx context.Context, date, away, home string) (*models.MatchupInsights, error) {
	var insights models.MatchupInsights
	params := map[string]string{"date": date, "away": away, "home": home}
	if err := a.client.Get(ctx, a.path("/trends/matchup-insights"), params, ObjectShape, &insights); err != nil {
		return nil, fmt.Errorf("fetching insights for %s at %s: %w", away, home, err)
	}
	return &insights, nil
}

func (a *API) normalizeDates(games []models.Game) []models.Game {
	for i := range games {
		games[i].Date = a.isoDate(games[i].Date)
	}
	return games
}

// isoDate rewrites upstream dates such as "2024-01-15T00:00:00" or
// "Jan 15, 2024" as YYYY-MM-DD. Unparseable values are kept as sent.
func (a *API) isoDate(raw string) string {
	if raw == "" {
		return raw
	}
	if _, err := calendar.ParseISO(raw, a.loc); err == nil {
		return raw
	}
	t, err := dateparse.ParseIn(raw, a.loc)
	if err != nil {
		slog.Debug("Unparseable game date", "date", raw, "error", err)
		return raw
	}
	return calendar.FormatISO(t)
}
