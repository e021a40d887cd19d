package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/omarshaarawi/courtside/internal/aggregate"
	"github.com/omarshaarawi/courtside/internal/calendar"
	"github.com/omarshaarawi/courtside/internal/models"
	"github.com/omarshaarawi/courtside/internal/schedule"
	"github.com/omarshaarawi/courtside/internal/standings"
	"github.com/omarshaarawi/courtside/internal/teams"
)

const (
	// teamWindowDays bounds the schedule fetched for a team's recent and
	// upcoming games.
	teamWindowDays = 60
	teamSlateSize  = 5
)

type AnnotatedGame struct {
	models.Game
	HomeTeamID *int   `json:"homeTeamId"`
	AwayTeamID *int   `json:"awayTeamId"`
	HomeLogo   string `json:"homeLogoUrl,omitempty"`
	AwayLogo   string `json:"awayLogoUrl,omitempty"`
}

type TodayView struct {
	Date  string          `json:"date"`
	Games []AnnotatedGame `json:"games"`
}

func annotate(ix *teams.Index, games []models.Game) []AnnotatedGame {
	out := make([]AnnotatedGame, 0, len(games))
	for _, g := range games {
		ag := AnnotatedGame{Game: g}
		if id, err := ix.Resolve(g.HomeTeam); err == nil {
			ag.HomeTeamID = &id
			ag.HomeLogo = teams.LogoURL(id)
		} else {
			slog.Debug("Unresolved home team", "team", g.HomeTeam, "error", err)
		}
		if id, err := ix.Resolve(g.AwayTeam); err == nil {
			ag.AwayTeamID = &id
			ag.AwayLogo = teams.LogoURL(id)
		} else {
			slog.Debug("Unresolved away team", "team", g.AwayTeam, "error", err)
		}
		out = append(out, ag)
	}
	return out
}

// TodayGames lists one day's games, defaulting to today.
func (s *DashboardService) TodayGames(ctx context.Context, sport, date string) (*TodayView, error) {
	src, err := s.source(sport)
	if err != nil {
		return nil, err
	}
	day, err := s.parseDate(date)
	if err != nil {
		return nil, err
	}

	var (
		games []models.Game
		ix    *teams.Index
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := src.ScheduleDay(gctx, day)
		games = emptyOnError(list, err, "Failed to fetch daily schedule", "sport", sport, "date", day)
		return nil
	})
	g.Go(func() error {
		ix = s.directory(gctx, sport, src)
		return nil
	})
	// Fetch failures are already folded into empty results.
	_ = g.Wait()

	return &TodayView{Date: day, Games: annotate(ix, schedule.SortGames(games))}, nil
}

type ScheduleQuery struct {
	Mode   string
	Anchor string
	Team   string
}

type ScheduleView struct {
	Mode   calendar.Mode        `json:"mode"`
	Anchor string               `json:"anchor"`
	Start  string               `json:"start"`
	End    string               `json:"end"`
	Prev   string               `json:"prev"`
	Next   string               `json:"next"`
	Team   *models.Team         `json:"team,omitempty"`
	Days   []schedule.DateGroup `json:"days"`
}

// Schedule lists the week or month around the anchor date, grouped by day and
// optionally narrowed to one team.
func (s *DashboardService) Schedule(ctx context.Context, sport string, q ScheduleQuery) (*ScheduleView, error) {
	src, err := s.source(sport)
	if err != nil {
		return nil, err
	}
	anchor, err := s.parseDate(q.Anchor)
	if err != nil {
		return nil, err
	}
	mode, err := calendar.ParseMode(q.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	anchorTime, _ := calendar.ParseISO(anchor, s.loc)
	r := calendar.RangeFor(mode, anchorTime)

	view := &ScheduleView{Mode: mode, Anchor: anchor, Start: r.Start, End: r.End}
	view.Prev, _ = calendar.Step(mode, anchor, -1)
	view.Next, _ = calendar.Step(mode, anchor, 1)

	if strings.TrimSpace(q.Team) != "" {
		t, known, err := lookupTeam(s.directory(ctx, sport, src), q.Team)
		if err != nil {
			return nil, err
		}
		if t.ID != 0 {
			view.Team = &t
		}
		if !known {
			// Without the directory the team's schedule labels are unknown.
			slog.Warn("Team filter skipped, directory unavailable", "sport", sport, "team", q.Team)
			view.Days = make([]schedule.DateGroup, 0)
			return view, nil
		}
	}

	games, err := src.ScheduleRange(ctx, r.Start, r.End)
	games = emptyOnError(games, err, "Failed to fetch schedule", "sport", sport, "start", r.Start, "end", r.End)
	if view.Team != nil {
		games = schedule.GamesForTeam(games, *view.Team)
	}
	view.Days = schedule.GroupByDate(games)
	return view, nil
}

type TeamsView struct {
	Divisions []standings.DivisionGroup `json:"divisions"`
}

// Teams joins the team directory with standings and groups it by division.
func (s *DashboardService) Teams(ctx context.Context, sport string) (*TeamsView, error) {
	src, err := s.source(sport)
	if err != nil {
		return nil, err
	}

	var (
		ix   *teams.Index
		rows []models.StandingRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ix = s.directory(gctx, sport, src)
		return nil
	})
	g.Go(func() error {
		list, err := src.Standings(gctx)
		rows = emptyOnError(list, err, "Failed to fetch standings", "sport", sport)
		return nil
	})
	// Fetch failures are already folded into empty results.
	_ = g.Wait()

	return &TeamsView{Divisions: standings.GroupByDivision(ix.Teams(), rows)}, nil
}

type TeamDetailView struct {
	Team     models.Team           `json:"team"`
	Standing *models.StandingRow   `json:"standing"`
	Roster   []models.RosterPlayer `json:"roster"`
	Leaders  *aggregate.Leaders    `json:"leaders"`
	Averages aggregate.Averages    `json:"averages"`
	Recent   []models.Game         `json:"recent"`
	Upcoming []models.Game         `json:"upcoming"`
}

// TeamDetail gathers one team's roster, standing, averages and its recent and
// upcoming games within teamWindowDays of today.
func (s *DashboardService) TeamDetail(ctx context.Context, sport string, teamID int) (*TeamDetailView, error) {
	src, err := s.source(sport)
	if err != nil {
		return nil, err
	}

	ix := s.directory(ctx, sport, src)
	team, ok := ix.Team(teamID)
	if !ok {
		if ix.Len() > 0 {
			return nil, fmt.Errorf("%w: team %d", ErrNotFound, teamID)
		}
		team = models.Team{ID: teamID, LogoURL: teams.LogoURL(teamID)}
	}

	today := s.Today()
	start, _ := calendar.ShiftDays(today, -teamWindowDays)
	end, _ := calendar.ShiftDays(today, teamWindowDays)

	var (
		roster []models.RosterPlayer
		rows   []models.StandingRow
		games  []models.Game
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := src.Roster(gctx, teamID)
		roster = emptyOnError(list, err, "Failed to fetch roster", "sport", sport, "team", teamID)
		return nil
	})
	g.Go(func() error {
		list, err := src.Standings(gctx)
		rows = emptyOnError(list, err, "Failed to fetch standings", "sport", sport)
		return nil
	})
	g.Go(func() error {
		list, err := src.ScheduleRange(gctx, start, end)
		games = emptyOnError(list, err, "Failed to fetch team schedule", "sport", sport, "team", teamID)
		return nil
	})
	// Fetch failures are already folded into empty results.
	_ = g.Wait()

	view := &TeamDetailView{
		Team:    team,
		Roster:  aggregate.SortRosterByPoints(roster),
		Leaders: aggregate.TeamLeaders(roster),
	}
	for i := range rows {
		if rows[i].TeamID == teamID {
			row := rows[i]
			view.Standing = &row
			break
		}
	}

	if team.Name != "" {
		mine := schedule.GamesForTeam(games, team)
		view.Averages = aggregate.TeamAverages(mine, team)
		view.Recent, view.Upcoming = schedule.RecentAndUpcoming(mine, today, teamSlateSize)
	} else {
		view.Recent, view.Upcoming = make([]models.Game, 0), make([]models.Game, 0)
	}
	return view, nil
}

// Seasons lists a team's season aggregates, oldest first.
func (s *DashboardService) Seasons(ctx context.Context, sport string, teamID int) ([]models.SeasonStat, error) {
	src, err := s.source(sport)
	if err != nil {
		return nil, err
	}
	rows, err := src.TeamSeasonStats(ctx, teamID)
	rows = emptyOnError(rows, err, "Failed to fetch season stats", "sport", sport, "team", teamID)
	return aggregate.SortSeasons(rows), nil
}
