package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/unicode/norm"

	"github.com/omarshaarawi/courtside/internal/leaders"
	"github.com/omarshaarawi/courtside/internal/models"
	"github.com/omarshaarawi/courtside/internal/teams"
)

const (
	DefaultGameLogSize = 10
	MaxGameLogSize     = 82
)

type PlayerResult struct {
	models.PlayerSummary
	Headshot string `json:"headshotUrl,omitempty"`
}

// foldName lowercases s and strips combining accents so "Jokić" matches
// "jokic".
func foldName(s string) string {
	var sb strings.Builder
	for _, r := range norm.NFD.String(strings.ToLower(s)) {
		if !unicode.Is(unicode.Mn, r) {
			sb.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

// rankPlayers orders upstream matches: names containing the query first, then
// fuzzy subsequence matches, then the rest, each tier by edit distance.
func rankPlayers(query string, players []models.PlayerSummary) []models.PlayerSummary {
	q := foldName(query)
	type scored struct {
		p        models.PlayerSummary
		tier     int
		distance int
	}

	list := make([]scored, 0, len(players))
	for _, p := range players {
		name := foldName(p.Name)
		tier := 2
		switch {
		case strings.Contains(name, q):
			tier = 0
		case fuzzy.Match(q, name):
			tier = 1
		}
		list = append(list, scored{p: p, tier: tier, distance: fuzzy.LevenshteinDistance(q, name)})
	}

	sort.SliceStable(list, func(i, j int) bool {
		if list[i].tier != list[j].tier {
			return list[i].tier < list[j].tier
		}
		return list[i].distance < list[j].distance
	})

	out := make([]models.PlayerSummary, len(list))
	for i, s := range list {
		out[i] = s.p
	}
	return out
}

// SearchPlayers returns no results for a blank query without calling upstream.
func (s *DashboardService) SearchPlayers(ctx context.Context, sport, query string) ([]PlayerResult, error) {
	src, err := s.source(sport)
	if err != nil {
		return nil, err
	}
	results := make([]PlayerResult, 0)
	query = strings.TrimSpace(query)
	if query == "" {
		return results, nil
	}

	players, err := src.PlayerSearch(ctx, query)
	players = emptyOnError(players, err, "Failed to search players", "sport", sport, "query", query)
	for _, p := range rankPlayers(query, players) {
		results = append(results, PlayerResult{PlayerSummary: p, Headshot: teams.HeadshotURL(p.PlayerID)})
	}
	return results, nil
}

// GameLog returns the player's most recent games, lastN clamped to 1..82.
func (s *DashboardService) GameLog(ctx context.Context, sport string, playerID, lastN int) ([]models.GameLogRow, error) {
	src, err := s.source(sport)
	if err != nil {
		return nil, err
	}
	if playerID <= 0 {
		return nil, fmt.Errorf("%w: player id %d", ErrInvalidInput, playerID)
	}
	rows, err := src.PlayerGameLog(ctx, playerID, clamp(lastN, 1, MaxGameLogSize))
	return emptyOnError(rows, err, "Failed to fetch game log", "sport", sport, "player", playerID), nil
}

type SideView struct {
	models.InsightsSide
	TeamID *int   `json:"teamId"`
	Logo   string `json:"logoUrl,omitempty"`
	Road   string `json:"roadRecordText"`
	Home   string `json:"homeRecordText"`
	L10    string `json:"last10Text"`
	Run    string `json:"streakText"`
	Rest   string `json:"restText"`
}

type InsightsView struct {
	Date     string            `json:"date"`
	Away     SideView          `json:"away"`
	Home     SideView          `json:"home"`
	H2H      models.HeadToHead `json:"h2h"`
	H2HLabel string            `json:"h2hLabel"`
	Found    bool              `json:"found"`
}

func sideView(ix *teams.Index, side models.InsightsSide) SideView {
	v := SideView{
		InsightsSide: side,
		Road:         leaders.FormatWL(side.RoadRecord),
		Home:         leaders.FormatWL(side.HomeRecord),
		L10:          leaders.FormatWL(&side.Last10),
		Run:          leaders.FormatStreak(side.Streak),
		Rest:         leaders.FormatRest(side.RestDays, side.B2B),
	}
	if id, err := ix.Resolve(side.Team); err == nil {
		v.TeamID = &id
		v.Logo = teams.LogoURL(id)
	}
	return v
}

// Insights compares the situational form of both sides of a matchup. When
// upstream has nothing the view carries the requested names and Found is
// false.
func (s *DashboardService) Insights(ctx context.Context, sport, date, away, home string) (*InsightsView, error) {
	src, err := s.source(sport)
	if err != nil {
		return nil, err
	}
	day, err := s.parseDate(date)
	if err != nil {
		return nil, err
	}
	away, home = strings.TrimSpace(away), strings.TrimSpace(home)
	if away == "" || home == "" {
		return nil, fmt.Errorf("%w: both away and home teams are required", ErrInvalidInput)
	}

	ix := s.directory(ctx, sport, src)
	insights, err := src.MatchupInsights(ctx, day, away, home)
	if err != nil {
		slog.Error("Failed to fetch matchup insights", "sport", sport, "away", away, "home", home, "error", err)
		view := &InsightsView{
			Date:     day,
			Away:     sideView(ix, models.InsightsSide{Team: away}),
			Home:     sideView(ix, models.InsightsSide{Team: home}),
			H2HLabel: leaders.H2HLabel(0),
		}
		view.Away.L10 = leaders.Placeholder
		view.Home.L10 = leaders.Placeholder
		return view, nil
	}

	return &InsightsView{
		Date:     day,
		Away:     sideView(ix, insights.Away),
		Home:     sideView(ix, insights.Home),
		H2H:      insights.H2HLast10,
		H2HLabel: leaders.H2HLabel(insights.H2HLast10.Games),
		Found:    true,
	}, nil
}
