// Package schedule shapes flat game lists into the views the dashboard shows:
// date buckets, one team's games, and a team's recent and upcoming slates.
package schedule

import (
	"sort"

	"github.com/omarshaarawi/courtside/internal/models"
	"github.com/omarshaarawi/courtside/internal/teams"
)

type DateGroup struct {
	Date  string        `json:"date"`
	Games []models.Game `json:"games"`
}

// SortGames orders by date ascending, then game id as a string. The input is
// not modified.
func SortGames(games []models.Game) []models.Game {
	sorted := append([]models.Game(nil), games...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].ID.String() < sorted[j].ID.String()
	})
	return sorted
}

// GroupByDate buckets games by date string; groups and the games inside
// them follow SortGames order.
func GroupByDate(games []models.Game) []DateGroup {
	groups := make([]DateGroup, 0)
	for _, g := range SortGames(games) {
		n := len(groups)
		if n > 0 && groups[n-1].Date == g.Date {
			groups[n-1].Games = append(groups[n-1].Games, g)
			continue
		}
		groups = append(groups, DateGroup{Date: g.Date, Games: []models.Game{g}})
	}
	return groups
}

func Flatten(groups []DateGroup) []models.Game {
	var out []models.Game
	for _, g := range groups {
		out = append(out, g.Games...)
	}
	return out
}

// GamesForTeam keeps the games where the team's short name appears as the
// home or away side. Returns an empty slice, never nil, when nothing matches.
func GamesForTeam(games []models.Game, team models.Team) []models.Game {
	out := make([]models.Game, 0)
	short := teams.ShortName(team.Name)
	if short == "" {
		return out
	}
	for _, g := range games {
		if teams.SameTeam(g.HomeTeam, short) || teams.SameTeam(g.AwayTeam, short) {
			out = append(out, g)
		}
	}
	return out
}

// Side reports whether team played at home or away in g.
func Side(g models.Game, team models.Team) (home, away bool) {
	short := teams.ShortName(team.Name)
	home = teams.SameTeam(g.HomeTeam, short)
	away = !home && teams.SameTeam(g.AwayTeam, short)
	return home, away
}

// RecentAndUpcoming returns up to limit finished games on or before today,
// newest first, and up to limit unfinished games on or after today, soonest
// first.
func RecentAndUpcoming(games []models.Game, today string, limit int) (recent, upcoming []models.Game) {
	recent = make([]models.Game, 0)
	upcoming = make([]models.Game, 0)

	for _, g := range games {
		switch {
		case g.Status == models.StatusFinal && g.Date <= today:
			recent = append(recent, g)
		case g.Status != models.StatusFinal && g.Date >= today:
			upcoming = append(upcoming, g)
		}
	}

	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date > recent[j].Date })
	sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].Date < upcoming[j].Date })

	if len(recent) > limit {
		recent = recent[:limit]
	}
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return recent, upcoming
}
