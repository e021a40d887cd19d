package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/omarshaarawi/courtside/internal/leaders"
	"github.com/omarshaarawi/courtside/internal/models"
	"github.com/omarshaarawi/courtside/internal/standings"
)

func scoreLine(g models.Game) string {
	switch g.Status {
	case models.StatusFinal:
		return fmt.Sprintf("%s %s @ %s %s (Final)",
			g.AwayTeam, leaders.FormatValue(g.AwayPts, models.Format0DP),
			g.HomeTeam, leaders.FormatValue(g.HomePts, models.Format0DP))
	case models.StatusPostponed:
		return fmt.Sprintf("%s @ %s (Postponed)", g.AwayTeam, g.HomeTeam)
	default:
		if g.Time != "" {
			return fmt.Sprintf("%s @ %s, %s", g.AwayTeam, g.HomeTeam, g.Time)
		}
		return fmt.Sprintf("%s @ %s", g.AwayTeam, g.HomeTeam)
	}
}

func (s *DashboardService) TodayReport(ctx context.Context, sport string) (string, error) {
	view, err := s.TodayGames(ctx, sport, "")
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏀 *Games for %s*\n\n", view.Date))
	if len(view.Games) == 0 {
		sb.WriteString("No games scheduled.")
		return sb.String(), nil
	}
	for _, g := range view.Games {
		sb.WriteString(scoreLine(g.Game) + "\n")
	}
	return sb.String(), nil
}

// ScheduleReport lists this week's games, for one team when team is set.
func (s *DashboardService) ScheduleReport(ctx context.Context, sport, team string) (string, error) {
	view, err := s.Schedule(ctx, sport, ScheduleQuery{Team: team})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if view.Team != nil && view.Team.Name != "" {
		sb.WriteString(fmt.Sprintf("📅 *%s: %s to %s*\n\n", view.Team.Name, view.Start, view.End))
	} else {
		sb.WriteString(fmt.Sprintf("📅 *Schedule %s to %s*\n\n", view.Start, view.End))
	}
	if len(view.Days) == 0 {
		sb.WriteString("No games this week.")
		return sb.String(), nil
	}
	for _, day := range view.Days {
		sb.WriteString(fmt.Sprintf("*%s*\n", day.Date))
		for _, g := range day.Games {
			sb.WriteString("  • " + scoreLine(g) + "\n")
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func writeTable(sb *strings.Builder, title string, rows []standings.RankedRow) {
	sb.WriteString(fmt.Sprintf("*%s*\n", title))
	for _, r := range rows {
		badge := ""
		switch r.Seed {
		case standings.SeedPlayoffs:
			badge = " ✅"
		case standings.SeedPlayIn:
			badge = " 🎟"
		}
		sb.WriteString(fmt.Sprintf("%d. %s %d-%d (%s)%s\n",
			r.Rank, r.TeamName, r.Wins, r.Losses, leaders.FormatWinPct(r.WinPct), badge))
	}
	sb.WriteString("\n")
}

// StandingsReport accepts "east", "west", "league" or a division name; anything
// else shows both conferences.
func (s *DashboardService) StandingsReport(ctx context.Context, sport, which string) (string, error) {
	which = strings.TrimSpace(which)
	q := StandingsQuery{}
	switch strings.ToLower(which) {
	case "", "east", "west":
	case "league":
		q.View = string(ViewLeague)
	default:
		q.View = string(ViewDivision)
		q.Division = cases.Title(language.English).String(which)
	}

	view, err := s.Standings(ctx, sport, q)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("🏆 *Standings*\n\n")
	switch view.View {
	case ViewConference:
		if len(view.East) == 0 && len(view.West) == 0 {
			sb.WriteString("No standings available.")
			return sb.String(), nil
		}
		if !strings.EqualFold(which, "west") {
			writeTable(&sb, "East", view.East)
		}
		if !strings.EqualFold(which, "east") {
			writeTable(&sb, "West", view.West)
		}
	case ViewLeague:
		writeTable(&sb, "League", view.Rows)
	case ViewDivision:
		writeTable(&sb, view.Division, view.Rows)
	}
	return sb.String(), nil
}

func (s *DashboardService) TeamReport(ctx context.Context, sport, name string) (string, error) {
	src, err := s.source(sport)
	if err != nil {
		return "", err
	}
	team, known, err := lookupTeam(s.directory(ctx, sport, src), name)
	if err != nil {
		return fmt.Sprintf("🔍 No team found matching '%s'.", name), nil
	}
	if !known && team.ID == 0 {
		return "⚠️ Team data is unavailable right now. Try again later.", nil
	}
	view, err := s.TeamDetail(ctx, sport, team.ID)
	if err != nil {
		return "", err
	}

	title := view.Team.Name
	if title == "" {
		title = fmt.Sprintf("Team %d", view.Team.ID)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s*\n", title))
	sb.WriteString("━━━━━━━━━━━━━━━━\n")
	if view.Standing != nil {
		sb.WriteString(fmt.Sprintf("%s · %d-%d (%s)\n",
			view.Standing.Division, view.Standing.Wins, view.Standing.Losses, leaders.FormatWinPct(view.Standing.WinPct)))
	}
	sb.WriteString(fmt.Sprintf("PPG %s · OPP %s\n",
		leaders.FormatValue(view.Averages.PointsPerGame, models.Format1DP),
		leaders.FormatValue(view.Averages.PointsAllowedPerGame, models.Format1DP)))

	if view.Leaders != nil {
		sb.WriteString("\n*Leaders*\n")
		for _, l := range []struct {
			label  string
			player *models.RosterPlayer
			key    models.StatKey
		}{
			{"PTS", view.Leaders.Points, models.StatPoints},
			{"REB", view.Leaders.Rebounds, models.StatRebounds},
			{"AST", view.Leaders.Assists, models.StatAssists},
		} {
			if l.player == nil {
				continue
			}
			sb.WriteString(fmt.Sprintf("  %s: %s %s\n", l.label, l.player.Name,
				leaders.FormatValue(l.player.Stat(l.key), models.Format1DP)))
		}
	}

	if len(view.Recent) > 0 {
		sb.WriteString("\n*Last games*\n")
		for _, g := range view.Recent {
			sb.WriteString(fmt.Sprintf("  %s %s\n", g.Date, scoreLine(g)))
		}
	}
	if len(view.Upcoming) > 0 {
		sb.WriteString("\n*Next games*\n")
		for _, g := range view.Upcoming {
			sb.WriteString(fmt.Sprintf("  %s %s\n", g.Date, scoreLine(g)))
		}
	}
	return sb.String(), nil
}

// LeadersReport shows every card's default option, or only the card whose
// key or title matches card.
func (s *DashboardService) LeadersReport(ctx context.Context, sport, card string) (string, error) {
	view, err := s.Leaders(ctx, sport, LeadersQuery{MinGP: DefaultMinGP, Limit: DefaultLimit})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 *League Leaders* (min %d GP)\n\n", view.MinGP))
	shown := 0
	for _, c := range view.Cards {
		if card != "" && !strings.EqualFold(c.CardKey, card) && !strings.EqualFold(c.Title, card) {
			continue
		}
		shown++
		sb.WriteString(fmt.Sprintf("*%s*", c.Title))
		if c.Selected.Label != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", c.Selected.Label))
		}
		sb.WriteString("\n")
		for _, r := range c.Top {
			sb.WriteString(fmt.Sprintf("%d. %s %s\n", r.Rank, r.Name, r.Display))
		}
		sb.WriteString("\n")
	}
	if shown == 0 {
		sb.WriteString("No leaders available.")
	}
	return sb.String(), nil
}

// PlayerReport shows the best search match and its last five games.
func (s *DashboardService) PlayerReport(ctx context.Context, sport, name string) (string, error) {
	results, err := s.SearchPlayers(ctx, sport, name)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return fmt.Sprintf("🔍 No player found matching '%s'.", name), nil
	}

	p := results[0]
	rows, err := s.GameLog(ctx, sport, p.PlayerID, 5)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s*", p.Name))
	if p.TeamAbbr != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", p.TeamAbbr))
	}
	sb.WriteString("\n━━━━━━━━━━━━━━━━\n")
	if len(rows) == 0 {
		sb.WriteString("No recent games.")
		return sb.String(), nil
	}
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%s %s %s: %s pts, %s reb, %s ast\n",
			r.GameDate, r.Matchup, r.WL,
			leaders.FormatValue(r.Points, models.Format0DP),
			leaders.FormatValue(r.Rebounds, models.Format0DP),
			leaders.FormatValue(r.Assists, models.Format0DP)))
	}
	return sb.String(), nil
}
