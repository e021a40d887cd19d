// Package aggregate derives per-team figures the stats API does not send
// directly: scoring averages from finished games and roster stat leaders.
package aggregate

import (
	"math"
	"sort"

	"github.com/omarshaarawi/courtside/internal/models"
	"github.com/omarshaarawi/courtside/internal/schedule"
)

// Averages holds nil fields when no finished game could be counted.
type Averages struct {
	PointsPerGame        *float64 `json:"pointsPerGame"`
	PointsAllowedPerGame *float64 `json:"pointsAllowedPerGame"`
	Games                int      `json:"games"`
}

// TeamAverages averages points scored and allowed over the team's FINAL
// games that carry both point totals.
func TeamAverages(games []models.Game, team models.Team) Averages {
	var scored, allowed float64
	n := 0

	for _, g := range games {
		if g.Status != models.StatusFinal || g.HomePts == nil || g.AwayPts == nil {
			continue
		}
		home, away := schedule.Side(g, team)
		switch {
		case home:
			scored += *g.HomePts
			allowed += *g.AwayPts
		case away:
			scored += *g.AwayPts
			allowed += *g.HomePts
		default:
			continue
		}
		n++
	}

	if n == 0 {
		return Averages{}
	}

	ppg := scored / float64(n)
	oppg := allowed / float64(n)
	return Averages{PointsPerGame: &ppg, PointsAllowedPerGame: &oppg, Games: n}
}

// StatLeader returns the player with the highest value for key, or nil when
// no player has a usable value. Ties keep the earliest player in roster order.
func StatLeader(roster []models.RosterPlayer, key models.StatKey) *models.RosterPlayer {
	var best *models.RosterPlayer
	for i := range roster {
		v := roster[i].Stat(key)
		if v == nil || math.IsNaN(*v) {
			continue
		}
		if best == nil || *v > *best.Stat(key) {
			best = &roster[i]
		}
	}
	if best == nil {
		return nil
	}
	leader := *best
	return &leader
}

type Leaders struct {
	Points   *models.RosterPlayer `json:"points"`
	Rebounds *models.RosterPlayer `json:"rebounds"`
	Assists  *models.RosterPlayer `json:"assists"`
}

// TeamLeaders returns nil for an empty roster.
func TeamLeaders(roster []models.RosterPlayer) *Leaders {
	if len(roster) == 0 {
		return nil
	}
	return &Leaders{
		Points:   StatLeader(roster, models.StatPoints),
		Rebounds: StatLeader(roster, models.StatRebounds),
		Assists:  StatLeader(roster, models.StatAssists),
	}
}

// SortRosterByPoints orders players by points per game, highest first.
// Players without a points value sort as zero.
func SortRosterByPoints(roster []models.RosterPlayer) []models.RosterPlayer {
	sorted := make([]models.RosterPlayer, len(roster))
	copy(sorted, roster)
	value := func(p models.RosterPlayer) float64 {
		if p.Points == nil || math.IsNaN(*p.Points) {
			return 0
		}
		return *p.Points
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return value(sorted[i]) > value(sorted[j])
	})
	return sorted
}

// SortSeasons orders season aggregate rows oldest first.
func SortSeasons(rows []models.SeasonStat) []models.SeasonStat {
	sorted := make([]models.SeasonStat, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SeasonStartYear < sorted[j].SeasonStartYear
	})
	return sorted
}
