package standings

import (
	"sort"

	"github.com/omarshaarawi/courtside/internal/models"
)

type Seed string

const (
	SeedPlayoffs Seed = "PLAYOFFS"
	SeedPlayIn   Seed = "PLAY_IN"
	SeedNone     Seed = ""
)

// DivisionOrder is the NBA display order; unknown divisions follow alphabetically.
var DivisionOrder = []string{"Atlantic", "Central", "Southeast", "Northwest", "Pacific", "Southwest"}

type RankedRow struct {
	models.StandingRow
	Rank int  `json:"rank"`
	Seed Seed `json:"seed,omitempty"`
}

// Sort orders rows by win pct desc, then wins desc, then losses asc. Equal
// rows keep their input order.
func Sort(rows []models.StandingRow) []models.StandingRow {
	sorted := append([]models.StandingRow(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.WinPct != b.WinPct {
			return a.WinPct > b.WinPct
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		return a.Losses < b.Losses
	})
	return sorted
}

// Classify maps a 1-based conference rank to its postseason cut line.
func Classify(rank int) Seed {
	switch {
	case rank >= 1 && rank <= 6:
		return SeedPlayoffs
	case rank >= 7 && rank <= 10:
		return SeedPlayIn
	default:
		return SeedNone
	}
}

func rank(rows []models.StandingRow, withSeeds bool) []RankedRow {
	sorted := Sort(rows)
	out := make([]RankedRow, len(sorted))
	for i, r := range sorted {
		out[i] = RankedRow{StandingRow: r, Rank: i + 1}
		if withSeeds {
			out[i].Seed = Classify(i + 1)
		}
	}
	return out
}

// Conference ranks one conference and attaches playoff/play-in seeds.
func Conference(rows []models.StandingRow, conf models.Conference) []RankedRow {
	var filtered []models.StandingRow
	for _, r := range rows {
		if r.Conference == conf {
			filtered = append(filtered, r)
		}
	}
	return rank(filtered, true)
}

func League(rows []models.StandingRow) []RankedRow {
	return rank(rows, false)
}

func Division(rows []models.StandingRow, division string) []RankedRow {
	var filtered []models.StandingRow
	for _, r := range rows {
		if r.Division == division {
			filtered = append(filtered, r)
		}
	}
	return rank(filtered, false)
}

// Divisions returns the distinct division names, sorted.
func Divisions(rows []models.StandingRow) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, r := range rows {
		if r.Division == "" || seen[r.Division] {
			continue
		}
		seen[r.Division] = true
		out = append(out, r.Division)
	}
	sort.Strings(out)
	return out
}

func divisionIndex(name string) int {
	for i, d := range DivisionOrder {
		if d == name {
			return i
		}
	}
	return -1
}

// LessDivision orders known divisions by DivisionOrder ahead of unknown ones,
// which compare alphabetically.
func LessDivision(a, b string) bool {
	ai, bi := divisionIndex(a), divisionIndex(b)
	switch {
	case ai != -1 && bi != -1:
		return ai < bi
	case ai != -1:
		return true
	case bi != -1:
		return false
	default:
		return a < b
	}
}

// UnknownDivision groups teams that have no standings row.
const UnknownDivision = "Unknown"

// JoinedTeam is a directory team with its standings row, when one exists.
type JoinedTeam struct {
	models.Team
	Standing *models.StandingRow `json:"standing"`
}

type DivisionGroup struct {
	Division string       `json:"division"`
	Teams    []JoinedTeam `json:"teams"`
}

// Join attaches standings to teams by team id, keeping directory order.
func Join(list []models.Team, rows []models.StandingRow) []JoinedTeam {
	byID := make(map[int]models.StandingRow, len(rows))
	for _, r := range rows {
		byID[r.TeamID] = r
	}
	out := make([]JoinedTeam, 0, len(list))
	for _, t := range list {
		jt := JoinedTeam{Team: t}
		if r, ok := byID[t.ID]; ok {
			jt.Standing = &r
		}
		out = append(out, jt)
	}
	return out
}

// GroupByDivision joins teams to standings and groups them by division.
// Divisions follow LessDivision; teams inside a division sort by win
// percentage, highest first, then by name. Teams without a row sort last.
func GroupByDivision(list []models.Team, rows []models.StandingRow) []DivisionGroup {
	byDiv := make(map[string][]JoinedTeam)
	var names []string
	for _, jt := range Join(list, rows) {
		div := UnknownDivision
		if jt.Standing != nil && jt.Standing.Division != "" {
			div = jt.Standing.Division
		}
		if _, ok := byDiv[div]; !ok {
			names = append(names, div)
		}
		byDiv[div] = append(byDiv[div], jt)
	}

	sort.Slice(names, func(i, j int) bool { return LessDivision(names[i], names[j]) })

	pct := func(jt JoinedTeam) float64 {
		if jt.Standing == nil {
			return -1
		}
		return jt.Standing.WinPct
	}

	groups := make([]DivisionGroup, 0, len(names))
	for _, name := range names {
		teams := byDiv[name]
		sort.SliceStable(teams, func(i, j int) bool {
			if pi, pj := pct(teams[i]), pct(teams[j]); pi != pj {
				return pi > pj
			}
			return teams[i].Name < teams[j].Name
		})
		groups = append(groups, DivisionGroup{Division: name, Teams: teams})
	}
	return groups
}
