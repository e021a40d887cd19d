package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/omarshaarawi/courtside/internal/models"
	"github.com/omarshaarawi/courtside/internal/standings"
)

type StandingsMode string

const (
	ViewConference StandingsMode = "CONFERENCE"
	ViewLeague     StandingsMode = "LEAGUE"
	ViewDivision   StandingsMode = "DIVISION"
)

// ParseStandingsMode defaults to the conference view.
func ParseStandingsMode(s string) (StandingsMode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(ViewConference):
		return ViewConference, nil
	case string(ViewLeague):
		return ViewLeague, nil
	case string(ViewDivision):
		return ViewDivision, nil
	default:
		return "", fmt.Errorf("%w: standings view %q", ErrInvalidInput, s)
	}
}

type StandingsQuery struct {
	View     string
	Division string
}

// StandingsView always carries every list; the ones outside the selected
// view are empty.
type StandingsView struct {
	View      StandingsMode         `json:"view"`
	East      []standings.RankedRow `json:"east"`
	West      []standings.RankedRow `json:"west"`
	Rows      []standings.RankedRow `json:"rows"`
	Divisions []string              `json:"divisions"`
	Division  string                `json:"division"`
}

// Standings ranks the table by conference with seeding, across the league, or
// inside one division. The division view falls back to the first division
// when none or an unknown one is selected.
func (s *DashboardService) Standings(ctx context.Context, sport string, q StandingsQuery) (*StandingsView, error) {
	src, err := s.source(sport)
	if err != nil {
		return nil, err
	}
	mode, err := ParseStandingsMode(q.View)
	if err != nil {
		return nil, err
	}

	rows, err := src.Standings(ctx)
	rows = emptyOnError(rows, err, "Failed to fetch standings", "sport", sport)

	view := &StandingsView{
		View:      mode,
		East:      make([]standings.RankedRow, 0),
		West:      make([]standings.RankedRow, 0),
		Rows:      make([]standings.RankedRow, 0),
		Divisions: make([]string, 0),
	}
	switch mode {
	case ViewConference:
		view.East = standings.Conference(rows, models.East)
		view.West = standings.Conference(rows, models.West)
	case ViewLeague:
		view.Rows = standings.League(rows)
	case ViewDivision:
		view.Divisions = standings.Divisions(rows)
		view.Division = q.Division
		if !contains(view.Divisions, view.Division) {
			view.Division = ""
			if len(view.Divisions) > 0 {
				view.Division = view.Divisions[0]
			}
		}
		view.Rows = standings.Division(rows, view.Division)
	}
	return view, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
