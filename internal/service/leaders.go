package service

import (
	"context"
	"log/slog"

	"github.com/omarshaarawi/courtside/internal/api/statsapi"
	"github.com/omarshaarawi/courtside/internal/leaders"
	"github.com/omarshaarawi/courtside/internal/models"
	"github.com/omarshaarawi/courtside/internal/teams"
)

const (
	DefaultMinGP = 10
	MaxMinGP     = 82
	DefaultLimit = 5
	MaxLimit     = 25
)

type LeadersQuery struct {
	MinGP      int
	Limit      int
	Mode       string
	Selections map[string]string
}

type LeaderRow struct {
	models.Leader
	Display  string `json:"display"`
	Headshot string `json:"headshotUrl,omitempty"`
}

type LeaderCardView struct {
	CardKey  string              `json:"cardKey"`
	Title    string              `json:"title"`
	Options  []models.CardOption `json:"options"`
	Selected models.CardOption   `json:"selected"`
	Leader   *LeaderRow          `json:"leader"`
	Top      []LeaderRow         `json:"top"`
}

type LeadersView struct {
	MinGP int              `json:"minGp"`
	Limit int              `json:"limit"`
	Mode  string           `json:"mode,omitempty"`
	Cards []LeaderCardView `json:"cards"`
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Leaders fetches the leader cards and projects each onto its selected
// option. MinGP is clamped to 0..82 and Limit to 1..25.
func (s *DashboardService) Leaders(ctx context.Context, sport string, q LeadersQuery) (*LeadersView, error) {
	src, err := s.source(sport)
	if err != nil {
		return nil, err
	}

	view := &LeadersView{
		MinGP: clamp(q.MinGP, 0, MaxMinGP),
		Limit: clamp(q.Limit, 1, MaxLimit),
		Mode:  q.Mode,
		Cards: make([]LeaderCardView, 0),
	}

	resp, err := src.Leaders(ctx, statsapi.LeadersQuery{MinGP: view.MinGP, Limit: view.Limit, Mode: q.Mode})
	if err != nil {
		slog.Error("Failed to fetch leaders", "sport", sport, "error", err)
		return view, nil
	}

	selections := leaders.DefaultSelections(resp.Cards)
	for k, v := range q.Selections {
		if _, ok := selections[k]; ok && v != "" {
			selections[k] = v
		}
	}

	for _, card := range resp.Cards {
		p := leaders.Project(card, selections[card.CardKey])
		cv := LeaderCardView{
			CardKey:  p.CardKey,
			Title:    p.Title,
			Options:  card.Options,
			Selected: p.Option,
			Top:      make([]LeaderRow, 0, len(p.Top)),
		}
		if cv.Options == nil {
			cv.Options = make([]models.CardOption, 0)
		}
		if p.Leader != nil {
			row := leaderRow(*p.Leader, p.Option.Format)
			cv.Leader = &row
		}
		for _, l := range p.Top {
			cv.Top = append(cv.Top, leaderRow(l, p.Option.Format))
		}
		view.Cards = append(view.Cards, cv)
	}
	return view, nil
}

func leaderRow(l models.Leader, format models.ValueFormat) LeaderRow {
	row := LeaderRow{Leader: l, Display: leaders.FormatValue(l.Value, format)}
	if l.PlayerID != nil {
		row.Headshot = teams.HeadshotURL(*l.PlayerID)
	}
	return row
}
