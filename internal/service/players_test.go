package service

import (
	"context"
	"errors"
	"testing"

	"github.com/omarshaarawi/courtside/internal/leaders"
	"github.com/omarshaarawi/courtside/internal/models"
)

func TestFoldName(t *testing.T) {
	tests := map[string]string{
		"Nikola Jokić":      "nikola jokic",
		"  Luka   Dončić ":  "luka doncic",
		"Jonas Valančiūnas": "jonas valanciunas",
	}
	for in, want := range tests {
		if got := foldName(in); got != want {
			t.Errorf("foldName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSearchPlayersRanksLocally(t *testing.T) {
	src := fixtureSource()
	src.players = []models.PlayerSummary{
		{PlayerID: 1, Name: "Nikola Vučević"},
		{PlayerID: 2, Name: "Jalen Johnson"},
		{PlayerID: 3, Name: "Nikola Jokić"},
	}
	svc := newTestService(t, src)

	results, err := svc.SearchPlayers(context.Background(), "nba", "jokic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 || results[0].PlayerID != 3 {
		t.Errorf("expected Jokić first, got %+v", results)
	}
	if results[0].Headshot == "" {
		t.Error("expected headshot URL")
	}
}

func TestSearchPlayersBlankQuery(t *testing.T) {
	src := fixtureSource()
	src.failAllIn = true
	svc := newTestService(t, src)

	results, err := svc.SearchPlayers(context.Background(), "nba", "   ")
	if err != nil || results == nil || len(results) != 0 {
		t.Errorf("expected empty results, got %v %v", results, err)
	}

	results, err = svc.SearchPlayers(context.Background(), "nba", "tatum")
	if err != nil || len(results) != 0 {
		t.Errorf("expected failure to yield empty results, got %v %v", results, err)
	}
}

func TestGameLog(t *testing.T) {
	src := fixtureSource()
	src.gameLog = []models.GameLogRow{{GameID: "1", GameDate: "2024-01-14", Points: f(41)}}
	svc := newTestService(t, src)

	rows, err := svc.GameLog(context.Background(), "nba", 1629029, 5)
	if err != nil || len(rows) != 1 {
		t.Errorf("unexpected game log %v %v", rows, err)
	}

	if _, err := svc.GameLog(context.Background(), "nba", 0, 5); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestInsights(t *testing.T) {
	w := "W"
	rest, b2b := 1, true
	src := fixtureSource()
	src.insights = &models.MatchupInsights{
		Date: "2024-01-15",
		Away: models.InsightsSide{Team: "Heat", RoadRecord: &models.WinLoss{W: 12, L: 10}, Last10: models.WinLoss{W: 6, L: 4},
			Streak: models.Streak{Type: &w, Len: 2}, RestDays: &rest, B2B: &b2b},
		Home:      models.InsightsSide{Team: "Celtics", HomeRecord: &models.WinLoss{W: 20, L: 1}, Last10: models.WinLoss{W: 8, L: 2}},
		H2HLast10: models.HeadToHead{AwayWins: 3, HomeWins: 4, Games: 7},
	}
	svc := newTestService(t, src)

	view, err := svc.Insights(context.Background(), "nba", "2024-01-15", "Heat", "Celtics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !view.Found || view.H2HLabel != "H2H (L7)" {
		t.Errorf("unexpected view %+v", view)
	}
	if view.Away.Road != "12-10" || view.Away.Home != leaders.Placeholder || view.Away.Run != "W2" || view.Away.Rest != "B2B" {
		t.Errorf("unexpected away side %+v", view.Away)
	}
	if view.Home.L10 != "8-2" || view.Home.Rest != leaders.Placeholder || view.Home.Run != leaders.Placeholder {
		t.Errorf("unexpected home side %+v", view.Home)
	}
	if view.Home.TeamID == nil || *view.Home.TeamID != 1610612738 {
		t.Errorf("expected Celtics id, got %v", view.Home.TeamID)
	}
}

func TestInsightsMissing(t *testing.T) {
	svc := newTestService(t, fixtureSource())

	view, err := svc.Insights(context.Background(), "nba", "", "Heat", "Celtics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Found || view.H2HLabel != "H2H" || view.Away.L10 != leaders.Placeholder || view.Away.Team != "Heat" {
		t.Errorf("unexpected empty view %+v", view)
	}

	if _, err := svc.Insights(context.Background(), "nba", "", "", "Celtics"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
