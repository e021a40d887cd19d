package teams

import (
	"errors"
	"testing"

	"github.com/omarshaarawi/courtside/internal/models"
)

var nbaTeams = []models.Team{
	{ID: 1610612737, Name: "Atlanta Hawks", Abbreviation: "ATL"},
	{ID: 1610612738, Name: "Boston Celtics", Abbreviation: "BOS"},
	{ID: 1610612751, Name: "Brooklyn Nets", Abbreviation: "BKN"},
	{ID: 1610612747, Name: "Los Angeles Lakers", Abbreviation: "LAL"},
	{ID: 1610612746, Name: "LA Clippers", Abbreviation: "LAC"},
	{ID: 1610612755, Name: "Philadelphia 76ers", Abbreviation: "PHI"},
	{ID: 1610612757, Name: "Portland Trail Blazers", Abbreviation: "POR"},
	{ID: 1610612760, Name: "Oklahoma City Thunder", Abbreviation: "OKC"},
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Trail Blazers", "trailblazers"},
		{"Philadelphia 76ers", "philadelphia76ers"},
		{"  L.A. Clippers ", "laclippers"},
		{"", ""},
		{"Jokić", "joki"},
	}

	for _, tt := range tests {
		if got := NormalizeKey(tt.in); got != tt.want {
			t.Errorf("NormalizeKey(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestShortName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Boston Celtics", "Celtics"},
		{"Portland Trail Blazers", "Trail Blazers"},
		{"Philadelphia 76ers", "76ers"},
		{"Oklahoma City Thunder", "Thunder"},
		{"Heat", "Heat"},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := ShortName(tt.in); got != tt.want {
			t.Errorf("ShortName(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestIndexResolvesEverySpelling(t *testing.T) {
	ix := BuildIndex(nbaTeams)

	for _, team := range nbaTeams {
		for _, name := range []string{team.Name, ShortName(team.Name), team.Abbreviation} {
			id, err := ix.Resolve(name)
			if err != nil {
				t.Errorf("Resolve(%q): unexpected error %v", name, err)
				continue
			}
			if id != team.ID {
				t.Errorf("Resolve(%q): expected %d, got %d", name, team.ID, id)
			}
		}
	}

	if id, ok := ix.Lookup("trail-blazers"); !ok || id != 1610612757 {
		t.Errorf("expected punctuation-insensitive lookup to find Portland, got %d %v", id, ok)
	}
}

func TestIndexUnresolved(t *testing.T) {
	ix := BuildIndex(nbaTeams)

	_, err := ix.Resolve("Sonics")
	if !errors.Is(err, ErrUnresolved) {
		t.Errorf("expected ErrUnresolved, got %v", err)
	}

	var nilIndex *Index
	if _, err := nilIndex.Resolve("Celtics"); !errors.Is(err, ErrUnresolved) {
		t.Errorf("expected ErrUnresolved from nil index, got %v", err)
	}
}

func TestIndexWithholdsCollidingKeys(t *testing.T) {
	list := []models.Team{
		{ID: 1, Name: "Springfield Giants", Abbreviation: "SPG"},
		{ID: 2, Name: "Shelbyville Giants", Abbreviation: "SHG"},
	}
	ix := BuildIndex(list)

	_, err := ix.Resolve("Giants")
	if !errors.Is(err, ErrAmbiguous) {
		t.Fatalf("expected ErrAmbiguous, got %v", err)
	}

	collisions := ix.Collisions()
	ids, ok := collisions["giants"]
	if !ok || len(ids) != 2 {
		t.Fatalf("expected collision on giants, got %v", collisions)
	}

	if id, err := ix.Resolve("Springfield Giants"); err != nil || id != 1 {
		t.Errorf("expected full name to still resolve, got %d %v", id, err)
	}
	if id, err := ix.Resolve("SHG"); err != nil || id != 2 {
		t.Errorf("expected abbreviation to still resolve, got %d %v", id, err)
	}
}

func TestIndexSameTeamRepeatedKeyIsNotACollision(t *testing.T) {
	ix := BuildIndex([]models.Team{{ID: 9, Name: "Heat", Abbreviation: "HEAT"}})

	if len(ix.Collisions()) != 0 {
		t.Errorf("expected no collisions, got %v", ix.Collisions())
	}
	if id, ok := ix.Lookup("heat"); !ok || id != 9 {
		t.Errorf("expected heat to resolve to 9, got %d", id)
	}
}

func TestFindFallsBackToFuzzyMatch(t *testing.T) {
	ix := BuildIndex(nbaTeams)

	team, err := ix.Find("celtcs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if team.ID != 1610612738 {
		t.Errorf("expected Celtics, got %s", team.Name)
	}

	if _, err := ix.Find("zzzzzz"); !errors.Is(err, ErrUnresolved) {
		t.Errorf("expected ErrUnresolved for nonsense query, got %v", err)
	}
}

func TestTeamsSortedByName(t *testing.T) {
	ix := BuildIndex(nbaTeams)
	sorted := ix.Teams()

	if len(sorted) != len(nbaTeams) {
		t.Fatalf("expected %d teams, got %d", len(nbaTeams), len(sorted))
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Name > sorted[i].Name {
			t.Errorf("teams not sorted: %s before %s", sorted[i-1].Name, sorted[i].Name)
		}
	}
}

func TestAssetURLs(t *testing.T) {
	if got := LogoURL(1610612738); got != "https://cdn.nba.com/logos/nba/1610612738/global/L/logo.svg" {
		t.Errorf("unexpected logo url %s", got)
	}
	if LogoURL(0) != "" || HeadshotURL(0) != "" {
		t.Error("expected empty urls for zero ids")
	}
	if got := HeadshotURL(203999); got != "https://cdn.nba.com/headshots/nba/latest/1040x760/203999.png" {
		t.Errorf("unexpected headshot url %s", got)
	}
}
