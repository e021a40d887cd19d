// Package teams resolves the inconsistent team labels the stats API emits
// (full names, mascot-only names, abbreviations) to stable numeric ids.
// Every component that matches team names goes through NormalizeKey.
package teams

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/omarshaarawi/courtside/internal/models"
)

var (
	ErrUnresolved = errors.New("team not found")
	ErrAmbiguous  = errors.New("team name is ambiguous")
)

const trailBlazers = "Trail Blazers"

// NormalizeKey lower-cases s and drops everything that is not a-z or 0-9.
func NormalizeKey(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ShortName derives the mascot name used by schedule rows: the last word of
// the full name, except Portland keeps both words of "Trail Blazers".
func ShortName(full string) string {
	name := strings.TrimSpace(full)
	if name == "" {
		return ""
	}
	if strings.HasSuffix(name, trailBlazers) {
		return trailBlazers
	}
	parts := strings.Fields(name)
	return parts[len(parts)-1]
}

// SameTeam reports whether two labels normalize to the same key.
func SameTeam(a, b string) bool {
	ka := NormalizeKey(a)
	return ka != "" && ka == NormalizeKey(b)
}

// Index maps normalized name keys to team ids. Keys claimed by two different
// teams are withheld and reported through Collisions.
type Index struct {
	ids       map[string]int
	conflicts map[string][]int
	teams     []models.Team
}

func BuildIndex(list []models.Team) *Index {
	ix := &Index{
		ids:       make(map[string]int, len(list)*3),
		conflicts: make(map[string][]int),
		teams:     append([]models.Team(nil), list...),
	}

	for _, t := range list {
		for _, candidate := range []string{t.Name, ShortName(t.Name), t.Abbreviation} {
			ix.add(NormalizeKey(candidate), t.ID)
		}
	}

	return ix
}

func (ix *Index) add(key string, id int) {
	if key == "" {
		return
	}
	if ids, ok := ix.conflicts[key]; ok {
		if !containsID(ids, id) {
			ix.conflicts[key] = append(ids, id)
		}
		return
	}
	existing, ok := ix.ids[key]
	if !ok {
		ix.ids[key] = id
		return
	}
	if existing == id {
		return
	}
	delete(ix.ids, key)
	ix.conflicts[key] = []int{existing, id}
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// Resolve returns the team id for any spelling of a team name.
func (ix *Index) Resolve(name string) (int, error) {
	if ix == nil {
		return 0, fmt.Errorf("%w: %q", ErrUnresolved, name)
	}
	key := NormalizeKey(name)
	if id, ok := ix.ids[key]; ok {
		return id, nil
	}
	if _, ok := ix.conflicts[key]; ok {
		return 0, fmt.Errorf("%w: %q", ErrAmbiguous, name)
	}
	return 0, fmt.Errorf("%w: %q", ErrUnresolved, name)
}

// Lookup is Resolve without the error detail.
func (ix *Index) Lookup(name string) (int, bool) {
	id, err := ix.Resolve(name)
	return id, err == nil
}

// Collisions lists the keys withheld because distinct teams share them.
func (ix *Index) Collisions() map[string][]int {
	out := make(map[string][]int, len(ix.conflicts))
	for k, ids := range ix.conflicts {
		out[k] = append([]int(nil), ids...)
	}
	return out
}

func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.teams)
}

// Teams returns the indexed teams sorted by full name.
func (ix *Index) Teams() []models.Team {
	if ix == nil {
		return nil
	}
	out := append([]models.Team(nil), ix.teams...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

func (ix *Index) Team(id int) (models.Team, bool) {
	if ix == nil {
		return models.Team{}, false
	}
	for _, t := range ix.teams {
		if t.ID == id {
			return t, true
		}
	}
	return models.Team{}, false
}

// Find resolves free text typed by a person. Exact key matches win; otherwise
// the closest full or short name by edit distance is accepted above the
// similarity threshold.
func (ix *Index) Find(query string) (models.Team, error) {
	id, err := ix.Resolve(query)
	if err == nil {
		t, _ := ix.Team(id)
		return t, nil
	}
	if errors.Is(err, ErrAmbiguous) {
		return models.Team{}, err
	}
	if ix == nil {
		return models.Team{}, err
	}

	const threshold = 0.6
	q := NormalizeKey(query)
	if q == "" {
		return models.Team{}, err
	}

	var best *models.Team
	bestScore := threshold
	for i, t := range ix.teams {
		for _, candidate := range []string{t.Name, ShortName(t.Name)} {
			c := NormalizeKey(candidate)
			distance := fuzzy.LevenshteinDistance(q, c)
			maxLen := float64(max(len(q), len(c)))
			similarity := 1 - float64(distance)/maxLen

			if similarity > bestScore {
				bestScore = similarity
				best = &ix.teams[i]
			}
		}
	}

	if best == nil {
		return models.Team{}, err
	}
	return *best, nil
}
