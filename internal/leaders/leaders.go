// Package leaders resolves which option of each league-leader card is on
// display and formats its values.
package leaders

import "github.com/omarshaarawi/courtside/internal/models"

type Projection struct {
	CardKey string            `json:"cardKey"`
	Title   string            `json:"title"`
	Option  models.CardOption `json:"option"`
	Leader  *models.Leader    `json:"leader"`
	Top     []models.Leader   `json:"top"`
}

// DefaultSelections maps every card to its declared default option.
func DefaultSelections(cards []models.LeaderCard) map[string]string {
	selections := make(map[string]string, len(cards))
	for _, c := range cards {
		selections[c.CardKey] = c.DefaultOptionKey
	}
	return selections
}

// Project resolves the option shown for card. The selected key wins, then the
// card's default, then its first option. A key that matches no option still
// reads the leader data stored under it, while the displayed option falls
// back to the first one.
func Project(card models.LeaderCard, selected string) Projection {
	key := selected
	if key == "" {
		key = card.DefaultOptionKey
	}
	if key == "" && len(card.Options) > 0 {
		key = card.Options[0].Key
	}

	p := Projection{
		CardKey: card.CardKey,
		Title:   card.Title,
		Option:  models.CardOption{Key: key, Format: models.Format1DP},
		Top:     make([]models.Leader, 0),
	}

	if opt, ok := findOption(card.Options, key); ok {
		p.Option = opt
	} else if len(card.Options) > 0 {
		p.Option = card.Options[0]
	}

	if data, ok := card.LeadersByOption[key]; ok {
		p.Leader = data.Leader
		if data.Top != nil {
			p.Top = data.Top
		}
	}
	return p
}

// ProjectAll projects every card using selections, which may be nil.
func ProjectAll(cards []models.LeaderCard, selections map[string]string) []Projection {
	out := make([]Projection, 0, len(cards))
	for _, c := range cards {
		out = append(out, Project(c, selections[c.CardKey]))
	}
	return out
}

func findOption(options []models.CardOption, key string) (models.CardOption, bool) {
	for _, o := range options {
		if o.Key == key {
			return o, true
		}
	}
	return models.CardOption{}, false
}
