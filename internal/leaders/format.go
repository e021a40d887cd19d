package leaders

import (
	"fmt"
	"math"
	"strconv"

	"github.com/omarshaarawi/courtside/internal/models"
)

// Placeholder stands in for any missing value.
const Placeholder = "—"

// FormatValue renders a leader value. Nil and NaN render as Placeholder in
// every format; unknown formats fall back to one decimal place.
func FormatValue(v *float64, format models.ValueFormat) string {
	if v == nil || math.IsNaN(*v) {
		return Placeholder
	}
	switch format {
	case models.FormatPct:
		return fixed(*v, 1) + "%"
	case models.Format0DP:
		return strconv.FormatFloat(math.Floor(*v+0.5), 'f', 0, 64)
	default:
		return fixed(*v, 1)
	}
}

// FormatFraction renders a 0..1 shooting fraction as a percentage.
func FormatFraction(v *float64) string {
	if v == nil || math.IsNaN(*v) {
		return Placeholder
	}
	return fixed(*v*100, 1) + "%"
}

func FormatWinPct(p float64) string {
	return fixed(p, 3)
}

// fixed rounds half away from zero before formatting; strconv alone rounds
// exact binary ties to even.
func fixed(v float64, places int) string {
	scale := math.Pow10(places)
	return strconv.FormatFloat(math.Round(v*scale)/scale, 'f', places, 64)
}

func FormatWL(wl *models.WinLoss) string {
	if wl == nil {
		return Placeholder
	}
	return fmt.Sprintf("%d-%d", wl.W, wl.L)
}

func FormatStreak(s models.Streak) string {
	if s.Type == nil || *s.Type == "" || s.Len == 0 {
		return Placeholder
	}
	return fmt.Sprintf("%s%d", *s.Type, s.Len)
}

// FormatRest reports "B2B" on the second night of a back-to-back and the
// rest in days otherwise.
func FormatRest(restDays *int, b2b *bool) string {
	if restDays == nil {
		return Placeholder
	}
	if b2b != nil && *b2b {
		return "B2B"
	}
	return fmt.Sprintf("%dd", *restDays)
}

// H2HLabel names the head-to-head window, capped at the last ten meetings.
func H2HLabel(games int) string {
	switch {
	case games <= 0:
		return "H2H"
	case games >= 10:
		return "H2H (L10)"
	default:
		return fmt.Sprintf("H2H (L%d)", games)
	}
}
