package leaders

import (
	"math"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/omarshaarawi/courtside/internal/models"
)

func f(v float64) *float64 { return &v }

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name   string
		value  *float64
		format models.ValueFormat
		want   string
	}{
		{"one decimal", f(83.456), models.Format1DP, "83.5"},
		{"rounded", f(83.456), models.Format0DP, "83"},
		{"percent", f(47.25), models.FormatPct, "47.3%"},
		{"half rounds up", f(12.5), models.Format0DP, "13"},
		{"negative half rounds up", f(-2.5), models.Format0DP, "-2"},
		{"whole number keeps decimal", f(30), models.Format1DP, "30.0"},
		{"decimal half rounds on scaled value", f(1.45), models.Format1DP, "1.5"},
		{"negative decimal half rounds away from zero", f(-1.25), models.Format1DP, "-1.3"},
		{"unknown format", f(1.26), models.ValueFormat("weird"), "1.3"},
		{"nil", nil, models.Format1DP, Placeholder},
		{"nil pct", nil, models.FormatPct, Placeholder},
		{"NaN", f(math.NaN()), models.Format0DP, Placeholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.value, tt.format); got != tt.want {
				t.Errorf("FormatValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatValueProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)
	formats := gen.OneConstOf(models.Format1DP, models.Format0DP, models.FormatPct)

	// Property: a missing value renders as the placeholder in every format
	properties.Property("nil is placeholder", prop.ForAll(
		func(format models.ValueFormat) bool {
			return FormatValue(nil, format) == Placeholder
		},
		formats,
	))

	// Property: percentages always end in % and carry exactly one decimal
	properties.Property("pct shape", prop.ForAll(
		func(v float64) bool {
			s := FormatValue(&v, models.FormatPct)
			if !strings.HasSuffix(s, "%") {
				return false
			}
			dot := strings.IndexByte(s, '.')
			return dot >= 0 && len(s)-dot == 3
		},
		gen.Float64Range(0, 100),
	))

	// Property: rounded output never carries a decimal point
	properties.Property("0dp is integral", prop.ForAll(
		func(v float64) bool {
			return !strings.Contains(FormatValue(&v, models.Format0DP), ".")
		},
		gen.Float64Range(-1000, 1000),
	))

	properties.TestingRun(t)
}

func TestFormatFraction(t *testing.T) {
	if got := FormatFraction(f(0.4567)); got != "45.7%" {
		t.Errorf("expected 45.7%%, got %q", got)
	}
	if got := FormatFraction(nil); got != Placeholder {
		t.Errorf("expected placeholder, got %q", got)
	}
}

func TestFormatWinPct(t *testing.T) {
	if got := FormatWinPct(0.7); got != "0.700" {
		t.Errorf("expected 0.700, got %q", got)
	}
}

func TestMatchupFormatters(t *testing.T) {
	if got := FormatWL(&models.WinLoss{W: 21, L: 9}); got != "21-9" {
		t.Errorf("FormatWL = %q", got)
	}
	if got := FormatWL(nil); got != Placeholder {
		t.Errorf("FormatWL(nil) = %q", got)
	}

	w := "W"
	if got := FormatStreak(models.Streak{Type: &w, Len: 3}); got != "W3" {
		t.Errorf("FormatStreak = %q", got)
	}
	if got := FormatStreak(models.Streak{Type: &w}); got != Placeholder {
		t.Errorf("zero-length streak = %q", got)
	}
	if got := FormatStreak(models.Streak{Len: 2}); got != Placeholder {
		t.Errorf("untyped streak = %q", got)
	}

	two, yes, no := 2, true, false
	zero := 0
	if got := FormatRest(&two, &no); got != "2d" {
		t.Errorf("FormatRest = %q", got)
	}
	if got := FormatRest(&zero, &yes); got != "B2B" {
		t.Errorf("back to back = %q", got)
	}
	if got := FormatRest(nil, &yes); got != Placeholder {
		t.Errorf("unknown rest = %q", got)
	}
}

func TestH2HLabel(t *testing.T) {
	tests := map[int]string{0: "H2H", 1: "H2H (L1)", 9: "H2H (L9)", 10: "H2H (L10)", 14: "H2H (L10)"}
	for games, want := range tests {
		if got := H2HLabel(games); got != want {
			t.Errorf("H2HLabel(%d) = %q, want %q", games, got, want)
		}
	}
}
