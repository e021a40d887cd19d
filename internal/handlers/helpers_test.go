package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/omarshaarawi/courtside/internal/api/sports"
	"github.com/omarshaarawi/courtside/internal/service"
)

func TestParseSelections(t *testing.T) {
	got := parseSelections("pts:total, reb:per_game,bad,:x,ast:")
	if len(got) != 2 || got["pts"] != "total" || got["reb"] != "per_game" {
		t.Errorf("unexpected selections %v", got)
	}
	if len(parseSelections("")) != 0 {
		t.Error("expected no selections for empty input")
	}
}

func TestParseIntParam(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=7&min_gp=x", nil)

	if v, err := parseIntParam(req, "limit", 5); err != nil || v != 7 {
		t.Errorf("expected 7, got %d %v", v, err)
	}
	if v, err := parseIntParam(req, "last_n", 10); err != nil || v != 10 {
		t.Errorf("expected default 10, got %d %v", v, err)
	}
	if _, err := parseIntParam(req, "min_gp", 10); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrInvalidInput, http.StatusBadRequest},
		{service.ErrNotFound, http.StatusNotFound},
		{sports.ErrUnknownSport, http.StatusNotFound},
		{sports.ErrSportUnavailable, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
