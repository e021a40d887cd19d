package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/omarshaarawi/courtside/internal/api/sports"
	"github.com/omarshaarawi/courtside/internal/models"
	"github.com/omarshaarawi/courtside/internal/service"
)

// Dashboard is the view layer the HTTP API serves.
type Dashboard interface {
	Sports() []sports.League
	DirectoryStates() map[string]string
	TodayGames(ctx context.Context, sport, date string) (*service.TodayView, error)
	Schedule(ctx context.Context, sport string, q service.ScheduleQuery) (*service.ScheduleView, error)
	Teams(ctx context.Context, sport string) (*service.TeamsView, error)
	TeamDetail(ctx context.Context, sport string, teamID int) (*service.TeamDetailView, error)
	Seasons(ctx context.Context, sport string, teamID int) ([]models.SeasonStat, error)
	Standings(ctx context.Context, sport string, q service.StandingsQuery) (*service.StandingsView, error)
	Leaders(ctx context.Context, sport string, q service.LeadersQuery) (*service.LeadersView, error)
	SearchPlayers(ctx context.Context, sport, query string) ([]service.PlayerResult, error)
	GameLog(ctx context.Context, sport string, playerID, lastN int) ([]models.GameLogRow, error)
	Insights(ctx context.Context, sport, date, away, home string) (*service.InsightsView, error)
}

type Handler struct {
	dashboard Dashboard
	timeout   time.Duration
}

func NewHandler(dashboard Dashboard, timeout time.Duration) *Handler {
	return &Handler{dashboard: dashboard, timeout: timeout}
}

// NewRouter mounts the dashboard API with request logging, panic recovery
// and CORS for the browser front end.
func NewRouter(h *Handler, corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", h.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/sports", h.ListSports)

		r.Route("/{sport}", func(r chi.Router) {
			r.Get("/today", h.GetToday)
			r.Get("/schedule", h.GetSchedule)
			r.Get("/teams", h.GetTeams)
			r.Get("/teams/{teamID}", h.GetTeam)
			r.Get("/teams/{teamID}/seasons", h.GetTeamSeasons)
			r.Get("/standings", h.GetStandings)
			r.Get("/leaders", h.GetLeaders)
			r.Get("/players/search", h.SearchPlayers)
			r.Get("/players/{playerID}/gamelog", h.GetGameLog)
			r.Get("/matchups/insights", h.GetInsights)
		})
	})

	return r
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"directories": h.dashboard.DirectoryStates(),
	})
}

func (h *Handler) ListSports(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"sports": h.dashboard.Sports(),
	})
}

func (h *Handler) context(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.timeout)
}

// Helper functions

func parseIntParam(r *http.Request, param string, defaultValue int) (int, error) {
	valueStr := strings.TrimSpace(r.URL.Query().Get(param))
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", service.ErrInvalidInput, param)
	}
	return value, nil
}

func parseIDParam(r *http.Request, param string) (int, error) {
	value, err := strconv.Atoi(chi.URLParam(r, param))
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", service.ErrInvalidInput, param)
	}
	return value, nil
}

// parseSelections reads "card:option" pairs separated by commas.
func parseSelections(raw string) map[string]string {
	out := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		card, option, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || card == "" || option == "" {
			continue
		}
		out[card] = option
	}
	return out
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, sports.ErrUnknownSport),
		errors.Is(err, sports.ErrSportUnavailable):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

func respondError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("Request failed", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := errorResponse{
		Error:   http.StatusText(status),
		Message: err.Error(),
		Code:    status,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Error encoding error response", "error", err)
	}
}
