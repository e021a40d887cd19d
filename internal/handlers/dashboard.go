package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/omarshaarawi/courtside/internal/service"
)

// GetToday lists one day's games.
// Query params: date (YYYY-MM-DD, default today)
func (h *Handler) GetToday(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	view, err := h.dashboard.TodayGames(ctx, chi.URLParam(r, "sport"), r.URL.Query().Get("date"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// GetSchedule lists a week or month of games grouped by date.
// Query params: mode (week|month), anchor (YYYY-MM-DD), team (id or name)
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	q := r.URL.Query()
	view, err := h.dashboard.Schedule(ctx, chi.URLParam(r, "sport"), service.ScheduleQuery{
		Mode:   q.Get("mode"),
		Anchor: q.Get("anchor"),
		Team:   q.Get("team"),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	view, err := h.dashboard.Teams(ctx, chi.URLParam(r, "sport"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	teamID, err := parseIDParam(r, "teamID")
	if err != nil {
		respondError(w, err)
		return
	}
	view, err := h.dashboard.TeamDetail(ctx, chi.URLParam(r, "sport"), teamID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (h *Handler) GetTeamSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	teamID, err := parseIDParam(r, "teamID")
	if err != nil {
		respondError(w, err)
		return
	}
	seasons, err := h.dashboard.Seasons(ctx, chi.URLParam(r, "sport"), teamID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"seasons": seasons,
		"count":   len(seasons),
	})
}

// GetStandings ranks the league table.
// Query params: view (conference|league|division), division
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	q := r.URL.Query()
	view, err := h.dashboard.Standings(ctx, chi.URLParam(r, "sport"), service.StandingsQuery{
		View:     q.Get("view"),
		Division: q.Get("division"),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// GetLeaders returns the leader cards.
// Query params: min_gp, limit, mode, select (card:option,...)
func (h *Handler) GetLeaders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	minGP, err := parseIntParam(r, "min_gp", service.DefaultMinGP)
	if err != nil {
		respondError(w, err)
		return
	}
	limit, err := parseIntParam(r, "limit", service.DefaultLimit)
	if err != nil {
		respondError(w, err)
		return
	}

	view, err := h.dashboard.Leaders(ctx, chi.URLParam(r, "sport"), service.LeadersQuery{
		MinGP:      minGP,
		Limit:      limit,
		Mode:       r.URL.Query().Get("mode"),
		Selections: parseSelections(r.URL.Query().Get("select")),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	players, err := h.dashboard.SearchPlayers(ctx, chi.URLParam(r, "sport"), r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"players": players,
		"count":   len(players),
	})
}

// GetGameLog returns a player's recent games.
// Query params: last_n (default 10)
func (h *Handler) GetGameLog(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	playerID, err := parseIDParam(r, "playerID")
	if err != nil {
		respondError(w, err)
		return
	}
	lastN, err := parseIntParam(r, "last_n", service.DefaultGameLogSize)
	if err != nil {
		respondError(w, err)
		return
	}

	games, err := h.dashboard.GameLog(ctx, chi.URLParam(r, "sport"), playerID, lastN)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"games": games,
		"count": len(games),
	})
}

// GetInsights compares both sides of a matchup.
// Query params: date, away, home
func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	q := r.URL.Query()
	view, err := h.dashboard.Insights(ctx, chi.URLParam(r, "sport"), q.Get("date"), q.Get("away"), q.Get("home"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}
