package rest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/gridirondash/gridiron/internal/mapper"
	"github.com/gridirondash/gridiron/internal/model"
	"github.com/gridirondash/gridiron/internal/service"
	"github.com/gridirondash/gridiron/internal/upstream"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	scoreboard *service.Scoreboard
	games      *service.Games
	cfb        *service.CFB
	log        *logrus.Entry
}

// NewHandler creates a new handler
func NewHandler(scoreboard *service.Scoreboard, games *service.Games, cfb *service.CFB, logger *logrus.Logger) *Handler {
	return &Handler{
		scoreboard: scoreboard,
		games:      games,
		cfb:        cfb,
		log:        logger.WithField("component", "rest"),
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Healthz is the liveness probe endpoint.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// GetTodaysGames returns the simplified list of today's NFL games.
func (h *Handler) GetTodaysGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.scoreboard.Today(r.Context())
	if err != nil {
		respondUpstreamError(w, "Scoreboard request failed", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"games": games})
}

// GetGameLive returns the high-detail view of a single NFL game.
func (h *Handler) GetGameLive(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["gameID"]

	live, err := h.games.Live(r.Context(), gameID)
	if err != nil {
		if errors.Is(err, mapper.ErrMalformedPayload) {
			respondError(w, http.StatusBadGateway, "Malformed provider payload", err)
			return
		}
		respondUpstreamError(w, "Game summary request failed", err)
		return
	}

	respondJSON(w, http.StatusOK, live)
}

// GetScoreboard returns scoreboard rows for a sport.
func (h *Handler) GetScoreboard(w http.ResponseWriter, r *http.Request) {
	sport := model.Sport(mux.Vars(r)["sport"])
	if !sport.Valid() {
		respondError(w, http.StatusBadRequest, "Unknown sport", nil)
		return
	}

	date := r.URL.Query().Get("date")
	week := queryInt(r, "week")
	seasonType := r.URL.Query().Get("season_type")
	conference := r.URL.Query().Get("conference")

	games, err := h.scoreboard.Games(r.Context(), sport, date, week, seasonType, conference)
	if err != nil {
		respondUpstreamError(w, "Scoreboard request failed", err)
		return
	}

	respondJSON(w, http.StatusOK, games)
}

// GetGameDetails returns the tabular per-game response.
func (h *Handler) GetGameDetails(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sport := model.Sport(vars["sport"])
	if !sport.Valid() {
		respondError(w, http.StatusBadRequest, "Unknown sport", nil)
		return
	}

	details, err := h.games.Details(r.Context(), sport, vars["eventID"])
	if err != nil {
		respondUpstreamError(w, "Game details request failed", err)
		return
	}

	respondJSON(w, http.StatusOK, details)
}

// GetNFLWeeks returns the NFL season calendar.
func (h *Handler) GetNFLWeeks(w http.ResponseWriter, r *http.Request) {
	weeks, err := h.scoreboard.NFLWeeks(r.Context())
	if err != nil {
		respondUpstreamError(w, "Calendar request failed", err)
		return
	}

	respondJSON(w, http.StatusOK, weeks)
}

// GetCurrentNFLWeek returns the week containing today.
func (h *Handler) GetCurrentNFLWeek(w http.ResponseWriter, r *http.Request) {
	week, err := h.scoreboard.CurrentNFLWeek(r.Context())
	if err != nil {
		respondUpstreamError(w, "Calendar request failed", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"week": week.Number})
}

// GetCFBWeeks returns the college calendar for a season.
func (h *Handler) GetCFBWeeks(w http.ResponseWriter, r *http.Request) {
	year := queryInt(r, "year")
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	weeks, err := h.cfb.Weeks(r.Context(), year)
	if err != nil {
		respondUpstreamError(w, "Calendar request failed", err)
		return
	}

	respondJSON(w, http.StatusOK, weeks)
}

// GetCFBConferences returns the conference list.
func (h *Handler) GetCFBConferences(w http.ResponseWriter, r *http.Request) {
	conferences, err := h.cfb.Conferences(r.Context())
	if err != nil {
		respondUpstreamError(w, "Conference request failed", err)
		return
	}

	respondJSON(w, http.StatusOK, conferences)
}

// GetCFBScoreboard returns the dedicated college scoreboard for a
// year/week pair.
func (h *Handler) GetCFBScoreboard(w http.ResponseWriter, r *http.Request) {
	year := queryInt(r, "year")
	week := queryInt(r, "week")
	if year < 2000 || year > 2100 || week < 1 || week > 20 {
		respondError(w, http.StatusBadRequest, "year and week query parameters are required", nil)
		return
	}

	board, err := h.cfb.Board(r.Context(), year, week)
	if err != nil {
		respondUpstreamError(w, "College scoreboard request failed", err)
		return
	}

	respondJSON(w, http.StatusOK, board)
}

func queryInt(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error envelope
func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]any{"error": message}
	if err != nil {
		response["message"] = err.Error()
	}
	respondJSON(w, status, response)
}

// respondUpstreamError maps a provider failure to the 502 envelope,
// including the upstream status code when one was seen.
func respondUpstreamError(w http.ResponseWriter, message string, err error) {
	response := map[string]any{
		"error":   message,
		"message": err.Error(),
	}
	if ue, ok := upstream.AsUpstream(err); ok && ue.StatusCode != 0 {
		response["status_code"] = ue.StatusCode
	}
	respondJSON(w, http.StatusBadGateway, response)
}
