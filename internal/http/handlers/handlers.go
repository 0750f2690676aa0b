package handlers

import (
	"errors"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"

	"scoreboard-service/internal/app/scores"
	"scoreboard-service/internal/collections"
	"scoreboard-service/internal/domain"
)

// Handler wires HTTP routes to the aggregation service.
type Handler struct {
	svc    *scores.Service
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(svc *scores.Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch {
	case r.URL.Path == "/health":
		h.Health(w, r)
	case r.URL.Path == "/ready":
		h.Ready(w, r)
	case r.URL.Path == "/api/scores":
		h.Scores(w, r)
	case r.URL.Path == "/api/live":
		h.Live(w, r)
	case r.URL.Path == "/api/top_performers":
		h.TopPerformers(w, r)
	case r.URL.Path == "/api/sports":
		h.Sports(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/conference/"):
		h.Conference(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes). The
// service has no warmup phase: once the listener is up it can serve, so
// readiness mirrors health.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Scores serves the single-sport feed with pagination.
func (h *Handler) Scores(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	sport := r.URL.Query().Get("sport")
	if sport == "" {
		sport = "basketball_nba"
	}

	res, err := h.svc.Scores(r.Context(), scores.ScoresQuery{
		Sport:        sport,
		ForceRefresh: boolParam(r, "force_refresh"),
	})
	if err != nil {
		writeError(w, r, nethttp.StatusBadGateway, "upstream fetch failed", h.logger)
		return
	}

	params := parsePageParams(r, 5)
	page, meta, ok := paginate(r, res.Events, params)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "page not found", h.logger)
		return
	}

	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Info("served scores", "sport", sport, "count", len(page), "from_cache", res.FromCache)
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"data":       page,
		"pagination": meta,
	}, h.logger)
}

// Live serves the merged live window across sports and collections.
func (h *Handler) Live(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	q := r.URL.Query()

	res, err := h.svc.Live(r.Context(), scores.LiveQuery{
		Sport:        q.Get("sport"),
		Collections:  splitList(q.Get("collections"), q.Get("detailed_conferences")),
		ForceRefresh: boolParam(r, "force_refresh"),
	})
	if err != nil {
		writeError(w, r, nethttp.StatusBadGateway, "upstream fetch failed", h.logger)
		return
	}

	params := parsePageParams(r, 10)
	page, meta, ok := paginate(r, res.Events, params)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "page not found", h.logger)
		return
	}

	filter := "All sports"
	if sport := q.Get("sport"); sport != "" {
		filter = "Specific sport: " + sport
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"data":       page,
		"pagination": meta,
		"info": map[string]any{
			"description":     "Live games, recently finished games, and upcoming games",
			"sports_checked":  res.SportsChecked,
			"filters_applied": res.Filters,
			"cache_duration":  "2 minutes",
			"filter":          filter,
		},
	}, h.logger)
}

// Conference serves every game of one named collection.
func (h *Handler) Conference(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	raw := strings.TrimPrefix(r.URL.Path, "/api/conference/")
	name, err := url.PathUnescape(raw)
	if err != nil || name == "" || strings.Contains(name, "/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid conference name", h.logger)
		return
	}

	res, err := h.svc.Collection(r.Context(), scores.CollectionQuery{
		Name:         name,
		Sport:        r.URL.Query().Get("sport"),
		ForceRefresh: boolParam(r, "force_refresh"),
	})
	switch {
	case errors.Is(err, scores.ErrUnknownCollection):
		writeError(w, r, nethttp.StatusNotFound,
			"conference not supported, available: "+strings.Join(collections.KnownGroups(), ", "), h.logger)
		return
	case errors.Is(err, scores.ErrUnsupportedSport):
		writeError(w, r, nethttp.StatusNotFound, "sport not available for conference "+name, h.logger)
		return
	case err != nil:
		writeError(w, r, nethttp.StatusBadGateway, "upstream fetch failed", h.logger)
		return
	}

	params := parsePageParams(r, 10)
	page, meta, ok := paginate(r, res.Events, params)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "page not found", h.logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, map[string]any{
		"data":       page,
		"pagination": meta,
		"info": map[string]any{
			"conference":        res.Name,
			"sport":             r.URL.Query().Get("sport"),
			"group_ids_used":    res.GroupIDs,
			"total_games_found": meta.TotalScores,
			"cache_duration":    "5 minutes",
		},
	}, h.logger)
}

// TopPerformers serves the stat leaderboard built from the past day's games.
func (h *Handler) TopPerformers(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	q := r.URL.Query()

	topN := 0
	if raw := q.Get("top_n"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 20 {
			writeError(w, r, nethttp.StatusBadRequest, "top_n must be between 1 and 20", h.logger)
			return
		}
		topN = v
	}

	board, err := h.svc.TopPerformers(r.Context(), scores.PerformersQuery{
		Sport:        q.Get("sport"),
		StatCategory: q.Get("stat_category"),
		TopN:         topN,
		ForceRefresh: boolParam(r, "force_refresh"),
	})
	if err != nil {
		writeError(w, r, nethttp.StatusBadGateway, "upstream fetch failed", h.logger)
		return
	}

	sportFilter := "All sports"
	if sport := q.Get("sport"); sport != "" {
		sportFilter = sport
	}
	statFilter := "All categories"
	if stat := q.Get("stat_category"); stat != "" {
		statFilter = stat
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"top_performers": board.Categories,
		"summary":        board.Summary,
		"filters": map[string]any{
			"sport_filter":         sportFilter,
			"stat_category_filter": statFilter,
			"sports_checked":       board.SportsChecked,
		},
	}, h.logger)
}

// Sports lists the supported sport catalog.
func (h *Handler) Sports(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"sports": domain.Catalog(),
		"examples": []string{
			"/api/scores?sport=football_nfl",
			"/api/scores?sport=soccer_eng.1",
			"/api/live?collections=big_sky,top_25",
			"/api/top_performers?sport=hockey_nhl",
		},
		"note": "Use underscores instead of slashes for better URL compatibility",
	}, h.logger)
}

func boolParam(r *nethttp.Request, name string) bool {
	v := strings.ToLower(r.URL.Query().Get(name))
	return v == "true" || v == "1"
}

// splitList merges comma-separated list parameters, trimming blanks.
func splitList(values ...string) []string {
	var out []string
	for _, v := range values {
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}
