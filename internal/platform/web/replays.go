package web

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const (
	defaultLimit = 20
	maxLimit     = 500
)

type replayHandler struct {
	store  ReplayStore
	logger *log.Logger
}

type replayJSON struct {
	ID         int64       `json:"id"`
	GameID     string      `json:"game_id"`
	Seed       int64       `json:"seed"`
	TickRate   int         `json:"tick_rate"`
	Frames     uint64      `json:"frames"`
	Ticks      uint64      `json:"ticks"`
	Score      int         `json:"score"`
	Length     int         `json:"length"`
	EndReason  string      `json:"end_reason"`
	Player     string      `json:"player,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	ConfigYAML string      `json:"config_yaml,omitempty"`
	Inputs     []inputJSON `json:"inputs,omitempty"`
	Verified   *bool       `json:"verified,omitempty"`
	Mismatches []string    `json:"mismatches,omitempty"`
}

type inputJSON struct {
	Frame  uint64 `json:"frame"`
	Action string `json:"action"`
}

func toJSON(r storage.Replay) replayJSON {
	return replayJSON{
		ID:        r.ID,
		GameID:    r.GameID,
		Seed:      r.Seed,
		TickRate:  r.TickRate,
		Frames:    r.Frames,
		Ticks:     r.Ticks,
		Score:     r.Score,
		Length:    r.Length,
		EndReason: r.EndReason,
		Player:    r.Player,
		CreatedAt: r.CreatedAt,
	}
}

// List handles GET /replays?game=<id>&limit=<n>.
func (h *replayHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			respondError(w, h.logger, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxLimit)
	}

	replays, err := h.store.ListReplays(r.Context(), r.URL.Query().Get("game"), limit)
	if err != nil {
		h.logger.Error("listing replays", "error", err)
		respondError(w, h.logger, http.StatusInternalServerError, "could not list replays")
		return
	}

	out := make([]replayJSON, len(replays))
	for i, rp := range replays {
		out[i] = toJSON(rp)
	}
	respondJSON(w, h.logger, http.StatusOK, out)
}

// Get handles GET /replays/{id}. With ?verify=1 the run is re-simulated and
// the response says whether it reproduces the stored outcome.
func (h *replayHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		respondError(w, h.logger, http.StatusBadRequest, "invalid replay id")
		return
	}

	rp, err := h.store.Replay(r.Context(), id)
	if errors.Is(err, storage.ErrReplayNotFound) {
		respondError(w, h.logger, http.StatusNotFound, "replay not found")
		return
	}
	if err != nil {
		h.logger.Error("loading replay", "id", id, "error", err)
		respondError(w, h.logger, http.StatusInternalServerError, "could not load replay")
		return
	}

	out := toJSON(*rp)
	out.ConfigYAML = rp.ConfigYAML
	out.Inputs = make([]inputJSON, len(rp.Inputs))
	for i, in := range rp.Inputs {
		out.Inputs[i] = inputJSON{Frame: in.Frame, Action: in.Action}
	}

	if v := r.URL.Query().Get("verify"); v == "1" || v == "true" {
		res, err := replay.Simulate(rp)
		if err != nil {
			respondError(w, h.logger, http.StatusUnprocessableEntity, err.Error())
			return
		}
		ok := res.Matches()
		out.Verified = &ok
		out.Mismatches = res.Mismatches
	}

	respondJSON(w, h.logger, http.StatusOK, out)
}
