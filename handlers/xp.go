package handlers

import (
	"math"
	"net/http"

	"github.com/inkbound/storyshelf/store"
)

type XPHandler struct {
	DB         *store.DB
	ReadReward int
	*Responder
}

type awardXPRequest struct {
	PlayerID string  `json:"playerId" validate:"required"`
	Username string  `json:"username" validate:"required"`
	Amount   float64 `json:"amount" validate:"gte=0"`
}

type awardXPResponse struct {
	Success bool `json:"success"`
	XP      int  `json:"xp"`
}

type bookReadRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
	Username string `json:"username" validate:"required"`
	BookID   string `json:"bookId" validate:"required"`
}

type bookReadResponse struct {
	Success bool `json:"success"`
	Awarded bool `json:"awarded"`
	XP      int  `json:"xp"`
}

// Award adds floor(amount) XP to the player's ledger. Deduplication is the
// caller's problem here; the bookread path below is self-deduplicating.
func (h *XPHandler) Award(w http.ResponseWriter, r *http.Request) {
	var req awardXPRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "playerId, username and a non-negative amount are required")
		return
	}
	xp, err := h.DB.AwardXP(r.Context(), req.PlayerID, req.Username, int(math.Floor(req.Amount)))
	if err != nil {
		h.Internal(w, "failed to award xp", err)
		return
	}
	respondJSON(w, http.StatusOK, awardXPResponse{Success: true, XP: xp})
}

// BookRead awards the read reward once per player per book per UTC day,
// gated by the read log.
func (h *XPHandler) BookRead(w http.ResponseWriter, r *http.Request) {
	var req bookReadRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "playerId, username and bookId are required")
		return
	}
	duplicate, err := h.DB.RecordRead(r.Context(), req.PlayerID, req.BookID, today())
	if err != nil {
		h.Internal(w, "failed to record read", err)
		return
	}
	if duplicate {
		respondJSON(w, http.StatusOK, bookReadResponse{Success: true, Awarded: false, XP: 0})
		return
	}
	if _, err := h.DB.AwardXP(r.Context(), req.PlayerID, req.Username, h.ReadReward); err != nil {
		h.Internal(w, "failed to award read xp", err)
		return
	}
	respondJSON(w, http.StatusOK, bookReadResponse{Success: true, Awarded: true, XP: h.ReadReward})
}

// Leaderboard returns the top ten players by total XP.
func (h *XPHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.DB.TopXP(r.Context(), 10)
	if err != nil {
		h.Internal(w, "failed to load xp leaderboard", err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}
