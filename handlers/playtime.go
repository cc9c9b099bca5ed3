package handlers

import (
	"net/http"

	"github.com/inkbound/storyshelf/models"
	"github.com/inkbound/storyshelf/store"
)

type PlaytimeHandler struct {
	DB *store.DB
	*Responder
}

type setPlaytimeRequest struct {
	PlayerID  string `json:"playerId" validate:"required"`
	Minutes   int    `json:"minutes" validate:"gte=0"`
	Username  string `json:"username"`
	Thumbnail string `json:"thumbnail"`
}

// Set upserts a player's playtime entry, last-write-wins.
func (h *PlaytimeHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req setPlaytimeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "playerId and non-negative minutes are required")
		return
	}
	if err := h.DB.SetPlaytime(r.Context(), models.Playtime{
		PlayerID:  req.PlayerID,
		Username:  req.Username,
		Thumbnail: req.Thumbnail,
		Minutes:   req.Minutes,
	}); err != nil {
		h.Internal(w, "failed to set playtime", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Leaderboard returns the top ten players by minutes played.
func (h *PlaytimeHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.DB.TopPlaytime(r.Context(), 10)
	if err != nil {
		h.Internal(w, "failed to load playtime leaderboard", err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}
