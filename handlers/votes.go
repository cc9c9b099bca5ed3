package handlers

import (
	"errors"
	"net/http"

	"github.com/inkbound/storyshelf/store"
)

type VotesHandler struct {
	DB *store.DB
	*Responder
}

type castVoteRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
	BookID   string `json:"bookId" validate:"required"`
	VoteType string `json:"voteType" validate:"required,oneof=up"`
}

type castVoteResponse struct {
	Success bool `json:"success"`
	Upvotes int  `json:"upvotes"`
}

// Check reports whether the player has upvoted the book. A missing book
// reads as "not voted" rather than an error.
func (h *VotesHandler) Check(w http.ResponseWriter, r *http.Request) {
	playerID := r.URL.Query().Get("playerId")
	bookID := r.URL.Query().Get("bookId")
	if playerID == "" || bookID == "" {
		respondError(w, http.StatusBadRequest, "playerId and bookId are required")
		return
	}
	voted, err := h.DB.HasVoted(r.Context(), bookID, playerID)
	if err != nil {
		h.Internal(w, "failed to check vote", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"voted": voted})
}

// Cast records an upvote. Idempotent: a repeat vote is a no-op that still
// answers with the current count.
func (h *VotesHandler) Cast(w http.ResponseWriter, r *http.Request) {
	var req castVoteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "playerId, bookId and voteType=\"up\" are required")
		return
	}
	upvotes, _, err := h.DB.CastVote(r.Context(), req.BookID, req.PlayerID)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "book not found")
		return
	}
	if err != nil {
		h.Internal(w, "failed to cast vote", err)
		return
	}
	respondJSON(w, http.StatusOK, castVoteResponse{Success: true, Upvotes: upvotes})
}
