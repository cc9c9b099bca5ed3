package handlers

import (
	"errors"
	"net/http"

	"github.com/inkbound/storyshelf/store"
)

type BookmarksHandler struct {
	DB *store.DB
	*Responder
}

type setBookmarkRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
	BookID   string `json:"bookId" validate:"required"`
	Page     int    `json:"page" validate:"required,min=1"`
}

// Set saves the player's reading position in a book, last-write-wins.
func (h *BookmarksHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req setBookmarkRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "playerId, bookId and page are required")
		return
	}
	if err := h.DB.SetBookmark(r.Context(), req.PlayerID, req.BookID, req.Page); err != nil {
		h.Internal(w, "failed to set bookmark", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Get returns the player's bookmark for a book, 404 if none.
func (h *BookmarksHandler) Get(w http.ResponseWriter, r *http.Request) {
	playerID := r.URL.Query().Get("playerId")
	bookID := r.URL.Query().Get("bookId")
	if playerID == "" || bookID == "" {
		respondError(w, http.StatusBadRequest, "playerId and bookId are required")
		return
	}
	bm, err := h.DB.BookmarkByPlayer(r.Context(), playerID, bookID)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "no bookmark")
		return
	}
	if err != nil {
		h.Internal(w, "failed to load bookmark", err)
		return
	}
	respondJSON(w, http.StatusOK, bm)
}
