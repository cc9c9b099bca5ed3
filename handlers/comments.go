package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/inkbound/storyshelf/models"
	"github.com/inkbound/storyshelf/store"
)

type CommentsHandler struct {
	DB *store.DB
	*Responder
}

type addCommentRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
	Username string `json:"username" validate:"required"`
	Text     string `json:"text" validate:"required"`
}

type commentsResponse struct {
	Success  bool             `json:"success"`
	Comments []models.Comment `json:"comments"`
}

// Add leaves a comment on a book. One per player, no edits; the commenter
// starts with a like on their own comment.
func (h *CommentsHandler) Add(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookId")
	var req addCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "playerId, username and text are required")
		return
	}
	comment := models.Comment{
		PlayerID:  req.PlayerID,
		Username:  req.Username,
		Text:      req.Text,
		CreatedAt: nowISO(),
		Likes:     []string{req.PlayerID},
		Dislikes:  []string{},
	}
	comments, err := h.DB.AddComment(r.Context(), bookID, comment)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "book not found")
		return
	}
	if errors.Is(err, store.ErrDuplicate) {
		respondError(w, http.StatusForbidden, "player has already commented on this book")
		return
	}
	if err != nil {
		h.Internal(w, "failed to add comment", err)
		return
	}
	respondJSON(w, http.StatusOK, commentsResponse{Success: true, Comments: comments})
}

// List returns a book's comments ranked by likes, newest first among ties.
func (h *CommentsHandler) List(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookId")
	comments, err := h.DB.CommentsByBook(r.Context(), bookID)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "book not found")
		return
	}
	if err != nil {
		h.Internal(w, "failed to list comments", err)
		return
	}
	respondJSON(w, http.StatusOK, commentsResponse{Success: true, Comments: comments})
}
