package handlers

import (
	"errors"
	"net/http"

	"github.com/inkbound/storyshelf/store"
)

type ViewsHandler struct {
	DB *store.DB
	*Responder
}

type recordViewRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
	BookID   string `json:"bookId" validate:"required"`
}

type recordViewResponse struct {
	Success   bool `json:"success"`
	Duplicate bool `json:"duplicate"`
	Views     int  `json:"views"`
}

// Record counts at most one view per player per book per UTC day. Repeats
// answer duplicate=true with the unchanged count.
func (h *ViewsHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordViewRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "playerId and bookId are required")
		return
	}
	duplicate, err := h.DB.RecordView(r.Context(), req.PlayerID, req.BookID, today())
	if err != nil {
		h.Internal(w, "failed to record view", err)
		return
	}
	if duplicate {
		book, err := h.DB.BookByID(r.Context(), req.BookID)
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "book not found")
			return
		}
		if err != nil {
			h.Internal(w, "failed to load book", err)
			return
		}
		respondJSON(w, http.StatusOK, recordViewResponse{Success: true, Duplicate: true, Views: book.Views})
		return
	}
	views, err := h.DB.IncrementViews(r.Context(), req.BookID)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "book not found")
		return
	}
	if err != nil {
		h.Internal(w, "failed to count view", err)
		return
	}
	respondJSON(w, http.StatusOK, recordViewResponse{Success: true, Duplicate: false, Views: views})
}
