package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/inkbound/storyshelf/models"
	"github.com/inkbound/storyshelf/store"
)

type ReportsHandler struct {
	DB *store.DB
	*Responder
}

type reportRequest struct {
	PlayerID   string `json:"playerId" validate:"required"`
	PlayerName string `json:"playerName"`
	Reason     string `json:"reason" validate:"required"`
}

// Report files an abuse report against a book. Append-only; nothing reads
// these back over the API.
func (h *ReportsHandler) Report(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookId")
	var req reportRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "playerId and reason are required")
		return
	}
	book, err := h.DB.BookByID(r.Context(), bookID)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "book not found")
		return
	}
	if err != nil {
		h.Internal(w, "failed to load book", err)
		return
	}
	report := models.Report{
		ReportID:   uuid.NewString(),
		BookID:     bookID,
		BookTitle:  book.Title,
		PlayerID:   req.PlayerID,
		PlayerName: req.PlayerName,
		Reason:     req.Reason,
		Date:       nowISO(),
	}
	if err := h.DB.AppendReport(r.Context(), report); err != nil && !errors.Is(err, store.ErrNotFound) {
		h.Internal(w, "failed to file report", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
