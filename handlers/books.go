package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/inkbound/storyshelf/models"
	"github.com/inkbound/storyshelf/moderation"
	"github.com/inkbound/storyshelf/store"
)

type BooksHandler struct {
	DB        *store.DB
	Moderator *moderation.Moderator
	*Responder
}

type saveBookRequest struct {
	BookID   string   `json:"bookId"`
	Title    string   `json:"title" validate:"required,max=100"`
	Content  []string `json:"content" validate:"required,min=1,dive,max=1000"`
	PlayerID string   `json:"playerId" validate:"required"`
	Author   string   `json:"author"`
	CoverID  string   `json:"coverId"`
	Genres   []string `json:"genres" validate:"max=3,dive,required"`
}

type listBooksResponse struct {
	Books []models.Book `json:"books"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

type saveBookResponse struct {
	Message string       `json:"message"`
	BookID  string       `json:"bookId"`
	Book    *models.Book `json:"book"`
}

type bookActionResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Book    *models.Book `json:"book"`
}

// List serves the public shelf: published books, paginated, newest first.
func (h *BooksHandler) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 20)
	if limit > 100 {
		limit = 100
	}
	books, total, err := h.DB.PublishedBooks(r.Context(), page, limit)
	if err != nil {
		h.Internal(w, "failed to list books", err)
		return
	}
	respondJSON(w, http.StatusOK, listBooksResponse{Books: books, Total: total, Page: page, Limit: limit})
}

// Get returns one book with its content assembled from the page store.
func (h *BooksHandler) Get(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookId")
	book, err := h.DB.BookByID(r.Context(), bookID)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "book not found")
		return
	}
	if err != nil {
		h.Internal(w, "failed to load book", err)
		return
	}
	content, err := h.DB.PagesByBook(r.Context(), bookID)
	if err != nil {
		h.Internal(w, "failed to load book content", err)
		return
	}
	book.Content = content
	respondJSON(w, http.StatusOK, book)
}

// Drafts lists a player's unpublished books, content included.
func (h *BooksHandler) Drafts(w http.ResponseWriter, r *http.Request) {
	h.listByPlayer(w, r, models.StatusDraft)
}

// Published lists a player's published books, content included.
func (h *BooksHandler) Published(w http.ResponseWriter, r *http.Request) {
	h.listByPlayer(w, r, models.StatusPublished)
}

func (h *BooksHandler) listByPlayer(w http.ResponseWriter, r *http.Request, status string) {
	playerID := r.URL.Query().Get("playerId")
	if playerID == "" {
		respondError(w, http.StatusBadRequest, "playerId is required")
		return
	}
	books, err := h.DB.BooksByPlayer(r.Context(), playerID, status)
	if err != nil {
		h.Internal(w, "failed to list books", err)
		return
	}
	for i := range books {
		content, err := h.DB.PagesByBook(r.Context(), books[i].BookID)
		if err != nil {
			h.Internal(w, "failed to load book content", err)
			return
		}
		books[i].Content = content
	}
	respondJSON(w, http.StatusOK, books)
}

// Save creates or updates a draft. The book record is upserted before the
// pages are replaced so a rejected save (wrong owner, duplicate id) never
// touches existing content.
func (h *BooksHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveBookRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return
	}
	texts := append([]string{req.Title}, req.Content...)
	if term := h.Moderator.FlagAny(texts...); term != "" {
		respondError(w, http.StatusBadRequest, "content rejected by moderation")
		return
	}

	bookID := req.BookID
	if bookID == "" {
		bookID = uuid.NewString()
	}
	author := req.Author
	if author == "" {
		author = "Anonymous"
	}
	genres := req.Genres
	if genres == nil {
		genres = []string{}
	}
	now := nowISO()
	book, err := h.DB.UpsertDraft(r.Context(), &models.Book{
		BookID:    bookID,
		PlayerID:  req.PlayerID,
		Title:     req.Title,
		Author:    author,
		CoverID:   req.CoverID,
		Genres:    genres,
		PageCount: len(req.Content),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if errors.Is(err, store.ErrDuplicate) {
		respondError(w, http.StatusConflict, "book id already in use")
		return
	}
	if err != nil {
		h.Internal(w, "failed to save book", err)
		return
	}
	if _, err := h.DB.ReplacePages(r.Context(), bookID, req.Content); err != nil {
		h.Internal(w, "failed to save book content", err)
		return
	}
	book.Content = req.Content
	respondJSON(w, http.StatusCreated, saveBookResponse{Message: "Book saved!", BookID: bookID, Book: book})
}

type publishRequest struct {
	PlayerID    string `json:"playerId" validate:"required"`
	GlowingBook bool   `json:"glowingBook"`
	CustomCover bool   `json:"customCover"`
}

// Publish flips a draft to published. Missing book, wrong owner and
// already-published all answer 404; the caller cannot tell them apart.
func (h *BooksHandler) Publish(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookId")
	var req publishRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "playerId is required")
		return
	}
	book, err := h.DB.PublishBook(r.Context(), bookID, req.PlayerID, req.GlowingBook, req.CustomCover, nowISO())
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "no matching draft to publish")
		return
	}
	if err != nil {
		h.Internal(w, "failed to publish book", err)
		return
	}
	respondJSON(w, http.StatusOK, bookActionResponse{Success: true, Message: "Book published!", Book: book})
}

// Delete removes a book's pages, then its record.
func (h *BooksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookId")
	if err := h.DB.DeletePages(r.Context(), bookID); err != nil {
		h.Internal(w, "failed to delete book content", err)
		return
	}
	book, err := h.DB.DeleteBook(r.Context(), bookID)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "book not found")
		return
	}
	if err != nil {
		h.Internal(w, "failed to delete book", err)
		return
	}
	respondJSON(w, http.StatusOK, bookActionResponse{Success: true, Message: "Book deleted", Book: book})
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
