package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/inkbound/storyshelf/cache"
	"github.com/inkbound/storyshelf/store"
)

// LeaderboardHandler serves the aggregation-backed rankings through a short
// TTL cache; the rankings tolerate staleness up to the cache window.
type LeaderboardHandler struct {
	DB    *store.DB
	Cache *cache.Leaderboards
	*Responder
}

const leaderboardSize = 10

func (h *LeaderboardHandler) MostBooksRead(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "most-books-read", func(ctx context.Context) (interface{}, error) {
		return h.DB.MostBooksRead(ctx, leaderboardSize)
	})
}

func (h *LeaderboardHandler) TopReviewers(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "top-reviewers", func(ctx context.Context) (interface{}, error) {
		return h.DB.TopReviewers(ctx, leaderboardSize)
	})
}

func (h *LeaderboardHandler) BooksWritten(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "books-written", func(ctx context.Context) (interface{}, error) {
		return h.DB.MostBooksWritten(ctx, leaderboardSize)
	})
}

func (h *LeaderboardHandler) PopularAuthors(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "most-popular-author", func(ctx context.Context) (interface{}, error) {
		return h.DB.MostPopularAuthors(ctx, leaderboardSize)
	})
}

func (h *LeaderboardHandler) serve(w http.ResponseWriter, r *http.Request, key string, compute func(context.Context) (interface{}, error)) {
	ctx := r.Context()
	if data, ok := h.Cache.Get(ctx, key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}
	ranks, err := compute(ctx)
	if err != nil {
		h.Internal(w, "failed to compute leaderboard "+key, err)
		return
	}
	data, err := json.Marshal(ranks)
	if err != nil {
		h.Internal(w, "failed to encode leaderboard "+key, err)
		return
	}
	h.Cache.Set(ctx, key, data)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
