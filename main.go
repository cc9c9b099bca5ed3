package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/inkbound/storyshelf/cache"
	"github.com/inkbound/storyshelf/config"
	"github.com/inkbound/storyshelf/handlers"
	"github.com/inkbound/storyshelf/middleware"
	"github.com/inkbound/storyshelf/moderation"
	"github.com/inkbound/storyshelf/store"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config:", err)
	}

	var logger *zap.Logger
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal("logger:", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	db, err := store.NewMongoDB(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		logger.Fatal("mongodb connect", zap.Error(err))
	}
	defer func() {
		if err := db.Disconnect(context.Background()); err != nil {
			logger.Warn("mongodb disconnect", zap.Error(err))
		}
	}()
	if err := db.EnsureIndexes(ctx); err != nil {
		logger.Fatal("mongodb indexes", zap.Error(err))
	}
	logger.Info("connected to mongodb", zap.String("db", cfg.DBName))

	lbCache, err := cache.New(ctx, cfg.RedisAddr, cfg.LeaderboardTTL)
	if err != nil {
		logger.Fatal("redis connect", zap.Error(err))
	}
	defer func() { _ = lbCache.Close() }()
	if cfg.RedisAddr != "" {
		logger.Info("leaderboard cache on redis", zap.String("addr", cfg.RedisAddr))
	}

	rp := &handlers.Responder{Log: logger, Production: cfg.IsProduction()}
	booksHandler := &handlers.BooksHandler{DB: db, Moderator: moderation.New(cfg.Blocklist), Responder: rp}
	votesHandler := &handlers.VotesHandler{DB: db, Responder: rp}
	viewsHandler := &handlers.ViewsHandler{DB: db, Responder: rp}
	commentsHandler := &handlers.CommentsHandler{DB: db, Responder: rp}
	xpHandler := &handlers.XPHandler{DB: db, ReadReward: cfg.ReadXPReward, Responder: rp}
	playtimeHandler := &handlers.PlaytimeHandler{DB: db, Responder: rp}
	leaderboardHandler := &handlers.LeaderboardHandler{DB: db, Cache: lbCache, Responder: rp}
	bookmarksHandler := &handlers.BookmarksHandler{DB: db, Responder: rp}
	reportsHandler := &handlers.ReportsHandler{DB: db, Responder: rp}

	r := chi.NewRouter()
	r.Use(middleware.AllowAll())
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"welcome to storyshelf."}`))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/books", func(r chi.Router) {
			r.Get("/", booksHandler.List)
			r.Post("/", booksHandler.Save)
			r.Get("/drafts", booksHandler.Drafts)
			r.Get("/published", booksHandler.Published)
			r.Get("/{bookId}", booksHandler.Get)
			r.Delete("/{bookId}", booksHandler.Delete)
			r.Post("/{bookId}/publish", booksHandler.Publish)
			r.Get("/{bookId}/comments", commentsHandler.List)
			r.Post("/{bookId}/comments", commentsHandler.Add)
			r.Post("/{bookId}/report", reportsHandler.Report)
		})
		r.Get("/votes", votesHandler.Check)
		r.Post("/votes", votesHandler.Cast)
		r.Post("/views", viewsHandler.Record)
		r.Post("/xp", xpHandler.Award)
		r.Post("/xp/bookread", xpHandler.BookRead)
		r.Get("/xp/leaderboard", xpHandler.Leaderboard)
		r.Post("/playtime", playtimeHandler.Set)
		r.Get("/playtime/leaderboard", playtimeHandler.Leaderboard)
		r.Get("/bookmarks", bookmarksHandler.Get)
		r.Post("/bookmarks", bookmarksHandler.Set)
		r.Route("/leaderboard", func(r chi.Router) {
			r.Get("/most-books-read", leaderboardHandler.MostBooksRead)
			r.Get("/top-reviewers", leaderboardHandler.TopReviewers)
			r.Get("/books-written", leaderboardHandler.BooksWritten)
			r.Get("/most-popular-author", leaderboardHandler.PopularAuthors)
		})
	})

	server := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Info("server listening", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}
