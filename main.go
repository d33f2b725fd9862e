package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"notes-api/auth"
	"notes-api/config"
	"notes-api/db"
	"notes-api/handlers"
	appmw "notes-api/middleware"
	"notes-api/store"
)

func newRouter(conn *sql.DB, tokens *auth.TokenService, logger *slog.Logger) *chi.Mux {
	authHandler := handlers.NewAuthHandler(store.NewUserStore(conn), tokens, logger)
	noteHandler := handlers.NewNoteHandler(store.NewNoteStore(conn), logger)

	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("API is running"))
	})

	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(appmw.RequireAuth(tokens))
		r.Post("/notes", noteHandler.Create)
		r.Get("/notes", noteHandler.List)
		r.Put("/notes/{id}", noteHandler.Update)
		r.Delete("/notes/{id}", noteHandler.Delete)
	})

	return r
}

func run() error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	conn, err := db.Connect(cfg.DSN)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.Migrate(context.Background(), conn); err != nil {
		return err
	}

	tokens := auth.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      newRouter(conn, tokens, logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", "addr", "http://localhost:"+cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
