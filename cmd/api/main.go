package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/fkhayef/dutreat/docs"
	"github.com/fkhayef/dutreat/internal/config"
	"github.com/fkhayef/dutreat/internal/database"
	"github.com/fkhayef/dutreat/internal/logger"
	"github.com/fkhayef/dutreat/internal/session"
	"github.com/fkhayef/dutreat/internal/visitor"
	mw "github.com/fkhayef/dutreat/pkg/middleware"
)

// @title        dutreat API
// @version      1.0
// @description  Split a bill among participants by payment ratio.
// @BasePath     /api/v1
func main() {
	// Load .env file
	envErr := godotenv.Load()

	// Load configuration
	cfg := config.Load()

	logr, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logr.Sync()

	if envErr != nil {
		logr.Info("No .env file found, using environment variables")
	}

	// Visitor counter: PostgreSQL when configured, memory otherwise
	var visitorStore visitor.Store
	if cfg.DatabaseURL != "" {
		db, err := database.NewPostgresConnection(cfg.DatabaseURL)
		if err != nil {
			logr.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = database.Migrate(ctx, db)
		cancel()
		if err != nil {
			logr.Fatal("Failed to migrate database", zap.Error(err))
		}

		logr.Info("Connected to database successfully")
		visitorStore = visitor.NewRepository(db)
	} else {
		logr.Warn("DATABASE_URL not set, visitor counter is kept in memory")
		visitorStore = visitor.NewMemoryStore()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Session feature
	sessionStore := session.NewStore(cfg.SessionTTL)
	go sessionStore.Run(ctx, cfg.SessionSweepInterval, func(evicted int) {
		logr.Debug("Evicted idle sessions", zap.Int("count", evicted))
	})
	sessionService := session.NewService(sessionStore, cfg.MaxParticipants)
	sessionHandler := session.NewHandler(sessionService)

	// Visitor feature
	visitorService := visitor.NewService(visitorStore)
	visitorHandler := visitor.NewHandler(visitorService)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(mw.RequestLogger(logr))
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/sessions", sessionHandler.Routes())
		r.Mount("/visits", visitorHandler.Routes())
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logr.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	logr.Info("Server starting", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logr.Fatal("Server failed to start", zap.Error(err))
	}
	logr.Info("Server stopped")
}
