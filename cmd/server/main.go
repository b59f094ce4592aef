package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todolist-api/internal/auth"
	"github.com/yukikurage/todolist-api/internal/config"
	"github.com/yukikurage/todolist-api/internal/database"
	"github.com/yukikurage/todolist-api/internal/handlers"
	"github.com/yukikurage/todolist-api/internal/logger"
	"github.com/yukikurage/todolist-api/internal/repository"
	"github.com/yukikurage/todolist-api/internal/routes"
	"github.com/yukikurage/todolist-api/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		fatal(log, "invalid configuration", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		fatal(log, "failed to connect to database", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		fatal(log, "failed to run migrations", err)
	}

	// Identity provider and token verification
	cognito, err := services.NewCognitoProvider(ctx, cfg)
	if err != nil {
		fatal(log, "failed to create cognito client", err)
	}
	keyfunc, err := auth.NewJWKSKeyfunc(ctx, cfg.JWKSURL())
	if err != nil {
		fatal(log, "failed to load signing keys", err)
	}
	verifier := auth.NewTokenValidator(cfg.JWTIssuer, cfg.JWTAudience, keyfunc)

	// Initialize repositories and services
	todoRepo := repository.NewTodoRepository(db)
	tagRepo := repository.NewTagRepository(db)

	authService := services.NewAuthService(cognito, services.CognitoSettings{
		UserPoolID:   cfg.CognitoUserPoolID,
		ClientID:     cfg.CognitoClientID,
		ClientSecret: cfg.CognitoClientSecret,
	}, log)
	todoService := services.NewTodoService(todoRepo, repository.NewTransactor(db))
	tagService := services.NewTagService(tagRepo)

	router := routes.NewRouter(routes.Dependencies{
		BasePath:    cfg.BasePath,
		CORSOrigins: cfg.CORSOrigins,
		Logger:      log,
		Verifier:    verifier,
		AuthHandler: handlers.NewAuthHandler(authService, log),
		TodoHandler: handlers.NewTodoHandler(todoService, log),
		TagHandler:  handlers.NewTagHandler(tagService, log),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server starting", "addr", srv.Addr, "base_path", cfg.BasePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal(log, "server failed", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, "error", err)
	os.Exit(1)
}
