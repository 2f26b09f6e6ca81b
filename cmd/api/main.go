package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"

	"github.com/ArowuTest/newslens-backend/api/routes"
	"github.com/ArowuTest/newslens-backend/internal/config"
	"github.com/ArowuTest/newslens-backend/internal/handlers"
	"github.com/ArowuTest/newslens-backend/internal/repositories"
	mongorepo "github.com/ArowuTest/newslens-backend/internal/repositories/mongodb"
	"github.com/ArowuTest/newslens-backend/internal/services"
	tokens "github.com/ArowuTest/newslens-backend/pkg/jwt"
	"github.com/ArowuTest/newslens-backend/pkg/mongodb"
	"github.com/ArowuTest/newslens-backend/pkg/smsgateway"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return 1
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	})))

	mongoClient, err := mongodb.NewClient(context.Background(), cfg.MongoDB.URI)
	if err != nil {
		log.Printf("Failed to connect to MongoDB: %v", err)
		return 1
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	err = mongorepo.EnsureIndexes(indexCtx, db)
	cancelIndexes()
	if err != nil {
		log.Printf("Failed to ensure indexes: %v", err)
		return 1
	}

	// Repositories
	var userRepo repositories.UserRepository = mongorepo.NewUserRepository(db)
	var interactionRepo repositories.InteractionRepository = mongorepo.NewInteractionRepository(db)
	var sessionRepo repositories.SessionRepository = mongorepo.NewSessionRepository(db)

	// Services
	userService := services.NewUserService(userRepo)
	interactionService := services.NewInteractionService(interactionRepo, userRepo)
	onboardingService := services.NewOnboardingService(sessionRepo, userService, cfg.Session.TTL)

	handlerDeps := routes.HandlerDependencies{
		HealthHandler:      handlers.NewHealthHandler(mongoClient),
		UserHandler:        handlers.NewUserHandler(userService),
		InteractionHandler: handlers.NewInteractionHandler(interactionService),
		WebhookHandler:     handlers.NewWebhookHandler(onboardingService),
	}

	if cfg.JWT.Secret != "" {
		tokenService, err := tokens.NewTokenService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiresIn)*time.Second)
		if err != nil {
			log.Printf("Failed to configure API tokens: %v", err)
			return 1
		}
		handlerDeps.TokenVerifier = tokenService
		slog.Info("API token authentication enabled")
	}

	if cfg.Twilio.AuthToken != "" {
		if cfg.Twilio.WebhookURL == "" {
			log.Println("TWILIO_WEBHOOK_URL is required when TWILIO_AUTH_TOKEN is set")
			return 1
		}
		handlerDeps.SignatureChecker = smsgateway.NewSignatureValidator(cfg.Twilio.AuthToken, cfg.Twilio.WebhookURL)
		slog.Info("Webhook signature validation enabled", "url", cfg.Twilio.WebhookURL)
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	slog.Info("Server starting", "port", cfg.Server.Port, "database", cfg.MongoDB.Database)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		log.Printf("listen: %s", err)
		return 1
	case <-quit:
	}
	slog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		return 1
	}

	slog.Info("Server exiting")
	return 0
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
