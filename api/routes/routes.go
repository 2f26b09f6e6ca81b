package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ArowuTest/newslens-backend/internal/config"
	"github.com/ArowuTest/newslens-backend/internal/handlers"
	"github.com/ArowuTest/newslens-backend/internal/middleware"
)

// HandlerDependencies holds all handler instances and the optional request guards
type HandlerDependencies struct {
	HealthHandler      *handlers.HealthHandler
	UserHandler        *handlers.UserHandler
	InteractionHandler *handlers.InteractionHandler
	WebhookHandler     *handlers.WebhookHandler

	// Nil disables API token checks
	TokenVerifier middleware.TokenVerifier
	// Nil disables webhook signature checks
	SignatureChecker middleware.SignatureChecker
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware(cfg))

	router.NoRoute(middleware.NotFoundHandler)

	// Public routes
	router.GET("/", deps.HealthHandler.Root)
	router.GET("/health", deps.HealthHandler.Health)

	webhook := router.Group("/sms-webhook")
	if deps.SignatureChecker != nil {
		webhook.Use(middleware.TwilioSignatureMiddleware(deps.SignatureChecker))
	}
	webhook.POST("", deps.WebhookHandler.SMS)

	// Data routes
	api := router.Group("")
	if deps.TokenVerifier != nil {
		api.Use(middleware.JWTAuthMiddleware(deps.TokenVerifier))
	}
	{
		api.POST("/addUser", deps.UserHandler.CreateUser)
		api.POST("/users", deps.UserHandler.CreateUser)
		api.POST("/addInteraction", deps.InteractionHandler.AddInteraction)
		api.GET("/findInteractions", deps.InteractionHandler.FindInteractions)
		api.POST("/userSummary", deps.InteractionHandler.UserSummary)
		api.POST("/newsFeedDigest", deps.InteractionHandler.NewsFeedDigest)
	}

	return router
}
