package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/komisi-informasi/case-management-api/internal/config"
	"github.com/komisi-informasi/case-management-api/internal/constants"
	"github.com/komisi-informasi/case-management-api/internal/database"
	"github.com/komisi-informasi/case-management-api/internal/handlers"
	"github.com/komisi-informasi/case-management-api/internal/middleware"
	"github.com/komisi-informasi/case-management-api/internal/repository"
	"github.com/komisi-informasi/case-management-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,                        // Redis pool size
		"tcp",                     // network type
		redisAddr,                 // Redis address from config
		"",                        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	disputeRepo := repository.NewDisputeRepository(db)
	partyRepo := repository.NewPartyRepository(db)
	hearingRepo := repository.NewHearingRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	disputeService := services.NewDisputeService(disputeRepo)
	partyService := services.NewPartyService(partyRepo, disputeRepo)
	hearingService := services.NewHearingService(hearingRepo, disputeRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	disputeHandler := handlers.NewDisputeHandler(disputeService)
	partyHandler := handlers.NewPartyHandler(partyService)
	hearingHandler := handlers.NewHearingHandler(hearingService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Case Management API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(authService), authHandler.GetCurrentUser)
		}

		// User management routes (protected)
		users := api.Group("/users")
		users.Use(middleware.RequireAuth(authService))
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.ListUsers)
		}

		// Dispute routes (protected)
		disputes := api.Group("/disputes")
		disputes.Use(middleware.RequireAuth(authService))
		{
			disputes.POST("", disputeHandler.CreateDispute)
			disputes.GET("", disputeHandler.ListDisputes)
			disputes.GET("/:id", disputeHandler.GetDispute)
			disputes.PATCH("/:id", disputeHandler.UpdateDispute)
			disputes.GET("/:id/parties", partyHandler.ListPartiesByDispute)
			disputes.GET("/:id/hearings", hearingHandler.ListHearingsByDispute)
		}

		// Party routes (protected)
		parties := api.Group("/parties")
		parties.Use(middleware.RequireAuth(authService))
		{
			parties.POST("", partyHandler.CreateParty)
		}

		// Hearing routes (protected)
		hearings := api.Group("/hearings")
		hearings.Use(middleware.RequireAuth(authService))
		{
			hearings.POST("", hearingHandler.CreateHearing)
			hearings.PATCH("/:id", hearingHandler.UpdateHearing)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
