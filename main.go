package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/talenthub/backend/auth"
	"github.com/talenthub/backend/config"
	_ "github.com/talenthub/backend/docs"
	"github.com/talenthub/backend/extractor"
	"github.com/talenthub/backend/gemini"
	"github.com/talenthub/backend/handlers"
	"github.com/talenthub/backend/match"
	"github.com/talenthub/backend/models"
	"github.com/talenthub/backend/storage"
)

// @title TalentHub API
// @version 1.0
// @description Recruiting platform backend with candidate profiles, CV extraction, search and AI matching.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@talenthub.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	log.Println("Initializing Firestore client...")
	firestoreClient, err := storage.NewFirestoreClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}
	defer firestoreClient.Close()
	log.Println("Firestore client initialized successfully")

	log.Println("Initializing Cloud Storage client...")
	storageClient, err := storage.NewCloudStorageClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage client: %v", err)
	}
	defer storageClient.Close()
	log.Println("Cloud Storage client initialized successfully")

	jwtService := auth.NewJWTService(cfg)

	// AI is optional: without a Vertex AI location every AI-backed
	// feature runs its deterministic fallback
	var geminiClient *gemini.Client
	if cfg.AIConfigured() {
		log.Println("Initializing Gemini client...")
		geminiClient, err = gemini.NewClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize Gemini client: %v", err)
		}
		defer geminiClient.Close()
		log.Println("Gemini client initialized successfully")
	} else {
		log.Println("AI not configured (LOCATION unset), running with heuristic fallbacks")
	}

	profileExtractor := extractor.New(geminiClient)
	matchEngine := match.NewEngine(geminiClient, firestoreClient)

	authHandler := handlers.NewAuthHandler(firestoreClient, jwtService)
	jobSeekerHandler := handlers.NewJobSeekerHandler(firestoreClient)
	recruiterHandler := handlers.NewRecruiterHandler(firestoreClient)
	searchHandler := handlers.NewSearchHandler(firestoreClient)
	aiHandler := handlers.NewAIHandler(firestoreClient, geminiClient, matchEngine)
	uploadHandler := handlers.NewUploadHandler(firestoreClient, storageClient, profileExtractor, cfg)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Auth endpoints (public)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// Job seeker endpoints
		jobSeeker := api.Group("/jobseeker")
		jobSeeker.Use(auth.AuthMiddleware(jwtService), auth.RequireRole(models.RoleJobSeeker))
		{
			jobSeeker.GET("/profile", jobSeekerHandler.GetMyProfile)
			jobSeeker.PUT("/profile", jobSeekerHandler.UpdateMyProfile)
			jobSeeker.POST("/cv", uploadHandler.UploadCV)
			jobSeeker.DELETE("/cv", uploadHandler.DeleteCV)
			jobSeeker.GET("/suggestions", aiHandler.GetSuggestions)
		}

		// Candidate endpoints (any authenticated role)
		candidates := api.Group("/candidates")
		candidates.Use(auth.AuthMiddleware(jwtService))
		{
			candidates.GET("/top", searchHandler.TopCandidates)
			candidates.GET("/by-skills", searchHandler.CandidatesBySkills)
			candidates.GET("/statistics", searchHandler.Statistics)
			candidates.GET("/:id", jobSeekerHandler.GetCandidate)
			candidates.POST("/:id/summary", aiHandler.GenerateSummary)
		}

		// Recruiter endpoints
		recruiter := api.Group("/recruiter")
		recruiter.Use(auth.AuthMiddleware(jwtService), auth.RequireRole(models.RoleRecruiter))
		{
			recruiter.GET("/profile", recruiterHandler.GetMyProfile)
			recruiter.PUT("/profile", recruiterHandler.UpdateMyProfile)
			recruiter.POST("/search", searchHandler.Search)
			recruiter.POST("/match", aiHandler.MatchCandidates)
			recruiter.GET("/saved", recruiterHandler.ListSavedCandidates)
			recruiter.POST("/saved", recruiterHandler.SaveCandidate)
			recruiter.DELETE("/saved/:id", recruiterHandler.RemoveSavedCandidate)
			recruiter.GET("/searches", recruiterHandler.GetSearchHistory)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
