package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "watched-api/api/swagger" // swagger docs
	"watched-api/internal/config"
	"watched-api/internal/database"
	"watched-api/internal/handler"
	"watched-api/internal/middleware"
	"watched-api/internal/repository"
	"watched-api/internal/service"
	"watched-api/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Watched API
// @version         1.0
// @description     Social movie review API: accounts, posts, comments, likes, ratings and an admin audit trail.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	cfg := config.Load()

	db, err := database.NewConnection(cfg.DSN())
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	redisClient := config.NewRedisClient(cfg)

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	adminLogRepo := repository.NewAdminLogRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	httpClient := &http.Client{Timeout: 15 * time.Second}

	activityRecorder := service.NewActivityRecorder(activityRepo, wsHub)
	authService := service.NewAuthService(userRepo, tokenRepo, cfg)
	postService := service.NewPostService(postRepo, userRepo, movieRepo, adminLogRepo, activityRecorder)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo, adminLogRepo, activityRecorder)
	movieService := service.NewMovieService(movieRepo, activityRecorder, httpClient, cfg)
	adminService := service.NewAdminService(adminLogRepo, activityRepo, userRepo)
	aiService := service.NewAIService(httpClient, cfg)

	// Middleware
	authCfg := middleware.AuthConfig{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer, Audience: cfg.JWTAudience}
	authRequired := middleware.Authenticate(authCfg)
	authOptional := middleware.OptionalAuthenticate(authCfg)
	// Throttles the credential-accepting auth routes only
	rateLimiter := middleware.NewRateLimiter(20, 40)

	var movieCache gin.HandlerFunc
	if redisClient != nil {
		movieCache = middleware.CacheGET(redisClient, 5*time.Minute)
	}

	// Initialize Handlers
	userHandler := handler.NewUserHandler(authService, authRequired, rateLimiter.Handler())
	postHandler := handler.NewPostHandler(postService, authRequired, authOptional)
	commentHandler := handler.NewCommentHandler(commentService, authRequired)
	movieHandler := handler.NewMovieHandler(movieService, authRequired, movieCache)
	adminHandler := handler.NewAdminHandler(adminService, authRequired)
	aiHandler := handler.NewAIHandler(aiService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:3000"} // Frontend URL
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// Live activity feed for admins
	isAdmin := func(userID uuid.UUID) bool {
		user, err := userRepo.GetByID(context.Background(), userID)
		return err == nil && user.IsAdmin
	}
	router.GET("/ws/activity", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, cfg.JWTSecret, isAdmin)
	})

	// Register API Routes
	api := router.Group("/api")
	userHandler.RegisterRoutes(api)
	postHandler.RegisterRoutes(api)
	commentHandler.RegisterRoutes(api)
	movieHandler.RegisterRoutes(api)
	adminHandler.RegisterRoutes(api)
	aiHandler.RegisterRoutes(api)

	log.Printf("Server listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
