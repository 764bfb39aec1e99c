package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/teerapat-dev/blogspace/backend/internal/handlers"
	"github.com/teerapat-dev/blogspace/backend/internal/middleware"
	"github.com/teerapat-dev/blogspace/backend/internal/models"
	"github.com/teerapat-dev/blogspace/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies.
// firebaseAuthClient may be nil; federated login then answers 503.
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, mongoDatabase string, firebaseAuthClient *auth.Client) {
	// AutoMigrate PostgreSQL models
	if err := pgdb.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	postRepo := repositories.NewMongoPostRepository(mgClient.Database(mongoDatabase))
	commentRepo := repositories.NewMongoCommentRepository(mgClient.Database(mongoDatabase))

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, firebaseAuthClient)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Public reads ---
	public := e.Group("/api/v1")

	// --- Protected routes (require JWT authentication) ---
	authed := e.Group("/api/v1")
	authed.Use(middleware.JWTAuth())
	log.Println("JWT authentication middleware applied.")

	// --- Admin routes (require JWT + admin role) ---
	admin := authed.Group("/admin")
	admin.Use(middleware.RequireAdmin())

	// Post routes
	postHandler := handlers.NewPostHandler(postRepo)
	postHandler.RegisterPostRoutes(public, authed)
	postHandler.RegisterAdminPostRoutes(admin)
	log.Println("Post routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo)
	commentHandler.RegisterCommentRoutes(public, authed)
	log.Println("Comment routes configured.")

	// User profile and admin user-management routes
	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterProfileRoutes(authed)
	userHandler.RegisterAdminUserRoutes(admin)
	log.Println("User routes configured.")

	log.Println("All routes configured.")
}
