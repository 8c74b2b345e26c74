package router

import (
	"greatblog/internal/config"
	"greatblog/internal/handlers"
	"greatblog/internal/middleware"
	"greatblog/internal/store"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all API routes onto the engine.
func RegisterRoutes(r *gin.Engine, cfg config.Config, users *store.UserStore, posts *store.PostStore) {
	// Handlers
	authHandler := handlers.NewAuthHandler(users)
	postHandler := handlers.NewPostHandler(posts, cfg.MaxPageSize)

	api := r.Group("/api")

	api.GET("/health", handlers.Health)

	// Auth Routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
	}

	// Public Routes
	api.GET("/posts", postHandler.List)
	api.GET("/posts/:id", postHandler.Get)

	// Protected Routes
	authorized := api.Group("/posts")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("", postHandler.Create)
		authorized.PUT("/:id", postHandler.Update)
		authorized.DELETE("/:id", postHandler.Delete)
	}
}
