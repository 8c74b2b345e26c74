package main

import (
	"greatblog/internal/config"
	"greatblog/internal/db"
	"greatblog/internal/middleware"
	"greatblog/internal/router"
	"greatblog/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, reading env vars from system")
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg := config.Load()

	// Initialize Database
	gdb, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	log.Info().Msg("Database connection established")

	users := store.NewUserStore(gdb)
	posts := store.NewPostStore(gdb)

	// Initialize Gin
	r := gin.New()
	r.Use(middleware.RequestLogger(log.Logger))
	r.Use(gin.CustomRecovery(middleware.HandlePanics(log.Logger)))

	// Setup Sessions
	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("greatblog_session", sessionStore))

	// Middleware
	r.Use(middleware.LoadUser(users))

	// Routes
	router.RegisterRoutes(r, cfg, users, posts)

	log.Info().Str("port", cfg.Port).Msg("greatblog server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
