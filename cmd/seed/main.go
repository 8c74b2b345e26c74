package main

import (
	"context"

	"greatblog/internal/config"
	"greatblog/internal/db"
	"greatblog/internal/models"
	"greatblog/internal/store"
	"greatblog/internal/utils"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var samplePosts = []store.CreatePostInput{
	{
		Title:      "Getting Started with React",
		Content:    "React is a powerful JavaScript library for building user interfaces. In this post, we'll explore the basics of React components, state, and props...",
		Excerpt:    "Learn the fundamentals of React and how to build your first component",
		CoverImage: "https://images.unsplash.com/photo-1633356122544-f134324a6cee?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
		Category:   "Technology",
		Tags:       []string{"react", "javascript", "frontend"},
		ReadTime:   intPtr(5),
		Featured:   boolPtr(true),
	},
	{
		Title:      "The Art of Travel Photography",
		Content:    "Travel photography is more than just taking pictures of landmarks. It's about capturing the essence of a place, its people, and its culture...",
		Excerpt:    "Discover tips and techniques for capturing stunning travel photos",
		CoverImage: "https://images.unsplash.com/photo-1506744038136-46273834b3fb?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
		Category:   "Travel",
		Tags:       []string{"photography", "travel", "tips"},
		ReadTime:   intPtr(7),
		Featured:   boolPtr(true),
	},
	{
		Title:      "Healthy Eating Made Simple",
		Content:    "Eating healthy doesn't have to be complicated. With a few simple principles, you can transform your diet and feel better than ever...",
		Excerpt:    "Simple strategies for maintaining a healthy diet in a busy world",
		CoverImage: "https://images.unsplash.com/photo-1490818387583-1baba5e638af?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
		Category:   "Health",
		Tags:       []string{"health", "nutrition", "wellness"},
		ReadTime:   intPtr(6),
		Featured:   boolPtr(false),
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, reading env vars from system")
	}

	cfg := config.Load()
	gdb, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}

	// Skip if there is already content
	var count int64
	gdb.Model(&models.Post{}).Count(&count)
	if count > 0 {
		log.Info().Msg("Database already seeded, skipping")
		return
	}

	ctx := context.Background()
	users := store.NewUserStore(gdb)
	posts := store.NewPostStore(gdb)

	hash, err := utils.HashPassword("password123")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}
	user, err := users.Create(ctx, "Test User", "test@example.com", hash)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create test user")
	}
	log.Info().Str("email", user.Email).Msg("Created test user")

	for _, in := range samplePosts {
		post, err := posts.Create(ctx, in, user.ID)
		if err != nil {
			log.Fatal().Err(err).Str("title", in.Title).Msg("Failed to create sample post")
		}
		log.Info().Str("pid", post.Pid).Str("title", post.Title).Msg("Created sample post")
	}
	log.Info().Msg("Database seeded successfully")
}

func intPtr(n int) *int    { return &n }
func boolPtr(b bool) *bool { return &b }
