// Command main runs the demo data seeder for bloghub.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"bloghub/internal/config"
	"bloghub/internal/database"
	"bloghub/internal/identity"
	"bloghub/internal/seed"
)

func main() {
	defaults := seed.DefaultOptions()
	numUsers := flag.Int("users", defaults.NumUsers, "Number of users to create")
	numPosts := flag.Int("posts", defaults.NumPosts, "Number of posts to create")
	maxLikes := flag.Int("likes", defaults.MaxLikesPerPost, "Maximum likes per post")
	maxComments := flag.Int("comments", defaults.MaxCommentsPerPost, "Maximum top-level comments per post")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	tokens := flag.Int("tokens", 3, "Print development bearer tokens for this many users")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "Lifetime of the printed tokens")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d posts, clean=%v\n", *numUsers, *numPosts, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	s := seed.NewSeeder(db, seed.Options{
		NumUsers:           *numUsers,
		NumPosts:           *numPosts,
		MaxDays:            defaults.MaxDays,
		MaxLikesPerPost:    *maxLikes,
		MaxCommentsPerPost: *maxComments,
	})

	if *shouldClean {
		if err := s.ClearAll(ctx); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	res, err := s.Run(ctx)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Created %d users, %d posts, %d likes, %d comments, %d replies",
		len(res.Users), len(res.Posts), res.Likes, res.Comments, res.Replies)

	dir := identity.NewJWTDirectory(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)
	for i := 0; i < *tokens && i < len(res.Users); i++ {
		u := res.Users[i]
		tok, err := dir.IssueToken(u.ID, *tokenTTL)
		if err != nil {
			log.Fatalf("Failed to issue token for %s: %v", u.Username, err)
		}
		log.Printf("user %d (%s): Bearer %s", u.ID, u.Username, tok)
	}
}
