package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-ddd-blog/config"
	"github.com/oksasatya/go-ddd-blog/internal/application"
	"github.com/oksasatya/go-ddd-blog/internal/container"
	"github.com/oksasatya/go-ddd-blog/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	c, err := container.Build(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to build container")
	}
	defer c.Close()

	email := "demo@example.com"
	password := "password123"
	u, err := c.Users.Create(ctx, application.CreateUserInput{
		Name:          "Demo User",
		Email:         email,
		FavoriteColor: "blue",
		Password:      password,
	})
	switch {
	case errors.Is(err, application.ErrConflict):
		u, err = c.Users.FindByEmail(ctx, email)
		if err != nil {
			logger.WithError(err).Fatal("failed to load existing demo user")
		}
		fmt.Printf("demo user already present: id=%d email=%s\n", u.ID, u.Email)
	case err != nil:
		logger.WithError(err).Fatal("failed to seed user")
	default:
		fmt.Printf("seeded user: id=%d email=%s name=%s password=%s\n", u.ID, u.Email, u.Name, password)
	}

	posts, err := c.Posts.List(ctx)
	if err != nil {
		logger.WithError(err).Fatal("failed to list posts")
	}
	if len(posts) > 0 {
		fmt.Printf("posts already present: %d\n", len(posts))
		return
	}
	p, err := c.Posts.Create(ctx, application.PostInput{
		Title:   "Hello, blog",
		Content: "The first post on a fresh install.",
		Author:  u.Name,
		Slug:    "hello-blog",
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to seed post")
	}
	fmt.Printf("seeded post: id=%d slug=%s\n", p.ID, p.Slug)
}
