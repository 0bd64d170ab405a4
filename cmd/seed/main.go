package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"blogforge/config"
	"blogforge/internal/application"
	"blogforge/internal/domain/domainerr"
	pginfra "blogforge/internal/infrastructure/postgres"
	"blogforge/pkg/helpers"
)

// Seeds a demo account and a few posts for local development. Everything
// goes through the use cases so domain validation and uniqueness checks
// apply to seeded data too; rerunning is a no-op.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	uow := pginfra.NewUnitOfWorkFactory(pool)
	createUser := application.NewCreateUserUseCase(uow, helpers.BcryptHasher{}, helpers.UUIDGenerator{}, nil, "", logger)
	getUser := application.NewGetUserUseCase(pginfra.NewUserRepository(pool))
	createBlog := application.NewCreateBlogUseCase(uow, helpers.UUIDGenerator{}, nil)
	getBlog := application.NewGetBlogUseCase(pginfra.NewBlogRepository(pool))

	const (
		username = "demouser"
		password = "Password123!"
	)

	user, err := createUser.Execute(ctx, application.CreateUserInput{
		FirstName: "Demo",
		LastName:  "User",
		Username:  username,
		Password:  password,
	})
	switch {
	case err == nil:
		fmt.Printf("seeded user: id=%s username=%s password=%s\n", user.ID, username, password)
	case domainerr.IsConflict(err):
		user, err = getUser.GetByUsername(ctx, username)
		if err != nil || user == nil {
			log.Fatalf("failed to load existing user %q: %v", username, err)
		}
		fmt.Printf("user already seeded: id=%s username=%s\n", user.ID, username)
	default:
		log.Fatalf("failed to seed user: %v", err)
	}

	titles := []string{
		"Getting Started With Clean Architecture",
		"Pagination Patterns That Scale",
		"Why Value Objects Earn Their Keep",
	}
	for _, title := range titles {
		existing, err := getBlog.GetAllByAuthor(ctx, user.ID, application.Pagination{Limit: 1, Search: title})
		if err != nil {
			log.Fatalf("failed to check existing blogs: %v", err)
		}
		if existing.Total > 0 {
			fmt.Printf("blog already seeded: %s\n", title)
			continue
		}

		blog, err := createBlog.Execute(ctx, application.CreateBlogInput{
			Title:    title,
			Content:  "Seeded content for '" + title + "'. Replace me with a real post.",
			AuthorID: user.ID,
		}, false)
		if err != nil {
			log.Fatalf("failed to seed blog %q: %v", title, err)
		}
		fmt.Printf("seeded blog: id=%s title=%q\n", blog.ID, title)
	}
}
