package main // Development seed: fills the database with a couple of users and articles.

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/joho/godotenv"
	"github.com/uptrace/bun"

	"github.com/iliyamo/blog-platform/internal/config"
	"github.com/iliyamo/blog-platform/internal/database"
	"github.com/iliyamo/blog-platform/internal/model"
	"github.com/iliyamo/blog-platform/internal/repository"
)

type seedArticle struct {
	title       string
	description string
	body        string
	published   bool
	authorEmail string
}

var seedUsers = []struct {
	name     string
	email    string
	password string
}{
	{"Sabin Adams", "sabin@adams.com", "password-sabin"},
	{"Alex Ruheni", "alex@ruheni.com", "password-alex"},
}

var seedArticles = []seedArticle{
	{
		title:       "Prisma Adds Support for MongoDB",
		description: "We are excited to share that today's Prisma ORM release adds stable support for MongoDB!",
		body:        "Support for MongoDB has been one of the most requested features since the initial release of...",
		published:   false,
		authorEmail: "sabin@adams.com",
	},
	{
		title:       "What's new in Prisma? (Q1/22)",
		description: "Learn about everything in the Prisma ecosystem and community from January to March 2022.",
		body:        "Our engineers have been working hard, issuing new releases with many improvements...",
		published:   true,
		authorEmail: "alex@ruheni.com",
	},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := openDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	ctx := context.Background()
	if err := database.CreateSchema(ctx, db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	users := repository.NewUserRepo(db)
	articles := repository.NewArticleRepo(db)

	// Inserts are skipped when the unique key already exists, so the seed is
	// safe to run repeatedly.
	authorIDs := map[string]uint64{}
	for _, su := range seedUsers {
		u, err := users.GetByEmail(ctx, su.email)
		if errors.Is(err, repository.ErrUserNotFound) {
			u, err = users.Create(ctx, su.name, su.email, su.password, cfg.BcryptCost)
		}
		if err != nil {
			log.Fatalf("seed user %s: %v", su.email, err)
		}
		authorIDs[su.email] = u.ID
		log.Printf("seed: user %d %s", u.ID, u.Email)
	}

	for _, sa := range seedArticles {
		exists, err := articleExists(ctx, db, sa.title)
		if err != nil {
			log.Fatalf("seed article %q: %v", sa.title, err)
		}
		if exists {
			log.Printf("seed: article %q already present", sa.title)
			continue
		}
		desc := sa.description
		authorID := authorIDs[sa.authorEmail]
		a := model.Article{
			Title:       sa.title,
			Description: &desc,
			Body:        sa.body,
			Published:   sa.published,
			AuthorID:    &authorID,
		}
		if err := articles.Create(ctx, &a); err != nil {
			log.Fatalf("seed article %q: %v", sa.title, err)
		}
		log.Printf("seed: article %d %q", a.ID, a.Title)
	}
}

func articleExists(ctx context.Context, db *bun.DB, title string) (bool, error) {
	var a model.Article
	err := db.NewSelect().Model(&a).Where("a.title = ?", title).Limit(1).Scan(ctx)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return false, err
}

func openDB(cfg config.Config) (*bun.DB, error) {
	if cfg.DBDriver == "sqlite" {
		return database.OpenSQLite(cfg.DBName)
	}
	return database.OpenMySQL(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
}
