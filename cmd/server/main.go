package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/blog-platform/internal/config"
	"github.com/iliyamo/blog-platform/internal/database"
	"github.com/iliyamo/blog-platform/internal/handler"
	"github.com/iliyamo/blog-platform/internal/middleware"
	"github.com/iliyamo/blog-platform/internal/queue"
	"github.com/iliyamo/blog-platform/internal/repository"
	"github.com/iliyamo/blog-platform/internal/router"
	"github.com/iliyamo/blog-platform/internal/service"

	"github.com/uptrace/bun"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := openDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if cfg.AutoMigrate {
		if err := database.CreateSchema(context.Background(), db); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	users := repository.NewUserRepo(db)
	articles := repository.NewArticleRepo(db)
	auth := service.NewAuthService(users, cfg.JWTSecret, cfg.AccessTTLMin)
	guard := router.Guard(cfg.JWTSecret, users)

	// Response cache degrades to a pass-through when redis is unreachable.
	var cache echo.MiddlewareFunc
	if rdb := config.NewRedisClient(); rdb != nil {
		cache = middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	} else {
		log.Printf("cache: redis unavailable, response cache disabled")
	}

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(auth), guard)
	router.RegisterUsers(e, handler.NewUserHandler(cfg, users), guard)
	router.RegisterArticles(e, handler.NewArticleHandler(articles), cache)

	// Notification consumer reconnects on its own; it never stops the server.
	go func() {
		if err := queue.StartNotificationConsumer(); err != nil {
			log.Printf("queue: consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

func openDB(cfg config.Config) (*bun.DB, error) {
	if cfg.DBDriver == "sqlite" {
		return database.OpenSQLite(cfg.DBName)
	}
	return database.OpenMySQL(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
}
