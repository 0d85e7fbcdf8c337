package main

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "lostfound/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"lostfound/internal/cache"
	"lostfound/internal/config"
	"lostfound/internal/db"
	"lostfound/internal/handler"
	"lostfound/internal/media"
	"lostfound/internal/model"
	"lostfound/internal/repository"
	"lostfound/internal/router"
	"lostfound/internal/service"
)

// @title Lost & Found Board API
// @version 1.0
// @description Community lost-and-found board: post lost or found item reports and resolve them with the secret chosen at creation.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop the posts table if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping posts table...")
		if err := gormDB.Migrator().DropTable(&model.Post{}); err != nil {
			log.Printf("Warning: Failed to drop table (may not exist): %v", err)
		}
	}

	if err := gormDB.AutoMigrate(&model.Post{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	uploader, err := media.NewS3Uploader(context.Background(), media.S3Config{
		Region:    cfg.S3Region,
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.S3Bucket,
		BaseURL:   cfg.S3BaseURL,
	})
	if err != nil {
		log.Fatalf("media uploader init: %v", err)
	}

	postRepo := repository.NewPostRepository(gormDB)

	postService := service.NewPostService(postRepo, uploader, cacheClient)
	resolutionService := service.NewResolutionService(postRepo, cacheClient)

	postHandler := handler.NewPostHandler(postService, resolutionService)

	router.Register(e, postHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
