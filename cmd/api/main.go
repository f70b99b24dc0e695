package main

import (
	"context"
	"log"

	"heartlink/config"
	"heartlink/internal/domain/message"
	"heartlink/internal/domain/user"
	"heartlink/internal/handler"
	"heartlink/internal/redis"
	"heartlink/internal/repository"
	"heartlink/internal/server"
	"heartlink/internal/services"
	"heartlink/internal/storage"
	"heartlink/pkg/database"
	"heartlink/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	l := logger.New(cfg.Environment)
	logger.SetGlobalLogger(l)

	// Connect to Database
	database.Connect(cfg)

	// Run Raw Migrations (Extensions)
	if err := database.ApplyRawMigrations("migrations"); err != nil {
		log.Fatalf("Failed to apply raw migrations: %v", err)
	}

	// Run GORM AutoMigrate for Tables
	if err := database.DB.AutoMigrate(
		&user.User{},
		&message.Message{},
	); err != nil {
		log.Fatalf("Failed to apply GORM migrations: %v", err)
	}

	redisClient := redis.NewClient(redis.Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
	})
	limiter := redis.NewRateLimiter(redisClient, redis.DefaultRateLimitConfig())

	// Media host. Left nil when unconfigured; profile image uploads then fail
	// with a client error instead of blocking startup.
	var mediaHost *storage.Client
	if cfg.S3Bucket != "" {
		var err error
		mediaHost, err = storage.NewClient(context.Background(), storage.S3Config{
			Region:     cfg.S3Region,
			Bucket:     cfg.S3Bucket,
			AccessKey:  cfg.S3AccessKey,
			SecretKey:  cfg.S3SecretKey,
			Endpoint:   cfg.S3Endpoint,
			PublicBase: cfg.S3PublicBase,
		})
		if err != nil {
			log.Fatalf("Failed to create media host client: %v", err)
		}
	}

	userRepo := repository.NewUserRepository(database.DB)
	messageRepo := repository.NewMessageRepository(database.DB)

	issuer := services.NewTokenIssuer(cfg)
	authService := services.NewAuthService(userRepo)
	profileService := services.NewProfileService(userRepo, mediaHost)
	messageService := services.NewMessageService(messageRepo, userRepo)

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{
		Auth:    handler.NewAuthHandler(authService, issuer),
		Profile: handler.NewProfileHandler(profileService),
		Message: handler.NewMessageHandler(messageService),
	}, issuer, limiter)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
