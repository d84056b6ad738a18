package main

import (
	"log"
	"time"

	"safarsaga-backend/cmd"
	"safarsaga-backend/internal/data/repository"
	"safarsaga-backend/internal/events"
	"safarsaga-backend/internal/usecase"
	"safarsaga-backend/internal/wire"
	"safarsaga-backend/pkg/database"
	"safarsaga-backend/pkg/locker"
	"safarsaga-backend/pkg/mediastore"
	"safarsaga-backend/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Optional collaborators; each backend is enabled only when configured.
	var deps usecase.Deps

	if config.Cloudinary.CloudName != "" {
		deps.Media = mediastore.NewClient(config.Cloudinary, logger)
	}

	if config.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     config.Redis.Addr,
			Password: config.Redis.Password,
			DB:       config.Redis.DB,
		})
		deps.Cache = redisClient
		deps.Locker = locker.NewSlotLocker(
			redisClient,
			time.Duration(config.Booking.SlotLockTTLSeconds)*time.Second,
			logger,
		)
		logger.Info("Redis connected", zap.String("addr", config.Redis.Addr))
	}

	if len(config.Kafka.Brokers) > 0 {
		producer := events.NewProducer(config.Kafka.Brokers, config.Kafka.Topic, logger)
		defer producer.Close()
		deps.Producer = producer
		logger.Info("Kafka producer ready",
			zap.Strings("brokers", config.Kafka.Brokers),
			zap.String("topic", config.Kafka.Topic),
		)
	}

	// Wire all dependencies
	app := wire.Wiring(repos, deps, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
