package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Session    SessionConfig
	Booking    BookingConfig
	Redis      RedisConfig
	Kafka      KafkaConfig
	Cloudinary CloudinaryConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

type SessionConfig struct {
	ExpiryHours int
}

type BookingConfig struct {
	// MaxHorizonDays bounds how far ahead a travel date may lie.
	MaxHorizonDays int
	// SlotLockTTLSeconds bounds how long a Redis slot lock may outlive its holder.
	SlotLockTTLSeconds int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("BOOKING_MAX_HORIZON_DAYS", 730)
	viper.SetDefault("BOOKING_SLOT_LOCK_TTL_SECONDS", 10)
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("KAFKA_TOPIC", "booking-events")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Booking: BookingConfig{
			MaxHorizonDays:     viper.GetInt("BOOKING_MAX_HORIZON_DAYS"),
			SlotLockTTLSeconds: viper.GetInt("BOOKING_SLOT_LOCK_TTL_SECONDS"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASS"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Kafka: KafkaConfig{
			Brokers: viper.GetStringSlice("KAFKA_BROKERS"),
			Topic:   viper.GetString("KAFKA_TOPIC"),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: viper.GetString("CLOUDINARY_CLOUD_NAME"),
			APIKey:    viper.GetString("CLOUDINARY_API_KEY"),
			APISecret: viper.GetString("CLOUDINARY_API_SECRET"),
			Folder:    viper.GetString("CLOUDINARY_FOLDER"),
		},
	}

	return config, nil
}
