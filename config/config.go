package config

import (
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DBName      string `mapstructure:"DB_NAME"`
	Env         string `mapstructure:"ENV"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Store selects the persistence backend: "mongo" or "memory".
	Store string `mapstructure:"STORE"`

	// Booking guard behaviour.
	BookingUniqueIndex   bool `mapstructure:"BOOKING_UNIQUE_INDEX"`
	BookingValidateSlots bool `mapstructure:"BOOKING_VALIDATE_SLOTS"`

	// Redis configuration. An empty address falls back to the in-process cache.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	CatalogCacheTTL  time.Duration `mapstructure:"CATALOG_CACHE_TTL"`
	CatalogCacheSize int           `mapstructure:"CATALOG_CACHE_SIZE"`

	StripeKey string `mapstructure:"STRIPE_KEY"`
}

// ErrMissingSecret is returned when no JWT signing secret is configured.
var ErrMissingSecret = errors.New("JWT_SECRET is required")

var keys = []string{
	"APP_PORT", "DATABASE_URL", "DB_NAME", "ENV", "JWT_SECRET", "LOG_LEVEL", "STORE",
	"BOOKING_UNIQUE_INDEX", "BOOKING_VALIDATE_SLOTS",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_CACHE_DB",
	"CATALOG_CACHE_TTL", "CATALOG_CACHE_SIZE", "STRIPE_KEY",
}

// Load reads .env, then config.yaml from the current and "config" directory,
// then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	// Unmarshal only sees keys viper knows about; bind the ones without defaults too.
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	v.SetDefault("APP_PORT", "5000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DB_NAME", "doctors_portal")
	v.SetDefault("STORE", "mongo")
	v.SetDefault("BOOKING_UNIQUE_INDEX", false)
	v.SetDefault("BOOKING_VALIDATE_SLOTS", true)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("CATALOG_CACHE_TTL", 5*time.Minute)
	v.SetDefault("CATALOG_CACHE_SIZE", 16)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.JWTSecret == "" {
		return cfg, ErrMissingSecret
	}
	return cfg, nil
}

// IsProduction reports whether the service runs with ENV=production.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
