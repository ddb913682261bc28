package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

var ErrMissingJWTSecret = errors.New("missing JWT_SECRET")

type Config struct {
	Port                 string
	StorageDriver        string
	RequestTimeout       time.Duration
	JWTSecret            string
	JWTIssuer            string
	RedisAddr            string
	RedisPassword        string
	MongoURI             string
	MongoDatabase        string
	LogMode              string
	DynamoDBCreateTables bool
	MercadoPagoToken     string
}

// Load reads the service configuration from the environment (.env is loaded
// by godotenv/autoload in main).
func Load() (Config, error) {
	cfg := Config{
		Port:                 getenvDefault("PORT", "8080"),
		StorageDriver:        strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDynamoDB)),
		RequestTimeout:       getDurationDefault("REQUEST_TIMEOUT", 10*time.Second),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		JWTIssuer:            getenvDefault("JWT_ISSUER", "marketplace-escrow"),
		RedisAddr:            strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword:        os.Getenv("REDIS_PASSWORD"),
		MongoURI:             strings.TrimSpace(os.Getenv("MONGO_URI")),
		MongoDatabase:        getenvDefault("MONGO_DATABASE", "marketplace"),
		LogMode:              getenvDefault("LOG_MODE", "dev"),
		DynamoDBCreateTables: getBool("DYNAMODB_CREATE_TABLES"),
		MercadoPagoToken:     os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingJWTSecret
	}
	switch cfg.StorageDriver {
	case StorageDynamoDB, StorageMemory:
	default:
		return Config{}, errors.New("STORAGE_DRIVER must be dynamodb or memory")
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getDurationDefault accepts Go durations ("15s") or plain seconds ("15").
func getDurationDefault(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return def
}

func getBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
