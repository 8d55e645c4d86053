package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"

	SessionMemory   = "memory"
	SessionKVMemory = "kv-memory"
	SessionRedis    = "redis"
	SessionMongo    = "mongo"
)

// Config is the process configuration read from the environment.
type Config struct {
	Port     string
	LogLevel string

	StoreBackend string
	PostgresURI  string

	SessionBackend string
	RedisAddr      string
	MongoURI       string
	MongoDB        string
	JWTSecret      string
	SessionTTL     time.Duration

	SimulateLatency   bool
	SeedData          bool
	AuthCheckPassword bool

	GCSBucket          string
	GCSCredentialsFile string
}

// Load reads Config from the environment and validates backend choices.
func Load() (Config, error) {
	cfg := Config{
		Port:               getenv("PORT", "8080"),
		LogLevel:           os.Getenv("LOG_LEVEL"),
		StoreBackend:       strings.ToLower(getenv("STORE_BACKEND", StoreMemory)),
		PostgresURI:        os.Getenv("POSTGRES_URI"),
		SessionBackend:     strings.ToLower(getenv("SESSION_BACKEND", SessionMemory)),
		RedisAddr:          firstEnv("REDIS_ADDR", "REDIS_URI", "REDIS_URL"),
		MongoURI:           os.Getenv("MONGO_URI"),
		MongoDB:            getenv("MONGO_DB", "jobboard"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		GCSBucket:          os.Getenv("GCS_BUCKET"),
		GCSCredentialsFile: os.Getenv("GCS_CREDENTIALS_FILE"),
	}

	var err error
	if cfg.SessionTTL, err = durationEnv("SESSION_TTL", 24*time.Hour); err != nil {
		return cfg, err
	}
	if cfg.SimulateLatency, err = boolEnv("SIMULATE_LATENCY", false); err != nil {
		return cfg, err
	}
	if cfg.SeedData, err = boolEnv("SEED_DATA", true); err != nil {
		return cfg, err
	}
	if cfg.AuthCheckPassword, err = boolEnv("AUTH_CHECK_PASSWORD", false); err != nil {
		return cfg, err
	}

	switch cfg.StoreBackend {
	case StoreMemory:
	case StorePostgres:
		if cfg.PostgresURI == "" {
			return cfg, fmt.Errorf("POSTGRES_URI environment variable is not set (STORE_BACKEND=%s)", cfg.StoreBackend)
		}
	default:
		return cfg, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	switch cfg.SessionBackend {
	case SessionMemory, SessionKVMemory:
	case SessionRedis:
		if cfg.RedisAddr == "" {
			return cfg, fmt.Errorf("REDIS_ADDR (or REDIS_URI/REDIS_URL) environment variable is not set")
		}
	case SessionMongo:
		if cfg.MongoURI == "" {
			return cfg, fmt.Errorf("MONGO_URI environment variable is not set")
		}
	default:
		return cfg, fmt.Errorf("unknown SESSION_BACKEND %q", cfg.SessionBackend)
	}

	if cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("JWT_SECRET environment variable is not set")
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func boolEnv(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return def, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}
