package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"dental-center-management/internal/storage"
)

// Config is everything the composition root needs to wire the portal.
type Config struct {
	StorageDriver storage.Driver
	SQLitePath    string
	SessionSecret string
	LogLevel      string

	// Login throttle. Off by default; the demo credential table makes brute
	// force pointless, but shared kiosks may still want it.
	LoginThrottle      bool
	LoginRatePerMinute float64
	LoginBurst         int
}

// Load reads .env (if present) and the environment.
//
//	DENTAL_STORAGE_DRIVER: memory|sqlite (default sqlite)
//	DENTAL_SQLITE_PATH: path to sqlite file (default ./dental-center.db)
//	DENTAL_SESSION_SECRET: HMAC secret for the persisted session snapshot
//	DENTAL_LOG_LEVEL: logrus level (default info)
//	DENTAL_LOGIN_THROTTLE: true to rate-limit login attempts per email
func Load() Config {
	_ = godotenv.Load()
	return Config{
		StorageDriver:      storage.Driver(env("DENTAL_STORAGE_DRIVER", string(storage.DriverSQLite))),
		SQLitePath:         env("DENTAL_SQLITE_PATH", "dental-center.db"),
		SessionSecret:      env("DENTAL_SESSION_SECRET", ""),
		LogLevel:           env("DENTAL_LOG_LEVEL", "info"),
		LoginThrottle:      envBool("DENTAL_LOGIN_THROTTLE", false),
		LoginRatePerMinute: envFloat("DENTAL_LOGIN_RATE_PER_MINUTE", 10),
		LoginBurst:         envInt("DENTAL_LOGIN_BURST", 5),
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
