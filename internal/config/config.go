package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	CatalogFile string // path to services.yaml (empty = built-in defaults)
	StaticDir   string // directory with the web front end (empty = API only)
	Timezone    string // IANA zone for the business calendar (empty = system local)

	OpenHour        int // first bookable hour of the day
	CloseHour       int // hour by which the last slot must have ended
	CapacityPerSlot int // cleaners available per slot, shared across services

	// Storage
	StoreBackend string // "file" | "redis"
	DataFile     string // bookings JSON file (file backend)

	// Redis (redis backend only)
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDialTimeout    time.Duration // per-dial timeout (ex: 5s)
	RedisPoolSize       int           // connection pool size
	RedisConnectTimeout time.Duration // total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // initial wait between retries (grows exponentially)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)

	// SMS confirmations (empty URL = disabled)
	SMSWebhookURL string
	SMSToken      string
	SMSQueueSize  int

	// HTTP hardening
	TrustProxy         bool     // true => trust X-Forwarded-For (behind a reverse proxy)
	RateBurst          int      // token bucket burst for POST /bookings
	RateRefillPerMin   int      // token refill per IP per minute
	CORSAllowedOrigins []string // origins allowed to call the API (empty = no CORS headers)
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("BOOKINGD_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("BOOKINGD_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("BOOKINGD_LOG_LEVEL", "info"),
		PrettyLog: mustBool("BOOKINGD_PRETTY_LOG", true),

		// Business calendar
		CatalogFile:     getenv("BOOKINGD_CATALOG_FILE", ""),
		StaticDir:       getenv("BOOKINGD_STATIC_DIR", ""),
		Timezone:        getenv("BOOKINGD_TIMEZONE", ""),
		OpenHour:        getenvInt("BOOKINGD_OPEN_HOUR", 9),
		CloseHour:       getenvInt("BOOKINGD_CLOSE_HOUR", 18),
		CapacityPerSlot: getenvInt("BOOKINGD_CAPACITY_PER_SLOT", 2),

		// Storage
		StoreBackend: getenv("BOOKINGD_STORE_BACKEND", BackendFile),
		DataFile:     getenv("BOOKINGD_DATA_FILE", "data/bookings.json"),

		// Redis settings
		RedisAddr:           getenv("BOOKINGD_REDIS_ADDR", ""),
		RedisUser:           getenv("BOOKINGD_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("BOOKINGD_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("BOOKINGD_REDIS_DB", 0),
		RedisDialTimeout:    mustDuration("BOOKINGD_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("BOOKINGD_REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("BOOKINGD_REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("BOOKINGD_REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisMaxWait:        mustDuration("BOOKINGD_REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("BOOKINGD_REDIS_PING_TIMEOUT", 5*time.Second),

		// SMS confirmations
		SMSWebhookURL: getenv("BOOKINGD_SMS_WEBHOOK_URL", ""),
		SMSToken:      getenv("BOOKINGD_SMS_TOKEN", ""),
		SMSQueueSize:  getenvInt("BOOKINGD_SMS_QUEUE_SIZE", 64),

		// HTTP hardening
		TrustProxy:         mustBool("BOOKINGD_TRUST_PROXY", false),
		RateBurst:          getenvInt("BOOKINGD_RATE_BURST", 10),
		RateRefillPerMin:   getenvInt("BOOKINGD_RATE_REFILL_PER_MIN", 30),
		CORSAllowedOrigins: splitAndTrim(getenv("BOOKINGD_CORS_ALLOWED_ORIGINS", "")),
	}

	if cfg.StoreBackend != BackendFile && cfg.StoreBackend != BackendRedis {
		panic(fmt.Sprintf("❌ FATAL: BOOKINGD_STORE_BACKEND must be %q or %q, got %q",
			BackendFile, BackendRedis, cfg.StoreBackend))
	}
	if cfg.StoreBackend == BackendRedis && cfg.RedisAddr == "" {
		panic("❌ FATAL: BOOKINGD_REDIS_ADDR is required when BOOKINGD_STORE_BACKEND=redis")
	}
	if cfg.CloseHour <= cfg.OpenHour {
		panic(fmt.Sprintf("❌ FATAL: BOOKINGD_CLOSE_HOUR (%d) must be after BOOKINGD_OPEN_HOUR (%d)",
			cfg.CloseHour, cfg.OpenHour))
	}
	if cfg.CapacityPerSlot < 1 {
		panic("❌ FATAL: BOOKINGD_CAPACITY_PER_SLOT must be >= 1")
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
