package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv       string
	AppName      string
	HTTPAddr     string
	MetricsAddr  string
	GeminiKey    string
	GeminiModel  string
	ModelTimeout time.Duration
	ModelRPS     int

	// Search form defaults.
	DefaultLocation   string
	DefaultRadius     int
	DefaultMaxResults int
}

// Load reads configuration from a .env file (if present) and the
// process environment. GEMINI_API_KEY is the one required setting;
// startup halts without it.
func Load() Config {
	// A missing .env file is fine; env vars still apply.
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:            env("APP_ENV", "prod"),
		AppName:           env("APP_NAME", "Nearby Stays Finder"),
		HTTPAddr:          env("HTTP_ADDR", ":8080"),
		MetricsAddr:       env("METRICS_ADDR", ""),
		GeminiKey:         env("GEMINI_API_KEY", ""),
		GeminiModel:       env("GEMINI_MODEL", "gemini-2.5-flash"),
		ModelTimeout:      time.Duration(atoi("MODEL_TIMEOUT_SECONDS", 30)) * time.Second,
		ModelRPS:          atoi("MODEL_RPS", 2),
		DefaultLocation:   env("DEFAULT_LOCATION", "New York"),
		DefaultRadius:     atoi("DEFAULT_RADIUS", 10),
		DefaultMaxResults: atoi("DEFAULT_MAX_RESULTS", 8),
	}
	if c.GeminiKey == "" {
		log.Fatal().Msg("GEMINI_API_KEY is required; add it to the environment or a .env file")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
