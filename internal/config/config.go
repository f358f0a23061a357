package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// FallbackNone disables the redirect for unmatched routes; a 404 envelope is sent instead.
const FallbackNone = "none"

type Config struct {
	Port         string
	DBDSN        string
	LogFile      string
	FallbackPath string
	RateLimit    int
	CSRF         bool
	SeedDemo     bool
}

func Load() Config {
	// .env is optional; real environment variables win over it.
	if err := godotenv.Load(); err == nil {
		log.Printf("[config] loaded .env")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "userdesk.db"
	} // sqlite file in project root
	logFile, ok := os.LookupEnv("LOG_FILE")
	if !ok {
		logFile = "./userdesk.log"
	}
	fallback := os.Getenv("FALLBACK_PATH")
	if fallback == "" {
		fallback = "/"
	}

	cfg := Config{
		Port:         port,
		DBDSN:        dsn,
		LogFile:      logFile,
		FallbackPath: fallback,
		RateLimit:    intEnv("RATE_LIMIT", 120),
		CSRF:         boolEnv("CSRF_ENABLED", true),
		SeedDemo:     boolEnv("SEED_DEMO", true),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s FALLBACK_PATH=%s RATE_LIMIT=%d CSRF_ENABLED=%t SEED_DEMO=%t",
		cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.FallbackPath, cfg.RateLimit, cfg.CSRF, cfg.SeedDemo)
	return cfg
}

func intEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("[warn] ignoring %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func boolEnv(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("[warn] ignoring %s=%q, using %t", key, v, def)
		return def
	}
	return b
}
