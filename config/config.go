package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	JWTSecret    string
	GeminiAPIKey string
	GeminiModel  string
	BusinessName string
	AuthDelay    time.Duration // simulated latency on the login path
	SeedFile     string        // optional CSV/XLSX customer import at startup
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Port:         get("PORT", "8080"),
		JWTSecret:    must("JWT_SECRET"),
		GeminiAPIKey: get("GEMINI_API_KEY", ""),
		GeminiModel:  get("GEMINI_MODEL", "gemini-2.5-flash"),
		BusinessName: get("BUSINESS_NAME", "Tesla Motors (Mock)"),
		AuthDelay:    time.Duration(getInt("AUTH_DELAY_MS", 1200)) * time.Millisecond,
		SeedFile:     get("SEED_FILE", ""),
	}
	return cfg
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env: %s", k)
	}
	return v
}
