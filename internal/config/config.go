package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Default browser origins: the deployed frontend plus local dev.
const defaultOrigins = "https://crackbank-frontend.vercel.app,http://localhost:5173"

type Config struct {
	Env            string
	ListenAddr     string
	CorpusFile     string
	DatabaseURL    string
	GoogleAPIKey   string
	GeminiModel    string
	CheckDelay     time.Duration
	NotifyWorkers  int
	NotifyQueue    int
	AllowedOrigins []string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var out int
		_, err := fmt.Sscanf(v, "%d", &out)
		if err == nil {
			return out
		}
	}
	return def
}

// Load builds a Config from environment variables. A missing API key is not
// fatal: checks still work, only summarization fails, so callers get a
// warning error value and decide.
func Load() (Config, error) {
	cfg := Config{
		Env:            getenv("APP_ENV", "development"),
		ListenAddr:     listenAddr(),
		CorpusFile:     getenv("CORPUS_FILE", "breaches.json"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		GoogleAPIKey:   os.Getenv("GOOGLE_API_KEY"),
		GeminiModel:    os.Getenv("GEMINI_MODEL"),
		CheckDelay:     time.Duration(getenvInt("CHECK_DELAY_MS", 1200)) * time.Millisecond,
		NotifyWorkers:  getenvInt("NOTIFY_WORKERS", 1),
		NotifyQueue:    getenvInt("NOTIFY_QUEUE", 64),
		AllowedOrigins: splitList(getenv("ALLOWED_ORIGINS", defaultOrigins)),
	}
	if cfg.GoogleAPIKey == "" {
		return cfg, fmt.Errorf("GOOGLE_API_KEY not set; summarization will fail until configured")
	}
	return cfg, nil
}

// listenAddr honors the platform-provided PORT variable, falling back to
// LISTEN_ADDR and then the historical default port.
func listenAddr() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return getenv("LISTEN_ADDR", ":8000")
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
