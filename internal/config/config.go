package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPPort       string
	DatabaseDSN    string
	RedisURL       string
	JWTSecret      string
	CORSOrigins    string
	BackendBaseURL string // Mağaza backend API'sinin kök adresi
	BackendToken   string // Backend'e giderken kullanılan servis token'ı
	BackendTimeout time.Duration
	ScanKeyGap     time.Duration // Barkod okuyucu tuş aralığı eşiği
	TerminalID     string
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=posterminal port=5432 sslmode=disable"),
		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379/0"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		CORSOrigins:    getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		BackendBaseURL: getEnv("BACKEND_API_URL", "http://localhost:5000/api"),
		BackendToken:   getEnv("BACKEND_API_TOKEN", ""),
		BackendTimeout: getDurationMs("BACKEND_TIMEOUT_MS", 10000),
		ScanKeyGap:     getDurationMs("SCAN_KEY_GAP_MS", 50),
		TerminalID:     getEnv("TERMINAL_ID", "kasa-1"),
	}

	// Production güvenlik kontrolleri
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET environment değişkeni tanımlanmamış! Production için zorunludur.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET en az 32 karakter olmalıdır! Güvenlik riski.")
	}
	if cfg.BackendBaseURL == "http://localhost:5000/api" {
		log.Println("[WARN] BACKEND_API_URL varsayılan değer kullanılıyor, production için mağaza backend adresini tanımla.")
	}
	if cfg.BackendToken == "" {
		log.Println("[WARN] BACKEND_API_TOKEN boş, backend istekleri anonim gidecek.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDurationMs(key string, defMs int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
		log.Printf("[WARN] %s geçersiz (%q), varsayılan %d ms kullanılıyor", key, v, defMs)
	}
	return time.Duration(defMs) * time.Millisecond
}
