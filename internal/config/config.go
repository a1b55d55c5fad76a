package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries the handful of knobs the service reads from the
// environment. The Gemini credential is the only required external
// configuration.
type Config struct {
	Port       string
	ChromePath string
	Gemini     GeminiConfig
	Logging    LoggingConfig
}

type GeminiConfig struct {
	APIKey     string
	Model      string
	ImageModel string
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:       getEnv("PORT", "3000"),
		ChromePath: getEnv("CHROME_PATH", ""),
		Gemini: GeminiConfig{
			APIKey:     getEnv("GEMINI_API_KEY", ""),
			Model:      getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			ImageModel: getEnv("GEMINI_IMAGE_MODEL", "gemini-2.5-flash-image"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
