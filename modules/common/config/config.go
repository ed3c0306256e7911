package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config - all environment-driven settings for the server
type Config struct {
	// Gemini API
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	// Supabase (optional - in-memory history store is used when unset)
	SupabaseURL        string
	SupabaseServiceKey string

	// Redis (optional - job queue endpoints are disabled when unset)
	RedisHost     string
	RedisPort     string
	RedisUsername string
	RedisPassword string
	RedisUseTLS   bool

	// Server
	Port string

	// Palette extraction
	PaletteQuantStep     int
	MoodboardCanvasSize  int
	OutfitCanvasSize     int
	PaletteDefaultColors int
}

var globalConfig *Config

// LoadConfig - load environment configuration
func LoadConfig() (*Config, error) {
	// .env file is optional
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using environment variables")
	}

	useTLS := true
	if tlsStr := os.Getenv("REDIS_USE_TLS"); tlsStr != "" {
		if parsed, err := strconv.ParseBool(tlsStr); err == nil {
			useTLS = parsed
		}
	}

	globalConfig = &Config{
		// Gemini API
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", "models/gemini-2.0-flash"),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),

		// Supabase
		SupabaseURL:        getEnv("SUPABASE_URL", ""),
		SupabaseServiceKey: getEnv("SUPABASE_SERVICE_KEY", ""),

		// Redis
		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisUsername: getEnv("REDIS_USERNAME", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisUseTLS:   useTLS,

		// Server
		Port: getEnv("PORT", "8080"),

		// Palette extraction
		PaletteQuantStep:     getEnvInt("PALETTE_QUANT_STEP", 32),
		MoodboardCanvasSize:  getEnvInt("MOODBOARD_CANVAS_SIZE", 40),
		OutfitCanvasSize:     getEnvInt("OUTFIT_CANVAS_SIZE", 60),
		PaletteDefaultColors: getEnvInt("PALETTE_MAX_COLORS", 5),
	}

	if err := globalConfig.validate(); err != nil {
		return nil, err
	}

	log.Println("✅ Configuration loaded successfully")
	log.Printf("   Gemini: %s", globalConfig.GeminiModel)
	if globalConfig.SupabaseURL != "" {
		log.Printf("   Supabase: %s", globalConfig.SupabaseURL)
	} else {
		log.Printf("   Supabase: not configured, using in-memory history store")
	}
	if globalConfig.RedisHost != "" {
		log.Printf("   Redis: %s (TLS: %v)", globalConfig.GetRedisAddr(), globalConfig.RedisUseTLS)
	} else {
		log.Printf("   Redis: not configured, job queue disabled")
	}
	log.Printf("   Palette: step=%d canvas=%d/%d maxColors=%d",
		globalConfig.PaletteQuantStep, globalConfig.MoodboardCanvasSize,
		globalConfig.OutfitCanvasSize, globalConfig.PaletteDefaultColors)

	return globalConfig, nil
}

// GetConfig - fetch the loaded configuration
func GetConfig() *Config {
	if globalConfig == nil {
		log.Fatal("❌ Config not loaded. Call LoadConfig() first.")
	}
	return globalConfig
}

// SetConfig - override the global configuration (tests only)
func SetConfig(cfg *Config) {
	globalConfig = cfg
}

// validate - required environment variables
func (c *Config) validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.PaletteQuantStep <= 0 || c.PaletteQuantStep > 255 {
		return fmt.Errorf("PALETTE_QUANT_STEP must be between 1 and 255")
	}
	return nil
}

// getEnv - environment variable with default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt - integer environment variable with default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetRedisAddr - Redis connection address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
