package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultGeminiModel is the generative model used by the planner and chatbot
	DefaultGeminiModel = "gemini-2.5-flash"
	// DefaultTypewriterInterval is the reveal cadence for typed headlines
	DefaultTypewriterInterval = 50 * time.Millisecond
)

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	// Generative text (Gemini)
	GeminiAPIKey string
	GeminiModel  string
	// Email (Resend)
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string
	SalesEmail    string
	EmailTestMode bool // When true, emails are logged to console instead of sent
	// Cloudflare Turnstile
	TurnstileSiteKey   string
	TurnstileSecretKey string
	// Landing interactions
	TypewriterInterval time.Duration
	// Other
	AllowedOrigins []string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")
	geminiKey := getEnv("GEMINI_API_KEY", "")
	if geminiKey == "" {
		log.Println("[WARNING] GEMINI_API_KEY is not set. Itinerary planner and chatbot will answer with fallback messages.")
	}

	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		Environment:        environment,
		AppURL:             getEnv("APP_URL", "http://localhost:8080"),
		GeminiAPIKey:       geminiKey,
		GeminiModel:        getEnv("GEMINI_MODEL", DefaultGeminiModel),
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		EmailFrom:          getEnv("EMAIL_FROM", "noreply@travelcrm.app"),
		EmailFromName:      getEnv("EMAIL_FROM_NAME", "TravelCRM"),
		SalesEmail:         getEnv("SALES_EMAIL", "sales@travelcrm.app"),
		EmailTestMode:      getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		TurnstileSiteKey:   getEnv("TURNSTILE_SITE_KEY", ""),
		TurnstileSecretKey: getEnv("TURNSTILE_SECRET_KEY", ""),
		TypewriterInterval: getEnvDuration("TYPEWRITER_INTERVAL", DefaultTypewriterInterval),
		AllowedOrigins:     strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

// IsProduction reports whether the server runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

// getEnvDuration parses Go duration strings ("50ms", "1s"); invalid or
// non-positive values fall back to the default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("[WARNING] Invalid duration for %s (%q), using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
