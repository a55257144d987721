package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/saylanihub/zakatms/internal/pkg/models"
)

// InitConfig loads configuration from the given env file (when running
// locally) and the process environment
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "zakatms")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// API config
	configs.API.BaseURL = GetEnv("API_BASE_URL", "http://localhost:5000/api")
	configs.API.Timeout = GetEnvAsInt("API_TIMEOUT", 30)

	// Payment provider config
	configs.Payment.PublicKey = GetEnv("STRIPE_PUBLIC_KEY", "")
	configs.Payment.ConfirmURL = GetEnv("STRIPE_CONFIRM_URL", "https://api.stripe.com/v1/payment_intents")

	// Session config
	configs.Session.FilePath = GetEnv("SESSION_FILE_PATH", defaultSessionPath())

	// Receipt config
	configs.Receipt.OutputDir = GetEnv("RECEIPT_OUTPUT_DIR", ".")

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "logs/zakatms.log")
	configs.Logger.Type = GetEnv("LOG_TYPE", "stdout")

	return configs
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zakatms_session.json"
	}
	return filepath.Join(home, ".zakatms", "session.json")
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
