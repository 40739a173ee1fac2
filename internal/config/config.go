package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

// Config holds everything the server reads from the environment.
type Config struct {
	Env           string
	Port          string
	DatabaseURL   string
	LogLevel      string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	// DataDir is where chat history and the first-visit flag are kept
	// between restarts.
	DataDir        string
	DBConnAttempts int
}

func New() *Config {
	return &Config{
		Env:            getEnvString("APP_ENV", "development"),
		Port:           getEnvString("PORT", "8080"),
		DatabaseURL:    getEnvString("DATABASE_URL", ""),
		LogLevel:       getEnvString("LOGGER_LEVEL", "info"),
		OpenAIAPIKey:   getEnvString("OPENAI_API_KEY", ""),
		OpenAIBaseURL:  getEnvString("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		DataDir:        getEnvString("DATA_DIR", "data"),
		DBConnAttempts: getEnvInt("DB_CONN_ATTEMPTS", 10),
	}
}

func getEnvString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
