package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Env      string
	Port     string
	LogLevel string

	DBDriver    string // postgres, mysql or sqlite
	DatabaseURL string // full DSN, overrides the DB_* parts when set
	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPort      string

	JWTKey       string
	SaltRound    int
	CookieSecure bool
	CorsOrigins  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SendGridKey string
	EmailSender string

	SeedData            bool
	SchedulerEnabled    bool
	ReconcileCron       string
	CategoryRefreshCron string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Env:      getEnv("APP_ENV", "development"),
		Port:     getEnv("PORT", "5000"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "coursehub"),
		DBPort:      getEnv("DB_PORT", "5432"),

		JWTKey:       getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound:    getEnvInt("SALT_ROUND", 10),
		CookieSecure: getEnvBool("COOKIE_SECURE", false),
		CorsOrigins:  getEnv("CORS_ORIGINS", "*"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		SendGridKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender: getEnv("EMAIL_SENDER", "no-reply@coursehub.local"),

		SeedData:            getEnvBool("SEED_DATA", true),
		SchedulerEnabled:    getEnvBool("SCHEDULER_ENABLED", true),
		ReconcileCron:       getEnv("RECONCILE_CRON", "0 3 * * *"),
		CategoryRefreshCron: getEnv("CATEGORY_REFRESH_CRON", "30 3 * * *"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.DBDriver == "sqlite" && AppConfig.DatabaseURL == "" {
		AppConfig.DatabaseURL = "coursehub.db"
		log.Println("Warning: Using default sqlite file coursehub.db. Set DATABASE_URL to change it.")
	}

	return AppConfig
}

// IsProduction reports whether the service runs with APP_ENV=production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
