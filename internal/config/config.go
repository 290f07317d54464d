package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	MongoURI  string
	DBName    string
	JWTSecret string
	Port      string
	LogLevel  string

	// Redis role-permission cache; cache is disabled when RedisAddr is empty.
	RedisAddr     string
	RedisPassword string

	// Email SMTP configuration
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string

	// Cloudinary configuration
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	// Seed credentials for the initial super admin
	SeedAdminEmail    string
	SeedAdminPassword string
}

// LoadConfig loads configuration from a .env file or environment variables.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil {
		log.Printf("No .env file found at %s, reading from environment variables", path)
	}

	return &Config{
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:    getEnv("DB_NAME", "quizadmin_db"),
		JWTSecret: getEnv("JWT_SECRET", "change_this_jwt_secret_in_production"),
		Port:      getEnv("PORT", "8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),

		SeedAdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@quizadmin.local"),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
	}, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
