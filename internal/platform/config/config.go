package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort string
	JWTKey  []byte
	JWTExp  time.Duration

	MongoURL string
	DBName   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	NotificationQueueName string

	MidtransServerKey    string
	MidtransClientKey    string
	MidtransIsProduction bool

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	ResendAPIKey string
	AdminEmail   string
	SenderEmail  string

	SiteBaseURL string
}

// Load reads the environment (optionally from .env) into a Config.
// The result is handed to each component at startup; nothing reads the
// environment after this point.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	return &Config{
		APIPort: getEnv("API_PORT", "8080"),
		JWTKey:  []byte(getEnv("JWT_SECRET_KEY", "calius-digital-secret-key-2024")),
		JWTExp:  time.Duration(getEnvAsInt("JWT_EXPIRATION_HOURS", 24)) * time.Hour,

		MongoURL: getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:   getEnv("DB_NAME", "calius_digital"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		NotificationQueueName: getEnv("NOTIFICATION_QUEUE_NAME", "notification_jobs_queue"),

		MidtransServerKey:    strings.TrimSpace(getEnv("MIDTRANS_SERVER_KEY", "")),
		MidtransClientKey:    strings.TrimSpace(getEnv("MIDTRANS_CLIENT_KEY", "")),
		MidtransIsProduction: getEnvAsBool("MIDTRANS_IS_PRODUCTION", false),

		CloudinaryCloudName: strings.TrimSpace(getEnv("CLOUDINARY_CLOUD_NAME", "")),
		CloudinaryAPIKey:    strings.TrimSpace(getEnv("CLOUDINARY_API_KEY", "")),
		CloudinaryAPISecret: strings.TrimSpace(getEnv("CLOUDINARY_API_SECRET", "")),

		ResendAPIKey: strings.TrimSpace(getEnv("RESEND_API_KEY", "")),
		AdminEmail:   getEnv("ADMIN_EMAIL", "admin@calius.digital"),
		SenderEmail:  getEnv("SENDER_EMAIL", "onboarding@resend.dev"),

		SiteBaseURL: getEnv("SITE_BASE_URL", "https://calius.digital"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(strings.ToLower(valueStr)); err == nil {
		return value
	}
	return fallback
}
