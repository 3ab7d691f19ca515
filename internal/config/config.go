package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the application.
type Config struct {
	Port              string
	DBPath            string
	UploadDir         string
	AllowedOrigin     string
	RazorpayKeyID     string
	RazorpayKeySecret string
	RazorpayMode      string
}

// LoadConfig loads configuration from the environment, reading a .env file
// first if one is present.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	return &Config{
		Port:              getEnv("PORT", "4000"),
		DBPath:            getEnv("DB_PATH", "./db.json"),
		UploadDir:         getEnv("UPLOAD_DIR", "./uploads"),
		AllowedOrigin:     getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		RazorpayMode:      getEnv("RAZORPAY_MODE", "test"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
