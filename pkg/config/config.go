package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string
	StorageBucket   string

	MpesaBaseURL     string
	MpesaConsumerKey string
	MpesaSecret      string
	MpesaShortCode   string
	MpesaPasskey     string
	MpesaCallbackURL string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		StorageBucket:   getEnv("STORAGE_BUCKET", ""),

		MpesaBaseURL:     getEnv("MPESA_BASE_URL", "https://sandbox.safaricom.co.ke"),
		MpesaConsumerKey: getEnv("MPESA_CONSUMER_KEY", ""),
		MpesaSecret:      getEnv("MPESA_CONSUMER_SECRET", ""),
		MpesaShortCode:   getEnv("MPESA_SHORT_CODE", "174379"),
		MpesaPasskey:     getEnv("MPESA_PASSKEY", ""),
		MpesaCallbackURL: getEnv("MPESA_CALLBACK_URL", ""),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
