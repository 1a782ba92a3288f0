package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every knob the server reads from the environment.
// Empty Daraja credentials put the payment client in simulated mode;
// an empty AdminKey denies all admin access.
type Config struct {
	Port      string
	StaticDir string

	MongoURI       string
	MongoDB        string
	DataDir        string
	MongoProbe     time.Duration
	AdminKey       string
	AdminListLimit int64

	DarajaConsumerKey    string
	DarajaConsumerSecret string
	DarajaShortCode      string
	DarajaPasskey        string
	DarajaCallbackURL    string
	DarajaBaseURL        string

	GoogleAIKey string
}

// Load reads a local .env when present, then assembles the config from
// the process environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:      getEnv("PORT", "3000"),
		StaticDir: os.Getenv("STATIC_DIR"),

		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDB:        getEnv("MONGO_DB", "tasty_bites"),
		DataDir:        getEnv("DATA_DIR", "data"),
		MongoProbe:     5 * time.Second,
		AdminKey:       os.Getenv("ADMIN_KEY"),
		AdminListLimit: 1000,

		DarajaConsumerKey:    os.Getenv("DARAJA_CONSUMER_KEY"),
		DarajaConsumerSecret: os.Getenv("DARAJA_CONSUMER_SECRET"),
		DarajaShortCode:      getEnv("BUSINESS_SHORTCODE", getEnv("DARAJA_SHORTCODE", "174379")),
		DarajaPasskey:        os.Getenv("DARAJA_PASSKEY"),
		DarajaCallbackURL:    getEnv("DARAJA_CALLBACK_URL", "https://example.com/mpesa/callback"),
		DarajaBaseURL:        getEnv("DARAJA_BASE_URL", "https://sandbox.safaricom.co.ke"),

		GoogleAIKey: os.Getenv("GOOGLE_AI_API_KEY"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
