package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings for the API server and the storefront
// session core. Values come from the environment; a local .env file is
// loaded first when present.
type Config struct {
	Port     string `envconfig:"PORT" default:"5000"`
	MongoURI string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDB  string `envconfig:"MONGO_DB" default:"yellow-mart"`

	// APIBaseURL is where the storefront core reaches the backend.
	APIBaseURL  string        `envconfig:"API_BASE_URL" default:"http://localhost:5000/api"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`

	AdminPasscode string `envconfig:"ADMIN_PASSCODE" default:"200230"`

	GeminiAPIKey string `envconfig:"GEMINI_API_KEY" default:""`
	GeminiModel  string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`

	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"2m"`
	LogLevel string        `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the .env file if one exists, then processes the environment.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("Error loading .env file:", err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
