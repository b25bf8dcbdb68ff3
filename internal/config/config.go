package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds everything read from the environment: the listen port, the
// snapshot file for each store, and the generative-API credential for the
// help-bot chat.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	CupboardFile string `env:"CUPBOARD_FILE" envDefault:"data/cupboard.json"`
	UsersFile    string `env:"USERS_FILE" envDefault:"data/users.json"`
	SessionsFile string `env:"SESSIONS_FILE" envDefault:"data/sessions.json"`

	// GeminiAPIKey may be empty; the chat endpoints then answer 503 while
	// the rest of the API keeps working.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash-lite"`

	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
