package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App  App  `yaml:"app"`
	HTTP HTTP `yaml:"http"`
	DB   DB   `yaml:"db"`
	Auth Auth `yaml:"auth"`
}

type App struct {
	Name string `yaml:"name" env:"APP_NAME" env-default:"tripdesk"`
}

type HTTP struct {
	Port           string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:5173"`
}

type DB struct {
	// Postgres URL in production, a plain file path falls back to SQLite.
	URL string `yaml:"url" env:"DATABASE_URL" env-default:"tripdesk.db"`
}

type Auth struct {
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET"`
	TokenTTL  int    `yaml:"token_ttl_hours" env:"TOKEN_TTL_HOURS" env-default:"168"`
}

func New() (*Config, error) {
	cfg := &Config{}

	// ReadConfig overlays environment variables on top of the file itself;
	// only a missing file needs the env-only fallback.
	if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}
	return cfg, nil
}
