package config

import (
	"fmt"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all process-wide settings read from the environment.
//
// The two Midtrans keys are the only settings checked at startup; the
// Firebase credentials are passed through as-is and any problem with them
// only surfaces when the messaging client is constructed or used. This
// mirrors the behavior callers already depend on.
type Config struct {
	Port          string `env:"PORT" env-default:"3000"`
	AllowedOrigin string `env:"ALLOWED_ORIGIN" env-default:"http://localhost:5173"`

	MidtransServerKey string `env:"MIDTRANS_SERVER_KEY" validate:"required"`
	MidtransClientKey string `env:"MIDTRANS_CLIENT_KEY" validate:"required"`

	FirebaseProjectID   string `env:"FIREBASE_PROJECT_ID"`
	FirebaseClientEmail string `env:"FIREBASE_CLIENT_EMAIL"`
	// Private keys arrive with literal `\n` sequences when set through most
	// deployment UIs; Load restores real newlines.
	FirebasePrivateKey string `env:"FIREBASE_PRIVATE_KEY"`
}

// Load reads the environment into a Config and validates it.
// Missing Midtrans keys are a hard error; the caller is expected to treat
// that as fatal before the listener starts.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	cfg.FirebasePrivateKey = strings.ReplaceAll(cfg.FirebasePrivateKey, `\n`, "\n")

	v := validatorv10.New()
	if err := v.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("midtrans keys (MIDTRANS_SERVER_KEY, MIDTRANS_CLIENT_KEY) are not defined: %w", err)
	}

	return &cfg, nil
}
