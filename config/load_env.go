package config

import (
	"log/slog"

	"github.com/subosito/gotenv"
)

// LoadEnv loads config/envs/.env.<env> into the process environment.
// Missing files are fine; in the container everything arrives via -e.
func LoadEnv(env string) {
	envFile := "config/envs/.env." + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment")
	}
}
