package main

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	BackendURL string
	Port       string
	Env        string
}

func mustConfig() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return Config{
		BackendURL: getenv("BACKEND_URL", "http://localhost:3000"),
		Port:       getenv("PORT", "8080"),
		Env:        getenv("APP_ENV", "development"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
