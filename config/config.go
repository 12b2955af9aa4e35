package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AtlasUser string
	AtlasPass string
	SemaLimit int
}

// Load reads the CLI configuration from a .env file if one exists, falling
// back to the process environment.
func Load() *Config {
	_ = godotenv.Load()

	semaLimit, _ := strconv.Atoi(os.Getenv("ATLAS_SEMA_LIMIT"))

	return &Config{
		AtlasUser: os.Getenv("ATLAS_USER"),
		AtlasPass: os.Getenv("ATLAS_PASS"),
		SemaLimit: semaLimit,
	}
}
