package config

import (
	"os"

	"github.com/joho/godotenv"
)

// envFiles are tried in order. godotenv.Load never overrides variables that
// are already set, so the process environment and earlier files win.
var envFiles = []string{".env", ".env.local"}

func loadEnvFiles() {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		_ = godotenv.Load(f)
	}
}
