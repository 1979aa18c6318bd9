package config

import (
	"os"

	"github.com/joho/godotenv"
)

// envFiles are probed in order; the first hit wins. Values never override
// variables already present in the environment.
var envFiles = []string{".env", ".env.local"}

// loadEnvFiles loads environment variables from the first .env file found.
// Missing files are not an error; a run without any .env is the common case.
func loadEnvFiles() {
	for _, path := range envFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err == nil {
			return
		}
	}
}
