package config

import "github.com/joho/godotenv"

// LoadDotEnv reads a .env file and sets environment variables.
// Existing env vars are never overridden (env takes precedence).
func LoadDotEnv(path string) error {
	// file not found is fine, caller can ignore
	return godotenv.Load(path)
}
