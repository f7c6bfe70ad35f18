package app

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home          string // config directory, e.g. $HOME/.urchat
	RedisAddr     string // redis deployment, e.g. 127.0.0.1:6379
	RedisPassword string
	RelayURL      string // relay daemon base URL; overrides direct redis access
	Verbose       bool
}

// FromEnv fills unset fields from the environment, loading a .env file from
// the working directory first when one exists.
func (c Config) FromEnv() Config {
	_ = godotenv.Load()

	if c.RedisAddr == "" {
		c.RedisAddr = os.Getenv("URCHAT_REDIS_ADDR")
	}
	if c.RedisPassword == "" {
		c.RedisPassword = os.Getenv("URCHAT_REDIS_PASSWORD")
	}
	if c.RelayURL == "" {
		c.RelayURL = os.Getenv("URCHAT_RELAY_URL")
	}
	return c
}

// Namespace returns the key-scoping namespace for the configured deployment:
// the relay URL when set, otherwise the redis address. Each deployment gets
// its own rotating keypair.
func (c Config) Namespace() string {
	if c.RelayURL != "" {
		return c.RelayURL
	}
	return c.RedisAddr
}
