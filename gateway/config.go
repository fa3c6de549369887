package gateway

import "os"

// Config is the configuration for the gateway application.
type Config struct {
	HTTPAddr string
	// DatabaseURL is the Postgres DSN. When empty the app refuses to start;
	// the in-memory repository backend exists for tests only.
	DatabaseURL string
	// MaxOpenConns / MaxIdleConns bound the shared connection pool.
	MaxOpenConns int
	MaxIdleConns int
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr:     "localhost:8080",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
	}
}

// ConfigFromEnv builds a Config from the environment, falling back to
// defaults for anything unset.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	cfg.DatabaseURL = os.Getenv("DB_DSN")
	return cfg
}
