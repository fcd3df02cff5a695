// Package config holds runtime configuration and the domain constants
// shared across the complaint service.
package config

import (
	"os"
	"strconv"
)

// Config carries everything read from the environment at startup.
type Config struct {
	ServerAddr string

	MongoURI      string
	MongoDatabase string

	SMTPHost   string
	SMTPPort   int
	EmailUser  string
	EmailPass  string
	AdminEmail string

	RedisAddr string
}

// Load reads the configuration from environment variables, applying
// defaults for everything except MONGODB_URI. Callers decide whether a
// missing MONGODB_URI is fatal.
func Load() *Config {
	cfg := &Config{
		ServerAddr:    getEnv("SERVER_ADDR", ":8080"),
		MongoURI:      os.Getenv("MONGODB_URI"),
		MongoDatabase: getEnv("MONGO_DB", DefaultDatabaseName),
		SMTPHost:      getEnv("SMTP_HOST", DefaultSMTPHost),
		SMTPPort:      getEnvInt("SMTP_PORT", DefaultSMTPPort),
		EmailUser:     os.Getenv("EMAIL_USER"),
		EmailPass:     os.Getenv("EMAIL_PASS"),
		AdminEmail:    os.Getenv("EMAIL_ADMIN"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
	}
	return cfg
}

// MailConfigured reports whether the sender credentials and the
// administrator recipient are all present. Absence disables email
// notifications only, it never fails the service.
func (c *Config) MailConfigured() bool {
	return c.EmailUser != "" && c.EmailPass != "" && c.AdminEmail != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
