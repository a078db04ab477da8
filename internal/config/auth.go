package config

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// AuthConfig holds admin authentication configuration.
//
// There is a single shared admin credential. In production set
// ADMIN_PASSWORD_HASH to a bcrypt hash; ADMIN_PASSWORD is a plaintext
// fallback for local development and is hashed at load time so the rest of
// the application only ever sees the hash.
type AuthConfig struct {
	// AdminPasswordHash is the bcrypt hash of the shared admin secret.
	AdminPasswordHash string
	// SessionSecret signs the admin session cookie.
	SessionSecret string
	// SessionTTL is the lifetime of an admin session.
	SessionTTL time.Duration
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	cfg := AuthConfig{
		AdminPasswordHash: GetEnv("ADMIN_PASSWORD_HASH", ""),
		SessionSecret:     GetEnv("SESSION_SECRET", ""),
		SessionTTL:        GetEnvDuration("SESSION_TTL", 12*time.Hour),
	}

	if cfg.AdminPasswordHash == "" {
		if plain := GetEnv("ADMIN_PASSWORD", ""); plain != "" {
			if hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost); err == nil {
				cfg.AdminPasswordHash = string(hash)
			}
		}
	}

	return cfg
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	if c.AdminPasswordHash == "" {
		return fmt.Errorf("admin password is not configured (set ADMIN_PASSWORD_HASH or ADMIN_PASSWORD)")
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET must be set")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be greater than 0")
	}
	return nil
}
