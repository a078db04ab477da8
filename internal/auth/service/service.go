// Package service provides the admin session logic: credential check and
// session token issue/verify.
package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	appConfig "github.com/steelcity/sports-results/internal/config"
	authModel "github.com/steelcity/sports-results/internal/auth/model"
)

// Service defines the admin session operations.
type Service interface {
	// Login checks the password against the configured admin secret and
	// returns a signed session token.
	Login(password string) (string, error)

	// Verify checks a session token and reports whether it represents a
	// live admin session.
	Verify(token string) error

	// TTL returns the configured session lifetime.
	TTL() time.Duration
}

type service struct {
	cfg    appConfig.AuthConfig
	logger *zap.SugaredLogger
}

// New creates a new auth service instance.
func New(cfg appConfig.AuthConfig, logger *zap.SugaredLogger) Service {
	return &service{cfg: cfg, logger: logger}
}

// Login checks the password and issues a session token.
func (s *service) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)); err != nil {
		s.logger.Warnw("admin login rejected")
		return "", authModel.ErrInvalidPassword
	}

	now := time.Now()
	claims := &authModel.SessionClaims{
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.SessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	s.logger.Infow("admin login succeeded")
	return signed, nil
}

// Verify parses and validates a session token.
func (s *service) Verify(tokenString string) error {
	claims := &authModel.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.SessionSecret), nil
	})
	if err != nil || !token.Valid || !claims.IsAdmin {
		return authModel.ErrInvalidSession
	}
	return nil
}

// TTL returns the configured session lifetime.
func (s *service) TTL() time.Duration {
	return s.cfg.SessionTTL
}
