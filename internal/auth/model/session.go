// Package model provides session types for the admin auth module.
package model

import "github.com/golang-jwt/jwt/v5"

// CookieName is the cookie carrying the signed admin session token.
const CookieName = "admin_session"

// SessionClaims is the payload of the admin session token. There is a
// single shared admin role, so the only application claim is the flag.
type SessionClaims struct {
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}
