// Package handler provides HTTP handlers for admin login and logout.
package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authModel "github.com/steelcity/sports-results/internal/auth/model"
	"github.com/steelcity/sports-results/internal/auth/service"
)

// Handler handles HTTP requests for admin session endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new auth handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ShowLogin handles GET /admin/login.
func (h *Handler) ShowLogin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "submit the admin password to start a session",
		"next":    safeNext(c.Query("next")),
	})
}

// Login handles POST /admin/login. On success it sets the session cookie
// and redirects to the originally requested destination.
func (h *Handler) Login(c *gin.Context) {
	password := c.PostForm("password")

	token, err := h.service.Login(password)
	if err != nil {
		if errors.Is(err, authModel.ErrInvalidPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "INVALID_PASSWORD",
					"message": "invalid admin password",
				},
			})
			return
		}
		h.logger.Errorw("error during admin login", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{
				"code":    "INTERNAL_ERROR",
				"message": "internal server error",
			},
		})
		return
	}

	maxAge := int(h.service.TTL().Seconds())
	c.SetCookie(authModel.CookieName, token, maxAge, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, safeNext(c.Query("next")))
}

// Logout handles GET /admin/logout. Clearing the cookie is unconditional.
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(authModel.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

// safeNext keeps post-login redirects on this site. Anything that is not a
// plain local path falls back to the landing page.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
