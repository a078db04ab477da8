// Package middleware provides the admin session guard.
package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	authModel "github.com/steelcity/sports-results/internal/auth/model"
	"github.com/steelcity/sports-results/internal/auth/service"
)

// RequireAdmin gates a route behind a live admin session. Unauthenticated
// callers are redirected to the login page with the originally requested
// URI preserved in the next parameter, so a successful login lands back
// where the caller was headed.
func RequireAdmin(svc service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(authModel.CookieName)
		if err != nil || svc.Verify(token) != nil {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, "/admin/login?next="+next)
			c.Abort()
			return
		}
		c.Next()
	}
}
