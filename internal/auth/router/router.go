// Package router provides auth module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/steelcity/sports-results/internal/auth/handler"
	"github.com/steelcity/sports-results/internal/auth/service"
)

// RegisterRoutes registers admin session routes.
func RegisterRoutes(r *gin.Engine, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	r.GET("/admin/login", h.ShowLogin)
	r.POST("/admin/login", h.Login)
	r.GET("/admin/logout", h.Logout)
}
