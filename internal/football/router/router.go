// Package router provides football module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/steelcity/sports-results/internal/football/handler"
	"github.com/steelcity/sports-results/internal/football/repository"
	"github.com/steelcity/sports-results/internal/football/service"
)

// RegisterRoutes registers football module routes. The list view is public;
// every mutating route sits behind the admin guard.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, guard gin.HandlerFunc, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/football-games", h.List)

	admin := r.Group("/football-games", guard)
	admin.GET("/add", h.ShowAddForm)
	admin.POST("/add", h.Add)
	admin.GET("/:id/edit", h.ShowEditForm)
	admin.POST("/:id/edit", h.Edit)
	admin.POST("/:id/delete", h.Delete)
}
