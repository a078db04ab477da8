// Package handler provides HTTP handlers for football endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	footballModel "github.com/steelcity/sports-results/internal/football/model"
	"github.com/steelcity/sports-results/internal/football/service"
	"github.com/steelcity/sports-results/pkg/forms"
)

const listPath = "/football-games"

// Handler handles HTTP requests for football endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new football handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /football-games. Filters: season (exact, non-numeric
// values are ignored), opponent (substring), result (exact code).
func (h *Handler) List(c *gin.Context) {
	filter := footballModel.GameFilter{
		Season:   forms.OptionalInt(c.Query("season")),
		Opponent: c.Query("opponent"),
		Result:   c.Query("result"),
	}

	resp, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Errorw("error listing football games", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ShowAddForm handles GET /football-games/add.
func (h *Handler) ShowAddForm(c *gin.Context) {
	opts, err := h.service.Options(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error loading football form options", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, opts)
}

// Add handles POST /football-games/add.
func (h *Handler) Add(c *gin.Context) {
	var form footballModel.GameForm
	if err := c.ShouldBind(&form); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid form body", http.StatusBadRequest)
		return
	}

	if _, err := h.service.Create(c.Request.Context(), &form); err != nil {
		if errors.Is(err, footballModel.ErrInvalidGame) {
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error adding football game", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusSeeOther, listPath)
}

// ShowEditForm handles GET /football-games/:id/edit, pre-filling current
// values.
func (h *Handler) ShowEditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	game, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, footballModel.ErrGameNotFound) {
			notFoundResponse(c, "football game not found")
			return
		}
		h.logger.Errorw("error getting football game", "id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"game": game})
}

// Edit handles POST /football-games/:id/edit.
func (h *Handler) Edit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var form footballModel.GameForm
	if err := c.ShouldBind(&form); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid form body", http.StatusBadRequest)
		return
	}

	if _, err := h.service.Update(c.Request.Context(), id, &form); err != nil {
		switch {
		case errors.Is(err, footballModel.ErrGameNotFound):
			notFoundResponse(c, "football game not found")
		case errors.Is(err, footballModel.ErrInvalidGame):
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		default:
			h.logger.Errorw("error editing football game", "id", id, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.Redirect(http.StatusSeeOther, listPath)
}

// Delete handles POST /football-games/:id/delete.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, footballModel.ErrGameNotFound) {
			notFoundResponse(c, "football game not found")
			return
		}
		h.logger.Errorw("error deleting football game", "id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusSeeOther, listPath)
}

// parseID reads the :id path parameter. A non-numeric id is a 404, same as
// an unknown one.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		notFoundResponse(c, "football game not found")
		return 0, false
	}
	return uint(id), true
}
