// Package handler provides HTTP handlers for race endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	raceModel "github.com/steelcity/sports-results/internal/race/model"
	"github.com/steelcity/sports-results/internal/race/service"
)

const listPath = "/races"

// Handler handles HTTP requests for race endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new race handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /races. Filters: series (exact), track (substring).
func (h *Handler) List(c *gin.Context) {
	filter := raceModel.RaceFilter{
		Series: c.Query("series"),
		Track:  c.Query("track"),
	}

	resp, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Errorw("error listing races", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ShowAddForm handles GET /races/add.
func (h *Handler) ShowAddForm(c *gin.Context) {
	opts, err := h.service.Options(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error loading race form options", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, opts)
}

// Add handles POST /races/add.
func (h *Handler) Add(c *gin.Context) {
	var form raceModel.RaceForm
	if err := c.ShouldBind(&form); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid form body", http.StatusBadRequest)
		return
	}

	if _, err := h.service.Create(c.Request.Context(), &form); err != nil {
		if errors.Is(err, raceModel.ErrInvalidRace) {
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error adding race", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusSeeOther, listPath)
}

// ShowEditForm handles GET /races/:id/edit, pre-filling current values.
func (h *Handler) ShowEditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	race, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, raceModel.ErrRaceNotFound) {
			notFoundResponse(c, "race not found")
			return
		}
		h.logger.Errorw("error getting race", "id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"race": race})
}

// Edit handles POST /races/:id/edit.
func (h *Handler) Edit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var form raceModel.RaceForm
	if err := c.ShouldBind(&form); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid form body", http.StatusBadRequest)
		return
	}

	if _, err := h.service.Update(c.Request.Context(), id, &form); err != nil {
		switch {
		case errors.Is(err, raceModel.ErrRaceNotFound):
			notFoundResponse(c, "race not found")
		case errors.Is(err, raceModel.ErrInvalidRace):
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		default:
			h.logger.Errorw("error editing race", "id", id, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.Redirect(http.StatusSeeOther, listPath)
}

// Delete handles POST /races/:id/delete.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, raceModel.ErrRaceNotFound) {
			notFoundResponse(c, "race not found")
			return
		}
		h.logger.Errorw("error deleting race", "id", id, "error", err)
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
		notFoundResponse(c, "race not found")
		return 0, false
	}
	return uint(id), true
}
