// Package handler provides HTTP handlers for golf endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	golfModel "github.com/steelcity/sports-results/internal/golf/model"
	"github.com/steelcity/sports-results/internal/golf/service"
	"github.com/steelcity/sports-results/pkg/forms"
)

const listPath = "/tournament-results"

// Handler handles HTTP requests for golf endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new golf handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /tournament-results. Filters: year (exact, non-numeric
// values are ignored), tournament (substring).
func (h *Handler) List(c *gin.Context) {
	filter := golfModel.ResultFilter{
		Year:       forms.OptionalInt(c.Query("year")),
		Tournament: c.Query("tournament"),
	}

	resp, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Errorw("error listing tournament results", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ShowAddForm handles GET /tournament-results/add.
func (h *Handler) ShowAddForm(c *gin.Context) {
	opts, err := h.service.Options(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error loading tournament form options", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, opts)
}

// Add handles POST /tournament-results/add.
func (h *Handler) Add(c *gin.Context) {
	var form golfModel.ResultForm
	if err := c.ShouldBind(&form); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid form body", http.StatusBadRequest)
		return
	}

	if _, err := h.service.Create(c.Request.Context(), &form); err != nil {
		if errors.Is(err, golfModel.ErrInvalidResult) {
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error adding tournament result", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusSeeOther, listPath)
}

// ShowEditForm handles GET /tournament-results/:id/edit, pre-filling
// current values.
func (h *Handler) ShowEditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, golfModel.ErrResultNotFound) {
			notFoundResponse(c, "tournament result not found")
			return
		}
		h.logger.Errorw("error getting tournament result", "id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// Edit handles POST /tournament-results/:id/edit.
func (h *Handler) Edit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var form golfModel.ResultForm
	if err := c.ShouldBind(&form); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid form body", http.StatusBadRequest)
		return
	}

	if _, err := h.service.Update(c.Request.Context(), id, &form); err != nil {
		switch {
		case errors.Is(err, golfModel.ErrResultNotFound):
			notFoundResponse(c, "tournament result not found")
		case errors.Is(err, golfModel.ErrInvalidResult):
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		default:
			h.logger.Errorw("error editing tournament result", "id", id, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.Redirect(http.StatusSeeOther, listPath)
}

// Delete handles POST /tournament-results/:id/delete.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, golfModel.ErrResultNotFound) {
			notFoundResponse(c, "tournament result not found")
			return
		}
		h.logger.Errorw("error deleting tournament result", "id", id, "error", err)
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
		notFoundResponse(c, "tournament result not found")
		return 0, false
	}
	return uint(id), true
}
