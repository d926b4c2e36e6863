package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apierrors "github.com/stwalsh4118/appraise/internal/errors"
	"github.com/stwalsh4118/appraise/internal/middleware"
	"github.com/stwalsh4118/appraise/internal/models"
	"github.com/stwalsh4118/appraise/internal/services"
)

// AppraisalHandler handles appraisal CRUD and persisted-scenario
// computation requests.
type AppraisalHandler struct {
	service services.AppraisalService
}

// NewAppraisalHandler creates a new AppraisalHandler instance.
func NewAppraisalHandler(service services.AppraisalService) *AppraisalHandler {
	return &AppraisalHandler{
		service: service,
	}
}

// SaveAppraisalRequest is the body for create and update.
type SaveAppraisalRequest struct {
	Name     string                   `json:"name" binding:"required,max=255"`
	Document models.AppraisalDocument `json:"document"`
}

// Create handles POST /api/v1/appraisals.
func (h *AppraisalHandler) Create(c *gin.Context) {
	log := middleware.GetLogger(c)

	var req SaveAppraisalRequest
	if !bindJSON(c, &req) {
		return
	}

	appraisal, err := h.service.Create(c.Request.Context(), req.Name, req.Document)
	if err != nil {
		apierrors.InternalServerError(c, "Failed to create appraisal", err)
		return
	}

	if log != nil {
		log.Info("Created appraisal via API", map[string]interface{}{
			"appraisal_id": appraisal.ID.String(),
		})
	}

	c.JSON(http.StatusCreated, appraisal)
}

// Get handles GET /api/v1/appraisals/:id.
func (h *AppraisalHandler) Get(c *gin.Context) {
	id, ok := parseAppraisalID(c)
	if !ok {
		return
	}

	appraisal, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrAppraisalNotFound) {
			apierrors.NotFound(c, "Appraisal not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to fetch appraisal", err)
		return
	}

	c.JSON(http.StatusOK, appraisal)
}

// Update handles PUT /api/v1/appraisals/:id.
func (h *AppraisalHandler) Update(c *gin.Context) {
	id, ok := parseAppraisalID(c)
	if !ok {
		return
	}

	var req SaveAppraisalRequest
	if !bindJSON(c, &req) {
		return
	}

	appraisal, err := h.service.Update(c.Request.Context(), id, req.Name, req.Document)
	if err != nil {
		if errors.Is(err, services.ErrAppraisalNotFound) {
			apierrors.NotFound(c, "Appraisal not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to update appraisal", err)
		return
	}

	c.JSON(http.StatusOK, appraisal)
}

// List handles GET /api/v1/appraisals.
func (h *AppraisalHandler) List(c *gin.Context) {
	summaries, err := h.service.List(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to list appraisals", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appraisals": summaries,
		"count":      len(summaries),
	})
}

// Delete handles DELETE /api/v1/appraisals/:id.
func (h *AppraisalHandler) Delete(c *gin.Context) {
	id, ok := parseAppraisalID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		apierrors.InternalServerError(c, "Failed to delete appraisal", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ComputeScenario handles POST /api/v1/appraisals/:id/scenarios/:scenarioId/compute.
func (h *AppraisalHandler) ComputeScenario(c *gin.Context) {
	id, ok := parseAppraisalID(c)
	if !ok {
		return
	}

	scenarioID, err := strconv.Atoi(c.Param("scenarioId"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid scenario id", nil)
		return
	}

	result, err := h.service.ComputeScenario(c.Request.Context(), id, scenarioID)
	if err != nil {
		if errors.Is(err, services.ErrAppraisalNotFound) {
			apierrors.NotFound(c, "Appraisal not found")
			return
		}
		if errors.Is(err, services.ErrScenarioNotFound) {
			apierrors.NotFound(c, "Scenario not found in appraisal")
			return
		}
		apierrors.InternalServerError(c, "Failed to compute scenario", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// parseAppraisalID reads the :id path parameter. Writes the error
// response itself; returns false when the handler should stop.
func parseAppraisalID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid appraisal id", nil)
		return uuid.Nil, false
	}
	return id, true
}
