package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stwalsh4118/appraise/internal/costapproach"
	apierrors "github.com/stwalsh4118/appraise/internal/errors"
	"github.com/stwalsh4118/appraise/internal/inventory"
	"github.com/stwalsh4118/appraise/internal/middleware"
	"github.com/stwalsh4118/appraise/internal/models"
	"github.com/stwalsh4118/appraise/internal/ratebook"
	"github.com/stwalsh4118/appraise/internal/reconcile"
	"github.com/stwalsh4118/appraise/internal/services"
)

// ValuationHandler handles the stateless engine endpoints. Every
// request carries its own document; nothing here touches storage.
type ValuationHandler struct {
	service services.ValuationService
	rates   ratebook.RateSource
}

// NewValuationHandler creates a new ValuationHandler instance.
func NewValuationHandler(service services.ValuationService, rates ratebook.RateSource) *ValuationHandler {
	return &ValuationHandler{
		service: service,
		rates:   rates,
	}
}

// NormalizeResponse returns the repaired tree.
type NormalizeResponse struct {
	Inventory models.Inventory `json:"inventory"`
}

// ValidateRequest carries a normalized tree plus the template mode.
type ValidateRequest struct {
	Inventory           models.Inventory `json:"inventory" binding:"required"`
	RequireImprovements *bool            `json:"requireImprovements"`
}

// ValidateResponse lists the structural issues found.
type ValidateResponse struct {
	Issues    []inventory.Issue `json:"issues"`
	HasErrors bool              `json:"hasErrors"`
}

// RollupsRequest carries the tree to summarize.
type RollupsRequest struct {
	Inventory models.Inventory `json:"inventory" binding:"required"`
}

// ScenarioComputeRequest carries a full document and the scenario to
// evaluate.
type ScenarioComputeRequest struct {
	Document   models.AppraisalDocument `json:"document" binding:"required"`
	ScenarioID int                      `json:"scenarioId" binding:"required"`
}

// LandRequest carries one scenario's land grid.
type LandRequest struct {
	Grid models.LandGrid `json:"grid" binding:"required"`
}

// ConclusionRequest carries one scenario's component values plus the
// stored conclusion state.
type ConclusionRequest struct {
	Inputs reconcile.Inputs   `json:"inputs"`
	Prior  *models.Conclusion `json:"prior,omitempty"`
	// Round pins the result at the exact total snapped to the
	// configured precision.
	Round bool `json:"round,omitempty"`
}

// ConclusionResponse is the reconciled conclusion plus the state the
// caller should store when a round action produced a new pin.
type ConclusionResponse struct {
	Reconciliation reconcile.Reconciliation `json:"reconciliation"`
	Conclusion     *models.Conclusion       `json:"conclusion,omitempty"`
}

// EffectiveAgeRequest asks for an age-life suggestion for one building.
type EffectiveAgeRequest struct {
	Building models.Building `json:"building" binding:"required"`
	AsOfYear int             `json:"asOfYear"`
}

// EffectiveAgeResponse is the suggested effective age in years.
type EffectiveAgeResponse struct {
	EffectiveAge int `json:"effectiveAge"`
}

// Normalize handles POST /api/v1/inventory/normalize.
// It repairs an untrusted inventory tree; malformed nodes are dropped
// rather than rejected, so this endpoint never returns a client error
// for tree contents.
func (h *ValuationHandler) Normalize(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		apierrors.BadRequest(c, "Unable to read request body", nil)
		return
	}

	inv := h.service.NormalizeInventory(body)

	c.JSON(http.StatusOK, NormalizeResponse{Inventory: inv})
}

// Validate handles POST /api/v1/inventory/validate.
func (h *ValuationHandler) Validate(c *gin.Context) {
	var req ValidateRequest
	if !bindJSON(c, &req) {
		return
	}

	// Improvements are required unless the caller opts out for a
	// land-only template.
	requireImprovements := true
	if req.RequireImprovements != nil {
		requireImprovements = *req.RequireImprovements
	}

	issues := h.service.ValidateInventory(req.Inventory, requireImprovements)

	c.JSON(http.StatusOK, ValidateResponse{
		Issues:    issues,
		HasErrors: inventory.HasErrors(issues),
	})
}

// Rollups handles POST /api/v1/inventory/rollups.
func (h *ValuationHandler) Rollups(c *gin.Context) {
	var req RollupsRequest
	if !bindJSON(c, &req) {
		return
	}

	c.JSON(http.StatusOK, h.service.ComputeRollups(req.Inventory))
}

// CostApproach handles POST /api/v1/valuation/cost-approach.
func (h *ValuationHandler) CostApproach(c *gin.Context) {
	var req ScenarioComputeRequest
	if !bindJSON(c, &req) {
		return
	}

	c.JSON(http.StatusOK, h.service.ComputeCostApproach(req.Document, req.ScenarioID))
}

// Land handles POST /api/v1/valuation/land.
func (h *ValuationHandler) Land(c *gin.Context) {
	var req LandRequest
	if !bindJSON(c, &req) {
		return
	}

	c.JSON(http.StatusOK, h.service.ComputeLandValue(req.Grid))
}

// Scenario handles POST /api/v1/valuation/scenario.
// It runs every pipeline for one scenario and reconciles the result.
func (h *ValuationHandler) Scenario(c *gin.Context) {
	log := middleware.GetLogger(c)

	var req ScenarioComputeRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.ComputeScenario(req.Document, req.ScenarioID)
	if err != nil {
		if errors.Is(err, services.ErrScenarioNotFound) {
			apierrors.NotFound(c, "Scenario not found in document")
			return
		}
		apierrors.InternalServerError(c, "Failed to compute scenario", err)
		return
	}

	if log != nil {
		log.Info("Computed standalone scenario valuation", map[string]interface{}{
			"scenario_id": req.ScenarioID,
		})
	}

	c.JSON(http.StatusOK, result)
}

// Conclusion handles POST /api/v1/valuation/conclusion.
func (h *ValuationHandler) Conclusion(c *gin.Context) {
	var req ConclusionRequest
	if !bindJSON(c, &req) {
		return
	}

	reconciliation, conclusion := h.service.ReconcileConclusion(req.Inputs, req.Prior, req.Round)

	c.JSON(http.StatusOK, ConclusionResponse{
		Reconciliation: reconciliation,
		Conclusion:     conclusion,
	})
}

// BaseCostRequest represents the query parameters for base cost
// suggestions.
type BaseCostRequest struct {
	Occupancy string `form:"occupancy" binding:"required"`
	Quality   string `form:"quality"`
	Class     string `form:"class"`
}

// BaseCost handles GET /api/v1/rates/base-cost.
func (h *ValuationHandler) BaseCost(c *gin.Context) {
	var req BaseCostRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid query parameters", nil)
		return
	}

	rate, err := h.rates.BaseCostPSF(c.Request.Context(), req.Occupancy, req.Quality, models.ConstructionClass(req.Class))
	if err != nil {
		apierrors.InternalServerError(c, "Failed to look up base cost", err)
		return
	}

	c.JSON(http.StatusOK, rate)
}

// LocationMultipliers handles GET /api/v1/rates/multipliers.
func (h *ValuationHandler) LocationMultipliers(c *gin.Context) {
	state := c.Query("state")
	if state == "" {
		apierrors.BadRequest(c, "Missing required query parameter: state", nil)
		return
	}

	multipliers, err := h.rates.LocationMultipliers(c.Request.Context(), state)
	if err != nil {
		apierrors.InternalServerError(c, "Failed to look up location multipliers", err)
		return
	}

	c.JSON(http.StatusOK, multipliers)
}

// SiteCost handles GET /api/v1/rates/site-cost.
func (h *ValuationHandler) SiteCost(c *gin.Context) {
	typeID := c.Query("type")
	if typeID == "" {
		apierrors.BadRequest(c, "Missing required query parameter: type", nil)
		return
	}

	rate, err := h.rates.SiteImprovementCost(c.Request.Context(), typeID)
	if err != nil {
		apierrors.InternalServerError(c, "Failed to look up site improvement cost", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rate":         rate,
		"economicLife": h.rates.SiteImprovementEconomicLife(typeID),
	})
}

// DepreciationTable handles GET /api/v1/rates/depreciation-table.
func (h *ValuationHandler) DepreciationTable(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rows": h.rates.DepreciationTable()})
}

// SuggestDepreciation handles GET /api/v1/suggestions/physical-depreciation.
// The suggestion is advisory; callers apply it through the override
// maps if accepted.
func (h *ValuationHandler) SuggestDepreciation(c *gin.Context) {
	age, err := strconv.Atoi(c.Query("effectiveAge"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid or missing query parameter: effectiveAge", nil)
		return
	}
	class := models.ConstructionClass(c.Query("class"))

	c.JSON(http.StatusOK, gin.H{
		"physicalDeterioration": h.rates.SuggestPhysicalDepreciation(class, age),
	})
}

// SuggestEffectiveAge handles POST /api/v1/suggestions/effective-age.
func (h *ValuationHandler) SuggestEffectiveAge(c *gin.Context) {
	var req EffectiveAgeRequest
	if !bindJSON(c, &req) {
		return
	}

	asOf := req.AsOfYear
	if asOf == 0 {
		asOf = time.Now().Year()
	}

	c.JSON(http.StatusOK, EffectiveAgeResponse{
		EffectiveAge: costapproach.SuggestEffectiveAge(&req.Building, asOf),
	})
}

// bindJSON binds a JSON body and writes the error response itself on
// failure. Returns false when the handler should stop.
func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return false
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return false
	}
	return true
}
