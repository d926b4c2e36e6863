package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/stwalsh4118/appraise/internal/config"
	"github.com/stwalsh4118/appraise/internal/costapproach"
	"github.com/stwalsh4118/appraise/internal/inventory"
	"github.com/stwalsh4118/appraise/internal/landvalue"
	"github.com/stwalsh4118/appraise/internal/logger"
	"github.com/stwalsh4118/appraise/internal/models"
	"github.com/stwalsh4118/appraise/internal/reconcile"
)

// Service-level errors
var (
	ErrScenarioNotFound = errors.New("scenario not found")
)

// CostApproachResult bundles the building and site improvement
// pipelines for one scenario.
type CostApproachResult struct {
	LineItems             []costapproach.LineItem     `json:"lineItems"`
	ImprovementsValue     float64                     `json:"improvementsValue"`
	SiteLineItems         []costapproach.SiteLineItem `json:"siteLineItems"`
	SiteImprovementsValue float64                     `json:"siteImprovementsValue"`
}

// ScenarioValuation is the full per-scenario output: land, cost
// approach, and the reconciled conclusion.
type ScenarioValuation struct {
	ScenarioID   int                      `json:"scenarioId"`
	ScenarioName string                   `json:"scenarioName"`
	Land         landvalue.Result         `json:"land"`
	CostApproach CostApproachResult       `json:"costApproach"`
	Conclusion   reconcile.Reconciliation `json:"conclusion"`
}

// ValuationService defines the engine-facing business operations. All
// of them are deterministic transforms of the supplied document; no
// method performs I/O.
type ValuationService interface {
	// NormalizeInventory repairs an untrusted raw tree. It never
	// fails; malformed nodes are dropped.
	NormalizeInventory(raw json.RawMessage) models.Inventory

	// ValidateInventory reports structural issues. Error-severity
	// issues are the signal a workflow uses to block finalize actions.
	ValidateInventory(inv models.Inventory, requireImprovements bool) []inventory.Issue

	// ComputeRollups derives the subject totals projection.
	ComputeRollups(inv models.Inventory) inventory.Rollups

	// ComputeCostApproach runs the cost pipeline for one scenario of a
	// document. Missing selections fall back to every building in tree
	// order.
	ComputeCostApproach(doc models.AppraisalDocument, scenarioID int) CostApproachResult

	// ComputeLandValue evaluates a scenario's land grid with the
	// configured drift tolerance.
	ComputeLandValue(grid models.LandGrid) landvalue.Result

	// ReconcileConclusion resolves a scenario conclusion from its
	// component values and the stored state. When round is set the
	// returned conclusion pins the exact total snapped to the
	// configured precision; otherwise the prior state carries through.
	ReconcileConclusion(in reconcile.Inputs, prior *models.Conclusion, round bool) (reconcile.Reconciliation, *models.Conclusion)

	// ComputeScenario runs every pipeline and reconciles them.
	// Returns ErrScenarioNotFound when the document has no such
	// scenario.
	ComputeScenario(doc models.AppraisalDocument, scenarioID int) (*ScenarioValuation, error)
}

// valuationService is the concrete implementation of ValuationService.
type valuationService struct {
	engine config.EngineConfig
	log    *logger.Logger
}

// NewValuationService creates a new instance of ValuationService.
func NewValuationService(engine config.EngineConfig, log *logger.Logger) ValuationService {
	return &valuationService{
		engine: engine,
		log:    log,
	}
}

func (s *valuationService) NormalizeInventory(raw json.RawMessage) models.Inventory {
	inv := inventory.Normalize(raw)

	s.log.Debug("Normalized inventory", map[string]interface{}{
		"parcels": len(inv.Parcels),
	})

	return inv
}

func (s *valuationService) ValidateInventory(inv models.Inventory, requireImprovements bool) []inventory.Issue {
	issues := inventory.Validate(inv, inventory.ValidateOptions{
		RequireImprovements: requireImprovements,
	})

	if inventory.HasErrors(issues) {
		s.log.Debug("Inventory has blocking validation issues", map[string]interface{}{
			"issues": len(issues),
		})
	}

	return issues
}

func (s *valuationService) ComputeRollups(inv models.Inventory) inventory.Rollups {
	return inventory.ComputeRollups(inv)
}

func (s *valuationService) ComputeCostApproach(doc models.AppraisalDocument, scenarioID int) CostApproachResult {
	selected := selectedBuildingIDs(doc, scenarioID)
	overrides := doc.BuildingCostData[scenarioID]

	improvements := costapproach.MapSelectedBuildings(doc.Inventory, selected, overrides)
	items := costapproach.CalculateLineItems(improvements)

	asOf := scenarioYear(doc.Scenario(scenarioID))
	siteItems := costapproach.CalculateSiteItems(doc.SiteImprovements, asOf)
	var siteTotal float64
	for i := range siteItems {
		siteTotal += siteItems[i].Contributory
	}

	return CostApproachResult{
		LineItems:             items,
		ImprovementsValue:     costapproach.TotalDepreciatedCost(items),
		SiteLineItems:         siteItems,
		SiteImprovementsValue: siteTotal,
	}
}

func (s *valuationService) ComputeLandValue(grid models.LandGrid) landvalue.Result {
	return landvalue.Evaluate(grid, s.engine.DriftTolerance)
}

func (s *valuationService) ReconcileConclusion(in reconcile.Inputs, prior *models.Conclusion, round bool) (reconcile.Reconciliation, *models.Conclusion) {
	if round {
		pinned := reconcile.RoundExact(in, s.engine.RoundPrecision)
		return reconcile.Reconcile(in, &pinned), &pinned
	}
	return reconcile.Reconcile(in, prior), nil
}

func (s *valuationService) ComputeScenario(doc models.AppraisalDocument, scenarioID int) (*ScenarioValuation, error) {
	scenario := doc.Scenario(scenarioID)
	if scenario == nil {
		return nil, fmt.Errorf("%w: id %d", ErrScenarioNotFound, scenarioID)
	}

	cost := s.ComputeCostApproach(doc, scenarioID)

	var land landvalue.Result
	if grid := doc.LandGrids[scenarioID]; grid != nil {
		land = s.ComputeLandValue(*grid)
	}

	conclusion := reconcile.Reconcile(reconcile.Inputs{
		LandValue:               land.DisplayedValue,
		ImprovementsValue:       cost.ImprovementsValue,
		SiteImprovementsValue:   cost.SiteImprovementsValue,
		StabilizationAdjustment: doc.StabilizationAdjustments[scenarioID],
	}, doc.Conclusions[scenarioID])

	s.log.Info("Computed scenario valuation", map[string]interface{}{
		"scenario_id": scenarioID,
		"exact_total": conclusion.ExactTotal,
		"final_value": conclusion.FinalValue,
		"state":       conclusion.State,
	})

	return &ScenarioValuation{
		ScenarioID:   scenarioID,
		ScenarioName: scenario.Name,
		Land:         land,
		CostApproach: cost,
		Conclusion:   conclusion,
	}, nil
}

// selectedBuildingIDs applies the selection fallback: an absent
// selection entry means every building participates, in tree order. An
// explicit empty selection means none do.
func selectedBuildingIDs(doc models.AppraisalDocument, scenarioID int) []string {
	if ids, ok := doc.BuildingSelections[scenarioID]; ok {
		return ids
	}

	var ids []string
	for pi := range doc.Inventory.Parcels {
		for bi := range doc.Inventory.Parcels[pi].Buildings {
			ids = append(ids, doc.Inventory.Parcels[pi].Buildings[bi].ID)
		}
	}
	return ids
}

// scenarioYear derives the as-of year used for age-life math from the
// scenario's effective date, falling back to the current year.
func scenarioYear(scenario *models.Scenario) int {
	if scenario != nil && len(scenario.EffectiveDate) >= 4 {
		if year, err := strconv.Atoi(scenario.EffectiveDate[:4]); err == nil {
			return year
		}
	}
	return time.Now().Year()
}
