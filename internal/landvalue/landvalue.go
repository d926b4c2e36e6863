// Package landvalue implements the sales-comparison land grid:
// per-comp percentage adjustments against price per square foot,
// averaged and extended by the subject's size, with drift-guarded
// rounding.
package landvalue

import (
	"math"

	"github.com/stwalsh4118/appraise/internal/models"
)

// DefaultDriftTolerance is the relative drift past which a stale
// rounding override is discarded.
const DefaultDriftTolerance = 0.05

// DefaultRoundPrecision snaps concluded land values to the nearest
// $1,000 unless configured otherwise.
const DefaultRoundPrecision = 1000

// CompResult is the adjusted price math for one comparable sale.
type CompResult struct {
	CompID             string  `json:"compId"`
	PricePerSF         float64 `json:"pricePerSf"`
	TotalAdjPercent    float64 `json:"totalAdjPercent"`
	AdjustedPricePerSF float64 `json:"adjustedPricePerSf"`
}

// Result is the full grid evaluation for one scenario.
type Result struct {
	CompResults           []CompResult `json:"compResults"`
	AvgAdjustedPricePerSF float64      `json:"avgAdjustedPricePerSf"`
	RawIndicatedValue     float64      `json:"rawIndicatedValue"`

	// RoundedValue is the surviving rounding override, 0 when none.
	RoundedValue float64 `json:"roundedValue,omitempty"`
	// DisplayedValue is what the caller reports: the rounded value
	// while the override holds, otherwise the live raw value.
	DisplayedValue float64 `json:"displayedValue"`
	// OverrideCleared is set when a previously accepted rounded value
	// drifted past tolerance and was discarded.
	OverrideCleared bool `json:"overrideCleared,omitempty"`
}

// AdjustComp computes a single comp's adjusted price per SF. Only
// active adjustment rows contribute; stale values under removed rows
// are ignored. Positive adjustments mean the comp is inferior to the
// subject, moving its price up.
func AdjustComp(comp models.LandComp, rows []models.AdjustmentRow) CompResult {
	result := CompResult{CompID: comp.ID}

	if comp.LandSF > 0 {
		result.PricePerSF = comp.SalePrice / comp.LandSF
	}

	for _, row := range rows {
		if !row.Active {
			continue
		}
		result.TotalAdjPercent += comp.Adjustments[row.Key]
	}

	result.AdjustedPricePerSF = result.PricePerSF * (1 + result.TotalAdjPercent)
	return result
}

// Evaluate runs the whole grid. An empty comp list yields a raw value
// of 0. A stored rounding override survives only while the raw value
// stays within tolerance of it.
func Evaluate(grid models.LandGrid, tolerance float64) Result {
	if tolerance <= 0 {
		tolerance = DefaultDriftTolerance
	}

	result := Result{CompResults: make([]CompResult, 0, len(grid.Comps))}

	var sum float64
	for _, comp := range grid.Comps {
		adjusted := AdjustComp(comp, grid.AdjustmentRows)
		result.CompResults = append(result.CompResults, adjusted)
		sum += adjusted.AdjustedPricePerSF
	}

	if len(grid.Comps) > 0 {
		result.AvgAdjustedPricePerSF = sum / float64(len(grid.Comps))
	}
	result.RawIndicatedValue = result.AvgAdjustedPricePerSF * grid.SubjectLandSF

	result.RoundedValue = grid.RoundedValue
	if grid.RoundedValue != 0 && driftExceeds(result.RawIndicatedValue, grid.RoundedValue, tolerance) {
		result.RoundedValue = 0
		result.OverrideCleared = true
	}

	if result.RoundedValue != 0 {
		result.DisplayedValue = result.RoundedValue
	} else {
		result.DisplayedValue = result.RawIndicatedValue
	}

	return result
}

// RoundTo snaps a value to the nearest precision step. Non-positive
// precision leaves the value untouched.
func RoundTo(value, precision float64) float64 {
	if precision <= 0 {
		return value
	}
	return math.Round(value/precision) * precision
}

// driftExceeds reports whether the raw value moved more than tolerance
// relative to the accepted rounded value. A raw value of zero against
// a nonzero rounded value is treated as total drift.
func driftExceeds(raw, rounded, tolerance float64) bool {
	if raw == 0 {
		return rounded != 0
	}
	return math.Abs(raw-rounded)/math.Abs(raw) > tolerance
}
