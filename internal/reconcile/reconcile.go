// Package reconcile combines the valuation pipelines into a single
// per-scenario conclusion, tracking an exact audit total alongside a
// user-pinnable reported value.
package reconcile

import (
	"github.com/stwalsh4118/appraise/internal/landvalue"
	"github.com/stwalsh4118/appraise/internal/models"
)

// Inputs are the per-scenario components of the exact total. The
// stabilization adjustment is an externally supplied soft-cost figure,
// nonzero only for stabilization-type scenarios.
type Inputs struct {
	LandValue               float64 `json:"landValue"`
	ImprovementsValue       float64 `json:"improvementsValue"`
	SiteImprovementsValue   float64 `json:"siteImprovementsValue"`
	StabilizationAdjustment float64 `json:"stabilizationAdjustment"`
}

// Reconciliation is the resolved conclusion for one scenario. The
// exact total is always computed and reported, even while the final
// value is pinned, so the two can be shown side by side.
type Reconciliation struct {
	Inputs     Inputs                 `json:"inputs"`
	ExactTotal float64                `json:"exactTotal"`
	FinalValue float64                `json:"finalValue"`
	State      models.FinalValueState `json:"state"`
}

// ExactTotal sums the scenario's value components.
func ExactTotal(in Inputs) float64 {
	return in.LandValue + in.ImprovementsValue + in.SiteImprovementsValue + in.StabilizationAdjustment
}

// Reconcile resolves the final value against the stored conclusion
// state. While synced the final value mirrors the exact total; once
// overridden it stays pinned no matter how far the exact total moves.
// Unlike the land grid there is no drift-based reset; only an explicit
// Release returns the conclusion to synced.
func Reconcile(in Inputs, c *models.Conclusion) Reconciliation {
	exact := ExactTotal(in)

	result := Reconciliation{
		Inputs:     in,
		ExactTotal: exact,
		FinalValue: exact,
		State:      models.FinalValueSynced,
	}

	if c != nil && c.State == models.FinalValueOverridden {
		result.FinalValue = c.Value
		result.State = models.FinalValueOverridden
	}

	return result
}

// Override pins the final value at an explicit figure.
func Override(value float64) models.Conclusion {
	return models.Conclusion{
		State: models.FinalValueOverridden,
		Value: value,
	}
}

// RoundExact pins the final value at the exact total snapped to the
// given precision. Rounding is an override like any other; it does not
// track later changes to the exact total.
func RoundExact(in Inputs, precision float64) models.Conclusion {
	return Override(landvalue.RoundTo(ExactTotal(in), precision))
}

// Release returns the conclusion to synced so the final value tracks
// the exact total again.
func Release() models.Conclusion {
	return models.Conclusion{State: models.FinalValueSynced}
}
