// Package ratebook supplies suggested cost rates, multipliers, and
// depreciation reference data. The engine never calls it on its own;
// callers fetch suggestions here and feed accepted numbers into the
// override maps.
package ratebook

import (
	"context"
	"strings"

	"github.com/stwalsh4118/appraise/internal/models"
)

// CostRate is a suggested base cost for an occupancy/quality/class
// combination.
type CostRate struct {
	BaseCostPSF   float64 `json:"baseCostPsf"`
	MinCost       float64 `json:"minCost"`
	MaxCost       float64 `json:"maxCost"`
	EffectiveDate string  `json:"effectiveDate"`
	Source        string  `json:"source"`
}

// Multipliers are the suggested cost multipliers for a location.
type Multipliers struct {
	Current   float64 `json:"current"`
	Local     float64 `json:"local"`
	Perimeter float64 `json:"perimeter"`
}

// SiteCostRate is a suggested replacement cost for one site
// improvement type.
type SiteCostRate struct {
	CostPerUnit   float64 `json:"costPerUnit"`
	Unit          string  `json:"unit"`
	MinCost       float64 `json:"minCost"`
	MaxCost       float64 `json:"maxCost"`
	EffectiveDate string  `json:"effectiveDate"`
	Source        string  `json:"source"`
}

// RateSource is the pricing lookup boundary. The static implementation
// below answers from embedded tables; a networked implementation can
// replace it without touching the engine, which is why every method
// takes a context.
type RateSource interface {
	BaseCostPSF(ctx context.Context, occupancy, quality string, class models.ConstructionClass) (CostRate, error)
	LocationMultipliers(ctx context.Context, stateCode string) (Multipliers, error)
	SiteImprovementCost(ctx context.Context, typeID string) (SiteCostRate, error)
	SiteImprovementEconomicLife(typeID string) int
	DepreciationTable() []DepreciationRow
	SuggestPhysicalDepreciation(class models.ConstructionClass, effectiveAge int) float64
}

type staticSource struct {
	effectiveDate string
	source        string
}

// NewStaticSource creates a RateSource backed by the embedded cost
// tables.
func NewStaticSource() RateSource {
	return &staticSource{
		effectiveDate: "2024-01",
		source:        "embedded cost tables",
	}
}

func (s *staticSource) BaseCostPSF(_ context.Context, occupancy, quality string, _ models.ConstructionClass) (CostRate, error) {
	costs, ok := baseCosts[occupancy]
	if !ok {
		costs = baseCostRange{low: 100, avg: 150, high: 225}
	}

	multiplier, ok := qualityMultipliers[strings.ToLower(quality)]
	if !ok {
		multiplier = 1.0
	}

	return CostRate{
		BaseCostPSF:   costs.avg * multiplier,
		MinCost:       costs.low,
		MaxCost:       costs.high,
		EffectiveDate: s.effectiveDate,
		Source:        s.source,
	}, nil
}

func (s *staticSource) LocationMultipliers(_ context.Context, stateCode string) (Multipliers, error) {
	local, ok := stateLocalMultipliers[strings.ToUpper(stateCode)]
	if !ok {
		local = 1.0
	}

	return Multipliers{
		Current:   1.0,
		Local:     local,
		Perimeter: 1.0,
	}, nil
}

func (s *staticSource) SiteImprovementCost(_ context.Context, typeID string) (SiteCostRate, error) {
	entry, ok := siteImprovementCosts[typeID]
	if !ok {
		return SiteCostRate{
			Unit:          "EA",
			EffectiveDate: s.effectiveDate,
			Source:        s.source,
		}, nil
	}

	return SiteCostRate{
		CostPerUnit:   entry.cost,
		Unit:          entry.unit,
		MinCost:       entry.cost * 0.7,
		MaxCost:       entry.cost * 1.3,
		EffectiveDate: s.effectiveDate,
		Source:        s.source,
	}, nil
}

func (s *staticSource) SiteImprovementEconomicLife(typeID string) int {
	if life, ok := siteImprovementLives[typeID]; ok {
		return life
	}
	return 20
}

func (s *staticSource) DepreciationTable() []DepreciationRow {
	table := make([]DepreciationRow, len(depreciationTable))
	copy(table, depreciationTable)
	return table
}

// SuggestPhysicalDepreciation returns the age-life physical
// depreciation fraction for the table row whose age is numerically
// closest to the effective age. Ties keep the first row in ascending
// age order. The result is a suggestion only; nothing applies it
// automatically.
func (s *staticSource) SuggestPhysicalDepreciation(class models.ConstructionClass, effectiveAge int) float64 {
	if len(depreciationTable) == 0 {
		return 0
	}

	closest := depreciationTable[0]
	best := absInt(closest.Age - effectiveAge)
	for _, row := range depreciationTable[1:] {
		if d := absInt(row.Age - effectiveAge); d < best {
			best = d
			closest = row
		}
	}

	return closest.Percent(class)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
