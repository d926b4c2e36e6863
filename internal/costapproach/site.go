package costapproach

import (
	"math"

	"github.com/stwalsh4118/appraise/internal/models"
)

// defaultSiteEconomicLife applies when an item carries no life of its
// own and the caller supplied none from the rate book.
const defaultSiteEconomicLife = 20

// SiteLineItem is the computed result for one site improvement.
type SiteLineItem struct {
	Item            models.SiteImprovement `json:"item"`
	RCN             float64                `json:"rcn"`
	DepreciationPct float64                `json:"depreciationPct"`
	Depreciation    float64                `json:"depreciation"`
	Contributory    float64                `json:"contributoryValue"`
}

// CalculateSiteItem values one site improvement by replacement cost
// new less a single age-life depreciation rate. When the item carries
// no explicit rate, one is derived from its installation year and
// condition as of the given year.
func CalculateSiteItem(item models.SiteImprovement, asOfYear int) SiteLineItem {
	rcn := item.CostPerUnit * item.Quantity

	pct := siteDepreciationPct(item, asOfYear)
	depreciation := rcn * pct

	return SiteLineItem{
		Item:            item,
		RCN:             rcn,
		DepreciationPct: pct,
		Depreciation:    depreciation,
		Contributory:    rcn - depreciation,
	}
}

// CalculateSiteItems values every item. A nil or empty list is valid
// and yields an empty result.
func CalculateSiteItems(items []models.SiteImprovement, asOfYear int) []SiteLineItem {
	results := make([]SiteLineItem, 0, len(items))
	for _, item := range items {
		results = append(results, CalculateSiteItem(item, asOfYear))
	}
	return results
}

// TotalSiteImprovementsValue sums contributory value across items,
// returning 0 for an empty or missing list.
func TotalSiteImprovementsValue(items []models.SiteImprovement, asOfYear int) float64 {
	var total float64
	for _, item := range items {
		total += CalculateSiteItem(item, asOfYear).Contributory
	}
	return total
}

func siteDepreciationPct(item models.SiteImprovement, asOfYear int) float64 {
	if item.DepreciationPct != nil {
		return *item.DepreciationPct
	}
	if item.YearInstalled == nil {
		return 0
	}

	life := defaultSiteEconomicLife
	if item.EconomicLife != nil && *item.EconomicLife > 0 {
		life = *item.EconomicLife
	}

	age := float64(asOfYear-*item.YearInstalled) * conditionMultiplier(item.Condition)
	if age <= 0 {
		return 0
	}

	return math.Min(1, age/float64(life))
}

// conditionMultiplier scales chronological age into effective age.
func conditionMultiplier(condition string) float64 {
	switch condition {
	case "excellent":
		return 0.6
	case "good":
		return 0.8
	case "fair":
		return 1.2
	case "poor":
		return 1.5
	default:
		return 1.0
	}
}
