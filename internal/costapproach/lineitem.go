package costapproach

// LineItem is the computed cost approach result for one improvement.
type LineItem struct {
	Improvement Improvement `json:"improvement"`

	CombinedMultiplier float64 `json:"combinedMultiplier"`
	AdjustedRate       float64 `json:"adjustedRate"`
	BaseCostTotal      float64 `json:"baseCostTotal"`
	IncentiveAmount    float64 `json:"incentiveAmount"`
	CostNew            float64 `json:"costNew"`

	TotalDepreciationPct float64 `json:"totalDepreciationPct"`
	DepreciatedCost      float64 `json:"depreciatedCost"`

	RemainingEconomicLife int `json:"remainingEconomicLife"`
}

// CalculateLineItem runs the cost-new and depreciation math for one
// improvement. Multipliers compound in fixed order (current, local,
// perimeter); the entrepreneurial incentive is a fraction of the
// multiplied base; the three depreciation components add with no upper
// bound, so a depreciated cost below zero is possible and left to the
// caller to surface.
func CalculateLineItem(imp Improvement) LineItem {
	combined := imp.Multipliers.Current * imp.Multipliers.Local * imp.Multipliers.Perimeter
	adjustedRate := imp.BaseCostPSF * combined
	baseCostTotal := imp.AreaSF * adjustedRate
	incentiveAmount := baseCostTotal * imp.EntrepreneurialIncentive
	costNew := baseCostTotal + incentiveAmount

	totalDepPct := imp.PhysicalDeterioration + imp.FunctionalObsolescence + imp.ExternalObsolescence
	depreciatedCost := costNew * (1 - totalDepPct)

	remaining := imp.EconomicLife - imp.EffectiveAge
	if remaining < 0 {
		remaining = 0
	}

	return LineItem{
		Improvement:           imp,
		CombinedMultiplier:    combined,
		AdjustedRate:          adjustedRate,
		BaseCostTotal:         baseCostTotal,
		IncentiveAmount:       incentiveAmount,
		CostNew:               costNew,
		TotalDepreciationPct:  totalDepPct,
		DepreciatedCost:       depreciatedCost,
		RemainingEconomicLife: remaining,
	}
}

// CalculateLineItems maps every improvement through CalculateLineItem.
func CalculateLineItems(improvements []Improvement) []LineItem {
	items := make([]LineItem, 0, len(improvements))
	for _, imp := range improvements {
		items = append(items, CalculateLineItem(imp))
	}
	return items
}

// TotalDepreciatedCost sums the depreciated cost across line items.
func TotalDepreciatedCost(items []LineItem) float64 {
	var total float64
	for i := range items {
		total += items[i].DepreciatedCost
	}
	return total
}
