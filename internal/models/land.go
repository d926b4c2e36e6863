package models

// LandComp is one comparable land sale in the sales-comparison grid.
// Adjustments are signed decimal fractions keyed by adjustment row key
// (+0.10 means the subject is 10% superior to the comp).
type LandComp struct {
	ID          string             `json:"id"`
	Address     string             `json:"address,omitempty"`
	SaleDate    string             `json:"saleDate,omitempty"`
	SalePrice   float64            `json:"salePrice"`
	LandSF      float64            `json:"landSf"`
	Adjustments map[string]float64 `json:"adjustments,omitempty"`
	Notes       string             `json:"notes,omitempty"`
}

// AdjustmentRow is one row of the land grid (location, size, zoning,
// market conditions, ...). Inactive rows keep their entered values but
// are excluded from every calculation.
type AdjustmentRow struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// LandGrid is the full sales-comparison land valuation input for one
// scenario: the subject's size, the comps, and which adjustment rows
// participate.
type LandGrid struct {
	SubjectLandSF  float64         `json:"subjectLandSf"`
	Comps          []LandComp      `json:"comps"`
	AdjustmentRows []AdjustmentRow `json:"adjustmentRows"`
	// RoundedValue is the persisted user-facing concluded land value.
	// Zero means "never concluded"; the engine re-derives it from the
	// comps when drift exceeds tolerance.
	RoundedValue float64 `json:"roundedValue,omitempty"`
}

// SiteImprovement is one yard item (paving, fencing, lighting, ...)
// valued by replacement cost new less depreciation.
type SiteImprovement struct {
	ID            string  `json:"id"`
	Description   string  `json:"description"`
	Quantity      float64 `json:"quantity"`
	Unit          string  `json:"unit,omitempty"`
	CostPerUnit   float64 `json:"costPerUnit"`
	YearInstalled *int    `json:"yearInstalled,omitempty"`
	Condition     string  `json:"condition,omitempty"`
	EconomicLife  *int    `json:"economicLife,omitempty"`
	// DepreciationPct is a decimal fraction. When nil the engine
	// derives it age-life style from YearInstalled and Condition.
	DepreciationPct *float64 `json:"depreciationPct,omitempty"`
	Notes           string   `json:"notes,omitempty"`
}

// FinalValueState tracks whether a scenario's concluded value follows
// the engine or has been pinned by the appraiser.
type FinalValueState string

const (
	// FinalValueSynced means the concluded value tracks the computed
	// total automatically.
	FinalValueSynced FinalValueState = "synced"
	// FinalValueOverridden means the appraiser pinned a value; it no
	// longer follows computed changes until explicitly released.
	FinalValueOverridden FinalValueState = "overridden"
)

// Conclusion is the persisted reconciliation state for one scenario.
type Conclusion struct {
	State FinalValueState `json:"state"`
	// Value is meaningful only when State is FinalValueOverridden.
	Value float64 `json:"value,omitempty"`
}
