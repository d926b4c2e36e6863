package models

// Scenario identifies one valuation hypothesis (as-is, as-stabilized,
// prospective, ...). Scenario state never mutates the inventory tree;
// it lives entirely in the overlay maps below.
type Scenario struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	EffectiveDate string `json:"effectiveDate,omitempty"`
	Required      bool   `json:"required,omitempty"`
}

// MultiplierOverrides holds per-building cost multiplier overrides.
// A nil field means "use the default of 1.0".
type MultiplierOverrides struct {
	CurrentCost *float64 `json:"currentCost,omitempty"`
	LocalArea   *float64 `json:"localArea,omitempty"`
	Perimeter   *float64 `json:"perimeter,omitempty"`
}

// CostOverrides is the sparse per-building, per-scenario overlay
// applied on top of the derived cost defaults. Every field is a
// pointer: nil means "not overridden", which is distinct from an
// explicit zero.
type CostOverrides struct {
	BaseCostPSF              *float64             `json:"baseCostPsf,omitempty"`
	Occupancy                *string              `json:"occupancy,omitempty"`
	Class                    *ConstructionClass   `json:"class,omitempty"`
	Quality                  *string              `json:"quality,omitempty"`
	EffectiveAge             *int                 `json:"effectiveAge,omitempty"`
	EconomicLife             *int                 `json:"economicLife,omitempty"`
	EntrepreneurialIncentive *float64             `json:"entrepreneurialIncentive,omitempty"`
	Multipliers              *MultiplierOverrides `json:"multipliers,omitempty"`
	PhysicalDeterioration    *float64             `json:"physicalDeterioration,omitempty"`
	FunctionalObsolescence   *float64             `json:"functionalObsolescence,omitempty"`
	ExternalObsolescence     *float64             `json:"externalObsolescence,omitempty"`
}

// IsEmpty reports whether no field of the override set is populated.
func (o *CostOverrides) IsEmpty() bool {
	return o.BaseCostPSF == nil &&
		o.Occupancy == nil &&
		o.Class == nil &&
		o.Quality == nil &&
		o.EffectiveAge == nil &&
		o.EconomicLife == nil &&
		o.EntrepreneurialIncentive == nil &&
		o.Multipliers == nil &&
		o.PhysicalDeterioration == nil &&
		o.FunctionalObsolescence == nil &&
		o.ExternalObsolescence == nil
}

// BuildingSelections maps scenario id to the ordered list of building
// ids included in that scenario's cost approach. A missing scenario key
// means "no explicit selection yet"; callers usually fall back to all
// buildings in tree order.
type BuildingSelections map[int][]string

// BuildingCostData maps scenario id to per-building overrides. A nil
// entry for a building id is an explicit reset back to defaults and is
// distinct from the key being absent.
type BuildingCostData map[int]map[string]*CostOverrides

// Overrides returns the override set for a building in a scenario, or
// nil when none is stored (or an explicit reset is stored).
func (d BuildingCostData) Overrides(scenarioID int, buildingID string) *CostOverrides {
	perBuilding, ok := d[scenarioID]
	if !ok {
		return nil
	}
	return perBuilding[buildingID]
}

// IsModified reports whether a building carries a live override entry
// in a scenario. An explicit nil entry (reset) is not a modification.
func (d BuildingCostData) IsModified(scenarioID int, buildingID string) bool {
	perBuilding, ok := d[scenarioID]
	if !ok {
		return false
	}
	o, ok := perBuilding[buildingID]
	return ok && o != nil
}

// Set stores an override entry, allocating the scenario map on first
// use. Passing a nil override records an explicit reset.
func (d BuildingCostData) Set(scenarioID int, buildingID string, o *CostOverrides) {
	perBuilding, ok := d[scenarioID]
	if !ok {
		perBuilding = make(map[string]*CostOverrides)
		d[scenarioID] = perBuilding
	}
	perBuilding[buildingID] = o
}
