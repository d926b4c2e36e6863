// Package costapproach derives replacement-cost line items from the
// inventory tree plus scenario overrides. All functions are pure; the
// inventory is never mutated.
package costapproach

import (
	"github.com/stwalsh4118/appraise/internal/models"
)

// Multipliers are the three cost multipliers applied in fixed order.
type Multipliers struct {
	Current   float64 `json:"current"`
	Local     float64 `json:"local"`
	Perimeter float64 `json:"perimeter"`
}

// Improvement is the flat, derived cost record for one (scenario,
// building) pair: inventory-derived defaults with any override fields
// merged on top. It is ephemeral and never written back anywhere.
type Improvement struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	ParcelID    string `json:"parcelId"`
	ParcelLabel string `json:"parcelLabel"`

	Occupancy string                   `json:"occupancy"`
	Class     models.ConstructionClass `json:"class"`
	Quality   string                   `json:"quality"`

	YearBuilt    *int    `json:"yearBuilt,omitempty"`
	EffectiveAge int     `json:"effectiveAge"`
	EconomicLife int     `json:"economicLife"`
	AreaSF       float64 `json:"areaSf"`

	BaseCostPSF              float64     `json:"baseCostPsf"`
	EntrepreneurialIncentive float64     `json:"entrepreneurialIncentive"`
	Multipliers              Multipliers `json:"multipliers"`

	PhysicalDeterioration  float64 `json:"physicalDeterioration"`
	FunctionalObsolescence float64 `json:"functionalObsolescence"`
	ExternalObsolescence   float64 `json:"externalObsolescence"`

	// Modified reports whether a live override entry exists for this
	// building in the scenario, even an empty one.
	Modified bool `json:"modified"`
}

var constructionTypeClass = map[string]models.ConstructionClass{
	"steel_frame":         models.ClassFireproof,
	"reinforced_concrete": models.ClassMasonrySteel,
	"masonry":             models.ClassMasonryWood,
	"tilt_up":             models.ClassMasonryWood,
	"wood_frame":          models.ClassFrame,
	"metal":               models.ClassMetal,
	"prefab_metal":        models.ClassMetal,
}

var economicLifeByClass = map[models.ConstructionClass]int{
	models.ClassFireproof:    55,
	models.ClassMasonrySteel: 50,
	models.ClassMasonryWood:  45,
	models.ClassFrame:        40,
	models.ClassMetal:        40,
}

// MapSelectedBuildings flattens the inventory's buildings in tree
// order, keeps those whose ids appear in the selection, and projects
// each into an Improvement. Selected ids with no matching building are
// skipped silently; a stale selection is an expected consequence of
// editing the inventory independently of scenario state.
func MapSelectedBuildings(inv models.Inventory, selectedIDs []string, overrides map[string]*models.CostOverrides) []Improvement {
	selected := make(map[string]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}

	improvements := []Improvement{}
	for pi := range inv.Parcels {
		p := &inv.Parcels[pi]
		for bi := range p.Buildings {
			b := &p.Buildings[bi]
			if !selected[b.ID] {
				continue
			}

			o, hasEntry := lookupOverrides(overrides, b.ID)
			imp := defaultImprovement(p, b)
			imp.Modified = hasEntry && o != nil
			mergeOverrides(&imp, o)
			improvements = append(improvements, imp)
		}
	}

	return improvements
}

func lookupOverrides(overrides map[string]*models.CostOverrides, buildingID string) (*models.CostOverrides, bool) {
	if overrides == nil {
		return nil, false
	}
	o, ok := overrides[buildingID]
	return o, ok
}

// defaultImprovement derives the pre-override cost record from
// physical facts alone. Cost figures default to zero and multipliers
// to 1.0; suggested rates come from the rate book and are applied by
// the caller as overrides, never silently.
func defaultImprovement(p *models.Parcel, b *models.Building) Improvement {
	class := models.ClassMasonryWood
	if mapped, ok := constructionTypeClass[b.ConstructionType]; ok {
		class = mapped
	}

	life := 45
	if mapped, ok := economicLifeByClass[class]; ok {
		life = mapped
	}

	quality := b.Quality
	if quality == "" {
		quality = "average"
	}

	return Improvement{
		ID:           b.ID,
		Label:        b.Label,
		ParcelID:     p.ID,
		ParcelLabel:  p.Label,
		Occupancy:    dominantOccupancy(b),
		Class:        class,
		Quality:      quality,
		YearBuilt:    earliestEffectiveYear(b),
		EconomicLife: life,
		AreaSF:       b.TotalSF(),
		Multipliers:  Multipliers{Current: 1.0, Local: 1.0, Perimeter: 1.0},
	}
}

// dominantOccupancy labels the building by its largest area's use.
// The first area wins ties, matching tree order.
func dominantOccupancy(b *models.Building) string {
	if len(b.Areas) == 0 {
		return "Industrial"
	}

	dominant := &b.Areas[0]
	for i := 1; i < len(b.Areas); i++ {
		if b.Areas[i].SF > dominant.SF {
			dominant = &b.Areas[i]
		}
	}

	switch dominant.UseType {
	case models.UseOffice:
		return "Office"
	case models.UseWarehouse:
		return "Warehouse"
	case models.UseRetail:
		return "Retail Store"
	case models.UseApartment:
		return "Apartment"
	case models.UseIndustrial:
		return "Industrial"
	case models.UseFlex:
		return "Industrial (Light)"
	case models.UseSFR:
		return "Single-Family Residence"
	case models.UseCustom:
		if dominant.UseTypeCustom != "" {
			return dominant.UseTypeCustom
		}
		return "Industrial"
	default:
		return "Industrial"
	}
}

// earliestEffectiveYear picks the oldest effective year across the
// building's areas, falling back to the building's own year.
func earliestEffectiveYear(b *models.Building) *int {
	var earliest *int
	for i := range b.Areas {
		year := b.Areas[i].EffectiveYear(b)
		if year == nil {
			continue
		}
		if earliest == nil || *year < *earliest {
			earliest = year
		}
	}
	if earliest == nil {
		return b.YearBuilt
	}
	return earliest
}

// mergeOverrides applies override fields on top of defaults,
// field by field. Unset fields fall through.
func mergeOverrides(imp *Improvement, o *models.CostOverrides) {
	if o == nil {
		return
	}

	if o.BaseCostPSF != nil {
		imp.BaseCostPSF = *o.BaseCostPSF
	}
	if o.Occupancy != nil {
		imp.Occupancy = *o.Occupancy
	}
	if o.Class != nil {
		imp.Class = *o.Class
	}
	if o.Quality != nil {
		imp.Quality = *o.Quality
	}
	if o.EffectiveAge != nil {
		imp.EffectiveAge = *o.EffectiveAge
	}
	if o.EconomicLife != nil {
		imp.EconomicLife = *o.EconomicLife
	}
	if o.EntrepreneurialIncentive != nil {
		imp.EntrepreneurialIncentive = *o.EntrepreneurialIncentive
	}
	if o.Multipliers != nil {
		if o.Multipliers.CurrentCost != nil {
			imp.Multipliers.Current = *o.Multipliers.CurrentCost
		}
		if o.Multipliers.LocalArea != nil {
			imp.Multipliers.Local = *o.Multipliers.LocalArea
		}
		if o.Multipliers.Perimeter != nil {
			imp.Multipliers.Perimeter = *o.Multipliers.Perimeter
		}
	}
	if o.PhysicalDeterioration != nil {
		imp.PhysicalDeterioration = *o.PhysicalDeterioration
	}
	if o.FunctionalObsolescence != nil {
		imp.FunctionalObsolescence = *o.FunctionalObsolescence
	}
	if o.ExternalObsolescence != nil {
		imp.ExternalObsolescence = *o.ExternalObsolescence
	}
}
