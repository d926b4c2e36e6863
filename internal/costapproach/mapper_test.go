package costapproach

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stwalsh4118/appraise/internal/models"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func testInventory() models.Inventory {
	return models.Inventory{
		Parcels: []models.Parcel{
			{
				ID:    "p1",
				Label: "Parcel 1",
				Buildings: []models.Building{
					{
						ID:               "b1",
						Label:            "Main Warehouse",
						YearBuilt:        intPtr(2005),
						ConstructionType: "metal",
						Areas: []models.Area{
							{ID: "a1", UseType: models.UseWarehouse, SF: 30000},
							{ID: "a2", UseType: models.UseOffice, SF: 4000, YearBuiltOverride: intPtr(1998)},
						},
					},
					{
						ID:        "b2",
						Label:     "Retail Pad",
						YearBuilt: intPtr(2015),
						Areas: []models.Area{
							{ID: "a3", UseType: models.UseRetail, SF: 6000},
						},
					},
				},
			},
		},
	}
}

func TestMapSelectedBuildingsDefaults(t *testing.T) {
	inv := testInventory()

	improvements := MapSelectedBuildings(inv, []string{"b1"}, nil)

	require.Len(t, improvements, 1)
	imp := improvements[0]
	assert.Equal(t, "b1", imp.ID)
	assert.Equal(t, "p1", imp.ParcelID)
	assert.Equal(t, 34000.0, imp.AreaSF)
	assert.Equal(t, "Warehouse", imp.Occupancy) // dominant area by SF
	assert.Equal(t, models.ClassMetal, imp.Class)
	assert.Equal(t, 40, imp.EconomicLife)
	require.NotNil(t, imp.YearBuilt)
	assert.Equal(t, 1998, *imp.YearBuilt) // earliest effective year wins

	// Cost figures default to zero, multipliers to 1.0.
	assert.Equal(t, 0.0, imp.BaseCostPSF)
	assert.Equal(t, 0.0, imp.EntrepreneurialIncentive)
	assert.Equal(t, Multipliers{Current: 1, Local: 1, Perimeter: 1}, imp.Multipliers)
	assert.False(t, imp.Modified)
}

func TestMapSelectedBuildingsMergePrecedence(t *testing.T) {
	inv := models.Inventory{
		Parcels: []models.Parcel{
			{ID: "p1", Buildings: []models.Building{
				{ID: "b1", Areas: []models.Area{{ID: "a1", UseType: models.UseOffice, SF: 1000}}},
			}},
		},
	}
	overrides := map[string]*models.CostOverrides{
		"b1": {BaseCostPSF: floatPtr(50)},
	}

	improvements := MapSelectedBuildings(inv, []string{"b1"}, overrides)

	require.Len(t, improvements, 1)
	imp := improvements[0]
	assert.Equal(t, 50.0, imp.BaseCostPSF)
	// Unrelated fields keep their derived defaults.
	assert.Equal(t, 1000.0, imp.AreaSF)
	assert.Equal(t, "Office", imp.Occupancy)
	assert.True(t, imp.Modified)
}

func TestMapSelectedBuildingsFullOverride(t *testing.T) {
	inv := testInventory()
	overrides := map[string]*models.CostOverrides{
		"b2": {
			BaseCostPSF:              floatPtr(135),
			Occupancy:                strPtr("Strip Center"),
			Quality:                  strPtr("good"),
			EffectiveAge:             intPtr(8),
			EconomicLife:             intPtr(45),
			EntrepreneurialIncentive: floatPtr(0.12),
			Multipliers: &models.MultiplierOverrides{
				LocalArea: floatPtr(1.05),
			},
			PhysicalDeterioration: floatPtr(0.18),
		},
	}

	improvements := MapSelectedBuildings(inv, []string{"b2"}, overrides)

	require.Len(t, improvements, 1)
	imp := improvements[0]
	assert.Equal(t, 135.0, imp.BaseCostPSF)
	assert.Equal(t, "Strip Center", imp.Occupancy)
	assert.Equal(t, "good", imp.Quality)
	assert.Equal(t, 8, imp.EffectiveAge)
	assert.Equal(t, 45, imp.EconomicLife)
	assert.Equal(t, 0.12, imp.EntrepreneurialIncentive)
	assert.Equal(t, 1.05, imp.Multipliers.Local)
	// Partial multiplier override leaves the others at 1.0.
	assert.Equal(t, 1.0, imp.Multipliers.Current)
	assert.Equal(t, 1.0, imp.Multipliers.Perimeter)
	assert.Equal(t, 0.18, imp.PhysicalDeterioration)
}

func TestMapSelectedBuildingsStaleSelection(t *testing.T) {
	inv := testInventory()

	// b9 was deleted from the inventory after being selected.
	improvements := MapSelectedBuildings(inv, []string{"b9", "b2"}, nil)

	require.Len(t, improvements, 1)
	assert.Equal(t, "b2", improvements[0].ID)
}

func TestMapSelectedBuildingsEmptyOverrideStillModified(t *testing.T) {
	inv := testInventory()
	overrides := map[string]*models.CostOverrides{"b1": {}}

	improvements := MapSelectedBuildings(inv, []string{"b1"}, overrides)

	require.Len(t, improvements, 1)
	assert.True(t, improvements[0].Modified)
}

func TestMapSelectedBuildingsExplicitResetNotModified(t *testing.T) {
	inv := testInventory()
	overrides := map[string]*models.CostOverrides{"b1": nil}

	improvements := MapSelectedBuildings(inv, []string{"b1"}, overrides)

	require.Len(t, improvements, 1)
	imp := improvements[0]
	assert.False(t, imp.Modified)
	assert.Equal(t, 0.0, imp.BaseCostPSF)
}

func TestMapSelectedBuildingsEmptySelection(t *testing.T) {
	improvements := MapSelectedBuildings(testInventory(), nil, nil)
	assert.Empty(t, improvements)
}

func TestDominantOccupancyCustomArea(t *testing.T) {
	building := models.Building{Areas: []models.Area{
		{UseType: models.UseCustom, UseTypeCustom: "Cold Storage", SF: 9000},
		{UseType: models.UseOffice, SF: 1000},
	}}

	assert.Equal(t, "Cold Storage", dominantOccupancy(&building))
}

func TestDominantOccupancyNoAreas(t *testing.T) {
	assert.Equal(t, "Industrial", dominantOccupancy(&models.Building{}))
}
