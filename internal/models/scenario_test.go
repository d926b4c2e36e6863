package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func float64Ptr(v float64) *float64 { return &v }

func TestBuildingCostDataIsModified(t *testing.T) {
	data := BuildingCostData{}
	data.Set(1, "b1", &CostOverrides{BaseCostPSF: float64Ptr(85)})
	data.Set(1, "b2", &CostOverrides{})
	data.Set(1, "b3", nil)

	tests := []struct {
		name       string
		scenarioID int
		buildingID string
		expected   bool
	}{
		{"populated overrides", 1, "b1", true},
		{"present but empty overrides still count", 1, "b2", true},
		{"explicit nil reset does not count", 1, "b3", false},
		{"absent building", 1, "b4", false},
		{"absent scenario", 2, "b1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, data.IsModified(tt.scenarioID, tt.buildingID))
		})
	}
}

func TestBuildingCostDataOverrides(t *testing.T) {
	data := BuildingCostData{}
	overrides := &CostOverrides{EffectiveAge: intPtr(12)}
	data.Set(3, "b1", overrides)

	t.Run("returns stored entry", func(t *testing.T) {
		assert.Same(t, overrides, data.Overrides(3, "b1"))
	})

	t.Run("nil for absent scenario", func(t *testing.T) {
		assert.Nil(t, data.Overrides(9, "b1"))
	})

	t.Run("nil for explicit reset", func(t *testing.T) {
		data.Set(3, "b1", nil)
		assert.Nil(t, data.Overrides(3, "b1"))
	})
}

func TestCostOverridesIsEmpty(t *testing.T) {
	t.Run("zero value is empty", func(t *testing.T) {
		assert.True(t, (&CostOverrides{}).IsEmpty())
	})

	t.Run("any field makes it non-empty", func(t *testing.T) {
		assert.False(t, (&CostOverrides{EconomicLife: intPtr(45)}).IsEmpty())
		assert.False(t, (&CostOverrides{Multipliers: &MultiplierOverrides{}}).IsEmpty())
	})
}

func TestScenarioIsolation(t *testing.T) {
	// Overrides written in one scenario must never bleed into another.
	data := BuildingCostData{}
	data.Set(1, "b1", &CostOverrides{BaseCostPSF: float64Ptr(120)})

	assert.True(t, data.IsModified(1, "b1"))
	assert.False(t, data.IsModified(2, "b1"))
	assert.Nil(t, data.Overrides(2, "b1"))
}
