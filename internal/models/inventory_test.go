package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestAreaBucketKey(t *testing.T) {
	tests := []struct {
		name     string
		area     Area
		expected string
	}{
		{
			name:     "standard use type",
			area:     Area{UseType: UseWarehouse},
			expected: "warehouse",
		},
		{
			name:     "custom use type with label",
			area:     Area{UseType: UseCustom, UseTypeCustom: "Cold Storage"},
			expected: "Cold Storage",
		},
		{
			name:     "custom use type without label falls back",
			area:     Area{UseType: UseCustom},
			expected: "custom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.area.BucketKey())
		})
	}
}

func TestAreaEffectiveYear(t *testing.T) {
	building := &Building{YearBuilt: intPtr(1995)}

	t.Run("override wins over building year", func(t *testing.T) {
		area := Area{YearBuiltOverride: intPtr(2010)}
		year := area.EffectiveYear(building)
		require.NotNil(t, year)
		assert.Equal(t, 2010, *year)
	})

	t.Run("falls back to building year", func(t *testing.T) {
		area := Area{}
		year := area.EffectiveYear(building)
		require.NotNil(t, year)
		assert.Equal(t, 1995, *year)
	})

	t.Run("nil when neither is known", func(t *testing.T) {
		area := Area{}
		assert.Nil(t, area.EffectiveYear(&Building{}))
	})
}

func TestBuildingTotalSF(t *testing.T) {
	t.Run("sums area square footage", func(t *testing.T) {
		building := Building{Areas: []Area{{SF: 8000}, {SF: 2000}}}
		assert.Equal(t, 10000.0, building.TotalSF())
	})

	t.Run("zero areas means zero SF", func(t *testing.T) {
		building := Building{}
		assert.Equal(t, 0.0, building.TotalSF())
	})
}

func TestInventoryFindBuilding(t *testing.T) {
	inv := Inventory{
		Parcels: []Parcel{
			{ID: "p1", Buildings: []Building{{ID: "b1"}}},
			{ID: "p2", Buildings: []Building{{ID: "b2"}, {ID: "b3"}}},
		},
	}

	t.Run("found", func(t *testing.T) {
		parcel, building := inv.FindBuilding("b3")
		require.NotNil(t, parcel)
		require.NotNil(t, building)
		assert.Equal(t, "p2", parcel.ID)
		assert.Equal(t, "b3", building.ID)
	})

	t.Run("not found", func(t *testing.T) {
		parcel, building := inv.FindBuilding("missing")
		assert.Nil(t, parcel)
		assert.Nil(t, building)
	})
}

func TestInventoryScanValue(t *testing.T) {
	// Arrange
	original := Inventory{
		SchemaVersion: CurrentSchemaVersion,
		Parcels: []Parcel{
			{
				ID:    "p1",
				Label: "Parcel 1",
				Buildings: []Building{
					{
						ID:        "b1",
						Label:     "Main Warehouse",
						YearBuilt: intPtr(1998),
						Areas: []Area{
							{ID: "a1", UseType: UseWarehouse, SF: 42000, SFType: SFTypeGBA},
						},
					},
				},
			},
		},
	}

	// Act
	value, err := original.Value()
	require.NoError(t, err)

	var decoded Inventory
	err = decoded.Scan(value)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestInventoryScanRejectsNonBytes(t *testing.T) {
	var inv Inventory
	err := inv.Scan("not bytes")
	assert.Error(t, err)
}

func TestUseTypeValid(t *testing.T) {
	assert.True(t, UseOffice.Valid())
	assert.True(t, UseCustom.Valid())
	assert.False(t, UseType("parking").Valid())
}

func TestConstructionClassValid(t *testing.T) {
	assert.True(t, ClassFireproof.Valid())
	assert.True(t, ClassMetal.Valid())
	assert.False(t, ConstructionClass("X").Valid())
}
