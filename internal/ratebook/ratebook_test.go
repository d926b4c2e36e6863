package ratebook

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stwalsh4118/appraise/internal/models"
)

func TestBaseCostPSF(t *testing.T) {
	source := NewStaticSource()

	t.Run("known occupancy with quality multiplier", func(t *testing.T) {
		rate, err := source.BaseCostPSF(context.Background(), "warehouse-general", "good", models.ClassMetal)
		require.NoError(t, err)
		assert.InDelta(t, 80*1.15, rate.BaseCostPSF, 1e-9)
		assert.Equal(t, 55.0, rate.MinCost)
		assert.Equal(t, 125.0, rate.MaxCost)
	})

	t.Run("unknown occupancy falls back to generic range", func(t *testing.T) {
		rate, err := source.BaseCostPSF(context.Background(), "spaceport", "average", models.ClassFireproof)
		require.NoError(t, err)
		assert.Equal(t, 150.0, rate.BaseCostPSF)
	})

	t.Run("unknown quality treated as average", func(t *testing.T) {
		rate, err := source.BaseCostPSF(context.Background(), "warehouse-general", "bespoke", models.ClassMetal)
		require.NoError(t, err)
		assert.Equal(t, 80.0, rate.BaseCostPSF)
	})
}

func TestLocationMultipliers(t *testing.T) {
	source := NewStaticSource()

	t.Run("known state", func(t *testing.T) {
		m, err := source.LocationMultipliers(context.Background(), "ca")
		require.NoError(t, err)
		assert.Equal(t, 1.18, m.Local)
		assert.Equal(t, 1.0, m.Current)
		assert.Equal(t, 1.0, m.Perimeter)
	})

	t.Run("unknown state defaults to 1.0", func(t *testing.T) {
		m, err := source.LocationMultipliers(context.Background(), "ZZ")
		require.NoError(t, err)
		assert.Equal(t, 1.0, m.Local)
	})
}

func TestSuggestPhysicalDepreciation(t *testing.T) {
	source := NewStaticSource()

	tests := []struct {
		name     string
		class    models.ConstructionClass
		age      int
		expected float64
	}{
		{"exact row class C", models.ClassMasonryWood, 10, 0.15},
		{"exact row class D", models.ClassFrame, 30, 0.40},
		{"exact row class A", models.ClassFireproof, 20, 0.15},
		{"closest row below", models.ClassMasonryWood, 11, 0.15},
		{"closest row above", models.ClassMasonryWood, 14, 0.20},
		{"past table end clamps to oldest row", models.ClassMetal, 200, 0.80},
		{"zero age picks youngest row", models.ClassMasonrySteel, 0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, source.SuggestPhysicalDepreciation(tt.class, tt.age), 1e-9)
		})
	}
}

func TestSuggestPhysicalDepreciationTieBreak(t *testing.T) {
	// Age 9 sits exactly between rows 8 and 10; the first row in
	// ascending order wins.
	source := NewStaticSource()
	assert.InDelta(t, 0.10, source.SuggestPhysicalDepreciation(models.ClassMasonryWood, 9), 1e-9)
}

func TestDepreciationTableIsACopy(t *testing.T) {
	source := NewStaticSource()

	table := source.DepreciationTable()
	require.NotEmpty(t, table)
	table[0].Frame = 99

	assert.NotEqual(t, 99.0, source.DepreciationTable()[0].Frame)
}

func TestSiteImprovementCost(t *testing.T) {
	source := NewStaticSource()

	t.Run("known type", func(t *testing.T) {
		rate, err := source.SiteImprovementCost(context.Background(), "asphalt-paving")
		require.NoError(t, err)
		assert.Equal(t, 4.50, rate.CostPerUnit)
		assert.Equal(t, "SF", rate.Unit)
		assert.InDelta(t, 4.50*0.7, rate.MinCost, 1e-9)
		assert.InDelta(t, 4.50*1.3, rate.MaxCost, 1e-9)
	})

	t.Run("unknown type yields zero cost", func(t *testing.T) {
		rate, err := source.SiteImprovementCost(context.Background(), "moat")
		require.NoError(t, err)
		assert.Equal(t, 0.0, rate.CostPerUnit)
		assert.Equal(t, "EA", rate.Unit)
	})
}

func TestSiteImprovementEconomicLife(t *testing.T) {
	source := NewStaticSource()

	assert.Equal(t, 30, source.SiteImprovementEconomicLife("concrete-paving"))
	assert.Equal(t, 20, source.SiteImprovementEconomicLife("moat"))
}
