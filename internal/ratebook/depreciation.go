package ratebook

import "github.com/stwalsh4118/appraise/internal/models"

// DepreciationRow is one age row of the physical depreciation
// reference table. Column values are whole percentages.
type DepreciationRow struct {
	Age          int     `json:"age"`
	Frame        float64 `json:"frame"`        // class D
	MasonryWood  float64 `json:"masonryWood"`  // class C
	MasonrySteel float64 `json:"masonrySteel"` // class B
	Fireproof    float64 `json:"fireproof"`    // class A
	Metal        float64 `json:"metal"`        // class S
}

// Percent returns the row's depreciation for a construction class as a
// decimal fraction. Unknown classes read the masonry-wood column.
func (r DepreciationRow) Percent(class models.ConstructionClass) float64 {
	switch class {
	case models.ClassFireproof:
		return r.Fireproof / 100
	case models.ClassMasonrySteel:
		return r.MasonrySteel / 100
	case models.ClassMasonryWood:
		return r.MasonryWood / 100
	case models.ClassFrame:
		return r.Frame / 100
	case models.ClassMetal:
		return r.Metal / 100
	default:
		return r.MasonryWood / 100
	}
}

var depreciationTable = []DepreciationRow{
	{Age: 1, Frame: 1, MasonryWood: 0, MasonrySteel: 0, Fireproof: 0, Metal: 1},
	{Age: 2, Frame: 2, MasonryWood: 1, MasonrySteel: 0, Fireproof: 0, Metal: 2},
	{Age: 3, Frame: 3, MasonryWood: 2, MasonrySteel: 1, Fireproof: 0, Metal: 3},
	{Age: 4, Frame: 4, MasonryWood: 3, MasonrySteel: 2, Fireproof: 1, Metal: 4},
	{Age: 5, Frame: 6, MasonryWood: 5, MasonrySteel: 3, Fireproof: 2, Metal: 5},
	{Age: 8, Frame: 12, MasonryWood: 10, MasonrySteel: 5, Fireproof: 4, Metal: 10},
	{Age: 10, Frame: 20, MasonryWood: 15, MasonrySteel: 8, Fireproof: 5, Metal: 15},
	{Age: 15, Frame: 25, MasonryWood: 20, MasonrySteel: 15, Fireproof: 10, Metal: 20},
	{Age: 20, Frame: 30, MasonryWood: 25, MasonrySteel: 20, Fireproof: 15, Metal: 25},
	{Age: 25, Frame: 35, MasonryWood: 30, MasonrySteel: 25, Fireproof: 20, Metal: 30},
	{Age: 30, Frame: 40, MasonryWood: 35, MasonrySteel: 30, Fireproof: 25, Metal: 35},
	{Age: 35, Frame: 45, MasonryWood: 40, MasonrySteel: 35, Fireproof: 30, Metal: 40},
	{Age: 40, Frame: 50, MasonryWood: 45, MasonrySteel: 40, Fireproof: 35, Metal: 45},
	{Age: 45, Frame: 55, MasonryWood: 50, MasonrySteel: 45, Fireproof: 40, Metal: 50},
	{Age: 50, Frame: 60, MasonryWood: 55, MasonrySteel: 50, Fireproof: 45, Metal: 55},
	{Age: 55, Frame: 65, MasonryWood: 60, MasonrySteel: 55, Fireproof: 50, Metal: 60},
	{Age: 60, Frame: 70, MasonryWood: 65, MasonrySteel: 60, Fireproof: 55, Metal: 65},
	{Age: 70, Frame: 80, MasonryWood: 75, MasonrySteel: 70, Fireproof: 65, Metal: 75},
	{Age: 80, Frame: 85, MasonryWood: 80, MasonrySteel: 75, Fireproof: 70, Metal: 80},
}
