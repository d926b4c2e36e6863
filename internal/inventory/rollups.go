package inventory

import "github.com/stwalsh4118/appraise/internal/models"

// SubjectTotals is the additive summary of an inventory tree. It is a
// read-only projection: always re-derived from the tree, never stored
// as authoritative.
type SubjectTotals struct {
	Parcels   int                `json:"parcels"`
	Buildings int                `json:"buildings"`
	SFTotal   float64            `json:"sfTotal"`
	SFByType  map[string]float64 `json:"sfByType"`
}

// Rollups wraps the subject totals for API responses.
type Rollups struct {
	SubjectTotals SubjectTotals `json:"subjectTotals"`
}

// ComputeRollups walks every area once, accumulating SF into a grand
// total and a per-use-type bucket. Custom areas bucket under their
// free-text label.
func ComputeRollups(inv models.Inventory) Rollups {
	totals := SubjectTotals{
		Parcels:  len(inv.Parcels),
		SFByType: make(map[string]float64),
	}

	for pi := range inv.Parcels {
		p := &inv.Parcels[pi]
		totals.Buildings += len(p.Buildings)
		for bi := range p.Buildings {
			b := &p.Buildings[bi]
			for ai := range b.Areas {
				a := &b.Areas[ai]
				totals.SFTotal += a.SF
				totals.SFByType[a.BucketKey()] += a.SF
			}
		}
	}

	return Rollups{SubjectTotals: totals}
}
