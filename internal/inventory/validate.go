package inventory

import (
	"fmt"

	"github.com/stwalsh4118/appraise/internal/models"
)

// Severity classifies a validation issue. Errors block finalize
// actions in the calling workflow; warnings are advisory only. The
// engine itself computes whatever it can regardless.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue codes.
const (
	CodeParcelNoBuildings  = "parcel_no_buildings"
	CodeBuildingNoAreas    = "building_no_areas"
	CodeAreaNonPositiveSF  = "area_non_positive_sf"
	CodeMissingTaxParcelID = "missing_tax_parcel_id"
	CodeMissingYearBuilt   = "missing_year_built"
)

// Issue is one structural problem found in an inventory tree.
type Issue struct {
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// ValidateOptions controls which structural rules apply.
type ValidateOptions struct {
	// RequireImprovements marks empty parcels as errors. Land-only
	// valuation templates set this false, in which case an empty
	// improvement tree is acceptable.
	RequireImprovements bool
}

// Validate inspects a normalized inventory and reports structural
// issues. It never fails; an empty slice means the tree is clean.
func Validate(inv models.Inventory, opts ValidateOptions) []Issue {
	issues := []Issue{}

	for pi := range inv.Parcels {
		p := &inv.Parcels[pi]
		label := p.Label
		if label == "" {
			label = p.ID
		}

		if opts.RequireImprovements && len(p.Buildings) == 0 {
			issues = append(issues, Issue{
				Code:     CodeParcelNoBuildings,
				Message:  fmt.Sprintf("parcel %q has no buildings", label),
				Severity: SeverityError,
			})
		}

		if p.TaxParcelID == "" {
			issues = append(issues, Issue{
				Code:     CodeMissingTaxParcelID,
				Message:  fmt.Sprintf("parcel %q has no tax parcel id", label),
				Severity: SeverityWarning,
			})
		}

		for bi := range p.Buildings {
			b := &p.Buildings[bi]
			bLabel := b.Label
			if bLabel == "" {
				bLabel = b.ID
			}

			if len(b.Areas) == 0 {
				issues = append(issues, Issue{
					Code:     CodeBuildingNoAreas,
					Message:  fmt.Sprintf("building %q has no areas", bLabel),
					Severity: SeverityError,
				})
			}

			if b.YearBuilt == nil {
				issues = append(issues, Issue{
					Code:     CodeMissingYearBuilt,
					Message:  fmt.Sprintf("building %q has no year built", bLabel),
					Severity: SeverityWarning,
				})
			}

			for ai := range b.Areas {
				if b.Areas[ai].SF <= 0 {
					issues = append(issues, Issue{
						Code:     CodeAreaNonPositiveSF,
						Message:  fmt.Sprintf("building %q area %d has non-positive square footage", bLabel, ai+1),
						Severity: SeverityError,
					})
				}
			}
		}
	}

	return issues
}

// HasErrors reports whether any issue carries error severity.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}
