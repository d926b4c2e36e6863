package costapproach

import (
	"math"
	"strconv"

	"github.com/stwalsh4118/appraise/internal/models"
)

// SuggestEffectiveAge estimates a building's effective age as of a
// given year from its chronological age, condition, and remodel
// history. A remodel caps the age at the larger of years-since-remodel
// and 60% of actual age. The result is a suggestion for the override
// editor; it is never applied automatically.
func SuggestEffectiveAge(b *models.Building, asOfYear int) int {
	if b.YearBuilt == nil {
		return 10
	}

	actualAge := float64(asOfYear - *b.YearBuilt)

	if remodelYear, err := strconv.Atoi(b.YearRemodeled); err == nil {
		yearsSinceRemodel := float64(asOfYear - remodelYear)
		actualAge = math.Max(yearsSinceRemodel, actualAge*0.6)
	}

	return int(math.Round(actualAge * conditionMultiplier(b.Condition)))
}
