package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AppraisalDocument is everything the engine needs to value a property:
// the physical inventory plus the per-scenario valuation overlays. It
// is persisted as a single JSONB document.
type AppraisalDocument struct {
	Inventory          Inventory          `json:"inventory"`
	Scenarios          []Scenario         `json:"scenarios"`
	BuildingSelections BuildingSelections `json:"buildingSelections,omitempty"`
	BuildingCostData   BuildingCostData   `json:"buildingCostData,omitempty"`
	LandGrids          map[int]*LandGrid  `json:"landGrids,omitempty"`
	SiteImprovements   []SiteImprovement  `json:"siteImprovements,omitempty"`
	// StabilizationAdjustments carries the lump-sum adjustment applied
	// in stabilization-type scenarios, keyed by scenario id.
	StabilizationAdjustments map[int]float64     `json:"stabilizationAdjustments,omitempty"`
	Conclusions              map[int]*Conclusion `json:"conclusions,omitempty"`
}

// Scenario returns the scenario with the given id, or nil.
func (d *AppraisalDocument) Scenario(id int) *Scenario {
	for i := range d.Scenarios {
		if d.Scenarios[i].ID == id {
			return &d.Scenarios[i]
		}
	}
	return nil
}

// Scan implements sql.Scanner so an AppraisalDocument can be read from
// a JSONB column.
func (d *AppraisalDocument) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan AppraisalDocument: expected []byte, got %T", value)
	}

	if err := json.Unmarshal(bytes, d); err != nil {
		return fmt.Errorf("failed to unmarshal appraisal document: %w", err)
	}

	return nil
}

// Value implements driver.Valuer so an AppraisalDocument can be written
// to a JSONB column.
func (d AppraisalDocument) Value() (driver.Value, error) {
	payload, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal appraisal document: %w", err)
	}
	return payload, nil
}

// Appraisal is one persisted appraisal engagement.
type Appraisal struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Document  AppraisalDocument `json:"document"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}
