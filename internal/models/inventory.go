package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// CurrentSchemaVersion is the schema version written by this engine.
// Older saved trees are detected by an external migration step before
// they are handed to the engine; the engine itself never upgrades them.
const CurrentSchemaVersion = 2

// UseType classifies what an improvement area is used for.
// It is a closed set; UseCustom carries its free-text label in the
// owning Area's UseTypeCustom field.
type UseType string

const (
	UseOffice     UseType = "office"
	UseWarehouse  UseType = "warehouse"
	UseRetail     UseType = "retail"
	UseApartment  UseType = "apartment"
	UseIndustrial UseType = "industrial"
	UseFlex       UseType = "flex"
	UseSFR        UseType = "sfr"
	UseCustom     UseType = "custom"
)

// Valid reports whether u is one of the known use types.
func (u UseType) Valid() bool {
	switch u {
	case UseOffice, UseWarehouse, UseRetail, UseApartment, UseIndustrial, UseFlex, UseSFR, UseCustom:
		return true
	}
	return false
}

// SFType describes how an area's square footage was measured.
type SFType string

const (
	SFTypeGBA   SFType = "GBA"
	SFTypeNRA   SFType = "NRA"
	SFTypeOther SFType = "Other"
)

// Valid reports whether s is one of the known square-footage types.
func (s SFType) Valid() bool {
	switch s {
	case SFTypeGBA, SFTypeNRA, SFTypeOther:
		return true
	}
	return false
}

// ConstructionClass is the M&S-style construction class used to key
// depreciation and cost tables.
type ConstructionClass string

const (
	ClassFireproof    ConstructionClass = "A" // fireproof steel
	ClassMasonrySteel ConstructionClass = "B" // reinforced concrete / masonry-steel
	ClassMasonryWood  ConstructionClass = "C" // masonry bearing walls
	ClassFrame        ConstructionClass = "D" // wood frame
	ClassMetal        ConstructionClass = "S" // pre-engineered metal
)

// Valid reports whether c is one of the known construction classes.
func (c ConstructionClass) Valid() bool {
	switch c {
	case ClassFireproof, ClassMasonrySteel, ClassMasonryWood, ClassFrame, ClassMetal:
		return true
	}
	return false
}

// Area is the only level of the inventory tree that carries square
// footage and use classification. YearBuiltOverride, when set, replaces
// the owning Building's year for this area only.
type Area struct {
	ID                string  `json:"id"`
	UseType           UseType `json:"useType"`
	UseTypeCustom     string  `json:"useTypeCustom,omitempty"`
	SF                float64 `json:"sf"`
	SFType            SFType  `json:"sfType"`
	SFTypeCustom      string  `json:"sfTypeCustom,omitempty"`
	YearBuiltOverride *int    `json:"yearBuiltOverride,omitempty"`
	Notes             string  `json:"notes,omitempty"`
}

// BucketKey returns the rollup bucket this area's SF accumulates into:
// the use type, or the free-text label for custom areas.
func (a *Area) BucketKey() string {
	if a.UseType == UseCustom && a.UseTypeCustom != "" {
		return a.UseTypeCustom
	}
	return string(a.UseType)
}

// EffectiveYear returns the year used for age calculations on this
// area: the area-level override when present, else the building's year.
// Returns nil when neither is known.
func (a *Area) EffectiveYear(b *Building) *int {
	if a.YearBuiltOverride != nil {
		return a.YearBuiltOverride
	}
	return b.YearBuilt
}

// Building is a structure on a Parcel. It carries no square footage of
// its own; SF is always derived from its Areas.
type Building struct {
	ID               string `json:"id"`
	Label            string `json:"label"`
	YearBuilt        *int   `json:"yearBuilt"`
	YearRemodeled    string `json:"yearRemodeled,omitempty"`
	AddressOverride  string `json:"addressOverride,omitempty"`
	ConstructionType string `json:"constructionType,omitempty"`
	Quality          string `json:"quality,omitempty"`
	Condition        string `json:"condition,omitempty"`
	Notes            string `json:"notes,omitempty"`
	Areas            []Area `json:"areas"`
}

// TotalSF sums the square footage of the building's areas. A building
// with zero areas has zero derived SF.
func (b *Building) TotalSF() float64 {
	var total float64
	for i := range b.Areas {
		total += b.Areas[i].SF
	}
	return total
}

// Parcel is a taxable land unit owning zero or more Buildings.
type Parcel struct {
	ID               string     `json:"id"`
	Label            string     `json:"label"`
	TaxParcelID      string     `json:"taxParcelId,omitempty"`
	Address          string     `json:"address,omitempty"`
	LegalDescription string     `json:"legalDescription,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	Buildings        []Building `json:"buildings"`
}

// Inventory is the canonical Parcel -> Building -> Area tree. It is the
// single source of truth for physical facts; valuation assumptions live
// in scenario-scoped overlays and never leak back into it.
type Inventory struct {
	SchemaVersion int      `json:"schemaVersion"`
	Parcels       []Parcel `json:"parcels"`
}

// FindBuilding returns the building with the given id along with its
// owning parcel, or nil when no such building exists.
func (inv *Inventory) FindBuilding(id string) (*Parcel, *Building) {
	for pi := range inv.Parcels {
		p := &inv.Parcels[pi]
		for bi := range p.Buildings {
			if p.Buildings[bi].ID == id {
				return p, &p.Buildings[bi]
			}
		}
	}
	return nil, nil
}

// Scan implements sql.Scanner so an Inventory can be read from a JSONB
// column.
func (inv *Inventory) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan Inventory: expected []byte, got %T", value)
	}

	if err := json.Unmarshal(bytes, inv); err != nil {
		return fmt.Errorf("failed to unmarshal inventory: %w", err)
	}

	return nil
}

// Value implements driver.Valuer so an Inventory can be written to a
// JSONB column.
func (inv Inventory) Value() (driver.Value, error) {
	payload, err := json.Marshal(inv)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal inventory: %w", err)
	}
	return payload, nil
}
