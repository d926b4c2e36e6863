// Package inventory normalizes, validates, and aggregates the
// Parcel -> Building -> Area tree. Every operation is a pure function
// of its input; nothing here mutates or persists state.
package inventory

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/stwalsh4118/appraise/internal/models"
)

// Normalize turns an untrusted raw tree into a well-formed Inventory.
// It never fails: malformed nodes are dropped, missing arrays become
// empty arrays, numeric fields written as strings or null coerce to
// numbers, and missing or duplicate ids are re-minted. Normalizing an
// already-normalized tree is a no-op.
func Normalize(raw json.RawMessage) models.Inventory {
	inv := models.Inventory{
		SchemaVersion: models.CurrentSchemaVersion,
		Parcels:       []models.Parcel{},
	}

	var root map[string]interface{}
	if err := json.Unmarshal(raw, &root); err != nil {
		return inv
	}

	if v, ok := asInt(root["schemaVersion"]); ok && v > 0 {
		inv.SchemaVersion = v
	}

	seen := make(map[string]bool)
	for _, node := range asSlice(root["parcels"]) {
		p, ok := normalizeParcel(node, seen)
		if !ok {
			continue
		}
		inv.Parcels = append(inv.Parcels, p)
	}

	return inv
}

// NormalizeTree repairs a tree that already decoded into typed models:
// nil slices become empty, and missing or duplicate ids are minted.
// Field values are trusted as-is.
func NormalizeTree(inv models.Inventory) models.Inventory {
	if inv.SchemaVersion <= 0 {
		inv.SchemaVersion = models.CurrentSchemaVersion
	}
	if inv.Parcels == nil {
		inv.Parcels = []models.Parcel{}
	}

	seen := make(map[string]bool)
	for pi := range inv.Parcels {
		p := &inv.Parcels[pi]
		p.ID = mintID(p.ID, seen)
		if p.Buildings == nil {
			p.Buildings = []models.Building{}
		}
		for bi := range p.Buildings {
			b := &p.Buildings[bi]
			b.ID = mintID(b.ID, seen)
			if b.Areas == nil {
				b.Areas = []models.Area{}
			}
			for ai := range b.Areas {
				b.Areas[ai].ID = mintID(b.Areas[ai].ID, seen)
			}
		}
	}

	return inv
}

func normalizeParcel(node interface{}, seen map[string]bool) (models.Parcel, bool) {
	m, ok := node.(map[string]interface{})
	if !ok {
		return models.Parcel{}, false
	}

	p := models.Parcel{
		ID:               mintID(asString(m["id"]), seen),
		Label:            asString(m["label"]),
		TaxParcelID:      asString(m["taxParcelId"]),
		Address:          asString(m["address"]),
		LegalDescription: asString(m["legalDescription"]),
		Notes:            asString(m["notes"]),
		Buildings:        []models.Building{},
	}

	for _, child := range asSlice(m["buildings"]) {
		b, ok := normalizeBuilding(child, seen)
		if !ok {
			continue
		}
		p.Buildings = append(p.Buildings, b)
	}

	return p, true
}

func normalizeBuilding(node interface{}, seen map[string]bool) (models.Building, bool) {
	m, ok := node.(map[string]interface{})
	if !ok {
		return models.Building{}, false
	}

	b := models.Building{
		ID:               mintID(asString(m["id"]), seen),
		Label:            asString(m["label"]),
		YearRemodeled:    asString(m["yearRemodeled"]),
		AddressOverride:  asString(m["addressOverride"]),
		ConstructionType: asString(m["constructionType"]),
		Quality:          asString(m["quality"]),
		Condition:        asString(m["condition"]),
		Notes:            asString(m["notes"]),
		Areas:            []models.Area{},
	}

	if year, ok := asInt(m["yearBuilt"]); ok {
		b.YearBuilt = &year
	}

	for _, child := range asSlice(m["areas"]) {
		a, ok := normalizeArea(child, seen)
		if !ok {
			continue
		}
		b.Areas = append(b.Areas, a)
	}

	return b, true
}

func normalizeArea(node interface{}, seen map[string]bool) (models.Area, bool) {
	m, ok := node.(map[string]interface{})
	if !ok {
		return models.Area{}, false
	}

	a := models.Area{
		ID:            mintID(asString(m["id"]), seen),
		UseType:       models.UseType(asString(m["useType"])),
		UseTypeCustom: asString(m["useTypeCustom"]),
		SF:            asFloat(m["sf"]),
		SFType:        models.SFType(asString(m["sfType"])),
		SFTypeCustom:  asString(m["sfTypeCustom"]),
		Notes:         asString(m["notes"]),
	}

	if !a.UseType.Valid() {
		a.UseType = models.UseOffice
	}
	if !a.SFType.Valid() {
		a.SFType = models.SFTypeGBA
	}

	if year, ok := asInt(m["yearBuiltOverride"]); ok {
		a.YearBuiltOverride = &year
	}

	return a, true
}

// mintID returns the given id if it is non-empty and unseen, otherwise
// a fresh UUID. Every returned id is recorded as seen.
func mintID(id string, seen map[string]bool) string {
	id = strings.TrimSpace(id)
	if id == "" || seen[id] {
		id = uuid.New().String()
	}
	seen[id] = true
	return id
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asSlice(v interface{}) []interface{} {
	s, _ := v.([]interface{})
	return s
}

// asFloat coerces numbers, numeric strings, and null to a float64;
// anything unparseable is 0.
func asFloat(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// asInt coerces numbers and numeric strings to an int; the second
// return is false for null, empty, or unparseable values.
func asInt(v interface{}) (int, bool) {
	switch val := v.(type) {
	case float64:
		return int(val), true
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return 0, false
		}
		i, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}
