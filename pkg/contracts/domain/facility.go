package domain

import (
	"fmt"
	"strings"
)

// Column names of the source facilities table. The loader resolves these
// against the header row; all four must be present.
const (
	ColParkID        = "ParkID"
	ColName          = "Name"
	ColFacilityType  = "FacilityType"
	ColFacilityCount = "FacilityCount"
)

// RequiredColumns returns the columns every input table must carry,
// in their canonical order.
func RequiredColumns() []string {
	return []string{ColParkID, ColName, ColFacilityType, ColFacilityCount}
}

// FacilityRecord is one row of the cleaned facilities table: a facility
// type located in a named park together with how many of that facility
// the park has.
//
// After cleaning the following holds:
//   - ParkID and FacilityCount are integers (non-numeric input is rejected)
//   - FacilityCount is never missing; absent cells default to 0
//   - no two records are fully identical
//
// Name and FacilityType may be empty when the source cell was blank; such
// rows are kept in the table but skipped by the per-name and per-type
// aggregations.
type FacilityRecord struct {
	ParkID        int    `json:"park_id" csv:"ParkID"`
	Name          string `json:"name" csv:"Name"`
	FacilityType  string `json:"facility_type" csv:"FacilityType"`
	FacilityCount int    `json:"facility_count" csv:"FacilityCount" validate:"min=0"`
}

// Key returns the full-row identity used for exact duplicate detection.
func (r FacilityRecord) Key() string {
	return fmt.Sprintf("%d|%s|%s|%d", r.ParkID, r.Name, r.FacilityType, r.FacilityCount)
}

// IsValid reports whether the record satisfies the declared data model.
// Records with a negative facility count are kept in the table but worth
// flagging, since the source domain never produces them.
func (r FacilityRecord) IsValid() bool {
	return r.FacilityCount >= 0
}

// HasName reports whether the record carries a usable park name.
func (r FacilityRecord) HasName() bool {
	return strings.TrimSpace(r.Name) != ""
}

// HasFacilityType reports whether the record carries a usable facility type.
func (r FacilityRecord) HasFacilityType() bool {
	return strings.TrimSpace(r.FacilityType) != ""
}
