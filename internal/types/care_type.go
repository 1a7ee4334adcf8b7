// Package types provides type definitions for structured data used throughout the carematch system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CareType identifies one of the closed set of caregiving domains.
type CareType string

// The six care types that own an experience slot, plus the sentinel accepted
// from the resume parser for candidates without caregiving background.
const (
	CareTypeEldercare     CareType = "eldercare"
	CareTypeChildcare     CareType = "childcare"
	CareTypeSpecialNeeds  CareType = "special-needs"
	CareTypePostSurgery   CareType = "post-surgery"
	CareTypeDementia      CareType = "dementia"
	CareTypeDisability    CareType = "disability"
	CareTypeNotApplicable CareType = "not-applicable"
)

// NoRelevantExperience is stored in a profile's careTypes when no recognized
// care type survives filtering. A profile never has an empty careTypes list.
const NoRelevantExperience = "No Relevant Experience"

// ExperienceCareTypes lists the care types that carry a CaregivingExperience
// slot, in canonical order. CareTypeNotApplicable is deliberately excluded.
var ExperienceCareTypes = []CareType{
	CareTypeEldercare,
	CareTypeChildcare,
	CareTypeSpecialNeeds,
	CareTypePostSurgery,
	CareTypeDementia,
	CareTypeDisability,
}

// Valid reports whether c is a recognized care type, including the
// not-applicable sentinel.
func (c CareType) Valid() bool {
	switch c {
	case CareTypeEldercare, CareTypeChildcare, CareTypeSpecialNeeds,
		CareTypePostSurgery, CareTypeDementia, CareTypeDisability,
		CareTypeNotApplicable:
		return true
	default:
		return false
	}
}
