package types

// CaregiverProfile is the typed record produced by resume extraction or
// supplied directly by callers for matching. Field names follow the wire
// format consumed by the frontend, which mixes camelCase and snake_case for
// historical reasons.
//
// Profiles are immutable once constructed for a request; matching only reads
// and re-wraps them.
type CaregiverProfile struct {
	ID                   string                `json:"id"`
	Name                 string                `json:"name"`
	CareTypes            []string              `json:"careTypes"`
	YearsOfExperience    float64               `json:"yearsOfExperience"`
	Languages            []string              `json:"languages"`
	Skills               []string              `json:"skills"`
	Certifications       []string              `json:"certifications"`
	Summary              string                `json:"summary"`
	RawText              string                `json:"rawText,omitempty"`
	CaregivingExperience *CaregivingExperience `json:"caregiving_experience,omitempty"`
}
