package types

// CareRequirements describes what an employer is looking for in a caregiver.
type CareRequirements struct {
	CareType              string   `json:"careType" validate:"required"`
	Languages             []string `json:"languages"`
	SpecialConsiderations []string `json:"specialConsiderations"`
	OvernightCare         bool     `json:"overnightCare"`
	ExperienceLevel       string   `json:"experienceLevel"`
	AdditionalNotes       string   `json:"additionalNotes"`
}

// MatchRequest is the request body for the match endpoint.
type MatchRequest struct {
	Profiles     []CaregiverProfile `json:"profiles" validate:"required,min=1"`
	Requirements CareRequirements   `json:"requirements" validate:"required"`
}

// ParseResumeResponse is the response body for the parse-resume endpoint.
type ParseResumeResponse struct {
	ExtractedText string           `json:"extractedText"`
	Profile       CaregiverProfile `json:"profile"`
}
