package extraction

import (
	"github.com/carematch/carematch-api/internal/types"
)

// defaultSummary is used when the generator omits the profile summary.
const defaultSummary = "Caregiver profile parsed from resume."

// NormalizeProfile validates and fills defaults for a parsed caregiver
// profile. Field names vary across two historically divergent generator
// schemas; each aliased field is resolved through an ordered fallback:
//
//	name:  candidate_name, name, then "Unknown"
//	years: totalYearsOfExperience, yearsOfExperience, then 0
//
// Claimed care types are filtered against the closed allow-list; when none
// survive, the sentinel "No Relevant Experience" is substituted so careTypes
// is never empty. Missing optional fields degrade to defaults; this stage
// never rejects input for absent data.
func NormalizeProfile(data map[string]any, rawText string) (*types.CaregiverProfile, error) {
	name := stringField(data, "candidate_name", "name")
	if name == "" {
		name = "Unknown"
	}

	careTypes := filterCareTypes(Strings(data["careTypes"]))
	if len(careTypes) == 0 {
		careTypes = []string{types.NoRelevantExperience}
	}

	languages := []string{"English"}
	if v, present := data["languages"]; present {
		languages = orEmpty(Strings(v))
	}

	summary := String(data["summary"])
	if summary == "" {
		summary = defaultSummary
	}

	experience, err := AssembleExperience(mapValue(data["caregiving_experience"]))
	if err != nil {
		return nil, err
	}

	return &types.CaregiverProfile{
		ID:                   String(data["id"]),
		Name:                 name,
		CareTypes:            careTypes,
		YearsOfExperience:    floatField(data, "totalYearsOfExperience", "yearsOfExperience"),
		Languages:            languages,
		Skills:               orEmpty(Strings(data["skills"])),
		Certifications:       orEmpty(Strings(data["certifications"])),
		Summary:              summary,
		RawText:              rawText,
		CaregivingExperience: experience,
	}, nil
}

// filterCareTypes keeps only values from the closed allow-list, preserving
// order.
func filterCareTypes(claimed []string) []string {
	kept := make([]string, 0, len(claimed))
	for _, ct := range claimed {
		if types.CareType(ct).Valid() {
			kept = append(kept, ct)
		}
	}
	return kept
}

func mapValue(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
