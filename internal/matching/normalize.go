package matching

import (
	"github.com/carematch/carematch-api/internal/extraction"
	"github.com/carematch/carematch-api/internal/types"
)

// normalizeEntry converts one resolved ranking entry into a MatchResult. The
// rank carried here is the generator's proposal; ReconcileRanks overwrites it
// before results are returned.
func normalizeEntry(entry map[string]any, profile *types.CaregiverProfile) (types.MatchResult, error) {
	report, _ := entry["match_report"].(map[string]any)

	strengths := types.StringList(extraction.Strings(report["key_strengths"]))
	if strengths == nil {
		strengths = types.StringList{}
	}
	gaps := types.StringList(extraction.Strings(report["gaps_or_considerations"]))
	if gaps == nil {
		gaps = types.StringList{}
	}

	overallFit, matchExperience, err := normalizeWhyMatch(report["why_match"])
	if err != nil {
		return types.MatchResult{}, err
	}

	score := extraction.Float(entry["match_score"])

	badge := types.MatchBadge(extraction.String(entry["match_badge"]))
	if badge == "" {
		badge = types.BadgeForScore(score)
	}

	return types.MatchResult{
		Caregiver:  profile,
		Score:      score,
		Rank:       int(extraction.Float(entry["match_rank"])),
		MatchBadge: badge,
		Explanation: types.MatchExplanation{
			OverallFit:           overallFit,
			Strengths:            strengths,
			Gaps:                 gaps,
			Recommendation:       extraction.String(report["recommendation"]),
			CaregivingExperience: matchExperience,
		},
	}, nil
}

// normalizeWhyMatch handles both why_match shapes. The structured object
// carries an explanation plus the overlap-only caregiving experience; the
// legacy shape is a bare string used directly as the fit text.
func normalizeWhyMatch(v any) (string, *types.CaregivingExperience, error) {
	switch wm := v.(type) {
	case map[string]any:
		overallFit := extraction.String(wm["explanation"])

		expData, ok := wm["caregiving_experience"].(map[string]any)
		if !ok || len(expData) == 0 {
			return overallFit, nil, nil
		}

		// The descriptive note field is prompt scaffolding, not a care type.
		slots := make(map[string]any, len(expData))
		for k, val := range expData {
			if k == "note" {
				continue
			}
			slots[k] = val
		}

		experience, err := extraction.AssembleExperience(slots)
		if err != nil {
			return "", nil, err
		}
		return overallFit, experience, nil
	case string:
		return wm, nil, nil
	default:
		return "", nil, nil
	}
}
