package types

// MatchBadge is the coarse quality tier derived from a numeric match score.
type MatchBadge string

// Badge tiers in descending order of quality.
const (
	BadgeTopMatch    MatchBadge = "Top Match"
	BadgeStrongMatch MatchBadge = "Strong Match"
	BadgeGoodMatch   MatchBadge = "Good Match"
	BadgeNoMatch     MatchBadge = "No Match"
)

// BadgeForScore derives the badge from a score. This threshold table is the
// single source of truth for badge semantics: even when a generator-supplied
// badge is trusted, the tier must be re-derivable from score alone.
func BadgeForScore(score float64) MatchBadge {
	switch {
	case score >= 85:
		return BadgeTopMatch
	case score >= 70:
		return BadgeStrongMatch
	case score >= 50:
		return BadgeGoodMatch
	default:
		return BadgeNoMatch
	}
}

// MatchExplanation carries the generator's reasoning for one match. The
// caregiving experience here covers only the overlap relevant to the match,
// not the candidate's full history.
type MatchExplanation struct {
	OverallFit           string                `json:"overallFit"`
	Strengths            StringList            `json:"strengths"`
	Gaps                 StringList            `json:"gaps"`
	Recommendation       string                `json:"recommendation"`
	CaregivingExperience *CaregivingExperience `json:"caregiving_experience,omitempty"`
}

// MatchResult pairs a caller-supplied profile with the normalized ranking
// data for one request. Caregiver always references a profile from the
// caller's input set; results are never synthesized for unknown candidates.
type MatchResult struct {
	Caregiver   *CaregiverProfile `json:"caregiver"`
	Score       float64           `json:"score"`
	Rank        int               `json:"rank"`
	MatchBadge  MatchBadge        `json:"match_badge"`
	Explanation MatchExplanation  `json:"explanation"`
}
