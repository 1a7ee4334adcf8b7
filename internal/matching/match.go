package matching

import (
	"context"
	"encoding/json"
	"errors"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/carematch/carematch-api/internal/extraction"
	"github.com/carematch/carematch-api/internal/llm"
	"github.com/carematch/carematch-api/internal/logging"
	"github.com/carematch/carematch-api/internal/prompts"
	"github.com/carematch/carematch-api/internal/types"
)

// ErrNoProfiles indicates the caller supplied an empty profile list. This is
// detected before any generator call is made.
var ErrNoProfiles = errors.New("at least one caregiver profile is required")

const logPreviewLen = 200

// MatchProfiles ranks the supplied profiles against the employer requirements
// via a single generator invocation, then normalizes the returned entries:
// identities are resolved back to the caller's profiles, badges are derived
// where missing, and ranks are reassigned from score order. Entries whose
// identity cannot be resolved are dropped, not failed, so one garbled entry
// does not sink the batch.
func MatchProfiles(ctx context.Context, client llm.Client, logger *zap.Logger, profiles []types.CaregiverProfile, requirements types.CareRequirements) ([]types.MatchResult, error) {
	if len(profiles) == 0 {
		return nil, ErrNoProfiles
	}

	prompt, err := buildMatchPrompt(profiles, requirements)
	if err != nil {
		return nil, err
	}

	logger.Debug("generator match request",
		zap.Int("profile_count", len(profiles)),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("model", client.GetModel(llm.TierAdvanced)),
	)

	raw, err := client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, &extraction.GeneratorError{Message: "match generation failed", Cause: err}
	}

	logger.Debug("generator match response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logging.TruncateForLog(raw, logPreviewLen)),
	)

	entries, err := extraction.ExtractList(raw)
	if err != nil {
		return nil, err
	}

	index := newProfileIndex(profiles)
	results := make([]types.MatchResult, 0, len(entries))
	for _, item := range entries {
		entry, ok := item.(map[string]any)
		if !ok {
			logger.Debug("dropping non-object ranking entry")
			continue
		}

		profile := index.resolve(entry)
		if profile == nil {
			logger.Debug("dropping ranking entry with unresolved identity",
				zap.String("entry_id", extraction.String(entry["id"])),
				zap.String("entry_name", extraction.String(entry["name"])),
			)
			continue
		}

		result, err := normalizeEntry(entry, profile)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	ReconcileRanks(results)
	return results, nil
}

// profileSummary is the serialized view of one profile embedded in the match
// prompt. Raw resume text is deliberately excluded to keep the prompt within
// budget; the structured fields carry the evidence the generator needs.
type profileSummary struct {
	ID                   string                      `json:"id"`
	Name                 string                      `json:"name"`
	CareTypes            []string                    `json:"careTypes"`
	YearsOfExperience    float64                     `json:"yearsOfExperience"`
	Languages            []string                    `json:"languages"`
	Skills               []string                    `json:"skills"`
	Certifications       []string                    `json:"certifications"`
	Summary              string                      `json:"summary"`
	CaregivingExperience *types.CaregivingExperience `json:"caregiving_experience,omitempty"`
}

func buildMatchPrompt(profiles []types.CaregiverProfile, requirements types.CareRequirements) (string, error) {
	summaries := make([]profileSummary, 0, len(profiles))
	for _, p := range profiles {
		summaries = append(summaries, profileSummary{
			ID:                   p.ID,
			Name:                 p.Name,
			CareTypes:            p.CareTypes,
			YearsOfExperience:    p.YearsOfExperience,
			Languages:            p.Languages,
			Skills:               p.Skills,
			Certifications:       p.Certifications,
			Summary:              p.Summary,
			CaregivingExperience: p.CaregivingExperience,
		})
	}

	profilesJSON, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return "", err
	}
	requirementsJSON, err := json.MarshalIndent(requirements, "", "  ")
	if err != nil {
		return "", err
	}

	template := prompts.MustGet("matching.json", "rank-candidates")
	return prompts.Format(template, map[string]string{
		"ProfilesJSON":     string(profilesJSON),
		"RequirementsJSON": string(requirementsJSON),
	}), nil
}
