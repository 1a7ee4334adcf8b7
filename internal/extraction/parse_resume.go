package extraction

import (
	"context"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/carematch/carematch-api/internal/llm"
	"github.com/carematch/carematch-api/internal/logging"
	"github.com/carematch/carematch-api/internal/prompts"
	"github.com/carematch/carematch-api/internal/types"
)

const logPreviewLen = 200

// ParseResume runs the resume extraction pipeline: build the parsing prompt
// around the extracted resume text, invoke the generator once, recover the
// JSON payload, and normalize it into a typed profile. The generator call is
// single-shot; failures surface to the caller without retry.
func ParseResume(ctx context.Context, client llm.Client, logger *zap.Logger, resumeText string) (*types.CaregiverProfile, error) {
	prompt := buildParsePrompt(resumeText)

	logger.Debug("generator parse-resume request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("model", client.GetModel(llm.TierStandard)),
	)

	raw, err := client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &GeneratorError{Message: "resume parsing generation failed", Cause: err}
	}

	logger.Debug("generator parse-resume response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logging.TruncateForLog(raw, logPreviewLen)),
	)

	data, err := ExtractObject(raw)
	if err != nil {
		return nil, err
	}

	return NormalizeProfile(data, resumeText)
}

// buildParsePrompt constructs the extraction prompt. The template embeds the
// machine-readable output schema the generator must follow.
func buildParsePrompt(resumeText string) string {
	template := prompts.MustGet("parsing.json", "parse-resume")
	return prompts.Format(template, map[string]string{
		"ResumeText": resumeText,
	})
}
