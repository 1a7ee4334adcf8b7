package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carematch/carematch-api/internal/extraction"
	"github.com/carematch/carematch-api/internal/llm"
	"github.com/carematch/carematch-api/internal/logging"
	"github.com/carematch/carematch-api/internal/pdftext"
)

var parseCmd = &cobra.Command{
	Use:   "parse <resume.pdf>",
	Short: "Parse a local resume PDF into a caregiver profile",
	Long:  `Extract text from a local PDF resume, run the structured extraction pipeline, and print the resulting caregiver profile as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	logger, err := logging.New(flagJSONLog, flagDebug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	text, err := pdftext.NewPDFExtractor().ExtractText(data)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, llm.DefaultGeminiConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create generator client: %w", err)
	}
	defer func() { _ = client.Close() }()

	profile, err := extraction.ParseResume(ctx, client, logger, text)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	out, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
