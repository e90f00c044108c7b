// Package main provides the entry point for the skill-search CLI and server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/skill-search/internal/config"
	"github.com/jonathan/skill-search/internal/llm"
	"github.com/jonathan/skill-search/internal/pipeline"
	"github.com/jonathan/skill-search/internal/taxonomy"
)

var rootCmd = &cobra.Command{
	Use:   "skill_search",
	Short: "Skill extraction for job postings and resumes",
	Long:  "skill_search parses job postings and resumes into structured skill requirements using occupational taxonomy lookups, explicit text matching, and optional model augmentation.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newParser builds a pipeline parser from the environment configuration.
// The returned closer releases the model client when one was created.
func newParser(ctx context.Context, cfg *config.Config) (*pipeline.Parser, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	var taxonomyClient pipeline.TaxonomyClient
	if cfg.TaxonomyEnabled() {
		opts := taxonomy.DefaultOptions()
		if cfg.ONetBaseURL != "" {
			opts.BaseURL = cfg.ONetBaseURL
		}
		taxonomyClient = taxonomy.NewClient(cfg.ONetUser, cfg.ONetPassword, opts)
	} else {
		fmt.Fprintln(os.Stderr, "Warning: taxonomy credentials not set, occupational lookups disabled")
	}

	closer := func() {}
	var model llm.Client
	if cfg.GeminiEnabled() {
		geminiClient, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create model client: %w", err)
		}
		model = geminiClient
		closer = func() { _ = geminiClient.Close() }
	}

	return pipeline.NewParser(cfg, taxonomyClient, model), closer, nil
}
