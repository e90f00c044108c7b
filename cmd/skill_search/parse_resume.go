package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-search/internal/config"
	"github.com/jonathan/skill-search/internal/observability"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse a resume into skills, sections, and a profile",
	Long:  "Parse a resume text file into detected skills with experience heuristics, identified sections, and a profile summary.",
	RunE:  runParseResume,
}

var (
	parseResumeInputFile  string
	parseResumeOutputFile string
	parseResumeVerbose    bool
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeInputFile, "in", "i", "", "Path to resume text file (required)")
	parseResumeCmd.Flags().StringVarP(&parseResumeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseResumeCmd.Flags().BoolVarP(&parseResumeVerbose, "verbose", "v", false, "Print a summary of the parse")
	_ = parseResumeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(parseResumeInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	ctx := context.Background()
	cfg := config.FromEnv()
	parser, closer, err := newParser(ctx, cfg)
	if err != nil {
		return err
	}
	defer closer()

	parsed, err := parser.ParseResume(ctx, string(content))
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	if parseResumeVerbose {
		observability.NewPrinter(os.Stderr).PrintParsedResume(parsed)
	}
	return writeJSON(parseResumeOutputFile, parsed)
}
