package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-search/internal/config"
	"github.com/jonathan/skill-search/internal/fetch"
	"github.com/jonathan/skill-search/internal/observability"
)

var parseJobCmd = &cobra.Command{
	Use:   "parse-job",
	Short: "Parse a job posting into requirements and soft skills",
	Long:  "Parse a job posting, from a text file or a URL, into structured requirement and soft-skill JSON.",
	RunE:  runParseJob,
}

var (
	parseJobInputFile  string
	parseJobURL        string
	parseJobTitle      string
	parseJobOutputFile string
	parseJobVerbose    bool
)

func init() {
	parseJobCmd.Flags().StringVarP(&parseJobInputFile, "in", "i", "", "Path to job posting text file")
	parseJobCmd.Flags().StringVar(&parseJobURL, "url", "", "Job posting URL to fetch")
	parseJobCmd.Flags().StringVar(&parseJobTitle, "title", "", "Job title (improves taxonomy code resolution)")
	parseJobCmd.Flags().StringVarP(&parseJobOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseJobCmd.Flags().BoolVarP(&parseJobVerbose, "verbose", "v", false, "Print a summary of the parse")

	rootCmd.AddCommand(parseJobCmd)
}

func runParseJob(_ *cobra.Command, _ []string) error {
	if parseJobInputFile == "" && parseJobURL == "" {
		return fmt.Errorf("must provide either --in or --url")
	}
	if parseJobInputFile != "" && parseJobURL != "" {
		return fmt.Errorf("cannot use --in together with --url")
	}

	ctx := context.Background()
	cfg := config.FromEnv()
	parser, closer, err := newParser(ctx, cfg)
	if err != nil {
		return err
	}
	defer closer()

	title := parseJobTitle
	var text string
	if parseJobURL != "" {
		posting, err := fetch.JobPosting(ctx, parseJobURL, nil)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
		text = posting.Text
		if title == "" {
			title = posting.Title
		}
	} else {
		content, err := os.ReadFile(parseJobInputFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		text = string(content)
	}

	parsed, err := parser.ParseJob(ctx, title, text)
	if err != nil {
		return fmt.Errorf("failed to parse job posting: %w", err)
	}

	if parseJobVerbose {
		observability.NewPrinter(os.Stderr).PrintParsedJob(parsed)
	}
	return writeJSON(parseJobOutputFile, parsed)
}

// writeJSON marshals v with indentation to the given file, or stdout when
// the path is empty.
func writeJSON(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return err
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
