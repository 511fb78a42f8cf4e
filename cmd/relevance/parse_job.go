package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dedshivam/code4edutech/internal/parsing"
)

var parseJobCmd = &cobra.Command{
	Use:   "parse-job",
	Short: "Parse a job description into structured requirements JSON",
	Long:  "Parse a job description text file into structured requirements (required/preferred skills, experience, education, responsibilities) and print or write the JSON.",
	RunE:  runParseJob,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseAPIKey     string
)

func init() {
	parseJobCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to job description text file (required)")
	parseJobCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseJobCmd.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	_ = parseJobCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseJobCmd)
}

func runParseJob(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	jobText, err := readTextFile(parseInputFile, "in")
	if err != nil {
		return err
	}

	client, err := newOptionalClient(ctx, resolveAPIKey(parseAPIKey))
	if err != nil {
		return err
	}
	if client != nil {
		defer func() { _ = client.Close() }()
	}

	reqs := parsing.New(client).ParseJobDescription(ctx, jobText)
	if err := reqs.Validate(); err != nil {
		return fmt.Errorf("parsed requirements failed validation: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(reqs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if parseOutputFile == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(parseOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
