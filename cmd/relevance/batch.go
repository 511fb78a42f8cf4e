package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/dedshivam/code4edutech/internal/batch"
	"github.com/dedshivam/code4edutech/internal/config"
	"github.com/dedshivam/code4edutech/internal/judge"
	"github.com/dedshivam/code4edutech/internal/observability"
	"github.com/dedshivam/code4edutech/internal/parsing"
	"github.com/dedshivam/code4edutech/internal/scoring"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score a directory of resumes against one job description",
	Long:  "Batch reads every .txt resume in a directory, scores each against the job description concurrently, prints a summary report, and optionally exports the results as CSV.",
	RunE:  runBatch,
}

var (
	batchJobFile    string
	batchResumeDir  string
	batchConfigFile string
	batchAPIKey     string
	batchWorkers    int
	batchTimeout    int
	batchCSVFile    string
	batchVerbose    bool
)

func init() {
	batchCmd.Flags().StringVarP(&batchJobFile, "job", "j", "", "Path to job description text file (required)")
	batchCmd.Flags().StringVarP(&batchResumeDir, "resumes", "d", "", "Directory of resume .txt files (required)")
	batchCmd.Flags().StringVarP(&batchConfigFile, "config", "c", "", "Path to JSON config file")
	batchCmd.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Concurrent workers (default 4)")
	batchCmd.Flags().IntVar(&batchTimeout, "timeout", 0, "Per-resume timeout in seconds (default none)")
	batchCmd.Flags().StringVar(&batchCSVFile, "csv", "", "Path to write the results CSV (optional)")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print per-resume breakdowns")

	_ = batchCmd.MarkFlagRequired("job")
	_ = batchCmd.MarkFlagRequired("resumes")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg := config.Config{
		APIKey:      batchAPIKey,
		Workers:     batchWorkers,
		ItemTimeout: batchTimeout,
	}
	if batchConfigFile != "" {
		fileCfg, err := config.LoadConfig(batchConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	jobText, err := readTextFile(batchJobFile, "job")
	if err != nil {
		return err
	}

	items, err := loadResumeDir(batchResumeDir)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("no .txt resumes found in %s", batchResumeDir)
	}

	client, err := newOptionalClient(ctx, resolveAPIKey(cfg.APIKey))
	if err != nil {
		return err
	}
	if client != nil {
		defer func() { _ = client.Close() }()
	}

	reqs := parsing.New(client).ParseJobDescription(ctx, jobText)
	engine := scoring.NewEngine(judge.New(client))

	processor := batch.NewProcessor(engine, batch.Options{
		Workers:     cfg.Workers,
		ItemTimeout: time.Duration(cfg.ItemTimeout) * time.Second,
	})
	result := processor.Process(ctx, jobText, reqs, items)

	printer := observability.NewPrinter(os.Stdout)
	if batchVerbose {
		for _, item := range result.Items {
			fmt.Printf("\n%s\n", item.Filename)
			if item.Error != "" {
				fmt.Printf("  failed: %s\n", item.Error)
				continue
			}
			printer.PrintEvaluation(item.Result)
		}
	}
	printer.PrintBatchReport(result.Report(firstLine(jobText)))

	if batchCSVFile != "" {
		f, err := os.Create(batchCSVFile)
		if err != nil {
			return fmt.Errorf("failed to create CSV file: %w", err)
		}
		defer func() { _ = f.Close() }()
		if err := result.WriteCSV(f); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", batchCSVFile)
	}

	return nil
}

// loadResumeDir reads every .txt file in dir as one batch item, in
// filename order.
func loadResumeDir(dir string) ([]batch.Item, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	sort.Strings(paths)

	items := make([]batch.Item, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read resume %s: %w", path, err)
		}
		items = append(items, batch.Item{
			Filename: filepath.Base(path),
			Text:     string(content),
		})
	}
	return items, nil
}
