package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dedshivam/code4edutech/internal/db"
	"github.com/dedshivam/code4edutech/internal/ingestion"
	"github.com/dedshivam/code4edutech/internal/judge"
	"github.com/dedshivam/code4edutech/internal/nlp"
	"github.com/dedshivam/code4edutech/internal/observability"
	"github.com/dedshivam/code4edutech/internal/parsing"
	"github.com/dedshivam/code4edutech/internal/scoring"
	"github.com/dedshivam/code4edutech/internal/types"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score one resume against a job description",
	Long:  "Evaluate reads a resume and a job description, scores their fit, and prints the relevance score, verdict, missing skills, and improvement suggestions.",
	RunE:  runEvaluate,
}

var (
	evalResumeFile  string
	evalJobFile     string
	evalAPIKey      string
	evalDatabaseURL string
	evalJSON        bool
	evalVerbose     bool
)

func init() {
	evaluateCmd.Flags().StringVarP(&evalResumeFile, "resume", "r", "", "Path to resume text file (required)")
	evaluateCmd.Flags().StringVarP(&evalJobFile, "job", "j", "", "Path to job description text file (required)")
	evaluateCmd.Flags().StringVar(&evalAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	evaluateCmd.Flags().StringVar(&evalDatabaseURL, "db-url", "", "PostgreSQL URL for persisting the evaluation (optional)")
	evaluateCmd.Flags().BoolVar(&evalJSON, "json", false, "Print the full result as JSON")
	evaluateCmd.Flags().BoolVarP(&evalVerbose, "verbose", "v", false, "Print the full score breakdown")

	_ = evaluateCmd.MarkFlagRequired("resume")
	_ = evaluateCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	resumeRaw, err := readTextFile(evalResumeFile, "resume")
	if err != nil {
		return err
	}
	jobText, err := readTextFile(evalJobFile, "job")
	if err != nil {
		return err
	}

	client, err := newOptionalClient(ctx, resolveAPIKey(evalAPIKey))
	if err != nil {
		return err
	}
	if client != nil {
		defer func() { _ = client.Close() }()
	}

	resumeText := ingestion.CleanText(resumeRaw)
	if resumeText == "" {
		return fmt.Errorf("no text could be extracted from %s", evalResumeFile)
	}

	reqs := parsing.New(client).ParseJobDescription(ctx, jobText)

	engine := scoring.NewEngine(judge.New(client))
	result := engine.Evaluate(ctx, resumeText, jobText, reqs)

	printer := observability.NewPrinter(os.Stdout)
	if evalVerbose {
		printer.PrintRequirements(reqs)
		printer.PrintEvaluation(result)
	}

	if evalJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Println(string(out))
	} else if !evalVerbose {
		fmt.Printf("Relevance: %.2f (%s)\n", result.RelevanceScore, result.Verdict)
		if len(result.MissingSkills) > 0 {
			fmt.Printf("Missing skills: %v\n", result.MissingSkills)
		}
		for _, s := range result.ImprovementSuggestions {
			fmt.Printf("  - %s\n", s)
		}
	}

	if url := resolveDatabaseURL(evalDatabaseURL); url != "" {
		if err := persistEvaluation(ctx, url, resumeText, jobText, reqs, result); err != nil {
			return err
		}
	}

	return nil
}

// persistEvaluation stores the job, resume, and result in one pass.
func persistEvaluation(ctx context.Context, databaseURL, resumeText, jobText string, reqs *types.JobRequirements, result *types.EvaluationResult) error {
	store, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return err
	}

	jobID, err := store.SaveJob(ctx, &db.Job{
		Title:        firstLine(jobText),
		Description:  jobText,
		Requirements: *reqs,
	})
	if err != nil {
		return err
	}

	contact := ingestion.ExtractContactInfo(resumeText)
	sections := ingestion.ExtractSections(resumeText)
	resumeID, err := store.SaveResume(ctx, &db.Resume{
		Filename:          filepath.Base(evalResumeFile),
		CandidateName:     contact.Name,
		CandidateEmail:    contact.Email,
		ExtractedText:     resumeText,
		Skills:            nlp.ExtractSkills(resumeText),
		ExperienceSection: sections.Experience,
		EducationSection:  sections.Education,
	})
	if err != nil {
		return err
	}

	evalID, err := store.SaveEvaluation(ctx, jobID, resumeID, result)
	if err != nil {
		return err
	}

	fmt.Printf("Saved evaluation %s (job %s, resume %s)\n", evalID, jobID, resumeID)
	return nil
}
