// Package batch evaluates many resumes against one job concurrently.
// The scoring engine itself is single-threaded and stateless; this
// package owns the worker pool, per-item isolation, and reporting.
package batch

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dedshivam/code4edutech/internal/ingestion"
	"github.com/dedshivam/code4edutech/internal/scoring"
	"github.com/dedshivam/code4edutech/internal/types"
)

// DefaultWorkers is the worker pool size when none is configured.
const DefaultWorkers = 4

// Item is one resume queued for batch evaluation.
type Item struct {
	Filename string
	Text     string
}

// ItemResult is the outcome for one item. Failed items carry Error and a
// nil Evaluation; the batch as a whole never fails because of one item.
type ItemResult struct {
	ID        uuid.UUID               `json:"id"`
	Index     int                     `json:"index"`
	Filename  string                  `json:"filename"`
	Candidate ingestion.ContactInfo   `json:"candidate"`
	Result    *types.EvaluationResult `json:"result,omitempty"`
	Error     string                  `json:"error,omitempty"`
}

// Result aggregates a completed batch run. Items keeps submission order.
type Result struct {
	TotalProcessed int          `json:"total_processed"`
	Successful     int          `json:"successful"`
	Failed         int          `json:"failed"`
	Items          []ItemResult `json:"results"`
}

// Options configures a Processor. Zero values select the defaults.
type Options struct {
	// Workers bounds concurrent evaluations. Defaults to DefaultWorkers.
	Workers int

	// ItemTimeout bounds each item's evaluation, which in practice bounds
	// the external judge call. Zero means no per-item deadline.
	ItemTimeout time.Duration
}

// Processor runs batch evaluations over a shared scoring engine.
type Processor struct {
	engine      *scoring.Engine
	workers     int
	itemTimeout time.Duration
}

// NewProcessor creates a Processor around the given engine.
func NewProcessor(engine *scoring.Engine, opts Options) *Processor {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Processor{
		engine:      engine,
		workers:     workers,
		itemTimeout: opts.ItemTimeout,
	}
}

// Process evaluates every item against the job requirements. Items run
// concurrently up to the worker limit; each failure is recorded on its
// own item and never aborts the rest. Results come back in submission
// order. Cancelling ctx stops items that have not started.
func (p *Processor) Process(ctx context.Context, jobText string, reqs *types.JobRequirements, items []Item) *Result {
	results := make([]ItemResult, len(items))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			results[i] = p.processItem(gCtx, i, jobText, reqs, item)
			return nil
		})
	}
	_ = g.Wait()

	out := &Result{
		TotalProcessed: len(items),
		Items:          results,
	}
	for _, r := range results {
		if r.Error == "" {
			out.Successful++
		} else {
			out.Failed++
		}
	}
	return out
}

func (p *Processor) processItem(ctx context.Context, index int, jobText string, reqs *types.JobRequirements, item Item) ItemResult {
	result := ItemResult{
		ID:       uuid.New(),
		Index:    index,
		Filename: item.Filename,
	}

	if err := ctx.Err(); err != nil {
		result.Error = "batch cancelled before evaluation: " + err.Error()
		return result
	}

	text := ingestion.CleanText(item.Text)
	if text == "" {
		result.Error = "no text could be extracted from the resume"
		return result
	}

	if p.itemTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.itemTimeout)
		defer cancel()
	}

	result.Candidate = ingestion.ExtractContactInfo(text)
	result.Result = p.engine.Evaluate(ctx, text, jobText, reqs)

	if result.Result.Details.Error != "" {
		result.Error = result.Result.Details.Error
	}
	return result
}

// joinSkills renders a skill list for flat outputs (CSV, report rows).
func joinSkills(skills []string) string {
	return strings.Join(skills, "; ")
}
