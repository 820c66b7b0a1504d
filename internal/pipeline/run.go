// Package pipeline provides the high-level orchestration for classifying one
// document: acquire, segment, validate, classify, adjust, persist.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/bloom-classifier/internal/classifier"
	"github.com/jonathan/bloom-classifier/internal/db"
	"github.com/jonathan/bloom-classifier/internal/extraction"
	"github.com/jonathan/bloom-classifier/internal/observability"
	"github.com/jonathan/bloom-classifier/internal/rules"
	"github.com/jonathan/bloom-classifier/internal/types"
)

// Pipeline step names for progress reporting
const (
	StepAcquire  = "acquire"
	StepSegment  = "segment"
	StepValidate = "validate"
	StepClassify = "classify"
	StepAdjust   = "adjust"
	StepPersist  = "persist"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline. Gateway and
// Profile are required; the remaining dependencies default sensibly.
type RunOptions struct {
	FilePath string
	// FileName overrides the reported document name; defaults to the base of
	// FilePath. Useful when FilePath is a temp copy of an upload.
	FileName string

	Gateway   classifier.Gateway
	Profile   *rules.Profile
	Segmenter *extraction.Segmenter

	// Workers bounds the rule-adjustment pool; defaults to GOMAXPROCS.
	Workers int

	Verbose     bool
	DatabaseURL string
	OnProgress  ProgressCallback
}

// RunResult is the outcome of one document classification run
type RunResult struct {
	RunID      uuid.UUID                  `json:"run_id,omitempty"`
	FileName   string                     `json:"file_name"`
	Locale     string                     `json:"locale"`
	Strategy   string                     `json:"strategy"`
	Validation *types.ValidationResult    `json:"validation"`
	Questions  []types.ClassifiedQuestion `json:"questions,omitempty"`
	Summary    *types.RunSummary          `json:"summary,omitempty"`
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Message: message})
	}
}

// Run orchestrates the full classification pipeline for a single document.
// A document that fails validation is not an error: the result carries the
// verdict and no questions.
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	if opts.Gateway == nil {
		return nil, fmt.Errorf("pipeline: gateway is required")
	}
	if opts.Profile == nil {
		return nil, fmt.Errorf("pipeline: rule profile is required")
	}

	printer := observability.NewPrinter(os.Stdout)
	fileName := opts.FileName
	if fileName == "" {
		fileName = filepath.Base(opts.FilePath)
	}
	result := &RunResult{
		FileName: fileName,
		Locale:   opts.Profile.Locale,
	}

	// Step 1: acquire raw text
	emitProgress(&opts, StepAcquire, "Extracting text from "+result.FileName)
	rawText, err := extraction.AcquireText(opts.FilePath)
	if err != nil {
		return nil, fmt.Errorf("text acquisition failed: %w", err)
	}

	// Step 2: segment into questions
	segmenter := opts.Segmenter
	if segmenter == nil {
		segmenter = extraction.NewSegmenter(extraction.DefaultTuning())
	}
	seg := segmenter.Segment(rawText)
	result.Strategy = seg.Strategy
	emitProgress(&opts, StepSegment,
		fmt.Sprintf("Segmented %d questions via %s", len(seg.Questions), seg.Strategy))
	if opts.Verbose {
		printer.PrintSegmentation(seg)
	}

	// Step 3: validate
	result.Validation = extraction.ValidateQuestions(seg.Questions)
	if opts.Verbose {
		printer.PrintValidation(result.Validation)
	}
	if !result.Validation.Valid {
		emitProgress(&opts, StepValidate, "Validation failed: "+result.Validation.Reason)
		return result, nil
	}

	// Step 4: classify the whole batch through the gateway
	if !opts.Gateway.Ready() {
		if err := opts.Gateway.Load(ctx); err != nil {
			return nil, fmt.Errorf("gateway load failed: %w", err)
		}
	}
	emitProgress(&opts, StepClassify, fmt.Sprintf("Classifying %d questions", len(seg.Questions)))
	predictions, err := opts.Gateway.ClassifyBatch(ctx, seg.Questions)
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}
	if len(predictions) != len(seg.Questions) {
		return nil, fmt.Errorf("classification returned %d predictions for %d questions",
			len(predictions), len(seg.Questions))
	}

	// Step 5: rule adjustment, pooled. Results are collected by position so
	// output order matches input order regardless of completion order.
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	classified := make([]types.ClassifiedQuestion, len(seg.Questions))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range seg.Questions {
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			adjusted := rules.Adjust(seg.Questions[i], predictions[i], opts.Profile)
			classified[i] = types.ClassifiedQuestion{
				Position: i,
				Text:     seg.Questions[i],
				Result:   *adjusted,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("rule adjustment failed: %w", err)
	}
	result.Questions = classified

	summary := types.Summarize(seg.Strategy, classified)
	result.Summary = &summary
	emitProgress(&opts, StepAdjust,
		fmt.Sprintf("Adjusted %d of %d questions", summary.AdjustedCount, summary.QuestionCount))
	if opts.Verbose {
		printer.PrintAdjustments(classified)
		printer.PrintDistribution(&summary)
	}

	// Step 6: persist run history. Persistence failures do not fail the run.
	if opts.DatabaseURL != "" {
		persist(ctx, &opts, result)
	}

	return result, nil
}

func persist(ctx context.Context, opts *RunOptions, result *RunResult) {
	database, err := db.Connect(ctx, opts.DatabaseURL)
	if err != nil {
		fmt.Printf("Warning: Failed to connect to database: %v\n", err)
		fmt.Printf("Continuing without database persistence...\n")
		return
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		fmt.Printf("Warning: Failed to migrate database: %v\n", err)
		return
	}

	runID, err := database.CreateRun(ctx, result.FileName, result.Locale)
	if err != nil {
		fmt.Printf("Warning: Failed to create database run: %v\n", err)
		return
	}
	result.RunID = runID
	emitProgress(opts, StepPersist, "Created run "+runID.String())

	if err := database.SaveQuestions(ctx, runID, result.Questions); err != nil {
		fmt.Printf("Warning: Failed to save questions: %v\n", err)
		_ = database.FailRun(ctx, runID)
		return
	}
	if err := database.CompleteRun(ctx, runID, "completed", result.Summary); err != nil {
		fmt.Printf("Warning: Failed to complete run: %v\n", err)
	}
}
