package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/bloom-classifier/internal/classifier"
	"github.com/jonathan/bloom-classifier/internal/config"
	"github.com/jonathan/bloom-classifier/internal/extraction"
	"github.com/jonathan/bloom-classifier/internal/pipeline"
	"github.com/jonathan/bloom-classifier/internal/rules"
)

var classifyCommand = &cobra.Command{
	Use:   "classify",
	Short: "Classify the questions in an exam document",
	Long: `Runs the full pipeline on one document: text extraction -> question segmentation -> validation -> ML classification -> rule adjustment.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runClassifyCmd,
}

var (
	classifyConfigPath  string
	classifyFile        string
	classifyLocale      string
	classifyAPIKey      string
	classifyModel       string
	classifyBatchSize   int
	classifyWorkers     int
	classifyDatabaseURL string
	classifyJSON        bool
	classifyVerbose     bool
)

func init() {
	// Config file flag (processed first)
	classifyCommand.Flags().StringVar(&classifyConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	classifyCommand.Flags().StringVarP(&classifyFile, "file", "f", "", "Path to the exam document (.pdf, .docx, .txt, .csv)")
	classifyCommand.Flags().StringVarP(&classifyLocale, "locale", "l", "", "Question language: en or id (default en)")
	classifyCommand.Flags().StringVar(&classifyModel, "model", "", "Gemini model name")
	classifyCommand.Flags().IntVar(&classifyBatchSize, "batch-size", 0, "Questions per classification request")
	classifyCommand.Flags().IntVar(&classifyWorkers, "workers", 0, "Rule adjustment worker pool size")
	classifyCommand.Flags().BoolVar(&classifyJSON, "json", false, "Print the full result as JSON")
	classifyCommand.Flags().BoolVarP(&classifyVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	classifyCommand.Flags().StringVar(&classifyAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for run history persistence
	classifyCommand.Flags().StringVar(&classifyDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(classifyCommand)
}

func runClassifyCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if classifyConfigPath != "" {
		loadedCfg, err := config.LoadConfig(classifyConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if classifyVerbose {
			fmt.Printf("Loaded config from: %s\n", classifyConfigPath)
		}
	}

	// CLI flags take priority over config file values
	flags := config.Config{
		APIKey:      classifyAPIKey,
		Model:       classifyModel,
		Locale:      classifyLocale,
		BatchSize:   classifyBatchSize,
		DatabaseURL: classifyDatabaseURL,
		Verbose:     classifyVerbose,
	}
	cfg = flags.MergeWithDefaults(cfg)

	if classifyFile == "" {
		return fmt.Errorf("--file is required")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("Gemini API key is required (--api-key or GEMINI_API_KEY)")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.Locale == "" {
		cfg.Locale = "en"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	profile, ok := rules.ForLocale(cfg.Locale)
	if !ok {
		return fmt.Errorf("unknown locale %q (supported: en, id)", cfg.Locale)
	}
	profile = profile.WithTuning(cfg.RulesTuning())

	gateway := classifier.NewGeminiGateway(cfg.APIKey, cfg.Model, cfg.BatchSize)
	if err := gateway.Load(ctx); err != nil {
		return err
	}
	defer gateway.Close()

	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		FilePath:    classifyFile,
		Gateway:     gateway,
		Profile:     profile,
		Segmenter:   extraction.NewSegmenter(cfg.SegmenterTuning()),
		Workers:     classifyWorkers,
		Verbose:     cfg.Verbose,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		return err
	}

	if classifyJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if !result.Validation.Valid {
		return fmt.Errorf("document rejected: %s", result.Validation.Reason)
	}

	fmt.Printf("\n%s: %d questions (%s strategy)\n\n", result.FileName, len(result.Questions), result.Strategy)
	for _, q := range result.Questions {
		marker := " "
		if q.Result.WasAdjusted {
			marker = "*"
		}
		fmt.Printf("%3d. [%s %-10s %.2f]%s %s\n",
			q.Position+1, q.Result.Category, q.Result.CategoryName,
			q.Result.Confidence, marker, q.Text)
	}
	fmt.Printf("\nAdjusted %d of %d questions (avg confidence %.2f)\n",
		result.Summary.AdjustedCount, result.Summary.QuestionCount, result.Summary.AvgConfidence)
	if result.RunID != uuid.Nil {
		fmt.Printf("Saved as run %s\n", result.RunID)
	}
	return nil
}
