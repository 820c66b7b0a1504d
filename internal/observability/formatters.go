// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/bloom-classifier/internal/extraction"
	"github.com/jonathan/bloom-classifier/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSegmentation outputs the winning strategy and a preview of the
// segmented questions.
func (p *Printer) PrintSegmentation(result *extraction.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Strategy: %s\n", result.Strategy))
	sb.WriteString(fmt.Sprintf("Score:    %.2f\n", result.Score))
	sb.WriteString(fmt.Sprintf("Found %d questions:\n\n", len(result.Questions)))

	count := min(len(result.Questions), maxItemsToShow)
	for i := 0; i < count; i++ {
		text := result.Questions[i]
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, text))
	}
	if len(result.Questions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(result.Questions)-maxItemsToShow))
	}

	for _, w := range result.Warnings {
		sb.WriteString(fmt.Sprintf("\n⚠ %s", w))
	}

	p.printBox("SEGMENTED QUESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidation outputs the question set validation verdict.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(result *types.ValidationResult) {
	if result == nil {
		return
	}

	if result.Valid {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Questions:   %d\n", result.Count))
		sb.WriteString(fmt.Sprintf("Avg length:  %.1f chars\n", result.AvgLength))
		sb.WriteString(fmt.Sprintf("Quality:     %s", result.Quality))
		p.printBox("✅ VALIDATION PASSED", sb.String())
		return
	}

	fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "⚠ VALIDATION FAILED: "+result.Reason)
	fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
}

// PrintDistribution outputs the per-category counts of a finished run.
func (p *Printer) PrintDistribution(summary *types.RunSummary) {
	if summary == nil || summary.QuestionCount == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Questions:      %d\n", summary.QuestionCount))
	sb.WriteString(fmt.Sprintf("Avg confidence: %.2f\n", summary.AvgConfidence))
	sb.WriteString(fmt.Sprintf("Adjusted:       %d\n\n", summary.AdjustedCount))

	for _, c := range types.AllCategories() {
		n := summary.CategoryCounts[c]
		bar := strings.Repeat("█", n*20/summary.QuestionCount)
		sb.WriteString(fmt.Sprintf("%s %-10s %3d %s\n", c, c.Name(), n, bar))
	}

	p.printBox("CATEGORY DISTRIBUTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAdjustments outputs the questions whose category or confidence was
// changed by the rule engine.
func (p *Printer) PrintAdjustments(questions []types.ClassifiedQuestion) {
	var adjusted []types.ClassifiedQuestion
	for _, q := range questions {
		if q.Result.WasAdjusted {
			adjusted = append(adjusted, q)
		}
	}
	if len(adjusted) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Adjusted %d of %d questions:\n\n", len(adjusted), len(questions)))

	count := min(len(adjusted), maxItemsToShow)
	for i := 0; i < count; i++ {
		q := adjusted[i]
		text := q.Text
		if len(text) > 40 {
			text = text[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", text))
		sb.WriteString(fmt.Sprintf("  %s(%.2f) → %s(%.2f) [%s]\n",
			q.Result.MLCategory, q.Result.MLConfidence,
			q.Result.Category, q.Result.Confidence,
			q.Result.AdjustmentReason))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(adjusted) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(adjusted)-maxItemsToShow))
	}

	p.printBox("RULE ADJUSTMENTS", sb.String())
}
