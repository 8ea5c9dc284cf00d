package calc

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ustaoglu/kiracap/internal/model"
)

// Renderer writes increase results as JSON, Markdown and stdout summaries.
// Pending segments always render an explicit marker, never a numeric zero.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer. includeFooter controls the attribution
// footer in Markdown output; the attribution text itself is fixed and
// travels with the result either way.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the result to a JSON file.
func (r *Renderer) RenderJSON(result *model.IncreaseResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable breakdown to a Markdown file.
func (r *Renderer) RenderMarkdown(result *model.IncreaseResult, path string) error {
	var b strings.Builder

	b.WriteString("# Legal rent-increase cap\n\n")
	fmt.Fprintf(&b, "- Principal: %.2f\n", result.Principal)
	fmt.Fprintf(&b, "- Final capped amount: %.2f\n", result.FinalAmount)
	fmt.Fprintf(&b, "- Computed at: %s\n\n", result.ComputedAt.Format("2006-01-02 15:04:05 UTC"))

	if result.RequiresManualEntry {
		b.WriteString("> **Manual entry required.** One or more periods are pending an\n")
		b.WriteString("> official TÜFE value; the final amount excludes those periods.\n\n")
	}

	b.WriteString("| Period | Rule | Rate | Contribution |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, entry := range result.Breakdown {
		if entry.Pending {
			fmt.Fprintf(&b, "| %s | %s | — | PENDING (manual TÜFE entry required) |\n",
				entry.Segment, entry.RuleLabel)
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %.2f%% | %.2f |\n",
			entry.Segment, entry.RuleLabel, *entry.RatePercent, *entry.Contribution)
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "\n---\n%s\n", result.Attribution)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// RenderSummary prints a short summary to w.
func (r *Renderer) RenderSummary(result *model.IncreaseResult, w io.Writer) {
	fmt.Fprintf(w, "Principal:    %.2f\n", result.Principal)
	for _, entry := range result.Breakdown {
		if entry.Pending {
			fmt.Fprintf(w, "  %s  %s: PENDING — enter the TÜFE value for %d manually\n",
				entry.Segment, entry.RuleLabel, entry.Segment.Year())
			continue
		}
		fmt.Fprintf(w, "  %s  %s: +%.2f (%.2f%%)\n",
			entry.Segment, entry.RuleLabel, *entry.Contribution, *entry.RatePercent)
	}
	fmt.Fprintf(w, "Final amount: %.2f\n", result.FinalAmount)
	if result.RequiresManualEntry {
		fmt.Fprintln(w, "Some periods are pending; the final amount is a lower bound.")
	}
}
