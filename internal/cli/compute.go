package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/ustaoglu/kiracap/internal/calc"
	"github.com/ustaoglu/kiracap/internal/llm"
	"github.com/ustaoglu/kiracap/internal/model"
)

var (
	startDate   string
	asOfDate    string
	outJSON     string
	outMD       string
	noFooter    bool
	negMode     string
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// computeCmd represents the compute command
var computeCmd = &cobra.Command{
	Use:   "compute <principal>",
	Short: "Compute the maximum legal rent increase for an agreement",
	Long: `Compute segments the agreement's timeline at every rule change and calendar
year boundary, resolves each segment's cap (fixed or TÜFE-linked) and
compounds the increases.

Periods whose TÜFE value is unavailable are reported as PENDING; enter the
value manually with 'kiracap tufe set <year> <value>' and recompute.

Example:
  kiracap compute 10000 --start 2024-01-01 --as-of 2024-12-31
  kiracap compute 10000 --start 2023-06-01 --json result.json --md result.md
  kiracap compute 10000 --start 2024-01-01 --llm --mode assertive`,
	Args: cobra.ExactArgs(1),
	RunE: runCompute,
}

func init() {
	rootCmd.AddCommand(computeCmd)

	computeCmd.Flags().StringVar(&startDate, "start", "", "agreement start date (YYYY-MM-DD, required)")
	computeCmd.Flags().StringVar(&asOfDate, "as-of", time.Now().UTC().Format(model.DateLayout), "evaluation date (YYYY-MM-DD)")
	computeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	computeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	computeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable attribution footer in Markdown output")
	computeCmd.Flags().StringVar(&negMode, "mode", "calm", "negotiation mode for the optional note (calm, assertive)")
	computeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "generate a negotiation note (never affects the amounts)")
	computeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider")
	computeCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
	_ = computeCmd.MarkFlagRequired("start")
}

func runCompute(cmd *cobra.Command, args []string) error {
	principal, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("principal: %w", err)
	}
	start, err := time.Parse(model.DateLayout, startDate)
	if err != nil {
		return fmt.Errorf("start date: %w", err)
	}
	asOf, err := time.Parse(model.DateLayout, asOfDate)
	if err != nil {
		return fmt.Errorf("as-of date: %w", err)
	}
	mode, err := model.ParseNegotiationMode(negMode)
	if err != nil {
		return err
	}

	cfg := loadConfig()
	if noFooter {
		cfg.Output.IncludeFooter = false
	}
	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		if llmModel != "" {
			cfg.LLM.Model = llmModel
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Window: %s .. %s\n", start.Format(model.DateLayout), asOf.Format(model.DateLayout))
		fmt.Fprintf(os.Stderr, "TÜFE source: %s\n", cfg.Tufe.BaseURL)
		fmt.Fprintln(os.Stderr)
	}

	calculator := newCalculator(cfg)
	result, err := calculator.ComputeForWindow(cmd.Context(), principal, start, asOf)
	if err != nil {
		return err
	}

	renderer := calc.NewRenderer(cfg.Output.IncludeFooter)
	if outJSON != "" {
		if err := renderer.RenderJSON(result, outJSON); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote JSON: %s\n", outJSON)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(result, outMD); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote Markdown: %s\n", outMD)
		}
	}
	renderer.RenderSummary(result, os.Stdout)

	// Optional negotiation note, generated strictly after computation.
	if llmEnabled {
		if err := printNegotiationNote(cmd.Context(), cfg, result, mode); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: negotiation note failed: %v\n", err)
		}
	}

	return nil
}

func printNegotiationNote(ctx context.Context, cfg *model.Config, result *model.IncreaseResult, mode model.NegotiationMode) error {
	summarizer, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return err
	}
	if !summarizer.Enabled() {
		return fmt.Errorf("LLM provider not configured (set OPENAI_API_KEY)")
	}
	note, err := summarizer.NegotiationNote(ctx, *result, mode)
	if err != nil {
		return err
	}
	fmt.Printf("\n--- Negotiation note (%s) ---\n%s\n", mode, note)
	return nil
}
