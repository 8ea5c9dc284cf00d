package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ustaoglu/kiracap/internal/worker"
)

var batchConcurrency int

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Evaluate many agreements from a file",
	Long: `Batch evaluates one agreement per line, concurrently. Each line is
"principal,start,asOf"; blank lines and lines starting with # are skipped.

Example:
  kiracap batch agreements.csv --concurrency 8`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "number of concurrent evaluations")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	processor := worker.NewBatchProcessor(newCalculator(cfg), batchConcurrency)

	results, err := processor.ProcessFile(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	failed, pending := 0, 0
	for _, r := range results {
		if r.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "line %d: %v\n", r.Line, r.Error)
			continue
		}
		marker := ""
		if r.Result.RequiresManualEntry {
			pending++
			marker = "  [PENDING: manual TÜFE entry required]"
		}
		fmt.Printf("line %d: %.2f -> %.2f%s\n", r.Line, r.Result.Principal, r.Result.FinalAmount, marker)
	}

	fmt.Printf("\n%d evaluated, %d failed, %d pending\n", len(results), failed, pending)
	if failed > 0 {
		return fmt.Errorf("%d evaluations failed", failed)
	}
	return nil
}
