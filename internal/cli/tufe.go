package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/ustaoglu/kiracap/internal/model"
)

// tufeCmd represents the tufe command group
var tufeCmd = &cobra.Command{
	Use:   "tufe",
	Short: "Inspect and override cached TÜFE values",
	Long: `Manage the local TÜFE cache.

Automatic values come from the single authoritative source and expire after
24 hours. Manual values never expire and always win over automatic ones;
only a newer manual value replaces them.`,
}

var tufeSetCmd = &cobra.Command{
	Use:   "set <year> <value>",
	Short: "Manually set the TÜFE value for a year",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("year: %w", err)
		}
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("value: %w", err)
		}

		cache := newTufeCache(loadConfig())
		if err := cache.SetManual(year, value); err != nil {
			return err
		}
		fmt.Printf("TÜFE %d = %.2f%% (manual, never expires)\n", year, value)
		return nil
	},
}

var tufeShowCmd = &cobra.Command{
	Use:   "show <year>",
	Short: "Show the cached TÜFE value for a year without fetching",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("year: %w", err)
		}

		cache := newTufeCache(loadConfig())
		rec, ok := cache.Peek(year)
		if !ok {
			fmt.Printf("TÜFE %d: not cached (use 'kiracap tufe fetch %d' or 'kiracap tufe set')\n", year, year)
			return nil
		}
		printRecord(rec)
		return nil
	},
}

var tufeFetchCmd = &cobra.Command{
	Use:   "fetch <year>",
	Short: "Fetch the TÜFE value for a year from the official source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("year: %w", err)
		}

		cache := newTufeCache(loadConfig())
		rec, ok := cache.Get(cmd.Context(), year)
		if !ok {
			fmt.Printf("TÜFE %d: unavailable from the official source. Enter it manually:\n", year)
			fmt.Printf("  kiracap tufe set %d <value>\n", year)
			return nil
		}
		printRecord(rec)
		return nil
	},
}

func printRecord(rec model.TufeRecord) {
	fmt.Printf("TÜFE %d = %.2f%% (source: %s", rec.Year, rec.Value, rec.Source)
	if rec.ExpiresAt != nil {
		fmt.Printf(", expires %s", rec.ExpiresAt.Format("2006-01-02 15:04 UTC"))
	}
	fmt.Println(")")
}

func init() {
	rootCmd.AddCommand(tufeCmd)
	tufeCmd.AddCommand(tufeSetCmd)
	tufeCmd.AddCommand(tufeShowCmd)
	tufeCmd.AddCommand(tufeFetchCmd)
}
