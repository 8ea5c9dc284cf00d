package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ustaoglu/kiracap/internal/model"
	"github.com/ustaoglu/kiracap/internal/rules"
)

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the legal rent-increase rule catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := rules.DefaultRegistry()
		for _, rule := range registry.All() {
			from := rule.EffectiveStart().Format(model.DateLayout)
			to := "current"
			if end, ok := rule.EffectiveEnd(); ok {
				to = end.Format(model.DateLayout)
			}
			switch rule.Kind() {
			case model.RuleFixedCap:
				rate, _ := rule.FixedRate()
				fmt.Printf("%s .. %s  %s (fixed %.0f%%)\n", from, to, rule.DisplayLabel(), rate)
			case model.RuleCpiBased:
				fmt.Printf("%s .. %s  %s (annual TÜFE)\n", from, to, rule.DisplayLabel())
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
