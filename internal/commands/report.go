package commands

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/config"
	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/ledger"
	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/rules"
)

func newReportCommand() *cobra.Command {
	var configPath string
	var month string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print per-category totals for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := time.Parse("2006-01", month); err != nil {
				return fmt.Errorf("invalid month %q, expected YYYY-MM", month)
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			l, err := loadLedger(cfg)
			if err != nil {
				return err
			}

			return runReport(cmd.OutOrStdout(), l, month)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "agent.yaml", "path to agent.yaml")
	cmd.Flags().StringVar(&month, "month", "", "month to report, YYYY-MM (required)")
	_ = cmd.MarkFlagRequired("month")

	return cmd
}

func runReport(out io.Writer, l *ledger.Ledger, month string) error {
	overview := l.MonthOverview(month)
	if len(overview) == 0 {
		fmt.Fprintf(out, "No transactions recorded for %s.\n", month)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Category\tAmount\n")
	for _, ct := range overview {
		if ct.Category == rules.CategoryIncome {
			continue
		}
		fmt.Fprintf(w, "%s\t€%s\n", ct.Category, ct.Total.StringFixed(2))
	}
	fmt.Fprintf(w, "\nIncome\t€%s\n", l.SumIncome(month).StringFixed(2))
	return w.Flush()
}
