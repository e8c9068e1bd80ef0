package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past executions from the journal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if !cfg.History.Enabled {
			return fmt.Errorf("history is disabled (history.enabled = false)")
		}
		out, err := newOutput()
		if err != nil {
			return err
		}

		j, err := openJournal(cfg)
		if err != nil {
			return err
		}
		defer j.Close()

		recs, err := j.Recent(flagHistoryLimit)
		if err != nil {
			return err
		}

		if out.IsJSON() {
			return out.Write(recs)
		}

		headers := []string{"WHEN", "ACTION", "TIER", "EXIT", "OUTCOME", "COMMAND"}
		rows := make([][]string, 0, len(recs))
		for _, r := range recs {
			rows = append(rows, []string{
				r.StartedAt.Local().Format(time.DateTime),
				r.ActionID,
				r.Tier,
				strconv.Itoa(r.ExitCode),
				r.Outcome,
				r.Command,
			})
		}
		return out.Table(headers, rows)
	},
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete journal entries older than the retention window",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		j, err := openJournal(cfg)
		if err != nil {
			return err
		}
		defer j.Close()

		n, err := j.Prune(cfg.History.RetentionDays)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d entries older than %d days\n", n, cfg.History.RetentionDays)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "maximum number of entries to show")
	historyCmd.AddCommand(historyPruneCmd)
	rootCmd.AddCommand(historyCmd)
}
