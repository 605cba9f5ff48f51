package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent journal activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if s.History == nil {
				return fmt.Errorf("activity log is unavailable")
			}
			entries, err := s.History.Recent(limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No activity yet.")
				return nil
			}
			for _, e := range entries {
				line := fmt.Sprintf("%s  %-9s %s", e.At.Format("2006-01-02 15:04"), e.Event, e.WorryID)
				if e.Detail != "" {
					line += "  " + e.Detail
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries to show")
	return cmd
}
