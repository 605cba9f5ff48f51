package cli

import (
	"fmt"
	"time"

	"lucid-cli/internal/model"

	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the lucidity rate summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			sum := model.Summarize(s.Worries.All())
			due := len(s.Worries.Due(time.Now()))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Lucidity rate: %s\n", sum.RateLabel())
			fmt.Fprintf(out, "Worries:       %d total, %d pending (%d due now)\n", sum.Total, sum.Pending, due)
			fmt.Fprintf(out, "Resolved:      %d did not happen, %d happened\n", sum.DidNotHappen, sum.Happened)
			fmt.Fprintln(out)
			fmt.Fprintln(out, model.Phrase(sum, s.UserName()))
			return nil
		},
	}
	return cmd
}
