package cli

import (
	"fmt"
	"time"

	"lucid-cli/internal/model"

	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var (
		pendingOnly  bool
		resolvedOnly bool
		dueOnly      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List worries (newest first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			now := time.Now()
			var ws []model.Worry
			if dueOnly {
				ws = s.Worries.Due(now)
			} else {
				ws = model.SortForDisplay(s.Worries.All())
			}

			shown := 0
			for _, w := range ws {
				if pendingOnly && w.Status != model.StatusPending {
					continue
				}
				if resolvedOnly && !w.Resolved() {
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatWorryLine(w, now))
				shown++
			}
			if shown == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No worries. Nothing locked away yet.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&pendingOnly, "pending", false, "only pending worries")
	cmd.Flags().BoolVar(&resolvedOnly, "resolved", false, "only resolved worries")
	cmd.Flags().BoolVar(&dueOnly, "due", false, "only pending worries whose check date has passed")
	return cmd
}

func formatWorryLine(w model.Worry, now time.Time) string {
	marker := " "
	switch {
	case w.Status == model.StatusHappened:
		marker = "!"
	case w.Status == model.StatusDidNotHappen:
		marker = "✓"
	case w.Due(now):
		marker = "●"
	}
	line := fmt.Sprintf("%s %s  %s", marker, w.ID, w.Text)
	if w.Status == model.StatusPending {
		line += fmt.Sprintf("  (verify %s)", model.MillisTime(w.CheckDate).Format("2006-01-02 15:04"))
	}
	if w.Category != "" {
		line += "  [" + w.Category.Label() + "]"
	}
	return line
}
