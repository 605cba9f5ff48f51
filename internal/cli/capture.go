package cli

import (
	"fmt"
	"strings"
	"time"

	"lucid-cli/internal/model"

	"github.com/spf13/cobra"
)

func newCaptureCmd(app *App) *cobra.Command {
	var (
		in       string
		on       string
		category string
		thought  string
		plan     string
	)

	cmd := &cobra.Command{
		Use:   "capture <text>",
		Short: "Lock away a new worry with a verification date",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return fmt.Errorf("worry text is empty")
			}

			var cat model.Category
			if c := strings.TrimSpace(category); c != "" {
				cat = model.Category(strings.ToLower(c))
				if !cat.Valid() {
					return fmt.Errorf("invalid category %q (work, health, social, finance, other)", category)
				}
			}

			checkDate, err := resolveCheckDate(in, on, time.Now())
			if err != nil {
				return err
			}

			var ref *model.Reframing
			if strings.TrimSpace(thought) != "" || strings.TrimSpace(plan) != "" {
				ref = &model.Reframing{
					RationalThought: strings.TrimSpace(thought),
					ActionPlan:      strings.TrimSpace(plan),
				}
			}

			s, err := app.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			w := s.Worries.Add(text, checkDate, cat, ref)
			fmt.Fprintf(cmd.OutOrStdout(), "Captured %s (verify %s)\n",
				w.ID, model.MillisTime(w.CheckDate).Format("2006-01-02 15:04"))
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "relative verification preset: 1d, 3d, 1w, 1m")
	cmd.Flags().StringVar(&on, "on", "", "explicit verification date (YYYY-MM-DD [HH:MM] or RFC3339)")
	cmd.Flags().StringVar(&category, "category", "", "category: work, health, social, finance, other")
	cmd.Flags().StringVar(&thought, "thought", "", "optional rational counter-thought")
	cmd.Flags().StringVar(&plan, "plan", "", "optional action plan")
	return cmd
}
