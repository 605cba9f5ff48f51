package cli

import (
	"fmt"

	"lucid-cli/internal/model"

	"github.com/spf13/cobra"
)

func newResolveCmd(app *App) *cobra.Command {
	var (
		happened     bool
		didNotHappen bool
		reflection   string
	)

	cmd := &cobra.Command{
		Use:   "resolve <worry-id>",
		Short: "Record whether a worry actually happened",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if happened == didNotHappen {
				return fmt.Errorf("pick exactly one of --happened or --did-not-happen")
			}
			status := model.StatusDidNotHappen
			if happened {
				status = model.StatusHappened
			}

			s, err := app.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			id := args[0]
			if _, ok := s.Worries.Get(id); !ok {
				return fmt.Errorf("worry not found: %s", id)
			}
			s.Worries.Resolve(id, status, reflection)
			fmt.Fprintf(cmd.OutOrStdout(), "Resolved %s as %s\n", id, status)
			return nil
		},
	}

	cmd.Flags().BoolVar(&happened, "happened", false, "the feared outcome occurred")
	cmd.Flags().BoolVar(&didNotHappen, "did-not-happen", false, "the feared outcome did not occur")
	cmd.Flags().StringVar(&reflection, "reflection", "", "optional reflection note")
	return cmd
}

func newDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <worry-id>",
		Short: "Delete a worry from the journal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			id := args[0]
			if _, ok := s.Worries.Get(id); !ok {
				return fmt.Errorf("worry not found: %s", id)
			}
			s.Worries.Remove(id)
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
			return nil
		},
	}
	return cmd
}
