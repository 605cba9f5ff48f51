package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all journal data (worries, name, preferences)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("refusing to wipe data without --force")
			}
			s, err := app.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			s.Reset()
			fmt.Fprintln(cmd.OutOrStdout(), "All journal data deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "confirm deletion")
	return cmd
}
