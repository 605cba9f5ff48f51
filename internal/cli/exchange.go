package cli

import (
	"fmt"
	"os"
	"time"

	"lucid-cli/internal/export"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export all worries as a JSON backup",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			ws := s.Worries.All()
			if len(args) == 0 {
				b, err := export.Marshal(ws)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			if err := export.WriteFile(args[0], ws); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d worries to %s\n", len(ws), args[0])
			return nil
		},
	}
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the journal with worries from a JSON backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := export.ReadFile(args[0])
			if err != nil {
				// Reject before touching the store; prior state stays intact.
				return err
			}

			s, err := app.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Worries.ReplaceAll(ws); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d worries\n", len(ws))
			return nil
		},
	}
	return cmd
}

func newICSCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ics <worry-id> [file]",
		Short: "Write a calendar invite for a worry's verification date",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			w, ok := s.Worries.Get(args[0])
			if !ok {
				return fmt.Errorf("worry not found: %s", args[0])
			}
			invite := export.CalendarInvite(w, time.Now())
			if len(args) == 2 {
				if err := os.WriteFile(args[1], []byte(invite), 0o644); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", args[1])
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), invite)
			return nil
		},
	}
	return cmd
}
