package cli

import (
	"log/slog"
	"os"
	"strings"

	"lucid-cli/internal/store"
	"lucid-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "lucid",
		Short:        "Lucid (local-first) worry journal CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive journal
  lucid

  # Scriptable commands
  lucid capture "The talk goes badly" --in 3d --category work
  lucid list --due
  lucid resolve <worry-id> --did-not-happen
  lucid stats
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", "", "data directory (default ~/.lucid, or LUCID_DATA_DIR)")

	cmd.AddCommand(
		newCaptureCmd(app),
		newListCmd(app),
		newResolveCmd(app),
		newDeleteCmd(app),
		newStatsCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newICSCmd(app),
		newHistoryCmd(app),
		newResetCmd(app),
	)
	return cmd
}

// openStore resolves the data directory and loads the journal. The caller
// owns the returned store and must Close it so debounced writes flush.
func (app *App) openStore() (*store.Store, error) {
	dir := strings.TrimSpace(app.Dir)
	if dir == "" {
		d, err := store.DataDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return store.Open(dir, log)
}

func runTUI(app *App) error {
	s, err := app.openStore()
	if err != nil {
		return err
	}
	defer s.Close()
	return tui.Run(s)
}
