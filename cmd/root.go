package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"wifisim/config"
	"wifisim/connection"
	"wifisim/logging"
	"wifisim/netsource"
	"wifisim/tui"
)

const appName = "wifisim"

func newRootCmd() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Simulated Wi-Fi network selector",
		Long: `wifisim is a terminal Wi-Fi selector backed by a simulated radio.
Scans return a random set of nearby networks. Open networks connect after a
short delay; secured networks are rejected because no password entry exists.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return errors.Wrap(err, "invalid configuration")
			}

			path, err := logging.Init(appName, logging.Options{Path: cfg.LogFile, Level: cfg.LogLevel})
			if err != nil {
				return errors.Wrap(err, "could not set up logging")
			}
			defer logging.Sync()
			cmd.PrintErrf("Logging to %s\n", path)

			model, err := buildModel(cfg)
			if err != nil {
				return err
			}

			opts := []tea.ProgramOption{
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			}
			if !cfg.Inline {
				opts = append(opts, tea.WithAltScreen())
			}

			if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
				logging.L().Errorw("program exited with error", "error", err)
				return errors.Wrap(err, "error running application")
			}
			logging.L().Infow("program exited")
			return nil
		},
	}

	cfg.BindFlags(cmd.Flags())
	return cmd
}

// buildModel wires the simulated source, the scanner and the connection
// controller into the TUI model.
func buildModel(cfg config.Config) (tui.Model, error) {
	src, err := netsource.NewMockSource(cfg.MockConfig())
	if err != nil {
		return tui.Model{}, errors.Wrap(err, "could not create network source")
	}

	logging.L().Infow("starting",
		"pool", len(cfg.Pool),
		"scanDelay", cfg.ScanDelay.String(),
		"connectDelay", cfg.ConnectDelay.String(),
		"failureDelay", cfg.FailureDelay.String(),
	)

	return tui.New(netsource.NewScanner(src), connection.NewController(cfg.Delays())), nil
}
