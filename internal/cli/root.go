package cli

import (
	"time"

	"github.com/alexanderramin/educare/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Predictions service.PredictionService
	// History is nil when prediction history is disabled.
	History service.HistoryService

	// IsInteractive reports whether stdin is a terminal. Forms are refused
	// when it is nil or returns false.
	IsInteractive func() bool
	// Now defaults to time.Now.
	Now func() time.Time

	// Configure, when set, wires the services above from the config file
	// named by --config before any subcommand runs.
	Configure func(configPath string) error
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "educare" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "educare",
		Short:         "Student outcome prediction and personalized feedback",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Configure == nil {
				return nil
			}
			return app.Configure(configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.educare/config.yaml)")

	root.AddCommand(
		newPredictCmd(app),
		newHistoryCmd(app),
	)

	return root
}
