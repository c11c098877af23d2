package cli

import (
	"time"

	"github.com/alexanderramin/pokerlog/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Sessions service.SessionService
	Stats    service.StatsService
	Backup   service.BackupService

	// IsInteractive reports whether prompts can be shown. Nil means never.
	IsInteractive func() bool
	// Now overrides the wall clock for defaults such as today's date.
	Now func() time.Time
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

// NewRootCmd creates the top-level "pokerlog" command and registers all
// subcommands against the provided App. Run bare, it opens the dashboard
// on a terminal and prints the stats report otherwise.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "pokerlog",
		Short:         "Poker session log with year-to-date stats",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runDashboard(app)
			}
			return printStats(cmd, app, statsOptions{})
		},
	}

	root.AddCommand(
		newSessionCmd(app),
		newStatsCmd(app),
		newYearsCmd(app),
		newBackupCmd(app),
		newClearCmd(app),
		newDashboardCmd(app),
	)

	return root
}
