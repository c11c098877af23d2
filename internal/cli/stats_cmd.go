package cli

import (
	"context"
	"fmt"
	"time"

	pokerapp "github.com/alexanderramin/pokerlog/internal/app"
	"github.com/alexanderramin/pokerlog/internal/cli/formatter"
	"github.com/alexanderramin/pokerlog/internal/domain"
	"github.com/spf13/cobra"
)

type statsOptions struct {
	year     int
	asOf     string
	days     bool
	sessions bool
}

// statsRequest turns flags into a request. --as-of replaces today's date
// and keeps the local time zone.
func (o statsOptions) statsRequest(now time.Time) (pokerapp.StatsRequest, error) {
	asOf := now
	if o.asOf != "" {
		day, ok := domain.ParseLocalDayID(o.asOf)
		if !ok {
			return pokerapp.StatsRequest{}, fmt.Errorf("--as-of: %w: got %q", domain.ErrInvalidDate, o.asOf)
		}
		asOf = day.At(now.Location())
	}
	req := pokerapp.NewStatsRequest(asOf)
	req.AsOf = &asOf
	if o.year != 0 {
		req.Year = o.year
	}
	return req, nil
}

func printStats(cmd *cobra.Command, app *App, opts statsOptions) error {
	req, err := opts.statsRequest(app.now())
	if err != nil {
		return err
	}
	report, err := app.Stats.Report(context.Background(), req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, formatter.FormatStats(report))
	if opts.days {
		fmt.Fprint(out, formatter.RenderBox("By date", formatter.FormatDays(report)))
	}
	if opts.sessions {
		fmt.Fprint(out, formatter.FormatSessionList("Sessions", report.Sessions))
	}
	return nil
}

func newStatsCmd(app *App) *cobra.Command {
	var opts statsOptions

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Year-to-date profit, rates and best month, date and weekday",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printStats(cmd, app, opts)
		},
	}

	cmd.Flags().IntVar(&opts.year, "year", 0, "Year to report (default current year)")
	cmd.Flags().StringVar(&opts.asOf, "as-of", "", "Report as if today were this date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&opts.days, "days", false, "Include the per-date breakdown")
	cmd.Flags().BoolVar(&opts.sessions, "sessions", false, "Include the session list")

	return cmd
}

func newYearsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "years",
		Short: "List the years that can be reported on",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			years, err := app.Stats.Years(context.Background(), now)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatYears(years, now.Year()))
			return nil
		},
	}
}
