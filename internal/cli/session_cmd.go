package cli

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	pokerapp "github.com/alexanderramin/pokerlog/internal/app"
	"github.com/alexanderramin/pokerlog/internal/cli/formatter"
	"github.com/alexanderramin/pokerlog/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "session",
		Aliases: []string{"s"},
		Short:   "Record and manage poker sessions",
	}

	cmd.AddCommand(
		newSessionAddCmd(app),
		newSessionListCmd(app),
		newSessionShowCmd(app),
		newSessionEditCmd(app),
		newSessionRemoveCmd(app),
	)

	return cmd
}

// sessionFlags binds the editable session fields as string flags so that
// amounts accept "$1,200.50" and blank values behave like the wizard.
type sessionFlags struct {
	date, gameType, location, stakes, notes string
	hours, buyIn, cashOut                   string
}

func (f *sessionFlags) register(fs *pflag.FlagSet, defaultType string) {
	fs.StringVar(&f.date, "date", "", "Session date YYYY-MM-DD (default today)")
	fs.StringVar(&f.gameType, "type", defaultType, "Game type, e.g. Cash or Tournament")
	fs.StringVar(&f.location, "location", "", "Where you played")
	fs.StringVar(&f.stakes, "stakes", "", "Stakes or buy-in level, e.g. 1/2")
	fs.StringVar(&f.hours, "hours", "", "Hours played")
	fs.StringVar(&f.buyIn, "buyin", "", "Total amount bought in for")
	fs.StringVar(&f.cashOut, "cashout", "", "Amount cashed out")
	fs.StringVar(&f.notes, "notes", "", "Free-form notes")
}

// apply copies the flags that were set on fs into in.
func (f *sessionFlags) apply(fs *pflag.FlagSet, in *domain.SessionInput) error {
	changed := func(name string) bool { return fs.Changed(name) }
	if changed("date") {
		in.Date = f.date
	}
	if changed("type") || in.Type == "" {
		in.Type = f.gameType
	}
	if changed("location") {
		in.Location = f.location
	}
	if changed("stakes") {
		in.Stakes = f.stakes
	}
	if changed("notes") {
		in.Notes = f.notes
	}
	for _, num := range []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"hours", f.hours, &in.Hours},
		{"buyin", f.buyIn, &in.BuyIn},
		{"cashout", f.cashOut, &in.CashOut},
	} {
		if !changed(num.name) {
			continue
		}
		v, err := parseAmount(num.raw)
		if err != nil {
			return fmt.Errorf("--%s: %w", num.name, err)
		}
		*num.dst = v
	}
	return nil
}

// parseAmount reads a number, tolerating a leading "$" and thousands
// separators. Blank input is zero.
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "$")
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if neg {
		v = -v
	}
	return v, nil
}

func newSessionAddCmd(app *App) *cobra.Command {
	var flags sessionFlags
	var wizard bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a session",
		Long: "Record a session. Profit is computed as cash-out minus buy-in.\n" +
			"With no flags on a terminal, an interactive form is shown.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			var in domain.SessionInput
			if wizard || (cmd.Flags().NFlag() == 0 && app.interactive()) {
				var err error
				in, err = runAddWizard(app)
				if errors.Is(err, errWizardCancelled) {
					fmt.Fprintln(out, formatter.Dim("Cancelled."))
					return nil
				}
				if err != nil {
					return err
				}
			} else if err := flags.apply(cmd.Flags(), &in); err != nil {
				return err
			}

			fmt.Fprintln(out, formatter.FormatResultPreview(in.BuyIn, in.CashOut))
			s, err := app.Sessions.Add(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatSessionSaved("Recorded", s))
			return nil
		},
	}

	flags.register(cmd.Flags(), "Cash")
	cmd.Flags().BoolVarP(&wizard, "interactive", "i", false, "Fill the session in with a form")

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var year int
	var all bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List this year's sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if all {
				sessions, err := app.Sessions.List(ctx)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessionList("All sessions", sessions))
				return nil
			}

			now := app.now()
			req := pokerapp.NewStatsRequest(now)
			req.AsOf = &now
			if year != 0 {
				req.Year = year
			}
			report, err := app.Stats.Report(ctx, req)
			if err != nil {
				return err
			}
			title := fmt.Sprintf("Sessions %d (Jan 1 → %s)", report.Year, report.Through.ID())
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessionList(title, report.Sessions))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to list (default current year)")
	cmd.Flags().BoolVar(&all, "all", false, "List every stored session in the order recorded")

	return cmd
}

func newSessionShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSessionID(ctx, app, args[0])
			if err != nil {
				return err
			}
			s, err := app.Sessions.Get(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSession(s))
			return nil
		},
	}
}

func newSessionEditCmd(app *App) *cobra.Command {
	var flags sessionFlags

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change fields of a recorded session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSessionID(ctx, app, args[0])
			if err != nil {
				return err
			}
			current, err := app.Sessions.Get(ctx, id)
			if err != nil {
				return err
			}
			if cmd.Flags().NFlag() == 0 {
				return fmt.Errorf("nothing to change: pass at least one field flag")
			}

			in := current.Input()
			if err := flags.apply(cmd.Flags(), &in); err != nil {
				return err
			}
			s, err := app.Sessions.Edit(ctx, id, in)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessionSaved("Updated", s))
			return nil
		},
	}

	flags.register(cmd.Flags(), "")

	return cmd
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm", "delete"},
		Short:   "Delete a session",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSessionID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Sessions.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed session %s\n", id)
			return nil
		},
	}
}
