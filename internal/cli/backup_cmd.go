package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/pokerlog/internal/backup"
	"github.com/alexanderramin/pokerlog/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// stdioPath selects stdin or stdout instead of a file.
const stdioPath = "-"

func newBackupCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or restore the session log",
	}

	cmd.AddCommand(
		newBackupExportCmd(app),
		newBackupImportCmd(app),
	)

	return cmd
}

func newBackupExportCmd(app *App) *cobra.Command {
	var outPath string
	var format backupFormatFlag

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every session to a JSON or CSV backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			now := app.now()

			if outPath == stdioPath {
				f := format.forPath("")
				_, err := app.Backup.Export(ctx, cmd.OutOrStdout(), f, now)
				return err
			}

			f := format.forPath(outPath)
			if outPath == "" {
				outPath = backup.DefaultFilename(now, f)
			}

			file, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating backup file: %w", err)
			}
			res, err := app.Backup.Export(ctx, file, f, now)
			if closeErr := file.Close(); err == nil && closeErr != nil {
				err = fmt.Errorf("closing backup file: %w", closeErr)
			}
			if err != nil {
				_ = os.Remove(outPath)
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatExportResult(res, outPath))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file, or - for stdout (default pokerlog-backup-<today>.<format>)")
	cmd.Flags().Var(&format, "format", "Backup format: json or csv (default from --out extension, else json)")

	return cmd
}

func newBackupImportCmd(app *App) *cobra.Command {
	var format backupFormatFlag

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Replace all sessions with the contents of a backup",
		Long: "Replace all sessions with the contents of a backup. The file is fully\n" +
			"checked first; if it is not a valid backup nothing is changed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			var r io.Reader
			if path == stdioPath {
				r = cmd.InOrStdin()
			} else {
				file, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("opening backup file: %w", err)
				}
				defer file.Close()
				r = file
			}

			res, err := app.Backup.Import(context.Background(), r, format.forPath(path))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(res))
			return nil
		},
	}

	cmd.Flags().Var(&format, "format", "Backup format: json or csv (default from file extension)")

	return cmd
}

var errClearNeedsConfirmation = errors.New("refusing to clear without confirmation: pass --yes")

func newClearCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete ALL sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				if !app.interactive() {
					return errClearNeedsConfirmation
				}
				confirmed := false
				err := wizardConfirm("Clear ALL sessions? This cannot be undone.", &confirmed).Run()
				if err != nil && !errors.Is(err, huh.ErrUserAborted) {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}

			n, err := app.Backup.Clear(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCleared(n))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
