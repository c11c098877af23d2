package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pokerlog/internal/app"
)

// FormatExportResult confirms a written backup.
func FormatExportResult(res *app.ExportResult, path string) string {
	return fmt.Sprintf("%s %d session(s) to %s (%s)\n",
		StyleGreen.Render("Exported"), res.Sessions, Bold(path), strings.ToUpper(string(res.Format)))
}

// FormatImportResult confirms a restored backup.
func FormatImportResult(res *app.ImportResult) string {
	return fmt.Sprintf("%s %d session(s), replacing %d\n",
		StyleGreen.Render("Imported"), res.Imported, res.Replaced)
}

// FormatCleared confirms a clear-all.
func FormatCleared(n int) string {
	return fmt.Sprintf("%s %d session(s)\n", StyleRed.Render("Cleared"), n)
}
