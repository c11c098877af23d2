package app

import "github.com/alexanderramin/pokerlog/internal/backup"

// ExportResult describes a finished export.
type ExportResult struct {
	Format   backup.Format
	Sessions int
}

// ImportResult describes a finished import. Replaced is the number of
// sessions that existed before the import overwrote them.
type ImportResult struct {
	Imported int
	Replaced int
}
