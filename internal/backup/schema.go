// Package backup reads and writes portable snapshots of the session log.
package backup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
)

// FormatVersion is written into every JSON backup.
const FormatVersion = 2

// ErrInvalidBackup marks input that is not a usable backup document.
var ErrInvalidBackup = errors.New("invalid backup file")

// Format selects the on-disk encoding of a backup.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat accepts "json" or "csv" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unknown backup format %q (expected json or csv)", s)
	}
}

// FormatForPath guesses the format from a file extension, defaulting to JSON.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FormatCSV
	}
	return FormatJSON
}

// Document is the top-level JSON structure of a backup. Sessions is a
// pointer so a missing or null list can be told apart from an empty one.
type Document struct {
	Version    int              `json:"version"`
	ExportedAt string           `json:"exportedAt"`
	Sessions   *[]SessionRecord `json:"sessions"`
}

// SessionRecord is one session as it appears in a backup file.
type SessionRecord struct {
	ID        string  `json:"id" csv:"id"`
	Date      string  `json:"date" csv:"date"`
	Type      string  `json:"type" csv:"type"`
	Location  string  `json:"location" csv:"location"`
	Stakes    string  `json:"stakes" csv:"stakes"`
	Hours     float64 `json:"hours" csv:"hours"`
	BuyIn     float64 `json:"buyin" csv:"buyin"`
	CashOut   float64 `json:"cashout" csv:"cashout"`
	Profit    float64 `json:"profit" csv:"profit"`
	Notes     string  `json:"notes" csv:"notes"`
	CreatedAt int64   `json:"createdAt" csv:"createdAt"`
}

// DefaultFilename names a backup exported on the local day of now.
func DefaultFilename(now time.Time, f Format) string {
	return fmt.Sprintf("pokerlog-backup-%s.%s", now.Format("2006-01-02"), f)
}

// Decode reads a backup in the given format and returns its session
// records. Any structural problem is reported as ErrInvalidBackup.
func Decode(r io.Reader, f Format) ([]SessionRecord, error) {
	switch f {
	case FormatCSV:
		return decodeCSV(r)
	default:
		return decodeJSON(r)
	}
}

func decodeJSON(r io.Reader) ([]SessionRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading backup: %w", err)
	}
	// Elements decode through pointers so a null entry stays nil instead
	// of becoming a blank record.
	var doc struct {
		Version  int               `json:"version"`
		Sessions *[]*SessionRecord `json:"sessions"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if doc.Sessions == nil {
		return nil, fmt.Errorf("%w: sessions list is missing", ErrInvalidBackup)
	}
	records := make([]SessionRecord, 0, len(*doc.Sessions))
	for i, rec := range *doc.Sessions {
		if rec == nil {
			return nil, fmt.Errorf("%w: sessions[%d] is not an object", ErrInvalidBackup, i)
		}
		records = append(records, *rec)
	}
	return records, nil
}

func decodeCSV(r io.Reader) ([]SessionRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading backup: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty csv file", ErrInvalidBackup)
	}
	var records []SessionRecord
	if err := gocsv.UnmarshalBytes(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	return records, nil
}

// Encode writes records as a backup in the given format. JSON output
// carries the format version and exportedAt stamp.
func Encode(w io.Writer, f Format, records []SessionRecord, exportedAt time.Time) error {
	if records == nil {
		records = []SessionRecord{}
	}
	switch f {
	case FormatCSV:
		if err := gocsv.Marshal(&records, w); err != nil {
			return fmt.Errorf("writing csv backup: %w", err)
		}
		return nil
	default:
		doc := Document{
			Version:    FormatVersion,
			ExportedAt: exportedAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
			Sessions:   &records,
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("writing json backup: %w", err)
		}
		return nil
	}
}
