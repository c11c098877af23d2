package cli

import (
	"github.com/alexanderramin/pokerlog/internal/backup"
	"github.com/spf13/pflag"
)

// backupFormatFlag is a --format value that remembers whether it was set,
// so an unset flag can fall back to the file extension.
type backupFormatFlag struct {
	value backup.Format
	set   bool
}

var _ pflag.Value = (*backupFormatFlag)(nil)

func (f *backupFormatFlag) String() string { return string(f.value) }

func (f *backupFormatFlag) Set(s string) error {
	v, err := backup.ParseFormat(s)
	if err != nil {
		return err
	}
	f.value = v
	f.set = true
	return nil
}

func (f *backupFormatFlag) Type() string { return "json|csv" }

// forPath returns the explicit format or guesses one from path.
func (f *backupFormatFlag) forPath(path string) backup.Format {
	if f.set {
		return f.value
	}
	return backup.FormatForPath(path)
}
