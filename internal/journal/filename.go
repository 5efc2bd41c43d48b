package journal

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// TimestampLayout renders YYYY-MM-DD_HH-MM-SS in local time.
const TimestampLayout = "2006-01-02_15-04-05"

const fileExt = ".txt"

// FileName builds "{owner}_{timestamp}.txt".
func FileName(owner string, t time.Time) string {
	return fileStem(owner, t) + fileExt
}

func fileStem(owner string, t time.Time) string {
	return SafeOwner(owner) + "_" + t.Format(TimestampLayout)
}

// suffixedName is the n-th alternative for a name already taken, n >= 2.
func suffixedName(stem string, n int) string {
	return fmt.Sprintf("%s_%d%s", stem, n, fileExt)
}

// SafeOwner replaces characters that cannot appear in a file name.
func SafeOwner(owner string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '/', r == '\\':
			return '-'
		case strings.ContainsRune(`:*?"<>|`, r):
			return '-'
		case r < 0x20 || r == 0x7f:
			return '-'
		default:
			return r
		}
	}, owner)
}

// EnsureDir creates dir if needed; an existing directory is left untouched.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}
