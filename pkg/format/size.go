// Package format renders byte sizes and timestamps for the file browser.
package format

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
)

// ErrInvalidSize is returned by ParseSize for input it cannot read.
var ErrInvalidSize = errors.New("invalid size")

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// Size formats a byte count using binary (1024) steps, e.g. 1536 -> "1.5 KB".
// The magnitude is rounded to two decimals with trailing zeros dropped.
// Counts past the TB range stay in TB. Zero and negative counts give "0 B".
func Size(bytes int64) string {
	if bytes <= 0 {
		return "0 B"
	}

	i := 0
	for i < len(sizeUnits)-1 && bytes >= int64(1)<<(10*(i+1)) {
		i++
	}

	v := float64(bytes) / float64(int64(1)<<(10*i))
	v = math.Round(v*100) / 100
	return humanize.FtoaWithDigits(v, 2) + " " + sizeUnits[i]
}

// Size labels printed by Size are binary, so their decimal spellings are
// read as binary too: "1 KB" == 1024.
var binaryUnits = map[string]string{
	"k": "kib", "kb": "kib",
	"m": "mib", "mb": "mib",
	"g": "gib", "gb": "gib",
	"t": "tib", "tb": "tib",
	"p": "pib", "pb": "pib",
	"e": "eib", "eb": "eib",
}

// ParseSize reads a human size such as "42", "1.5 KB" or "10MiB".
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexFunc(s, unicode.IsLetter); i > 0 {
		if unit, ok := binaryUnits[strings.ToLower(strings.TrimSpace(s[i:]))]; ok {
			s = strings.TrimSpace(s[:i]) + " " + unit
		}
	}

	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidSize, s, err)
	}
	if n > math.MaxInt64 {
		return 0, fmt.Errorf("%w %q: out of range", ErrInvalidSize, s)
	}
	return int64(n), nil
}
