package enginehost

import (
	"fmt"
	"io"
)

// FormatStats renders the requested metadata keys as "key: value" lines
// in key-list order. Keys absent from info are omitted, never defaulted,
// so a quiet engine yields a short list rather than padded zeros.
func FormatStats(info Info, keys []string) []string {
	var lines []string
	for _, k := range keys {
		if v, ok := info[k]; ok {
			lines = append(lines, fmt.Sprintf("%s: %v", k, v))
		}
	}
	return lines
}

// WriteStats writes the requested keys to w, one indented line each.
// This is the display form behind every adapter's WriteStats method.
func WriteStats(w io.Writer, info Info, keys []string) {
	for _, k := range keys {
		if v, ok := info[k]; ok {
			fmt.Fprintf(w, "    %s: %v\n", k, v)
		}
	}
}
