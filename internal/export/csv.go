// Package export renders already-resolved rows as CSV. The dashboard offers
// "export what you see" on guests and reports; the serializer is a display
// convenience, not a validated pipeline, and never fails on malformed input.
package export

import (
	"strings"
	"time"

	"femida/internal/utils"
)

// Serialize joins a header line and one line per record with \n and no
// trailing newline. Every field is double-quoted with internal quotes
// doubled, so commas, quotes and newlines inside free-text fields survive
// any standard CSV parser. Short rows pad with empty fields; long rows are
// truncated to the header width.
func Serialize(headers []string, rows [][]string) string {
	var b strings.Builder
	writeLine(&b, headers, len(headers))
	for _, row := range rows {
		b.WriteByte('\n')
		writeLine(&b, row, len(headers))
	}
	return b.String()
}

func writeLine(b *strings.Builder, fields []string, width int) {
	for i := 0; i < width; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		var f string
		if i < len(fields) {
			f = fields[i]
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
}

// Filename embeds the export's logical name and the current date:
// guests_2024-06-10.csv.
func Filename(name string, now time.Time) string {
	return name + "_" + utils.FormatDate(now) + ".csv"
}
