package pdftext

import "strings"

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n", "\f", "\n")

// Normalize squeezes the whitespace inside each line to single spaces and keeps at
// most one blank line between blocks. Line breaks survive: amounts on invoices are
// often split from their labels and the grand total patterns rely on that.
func Normalize(s string) string {
	lines := strings.Split(lineBreaks.Replace(s), "\n")
	out := lines[:0]
	blank := false
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" && blank {
			continue
		}
		blank = line == ""
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
