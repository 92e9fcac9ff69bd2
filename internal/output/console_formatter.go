package output

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rgehrsitz/fdcalc/internal/domain"
)

// ConsoleFormatter renders a plain-text report for the terminal
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(r *Report) ([]byte, error) {
	var buf bytes.Buffer

	rule := strings.Repeat("=", 64)
	fmt.Fprintln(&buf, rule)
	if r.Bank != "" {
		fmt.Fprintln(&buf, strings.ToUpper(r.Bank))
	}
	fmt.Fprintln(&buf, strings.ToUpper(r.Title))
	fmt.Fprintln(&buf, rule)

	for _, s := range r.Sections {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, s.Title)
		fmt.Fprintln(&buf, strings.Repeat("-", utf8.RuneCountInString(s.Title)))

		width := 0
		for _, row := range s.Rows {
			if n := utf8.RuneCountInString(row.Label); n > width {
				width = n
			}
		}
		for _, row := range s.Rows {
			fmt.Fprintf(&buf, "%s:%s %s\n", row.Label, pad(width-utf8.RuneCountInString(row.Label)), row.Value)
		}

		if len(s.Columns) > 0 {
			writeGrid(&buf, s.Columns, s.Cells)
		}
	}

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Generated on: %s\n", r.GeneratedOn.Format(domain.DateLayout))
	if r.Footer != "" {
		fmt.Fprintln(&buf, r.Footer)
	}
	return buf.Bytes(), nil
}

func writeGrid(buf *bytes.Buffer, columns []string, cells [][]string) {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = utf8.RuneCountInString(c)
	}
	for _, row := range cells {
		for i, cell := range row {
			if i < len(widths) && utf8.RuneCountInString(cell) > widths[i] {
				widths[i] = utf8.RuneCountInString(cell)
			}
		}
	}

	line := func(values []string) {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = v + pad(widths[i]-utf8.RuneCountInString(v))
		}
		fmt.Fprintln(buf, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	line(columns)
	sep := make([]string, len(columns))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}
	line(sep)
	for _, row := range cells {
		line(row)
	}
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
