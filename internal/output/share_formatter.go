package output

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"
)

// ShareFormatter renders a short message suitable for chat apps, with
// *bold* headings. IncludeLink appends a WhatsApp share link.
type ShareFormatter struct {
	IncludeLink bool
}

func (s ShareFormatter) Name() string { return "share" }

func (s ShareFormatter) Format(r *Report) ([]byte, error) {
	var buf bytes.Buffer

	if r.Bank != "" {
		fmt.Fprintf(&buf, "*%s - %s*\n", r.Bank, r.Title)
	} else {
		fmt.Fprintf(&buf, "*%s*\n", r.Title)
	}

	for _, sec := range r.Sections {
		fmt.Fprintf(&buf, "\n*%s:*\n", sec.Title)
		for _, row := range sec.Rows {
			fmt.Fprintf(&buf, "%s: %s\n", row.Label, row.Value)
		}
		for _, cells := range sec.Cells {
			if line := shareLine(sec.Columns, cells); line != "" {
				fmt.Fprintln(&buf, line)
			}
		}
	}

	if r.Footer != "" {
		fmt.Fprintf(&buf, "\n%s\n", r.Footer)
	}

	if s.IncludeLink {
		fmt.Fprintf(&buf, "\n%s\n", WhatsAppURL(buf.String()))
	}
	return buf.Bytes(), nil
}

// shareLine flattens a table row. Two-column rows read "Column value: value";
// wider rows read "label: Column value / Column value / ...".
func shareLine(columns, cells []string) string {
	switch {
	case len(cells) == 0:
		return ""
	case len(cells) == 1:
		return cells[0]
	case len(cells) == 2 && len(columns) == 2:
		return fmt.Sprintf("%s %s: %s", columns[0], cells[0], cells[1])
	}

	parts := make([]string, 0, len(cells)-1)
	for i, cell := range cells[1:] {
		if i+1 < len(columns) {
			parts = append(parts, columns[i+1]+" "+cell)
		} else {
			parts = append(parts, cell)
		}
	}
	return cells[0] + ": " + strings.Join(parts, " / ")
}

// WhatsAppURL returns a wa.me link that opens a chat prefilled with message
func WhatsAppURL(message string) string {
	return "https://wa.me/?text=" + strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}
