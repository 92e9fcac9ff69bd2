package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rgehrsitz/fdcalc/internal/domain"
)

// CSVFormatter produces the spreadsheet export: a title block followed by
// parameter/value rows, one block per section.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(r *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	records := [][]string{}
	if r.Bank != "" {
		records = append(records, []string{r.Bank})
	}
	records = append(records, []string{r.Title}, []string{""})

	for i, s := range r.Sections {
		if i == 0 && len(s.Rows) > 0 {
			records = append(records, []string{"Parameter", "Value"})
		} else {
			records = append(records, []string{s.Title})
		}
		for _, row := range s.Rows {
			records = append(records, []string{row.Label, row.Value})
		}
		if len(s.Columns) > 0 {
			records = append(records, s.Columns)
			records = append(records, s.Cells...)
		}
		records = append(records, []string{""})
	}
	records = append(records, []string{"Generated on", r.GeneratedOn.Format(domain.DateLayout)})

	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
