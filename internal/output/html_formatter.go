package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/fdcalc/internal/domain"
)

// HTMLFormatter produces a printable HTML report
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"date": func(r *Report) string { return r.GeneratedOn.Format(domain.DateLayout) },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
