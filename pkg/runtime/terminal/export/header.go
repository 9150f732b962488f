package export

import (
	"fmt"
	"io"
	"os"
	"text/template"
)

// Header is the preamble printed before a result table.
type Header struct {
	Understood string
	Summary    string
	SQL        string
}

// HeaderReporter prints what was understood from the question and the
// query it compiled to.
type HeaderReporter struct {
	writer io.Writer
}

func NewHeaderReporter(writer io.Writer) *HeaderReporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &HeaderReporter{writer: writer}
}

func (c *HeaderReporter) Handle(header Header) error {
	tmpl := `解析結果: {{.Understood}}
{{if .Summary}}{{.Summary}}
{{end}}{{if .SQL}}
{{.SQL}}

{{end}}`
	t, err := template.New("header").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, header)
}
