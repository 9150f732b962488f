package export

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

type TableConfig struct {
	ColumnWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		ColumnWidth: 20,
	}
}

// preferredOrder pins well-known result columns; anything else follows in
// alphabetical order.
var preferredOrder = []string{
	"store_name", "date", "brand", "category", "region",
	"product_name", "total_sales", "total_quantity", "avg_price",
}

// Reporter renders result rows as a fixed-width text table.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(rows []domain.Row) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(c.writer, "結果がありません")
		return err
	}

	columns := columnsFor(rows[0])

	funcMap := template.FuncMap{
		"header": func() string {
			return c.formatCells(columns)
		},
		"formatRow": func(row domain.Row) string {
			cells := make([]string, len(columns))
			for i, col := range columns {
				cells[i] = formatValue(row[col])
			}
			return c.formatCells(cells)
		},
		"separator": func() string {
			parts := make([]string, len(columns))
			for i := range columns {
				parts[i] = strings.Repeat("-", c.config.ColumnWidth+2)
			}
			return "+" + strings.Join(parts, "+") + "+"
		},
	}

	tmpl := `{{separator}}
{{header}}
{{separator}}
{{range .Rows}}{{formatRow .}}
{{end}}{{separator}}
{{len .Rows}} 件
`

	t, err := template.New("table").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, struct{ Rows []domain.Row }{Rows: rows})
}

func (c *Reporter) formatCells(cells []string) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = fmt.Sprintf(" %-*s ", c.config.ColumnWidth, cell)
	}
	return "|" + strings.Join(parts, "|") + "|"
}

func columnsFor(row domain.Row) []string {
	var columns []string
	used := make(map[string]bool)
	for _, col := range preferredOrder {
		if _, ok := row[col]; ok {
			columns = append(columns, col)
			used[col] = true
		}
	}

	var rest []string
	for col := range row {
		if !used[col] {
			rest = append(rest, col)
		}
	}
	sort.Strings(rest)
	return append(columns, rest...)
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
