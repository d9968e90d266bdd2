package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/lotto-tools/report-center/pkg/models/domain"
)

type TableConfig struct {
	ColumnWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{ColumnWidth: 22}
}

// Reporter renders a report view-model as formatted text for the console.
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

func (c *Reporter) Handle(vm domain.ReportViewModel) error {
	width := c.config.ColumnWidth

	funcMap := template.FuncMap{
		"cell": func(v any) string {
			s := fmt.Sprintf("%v", v)
			if f, ok := v.(float64); ok {
				s = fmt.Sprintf("%.2f", f)
			}
			if len(s) > width {
				s = s[:width]
			}
			return fmt.Sprintf("%-*s", width, s)
		},
		"row": func(row map[string]any, columns []domain.TableColumn) []any {
			values := make([]any, 0, len(columns))
			for _, col := range columns {
				v, ok := row[col.Key]
				if !ok {
					v = ""
				}
				values = append(values, v)
			}
			return values
		},
		"separator": func(n int) string {
			return strings.Repeat("-", (width+2)*n)
		},
	}

	tmpl := `
{{.Title}}
{{.Period.Dates}} ({{.Period.Duration}})

{{range .SummaryCards}}{{.Label}}: {{.Value}}{{if .Hint}} ({{.Hint}}){{end}}
{{end}}
{{if .ChartData}}Distribución:
{{range .ChartData}}  {{cell .Name}} {{printf "%.2f" .Value}}
{{end}}{{end}}
{{if .TableColumns}}{{range .TableColumns}}{{cell .Label}}| {{end}}
{{separator (len .TableColumns)}}
{{$columns := .TableColumns}}{{range .TableData}}{{range (row . $columns)}}{{cell .}}| {{end}}
{{end}}{{end}}`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, vm)
}
