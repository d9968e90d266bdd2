package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/lotto-tools/report-center/pkg/models/domain"
)

// WriteCSV writes a report's table to w, one row per table entry, columns
// in the report's column order.
func WriteCSV(w io.Writer, vm domain.ReportViewModel) error {
	writer := csv.NewWriter(w)

	header := make([]string, 0, len(vm.TableColumns))
	for _, col := range vm.TableColumns {
		header = append(header, col.Label)
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, row := range vm.TableData {
		record := make([]string, 0, len(vm.TableColumns))
		for _, col := range vm.TableColumns {
			record = append(record, formatCell(row[col.Key]))
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatCell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case float64:
		return fmt.Sprintf("%.2f", t)
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}
