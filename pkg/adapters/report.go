package adapters

import (
	"github.com/lotto-tools/report-center/pkg/models/api"
	"github.com/lotto-tools/report-center/pkg/models/domain"
	"github.com/lotto-tools/report-center/pkg/services/report"
)

func MapReportDomainToApi(vm domain.ReportViewModel) api.ReportViewModel {
	out := api.ReportViewModel{
		Title: vm.Title,
		Period: api.PeriodInfo{
			Dates:    vm.Period.Dates,
			Duration: vm.Period.Duration,
		},
		SummaryCards: make([]api.SummaryCard, 0, len(vm.SummaryCards)),
		ChartData:    make([]api.ChartPoint, 0, len(vm.ChartData)),
		TableData:    vm.TableData,
		TableColumns: make([]api.TableColumn, 0, len(vm.TableColumns)),
	}

	for _, c := range vm.SummaryCards {
		out.SummaryCards = append(out.SummaryCards, api.SummaryCard{
			Label: c.Label,
			Value: c.Value,
			Hint:  c.Hint,
		})
	}
	for _, p := range vm.ChartData {
		out.ChartData = append(out.ChartData, api.ChartPoint{Name: p.Name, Value: p.Value})
	}
	for _, c := range vm.TableColumns {
		out.TableColumns = append(out.TableColumns, api.TableColumn{
			Key:      c.Key,
			Label:    c.Label,
			Format:   c.Format,
			Align:    c.Align,
			Sortable: c.Sortable,
		})
	}
	return out
}

func MapDescriptorDomainToApi(d report.Descriptor) api.ReportDescriptor {
	return api.ReportDescriptor{
		Entity:    string(d.Entity),
		Grouping:  string(d.Grouping),
		Title:     d.Title,
		Icon:      d.Icon,
		ChartType: d.ChartType,
	}
}
