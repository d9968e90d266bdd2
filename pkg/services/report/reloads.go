package report

import (
	"strconv"
	"strings"

	"github.com/lotto-tools/report-center/pkg/models/domain"
)

func ReloadsByBank(in Input) domain.ReportViewModel {
	return buildGroupedReport(in, groupedReportConfig{
		title:     "Recargas por banco",
		family:    domain.FamilyReload,
		keyFn:     ByBank,
		groupNoun: "banco",
	})
}

func ReloadsByCustomer(in Input) domain.ReportViewModel {
	return aggregateByCustomer(in, customerReportConfig{
		title:  "Recargas por jugador",
		family: domain.FamilyReload,
		tiers:  ReloadTiers,
	})
}

// ReloadsByShop is the one grouped report with a nested grouping: besides
// the per-shop totals, each row lists the shop's top players, ranked by
// re-running the grouping engine over that shop's record subset alone.
func ReloadsByShop(in Input) domain.ReportViewModel {
	records := NormalizeAll(in.Batches, domain.FamilyReload)
	groups := Finalize(GroupBy(records, ByShop))
	SortByTotalDesc(groups)

	loc := in.locale()
	period := FormatPeriod(in.Start, in.End, loc)
	total := sumTotals(groups)

	rows := groupedTable(groups, total)
	for i, g := range groups {
		shopID, err := strconv.ParseInt(g.Key, 10, 64)
		if err != nil {
			continue
		}
		rows[i]["topPlayers"] = strings.Join(topPlayerNames(records, shopID, 3), ", ")
	}

	columns := append(groupedColumns("comercio"), domain.TableColumn{
		Key: "topPlayers", Label: "Top jugadores", Format: "text", Align: "left",
	})

	return domain.ReportViewModel{
		Title:        "Recargas por comercio",
		Period:       period,
		SummaryCards: groupedCards(groups, total, "comercio", period),
		ChartData:    BucketTopN(chartFromGroups(groups), in.chartTopN(), loc),
		TableData:    rows,
		TableColumns: columns,
	}
}
