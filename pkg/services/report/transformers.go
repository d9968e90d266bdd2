package report

import (
	"fmt"
	"time"

	"github.com/lotto-tools/report-center/pkg/models/domain"
	"github.com/lotto-tools/report-center/pkg/models/store"
)

const defaultChartTopN = 10

// Input is everything a transformer needs for one report run: the per-bank
// contributions already fetched and merged by the caller, plus the validated
// date range. Transformers are pure; they share no state between runs.
type Input struct {
	Batches   []store.SourceBatch
	Start     time.Time
	End       time.Time
	Locale    Locale
	ChartTopN int
}

func (in Input) locale() Locale {
	if in.Locale == (Locale{}) {
		return LocaleES
	}
	return in.Locale
}

func (in Input) chartTopN() int {
	if in.ChartTopN <= 0 {
		return defaultChartTopN
	}
	return in.ChartTopN
}

// TransformFunc is one (entity, grouping) report: a straight-line
// composition of normalize, group, rank/bucket and period formatting.
type TransformFunc func(Input) domain.ReportViewModel

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func formatCount(n int) string {
	return fmt.Sprintf("%d", n)
}

func sumTotals(groups []*domain.GroupSummary) float64 {
	var total float64
	for _, g := range groups {
		total += g.TotalAmount
	}
	return total
}

func sumCounts(groups []*domain.GroupSummary) int {
	var count int
	for _, g := range groups {
		count += g.Count
	}
	return count
}

func chartFromGroups(groups []*domain.GroupSummary) []domain.ChartPoint {
	points := make([]domain.ChartPoint, 0, len(groups))
	for _, g := range groups {
		points = append(points, domain.ChartPoint{Name: g.Label, Value: g.TotalAmount})
	}
	return points
}

// share of the total volume one group holds, guarded against a zero total.
func shareOf(g *domain.GroupSummary, total float64) float64 {
	if total == 0 {
		return 0
	}
	return g.TotalAmount / total * 100
}

// groupedReportConfig parameterizes the entity-keyed reports (bank, shop,
// method, tier groupings), which only differ in title, record family, key
// function and the noun their cards use.
type groupedReportConfig struct {
	title     string
	family    domain.Family
	keyFn     KeyFunc
	groupNoun string
}

func buildGroupedReport(in Input, cfg groupedReportConfig) domain.ReportViewModel {
	records := NormalizeAll(in.Batches, cfg.family)
	groups := Finalize(GroupBy(records, cfg.keyFn))
	SortByTotalDesc(groups)

	loc := in.locale()
	period := FormatPeriod(in.Start, in.End, loc)
	total := sumTotals(groups)

	vm := domain.ReportViewModel{
		Title:        cfg.title,
		Period:       period,
		SummaryCards: groupedCards(groups, total, cfg.groupNoun, period),
		ChartData:    BucketTopN(chartFromGroups(groups), in.chartTopN(), loc),
		TableData:    groupedTable(groups, total),
		TableColumns: groupedColumns(cfg.groupNoun),
	}
	return vm
}

func groupedCards(
	groups []*domain.GroupSummary,
	total float64,
	noun string,
	period domain.PeriodInfo,
) []domain.SummaryCard {
	cards := []domain.SummaryCard{
		{Label: "Volumen total", Value: formatAmount(total)},
		{Label: "Transacciones", Value: formatCount(sumCounts(groups))},
	}

	top := domain.SummaryCard{Label: "Top " + noun, Value: "N/A"}
	if len(groups) > 0 {
		top.Value = groups[0].Label
		top.Hint = formatAmount(groups[0].TotalAmount)
	}
	cards = append(cards, top)

	average := domain.SummaryCard{Label: "Promedio por " + noun, Value: "0.00"}
	if len(groups) > 0 {
		average.Value = formatAmount(total / float64(len(groups)))
	}
	cards = append(cards, average)

	crowd := domain.SummaryCard{Label: "Más clientes", Value: "N/A"}
	var best *domain.GroupSummary
	for _, g := range groups {
		if best == nil || g.CustomerCount > best.CustomerCount {
			best = g
		}
	}
	if best != nil && best.CustomerCount > 0 {
		crowd.Value = best.Label
		crowd.Hint = fmt.Sprintf("%d clientes", best.CustomerCount)
	}
	cards = append(cards, crowd)

	cards = append(cards, domain.SummaryCard{
		Label: "Período",
		Value: period.Duration,
		Hint:  period.Dates,
	})
	return cards
}

func groupedColumns(noun string) []domain.TableColumn {
	return []domain.TableColumn{
		{Key: "name", Label: noun, Format: "text", Align: "left", Sortable: true},
		{Key: "total", Label: "Volumen", Format: "amount", Align: "right", Sortable: true},
		{Key: "count", Label: "Transacciones", Format: "count", Align: "right", Sortable: true},
		{Key: "customers", Label: "Clientes", Format: "count", Align: "right", Sortable: true},
		{Key: "average", Label: "Promedio", Format: "amount", Align: "right", Sortable: true},
		{Key: "share", Label: "Participación", Format: "percent", Align: "right", Sortable: true},
	}
}

func groupedTable(groups []*domain.GroupSummary, total float64) []map[string]any {
	rows := make([]map[string]any, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, map[string]any{
			"name":      g.Label,
			"total":     g.TotalAmount,
			"count":     g.Count,
			"customers": g.CustomerCount,
			"average":   g.AveragePerRecord,
			"share":     shareOf(g, total),
		})
	}
	return rows
}

// customerReportConfig parameterizes the customer-keyed reports, which share
// one aggregation body and differ only in title, family and tier wording.
type customerReportConfig struct {
	title  string
	family domain.Family
	tiers  TierLabels
}

func aggregateByCustomer(in Input, cfg customerReportConfig) domain.ReportViewModel {
	records := NormalizeAll(in.Batches, cfg.family)
	groups := Finalize(GroupBy(records, ByCustomer))
	SortByTotalDesc(groups)
	entries := RankPercentiles(groups, cfg.tiers)

	loc := in.locale()
	period := FormatPeriod(in.Start, in.End, loc)
	total := sumTotals(groups)

	return domain.ReportViewModel{
		Title:        cfg.title,
		Period:       period,
		SummaryCards: customerCards(groups, total, period),
		ChartData:    BucketTopN(chartFromGroups(groups), in.chartTopN(), loc),
		TableData:    customerTable(entries),
		TableColumns: customerColumns(),
	}
}

func customerCards(
	groups []*domain.GroupSummary,
	total float64,
	period domain.PeriodInfo,
) []domain.SummaryCard {
	cards := []domain.SummaryCard{
		{Label: "Volumen total", Value: formatAmount(total)},
		{Label: "Transacciones", Value: formatCount(sumCounts(groups))},
		{Label: "Jugadores", Value: formatCount(len(groups))},
	}

	top := domain.SummaryCard{Label: "Top jugador", Value: "N/A"}
	if len(groups) > 0 {
		top.Value = groups[0].Label
		top.Hint = formatAmount(groups[0].TotalAmount)
	}
	cards = append(cards, top)

	cards = append(cards, domain.SummaryCard{
		Label: "Participación top 5",
		Value: formatPercent(topShare(groups, total, 5)),
	})

	cards = append(cards, domain.SummaryCard{
		Label: "Período",
		Value: period.Duration,
		Hint:  period.Dates,
	})
	return cards
}

// topShare is the slice of total volume the n largest groups hold, as a
// percentage. Expects groups already sorted by volume descending.
func topShare(groups []*domain.GroupSummary, total float64, n int) float64 {
	if total == 0 {
		return 0
	}
	if n > len(groups) {
		n = len(groups)
	}
	var top float64
	for _, g := range groups[:n] {
		top += g.TotalAmount
	}
	return top / total * 100
}

func customerColumns() []domain.TableColumn {
	return []domain.TableColumn{
		{Key: "name", Label: "Jugador", Format: "text", Align: "left", Sortable: true},
		{Key: "total", Label: "Volumen", Format: "amount", Align: "right", Sortable: true},
		{Key: "count", Label: "Transacciones", Format: "count", Align: "right", Sortable: true},
		{Key: "volumePercentile", Label: "Percentil volumen", Format: "percent", Align: "right", Sortable: true},
		{Key: "volumeTier", Label: "Nivel volumen", Format: "text", Align: "left", Sortable: false},
		{Key: "frequencyPercentile", Label: "Percentil frecuencia", Format: "percent", Align: "right", Sortable: true},
		{Key: "frequencyTier", Label: "Nivel frecuencia", Format: "text", Align: "left", Sortable: false},
		{Key: "firstAt", Label: "Primera", Format: "date", Align: "right", Sortable: true},
		{Key: "lastAt", Label: "Última", Format: "date", Align: "right", Sortable: true},
	}
}

func customerTable(entries []domain.PercentileEntry) []map[string]any {
	rows := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, map[string]any{
			"name":                e.Label,
			"total":               e.TotalAmount,
			"count":               e.Count,
			"volumePercentile":    e.VolumePercentile,
			"volumeTier":          e.VolumeTier,
			"frequencyPercentile": e.FrequencyPercentile,
			"frequencyTier":       e.FrequencyTier,
			"firstAt":             e.FirstAt,
			"lastAt":              e.LastAt,
		})
	}
	return rows
}

// topPlayerNames re-runs the grouping engine on one shop's record subset and
// returns its n biggest players. Each shop ranks its players purely within
// its own records.
func topPlayerNames(records []domain.NormalizedRecord, shopID int64, n int) []string {
	var subset []domain.NormalizedRecord
	for _, rec := range records {
		if rec.HasShop && rec.ShopID == shopID {
			subset = append(subset, rec)
		}
	}

	players := Finalize(GroupBy(subset, ByCustomer))
	SortByTotalDesc(players)

	if n > len(players) {
		n = len(players)
	}
	names := make([]string, 0, n)
	for _, p := range players[:n] {
		names = append(names, p.Label)
	}
	return names
}
