package report

import (
	"sort"

	"github.com/lotto-tools/report-center/pkg/models/domain"
)

// BucketTopN keeps the n largest chart points and folds the remainder into a
// single rest bucket. A rest bucket whose sum exceeds twice the largest kept
// value would dominate the chart, so it is discarded instead. The combined
// list is re-sorted so the rest bucket lands at its natural rank.
func BucketTopN(points []domain.ChartPoint, n int, loc Locale) []domain.ChartPoint {
	if len(points) <= n {
		return points
	}

	sorted := make([]domain.ChartPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})

	top := sorted[:n]
	rest := sorted[n:]

	var restSum float64
	for _, p := range rest {
		restSum += p.Value
	}

	out := make([]domain.ChartPoint, 0, n+1)
	out = append(out, top...)

	maxTop := top[0].Value
	if restSum > 0 && restSum <= 2*maxTop {
		out = append(out, domain.ChartPoint{
			Name:  loc.restLabel(len(rest)),
			Value: restSum,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	return out
}
