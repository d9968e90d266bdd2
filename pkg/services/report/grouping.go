package report

import (
	"sort"
	"strconv"

	"github.com/lotto-tools/report-center/pkg/models/domain"
)

// KeyFunc resolves the grouping key and display label for one record.
// ok=false excludes the record from this grouping (e.g. a customer grouping
// over a record with no resolvable customer reference).
type KeyFunc func(rec domain.NormalizedRecord) (key, label string, ok bool)

func ByBank(rec domain.NormalizedRecord) (string, string, bool) {
	bank := rec.Keys["bank"]
	return bank, bank, bank != ""
}

func ByCustomer(rec domain.NormalizedRecord) (string, string, bool) {
	if !rec.HasCustomer {
		return "", "", false
	}
	return strconv.FormatInt(rec.CustomerID, 10), rec.CustomerLabel, true
}

func ByShop(rec domain.NormalizedRecord) (string, string, bool) {
	if !rec.HasShop {
		return "", "", false
	}
	key := strconv.FormatInt(rec.ShopID, 10)
	return key, key, true
}

func ByMethod(rec domain.NormalizedRecord) (string, string, bool) {
	m := rec.Keys["method"]
	return m, m, m != ""
}

func ByTier(rec domain.NormalizedRecord) (string, string, bool) {
	t := rec.Keys["tier"]
	return t, t, t != ""
}

// GroupBy reduces a record stream into per-key accumulators in one pass.
// Records with a zero amount are skipped entirely, matching the falsy-amount
// filtering of every aggregation in this report family. First/last tracking
// uses explicit comparisons so processing order never matters; the epoch-zero
// sentinel a record gets for an unparsable date is excluded from it.
func GroupBy(records []domain.NormalizedRecord, keyFn KeyFunc) map[string]*domain.GroupSummary {
	groups := make(map[string]*domain.GroupSummary)
	for _, rec := range records {
		if rec.Amount == 0 {
			continue
		}
		key, label, ok := keyFn(rec)
		if !ok {
			continue
		}

		g, seen := groups[key]
		if !seen {
			g = &domain.GroupSummary{
				Key:       key,
				Label:     label,
				Customers: make(map[int64]struct{}),
			}
			groups[key] = g
		}

		g.TotalAmount += rec.Amount
		g.Count++
		if rec.HasCustomer {
			g.Customers[rec.CustomerID] = struct{}{}
		}
		if rec.Timestamp.UnixMilli() != 0 {
			if g.FirstAt.IsZero() || rec.Timestamp.Before(g.FirstAt) {
				g.FirstAt = rec.Timestamp
			}
			if g.LastAt.IsZero() || rec.Timestamp.After(g.LastAt) {
				g.LastAt = rec.Timestamp
			}
		}
	}
	return groups
}

// Finalize computes the derived per-group metrics and returns the groups as
// a slice. Division guards return 0 instead of NaN so downstream rendering
// never sees a corrupt value. No ordering is imposed here; presentation
// sorting belongs to the transformers.
func Finalize(groups map[string]*domain.GroupSummary) []*domain.GroupSummary {
	out := make([]*domain.GroupSummary, 0, len(groups))
	for _, g := range groups {
		if g.Count > 0 {
			g.AveragePerRecord = g.TotalAmount / float64(g.Count)
		}
		g.CustomerCount = len(g.Customers)
		if g.CustomerCount > 0 {
			g.AveragePerCustomer = g.TotalAmount / float64(g.CustomerCount)
		}
		out = append(out, g)
	}
	return out
}

// SortByTotalDesc orders finalized groups by volume for presentation.
// Ties fall back to the label to keep output deterministic.
func SortByTotalDesc(groups []*domain.GroupSummary) {
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].TotalAmount != groups[j].TotalAmount {
			return groups[i].TotalAmount > groups[j].TotalAmount
		}
		return groups[i].Label < groups[j].Label
	})
}
