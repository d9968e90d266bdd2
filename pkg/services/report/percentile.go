package report

import (
	"sort"

	"github.com/lotto-tools/report-center/pkg/models/domain"
)

// TierLabels is the six-bucket label ladder one report family uses. The
// deposit and reload reports share the numeric thresholds but word their
// tiers differently; both sets are kept as configuration.
type TierLabels struct {
	Top5   string
	Top10  string
	Top20  string
	Top50  string
	Top80  string
	Bottom string
}

var DepositTiers = TierLabels{
	Top5:   "Top 5%",
	Top10:  "Top 10%",
	Top20:  "Top 20%",
	Top50:  "Top 50%",
	Top80:  "Top 80%",
	Bottom: "Bottom 20%",
}

var ReloadTiers = TierLabels{
	Top5:   "Elite (5%)",
	Top10:  "Alto (10%)",
	Top20:  "Alto (20%)",
	Top50:  "Medio (50%)",
	Top80:  "Bajo (80%)",
	Bottom: "Inferior (20%)",
}

func (t TierLabels) classify(percentile float64) string {
	switch {
	case percentile <= 5:
		return t.Top5
	case percentile <= 10:
		return t.Top10
	case percentile <= 20:
		return t.Top20
	case percentile <= 50:
		return t.Top50
	case percentile <= 80:
		return t.Top80
	default:
		return t.Bottom
	}
}

// RankPercentiles ranks each group independently along the volume
// (TotalAmount) and frequency (Count) dimensions. Percentile is the
// zero-based position in the descending sort over max(N-1, 1), scaled to
// 0..100, so the single member of an N=1 input ranks 0 on both dimensions.
// Positions come from key-indexed maps built off the sorted copies, which
// keeps the lookup linear.
func RankPercentiles(groups []*domain.GroupSummary, labels TierLabels) []domain.PercentileEntry {
	n := len(groups)
	if n == 0 {
		return nil
	}

	byVolume := make([]*domain.GroupSummary, n)
	copy(byVolume, groups)
	sort.SliceStable(byVolume, func(i, j int) bool {
		return byVolume[i].TotalAmount > byVolume[j].TotalAmount
	})

	byFrequency := make([]*domain.GroupSummary, n)
	copy(byFrequency, groups)
	sort.SliceStable(byFrequency, func(i, j int) bool {
		return byFrequency[i].Count > byFrequency[j].Count
	})

	volumeIdx := make(map[*domain.GroupSummary]int, n)
	for i, g := range byVolume {
		volumeIdx[g] = i
	}
	frequencyIdx := make(map[*domain.GroupSummary]int, n)
	for i, g := range byFrequency {
		frequencyIdx[g] = i
	}

	denominator := float64(n - 1)
	if denominator < 1 {
		denominator = 1
	}

	entries := make([]domain.PercentileEntry, 0, n)
	for _, g := range groups {
		vp := float64(volumeIdx[g]) / denominator * 100
		fp := float64(frequencyIdx[g]) / denominator * 100
		entries = append(entries, domain.PercentileEntry{
			GroupSummary:        *g,
			VolumePercentile:    vp,
			VolumeTier:          labels.classify(vp),
			FrequencyPercentile: fp,
			FrequencyTier:       labels.classify(fp),
		})
	}
	return entries
}
