package report

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotto-tools/report-center/pkg/models/domain"
)

func groupsWithTotals(totals ...float64) []*domain.GroupSummary {
	groups := make([]*domain.GroupSummary, 0, len(totals))
	for i, total := range totals {
		groups = append(groups, &domain.GroupSummary{
			Key:         fmt.Sprintf("c%d", i),
			Label:       fmt.Sprintf("c%d", i),
			TotalAmount: total,
			Count:       i + 1,
		})
	}
	return groups
}

func TestRankPercentiles_Bounds(t *testing.T) {
	entries := RankPercentiles(groupsWithTotals(2500, 2400, 100, 900, 1200), DepositTiers)
	require.Len(t, entries, 5)

	for _, e := range entries {
		assert.GreaterOrEqual(t, e.VolumePercentile, 0.0)
		assert.LessOrEqual(t, e.VolumePercentile, 100.0)
		assert.GreaterOrEqual(t, e.FrequencyPercentile, 0.0)
		assert.LessOrEqual(t, e.FrequencyPercentile, 100.0)
	}
}

func TestRankPercentiles_HighestVolumeRanksZero(t *testing.T) {
	entries := RankPercentiles(groupsWithTotals(100, 900, 2500), DepositTiers)

	for _, e := range entries {
		if e.TotalAmount == 2500 {
			assert.Equal(t, 0.0, e.VolumePercentile)
		}
		if e.TotalAmount == 100 {
			assert.Equal(t, 100.0, e.VolumePercentile)
		}
	}
}

func TestRankPercentiles_SingleEntry(t *testing.T) {
	entries := RankPercentiles(groupsWithTotals(500), DepositTiers)
	require.Len(t, entries, 1)

	assert.Equal(t, 0.0, entries[0].VolumePercentile)
	assert.Equal(t, 0.0, entries[0].FrequencyPercentile)
	assert.Equal(t, "Top 5%", entries[0].VolumeTier)
}

func TestRankPercentiles_EmptyInput(t *testing.T) {
	assert.Nil(t, RankPercentiles(nil, DepositTiers))
}

func TestRankPercentiles_IndependentDimensions(t *testing.T) {
	// highest volume but lowest frequency
	groups := []*domain.GroupSummary{
		{Key: "a", TotalAmount: 1000, Count: 1},
		{Key: "b", TotalAmount: 100, Count: 50},
		{Key: "c", TotalAmount: 500, Count: 10},
	}

	entries := RankPercentiles(groups, DepositTiers)
	byKey := map[string]domain.PercentileEntry{}
	for _, e := range entries {
		byKey[e.Key] = e
	}

	assert.Equal(t, 0.0, byKey["a"].VolumePercentile)
	assert.Equal(t, 100.0, byKey["a"].FrequencyPercentile)
	assert.Equal(t, 0.0, byKey["b"].FrequencyPercentile)
	assert.Equal(t, 100.0, byKey["b"].VolumePercentile)
}

func TestTierLabels_Ladder(t *testing.T) {
	tests := []struct {
		percentile float64
		expected   string
	}{
		{0, "Top 5%"},
		{5, "Top 5%"},
		{5.1, "Top 10%"},
		{10, "Top 10%"},
		{20, "Top 20%"},
		{50, "Top 50%"},
		{80, "Top 80%"},
		{80.1, "Bottom 20%"},
		{100, "Bottom 20%"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, DepositTiers.classify(tt.percentile))
		})
	}
}

func TestTierLabels_ReloadWordingDiffers(t *testing.T) {
	// same thresholds, different wording; both sets stay report-specific
	assert.Equal(t, "Elite (5%)", ReloadTiers.classify(0))
	assert.Equal(t, "Inferior (20%)", ReloadTiers.classify(95))
	assert.NotEqual(t, DepositTiers.classify(0), ReloadTiers.classify(0))
}
