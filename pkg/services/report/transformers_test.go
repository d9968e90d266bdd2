package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotto-tools/report-center/pkg/models/domain"
	"github.com/lotto-tools/report-center/pkg/models/store"
)

var (
	testStart = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	testEnd   = time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC)
)

func depositDoc(amount float64, customerID int64, ts time.Time) store.Document {
	return store.Document{
		"credit":    amount,
		"createdAt": ts,
		"customer":  map[string]any{"id": customerID, "name": fmt.Sprintf("player-%d", customerID)},
	}
}

func TestDepositsByBank_TwoBanks(t *testing.T) {
	ts := testStart.Add(time.Hour)
	in := Input{
		Batches: []store.SourceBatch{
			{Bank: "BNCR", Docs: []store.Document{
				depositDoc(1000, 1, ts),
				depositDoc(2000, 2, ts),
			}},
			{Bank: "BCR", Docs: []store.Document{
				depositDoc(500, 3, ts),
			}},
		},
		Start: testStart,
		End:   testEnd,
	}

	vm := DepositsByBank(in)

	require.Len(t, vm.ChartData, 2)
	assert.Equal(t, domain.ChartPoint{Name: "BNCR", Value: 3000}, vm.ChartData[0])
	assert.Equal(t, domain.ChartPoint{Name: "BCR", Value: 500}, vm.ChartData[1])

	require.Len(t, vm.TableData, 2)
	assert.Equal(t, "BNCR", vm.TableData[0]["name"])
	assert.Equal(t, 2, vm.TableData[0]["customers"])

	assert.Equal(t, "Volumen total", vm.SummaryCards[0].Label)
	assert.Equal(t, "3500.00", vm.SummaryCards[0].Value)
	assert.Equal(t, "BNCR", vm.SummaryCards[2].Value)
}

func TestDepositsByBank_SharedCustomerCountedOnce(t *testing.T) {
	ts := testStart.Add(time.Hour)
	in := Input{
		Batches: []store.SourceBatch{
			{Bank: "BNCR", Docs: []store.Document{
				depositDoc(1000, 1, ts),
				depositDoc(2000, 1, ts),
			}},
		},
		Start: testStart,
		End:   testEnd,
	}

	vm := DepositsByBank(in)
	require.Len(t, vm.TableData, 1)
	assert.Equal(t, 1, vm.TableData[0]["customers"])
}

func TestDepositsByCustomer_TopFiveShare(t *testing.T) {
	// 25 customers with strictly decreasing totals: 2500, 2400, ..., 100
	ts := testStart.Add(time.Hour)
	docs := make([]store.Document, 0, 25)
	var total, topFive float64
	for i := 0; i < 25; i++ {
		amount := float64(2500 - i*100)
		docs = append(docs, depositDoc(amount, int64(i+1), ts))
		total += amount
		if i < 5 {
			topFive += amount
		}
	}

	vm := DepositsByCustomer(Input{
		Batches: []store.SourceBatch{{Bank: "BNCR", Docs: docs}},
		Start:   testStart,
		End:     testEnd,
	})

	expected := fmt.Sprintf("%.1f%%", topFive/total*100)
	var card domain.SummaryCard
	for _, c := range vm.SummaryCards {
		if c.Label == "Participación top 5" {
			card = c
		}
	}
	assert.Equal(t, expected, card.Value)

	// chart is bucketed to top 10 plus a rest entry
	assert.LessOrEqual(t, len(vm.ChartData), 11)

	// best customer ranks percentile 0 on volume
	require.NotEmpty(t, vm.TableData)
	assert.Equal(t, "player-1", vm.TableData[0]["name"])
	assert.Equal(t, 0.0, vm.TableData[0]["volumePercentile"])
}

func TestTransformers_EmptyInput(t *testing.T) {
	in := Input{Start: testStart, End: testEnd}

	reg := NewRegistry()
	for _, d := range reg.List() {
		t.Run(string(d.Entity)+"/"+string(d.Grouping), func(t *testing.T) {
			vm := d.Transform(in)

			assert.Empty(t, vm.ChartData)
			assert.Empty(t, vm.TableData)
			assert.NotEmpty(t, vm.SummaryCards)
			assert.Equal(t, "0.00", vm.SummaryCards[0].Value)
			assert.Equal(t, "0", vm.SummaryCards[1].Value)

			for _, c := range vm.SummaryCards {
				if c.Label == "Top banco" || c.Label == "Top jugador" || c.Label == "Más clientes" {
					assert.Equal(t, "N/A", c.Value)
				}
			}
		})
	}
}

func TestReloadsByShop_NestedTopPlayers(t *testing.T) {
	ts := testStart.Add(time.Hour)
	reload := func(amount float64, customerID, shopID int64) store.Document {
		return store.Document{
			"amount":    amount,
			"createdAt": ts,
			"customer":  map[string]any{"id": customerID, "name": fmt.Sprintf("player-%d", customerID)},
			"shopId":    shopID,
		}
	}

	vm := ReloadsByShop(Input{
		Batches: []store.SourceBatch{{Bank: "BNCR", Docs: []store.Document{
			reload(100, 1, 1),
			reload(900, 2, 1),
			reload(50, 3, 2),
			// player 2 reloads at shop 2 as well, but less than player 3
			reload(10, 2, 2),
		}}},
		Start: testStart,
		End:   testEnd,
	})

	require.Len(t, vm.TableData, 2)

	// shop 1 leads by volume; its top player is ranked within shop 1 only
	assert.Equal(t, "1", vm.TableData[0]["name"])
	assert.Equal(t, "player-2, player-1", vm.TableData[0]["topPlayers"])

	// shop 2 ranks its own subset: player 3 beats player 2 there
	assert.Equal(t, "player-3, player-2", vm.TableData[1]["topPlayers"])

	last := vm.TableColumns[len(vm.TableColumns)-1]
	assert.Equal(t, "topPlayers", last.Key)
}

func TestPromotionsByTier_GroupsOnTierLabel(t *testing.T) {
	ts := testStart.Add(time.Hour)
	promo := func(amount float64, tier string, customerID int64) store.Document {
		return store.Document{
			"amount":    amount,
			"createdAt": ts,
			"bonusTier": tier,
			"customer":  map[string]any{"id": customerID},
		}
	}

	vm := PromotionsByTier(Input{
		Batches: []store.SourceBatch{{Bank: "BNCR", Docs: []store.Document{
			promo(100, "Oro", 1),
			promo(300, "Oro", 2),
			promo(50, "Plata", 3),
		}}},
		Start: testStart,
		End:   testEnd,
	})

	require.Len(t, vm.ChartData, 2)
	assert.Equal(t, "Oro", vm.ChartData[0].Name)
	assert.Equal(t, 400.0, vm.ChartData[0].Value)
}
