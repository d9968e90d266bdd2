package domain

import "time"

// Family identifies the record family a raw bank document belongs to.
// Each family stores its monetary amount under a different field.
type Family string

const (
	FamilyDeposit    Family = "deposit"
	FamilyReload     Family = "reload"
	FamilyRedemption Family = "redemption"
	FamilyPromotion  Family = "promotion"
)

// NormalizedRecord is the common shape extracted from a heterogeneous bank
// document. Lifetime is one aggregation pass; never persisted.
type NormalizedRecord struct {
	Amount        float64
	Timestamp     time.Time
	CustomerID    int64
	HasCustomer   bool
	CustomerLabel string
	ShopID        int64
	HasShop       bool
	Keys          map[string]string // bank, method, tier
}

// GroupSummary accumulates totals for one grouping key during a single pass.
// Customers tracks distinct customer ids; derived fields are filled by
// Finalize after the pass completes.
type GroupSummary struct {
	Key         string
	Label       string
	TotalAmount float64
	Count       int
	Customers   map[int64]struct{}
	FirstAt     time.Time
	LastAt      time.Time

	AveragePerRecord   float64
	CustomerCount      int
	AveragePerCustomer float64
}

// PercentileEntry augments a per-customer GroupSummary with its percentile
// rank along the volume and frequency dimensions.
type PercentileEntry struct {
	GroupSummary
	VolumePercentile    float64
	VolumeTier          string
	FrequencyPercentile float64
	FrequencyTier       string
}
