package domain

import "time"

type Entity string

const (
	EntityDeposits    Entity = "deposits"
	EntityReloads     Entity = "reloads"
	EntityWithdrawals Entity = "withdrawals"
	EntityPromotions  Entity = "promotions"
)

type Grouping string

const (
	GroupingBank     Grouping = "bank"
	GroupingCustomer Grouping = "customer"
	GroupingShop     Grouping = "shop"
	GroupingMethod   Grouping = "method"
	GroupingTier     Grouping = "tier"
)

// Period is the already-validated date range a report covers.
type Period struct {
	Start time.Time
	End   time.Time
}

// PeriodInfo is the human-readable rendering of a Period.
type PeriodInfo struct {
	Dates    string
	Duration string
}

type SummaryCard struct {
	Label string
	Value string
	Hint  string
}

type ChartPoint struct {
	Name  string
	Value float64
}

type TableColumn struct {
	Key      string
	Label    string
	Format   string // text, amount, count, percent, date
	Align    string // left, right
	Sortable bool
}

// ReportViewModel is the complete presentation-ready result of one report
// run. Built once per request; holds no references to shared state.
type ReportViewModel struct {
	Title        string
	Period       PeriodInfo
	SummaryCards []SummaryCard
	ChartData    []ChartPoint
	TableData    []map[string]any
	TableColumns []TableColumn
}
