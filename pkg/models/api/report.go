package api

type SummaryCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Hint  string `json:"hint,omitempty"`
}

type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type TableColumn struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Format   string `json:"format"`
	Align    string `json:"align"`
	Sortable bool   `json:"sortable"`
}

type PeriodInfo struct {
	Dates    string `json:"periodDates"`
	Duration string `json:"durationValue"`
}

type ReportViewModel struct {
	Title        string           `json:"title"`
	Period       PeriodInfo       `json:"period"`
	SummaryCards []SummaryCard    `json:"summaryCards"`
	ChartData    []ChartPoint     `json:"chartData"`
	TableData    []map[string]any `json:"tableData"`
	TableColumns []TableColumn    `json:"tableColumns"`
}

// ReportDescriptor describes one available (entity, grouping) report for
// menu population.
type ReportDescriptor struct {
	Entity    string `json:"entity"`
	Grouping  string `json:"grouping"`
	Title     string `json:"title"`
	Icon      string `json:"icon"`
	ChartType string `json:"chartType"`
}

// Envelope is the transport wrapper every report endpoint responds with.
type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}
