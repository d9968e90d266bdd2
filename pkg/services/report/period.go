package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/lotto-tools/report-center/pkg/models/domain"
)

// Locale carries the strings the pipeline needs for human-readable output.
// Date formatting itself stays on time.Time.Format at the boundary.
type Locale struct {
	Day            string
	Days           string
	Hour           string
	Hours          string
	Minute         string
	Minutes        string
	LessThanMinute string
	RestFormat     string // fed the folded item count
	DateLayout     string
	DateSeparator  string
}

var LocaleES = Locale{
	Day:            "día",
	Days:           "días",
	Hour:           "hora",
	Hours:          "horas",
	Minute:         "minuto",
	Minutes:        "minutos",
	LessThanMinute: "menos de un minuto",
	RestFormat:     "Resto (%d)",
	DateLayout:     "02/01/2006 15:04",
	DateSeparator:  " al ",
}

var LocaleEN = Locale{
	Day:            "day",
	Days:           "days",
	Hour:           "hour",
	Hours:          "hours",
	Minute:         "minute",
	Minutes:        "minutes",
	LessThanMinute: "less than a minute",
	RestFormat:     "Others (%d)",
	DateLayout:     "01/02/2006 15:04",
	DateSeparator:  " to ",
}

const (
	msPerDay    = 24 * 60 * 60 * 1000
	msPerHour   = 60 * 60 * 1000
	msPerMinute = 60 * 1000
)

// FormatPeriod renders a start/end pair as a date-range label and a
// duration breakdown of whole days, remaining hours and remaining minutes.
// Components that are zero are omitted; a sub-minute range collapses to the
// locale's fixed string.
func FormatPeriod(start, end time.Time, loc Locale) domain.PeriodInfo {
	ms := end.Sub(start).Milliseconds()
	if ms < 0 {
		ms = 0
	}

	days := ms / msPerDay
	ms -= days * msPerDay
	hours := ms / msPerHour
	ms -= hours * msPerHour
	minutes := ms / msPerMinute

	var parts []string
	if days > 0 {
		parts = append(parts, pluralize(days, loc.Day, loc.Days))
	}
	if hours > 0 {
		parts = append(parts, pluralize(hours, loc.Hour, loc.Hours))
	}
	if minutes > 0 {
		parts = append(parts, pluralize(minutes, loc.Minute, loc.Minutes))
	}

	duration := loc.LessThanMinute
	if len(parts) > 0 {
		duration = strings.Join(parts, ", ")
	}

	return domain.PeriodInfo{
		Dates:    start.Format(loc.DateLayout) + loc.DateSeparator + end.Format(loc.DateLayout),
		Duration: duration,
	}
}

func pluralize(n int64, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

func (l Locale) restLabel(count int) string {
	return fmt.Sprintf(l.RestFormat, count)
}
