package analytics

import (
	"strings"
	"time"

	apperrors "storeadmin/internal/errors"
)

type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// StartDateLayout is the date format the aggregate procedures accept.
const StartDateLayout = "2006-01-02"

// ParsePeriod accepts week, month or year in any case. An empty value means week.
func ParsePeriod(raw string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(raw))); p {
	case "":
		return PeriodWeek, nil
	case PeriodWeek, PeriodMonth, PeriodYear:
		return p, nil
	default:
		return "", apperrors.ErrInvalidPeriod
	}
}

// StartDate is the first day covered by p, counted back from now.
func (p Period) StartDate(now time.Time) string {
	var start time.Time
	switch p {
	case PeriodMonth:
		start = now.AddDate(0, -1, 0)
	case PeriodYear:
		start = now.AddDate(-1, 0, 0)
	default:
		start = now.AddDate(0, 0, -7)
	}
	return start.Format(StartDateLayout)
}

const (
	DefaultTopProductsLimit = 5
	DefaultActivityLimit    = 10
	MaxLimit                = 50
)

// ClampLimit replaces a non-positive limit with def and caps it at MaxLimit.
func ClampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
