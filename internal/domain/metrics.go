package domain

import (
	"maps"
	"sort"
)

// BodyMetrics is the body measurement record for one date.
type BodyMetrics struct {
	WeightKg       float64 `json:"weightKg"`
	GripStrengthKg float64 `json:"gripStrengthKg"`
	SleepHours     float64 `json:"sleepHours"`
	WaterML        float64 `json:"waterMl"`
}

// Normalized coerces numeric fields.
func (m BodyMetrics) Normalized() BodyMetrics {
	m.WeightKg = NonNegative(m.WeightKg)
	m.GripStrengthKg = NonNegative(m.GripStrengthKg)
	m.SleepHours = NonNegative(m.SleepHours)
	m.WaterML = NonNegative(m.WaterML)
	return m
}

// MetricsLog maps ISO dates to measurements.
type MetricsLog map[string]BodyMetrics

// DefaultMetricsLog returns an empty log.
func DefaultMetricsLog() MetricsLog {
	return MetricsLog{}
}

// Clone returns a copy of the log.
func (l MetricsLog) Clone() MetricsLog {
	out := make(MetricsLog, len(l))
	maps.Copy(out, l)
	return out
}

// Normalized drops malformed date keys and coerces values.
func (l MetricsLog) Normalized() MetricsLog {
	out := make(MetricsLog, len(l))
	for date, m := range l {
		if !ValidDate(date) {
			continue
		}
		out[date] = m.Normalized()
	}
	return out
}

// LatestWeight returns the most recent non-zero weight on or before date.
func (l MetricsLog) LatestWeight(onOrBefore string) (string, float64, bool) {
	dates := make([]string, 0, len(l))
	for date := range l {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	for _, date := range dates {
		if date > onOrBefore {
			continue
		}
		if w := l[date].WeightKg; w > 0 {
			return date, w, true
		}
	}
	return "", 0, false
}
