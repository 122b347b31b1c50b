package analytics

import (
	"time"

	"github.com/ddjurovic/macrotrack/internal/nutrition"
)

// Metric selects which nutrition value a weekly aggregation runs over.
type Metric string

const (
	MetricCalories Metric = "calories"
	MetricProtein  Metric = "protein"
	MetricCarbs    Metric = "carbs"
	MetricFat      Metric = "fat"
)

func metricValue(t nutrition.MacroTotals, m Metric) float64 {
	switch m {
	case MetricProtein:
		return t.Protein
	case MetricCarbs:
		return t.Carbs
	case MetricFat:
		return t.Fat
	default:
		return t.Calories
	}
}

// MeasurementMetric selects which body measurement value a trend runs over.
type MeasurementMetric string

const (
	MeasurementWeight   MeasurementMetric = "weight"
	MeasurementBodyFat  MeasurementMetric = "body_fat"
	MeasurementLeanMass MeasurementMetric = "lean_mass"
)

func measurementValue(m nutrition.Measurement, metric MeasurementMetric) (float64, bool) {
	switch metric {
	case MeasurementBodyFat:
		return m.BodyFatPct, m.BodyFatPct > 0
	case MeasurementLeanMass:
		return m.LeanMassKg, m.LeanMassKg > 0
	default:
		return m.WeightKg, m.WeightKg > 0
	}
}

// WeekPoint is one Monday-aligned aggregation bucket.
type WeekPoint struct {
	WeekStart time.Time `json:"weekStart"`
	Label     string    `json:"label"` // e.g. "Aug 12"
	Average   float64   `json:"average"`
	Samples   int       `json:"samples"`
}

// MondayOf returns the Monday starting the week that contains day,
// at midnight UTC.
func MondayOf(day time.Time) time.Time {
	day = day.UTC()
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

// WeeklyAverages buckets records by the Monday starting their week and
// returns the arithmetic mean of the metric for each of the trailing
// `weeks` weeks ending at the week containing now, oldest first. Buckets
// with no records average to zero; the result always has exactly `weeks`
// entries, even for empty input.
func WeeklyAverages(records []nutrition.DailyRecord, metric Metric, weeks int, now time.Time) []WeekPoint {
	type bucket struct {
		sum   float64
		count int
	}
	buckets := make(map[time.Time]*bucket)
	for _, rec := range records {
		day := rec.Day()
		if day.IsZero() {
			continue
		}
		weekStart := MondayOf(day)
		b, ok := buckets[weekStart]
		if !ok {
			b = &bucket{}
			buckets[weekStart] = b
		}
		b.sum += metricValue(rec.Total, metric)
		b.count++
	}

	currentWeek := MondayOf(now)

	points := make([]WeekPoint, 0, weeks)
	for i := weeks - 1; i >= 0; i-- {
		weekStart := currentWeek.AddDate(0, 0, -7*i)
		point := WeekPoint{
			WeekStart: weekStart,
			Label:     weekStart.Format("Jan 2"),
		}
		if b, ok := buckets[weekStart]; ok && b.count > 0 {
			point.Average = b.sum / float64(b.count)
			point.Samples = b.count
		}
		points = append(points, point)
	}
	return points
}

// WeeklyMeasurementAverages is WeeklyAverages over body measurements.
// Measurements without a value for the metric do not count as samples.
func WeeklyMeasurementAverages(
	measurements []nutrition.Measurement,
	metric MeasurementMetric,
	weeks int,
	now time.Time,
) []WeekPoint {
	type bucket struct {
		sum   float64
		count int
	}
	buckets := make(map[time.Time]*bucket)
	for _, m := range measurements {
		value, ok := measurementValue(m, metric)
		if !ok {
			continue
		}
		day, err := time.Parse(nutrition.DateLayout, m.Date)
		if err != nil {
			continue
		}
		weekStart := MondayOf(day)
		b, found := buckets[weekStart]
		if !found {
			b = &bucket{}
			buckets[weekStart] = b
		}
		b.sum += value
		b.count++
	}

	currentWeek := MondayOf(now)

	points := make([]WeekPoint, 0, weeks)
	for i := weeks - 1; i >= 0; i-- {
		weekStart := currentWeek.AddDate(0, 0, -7*i)
		point := WeekPoint{
			WeekStart: weekStart,
			Label:     weekStart.Format("Jan 2"),
		}
		if b, ok := buckets[weekStart]; ok && b.count > 0 {
			point.Average = b.sum / float64(b.count)
			point.Samples = b.count
		}
		points = append(points, point)
	}
	return points
}

// TrendSeries is a weekly average series plus an optional constant
// target used as a chart reference line.
type TrendSeries struct {
	Points []WeekPoint `json:"points"`
	Target *float64    `json:"target,omitempty"`
}

type TrendOpts struct {
	Weeks  int
	Target *float64
	Now    time.Time
}

func BuildTrendSeries(records []nutrition.DailyRecord, metric Metric, opts TrendOpts) TrendSeries {
	return TrendSeries{
		Points: WeeklyAverages(records, metric, opts.Weeks, opts.Now),
		Target: opts.Target,
	}
}
