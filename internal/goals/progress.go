package goals

import (
	"time"

	"github.com/ddjurovic/macrotrack/internal/nutrition"
	"github.com/ddjurovic/macrotrack/internal/nutrition/analytics"
)

// StreakSnapshot is the streak state of a streak-type goal.
type StreakSnapshot struct {
	Current int `json:"current"`
	Target  int `json:"target"`
}

// TrendPoint is one week of a numeric goal's value trend.
type TrendPoint struct {
	WeekStart string  `json:"weekStart"` // YYYY-MM-DD
	Value     float64 `json:"value"`
}

// Progress is the derived progress of a single goal. Exactly one of
// Streak or Trend is populated, depending on the goal type. Progress is
// never persisted; it lives in memory until the next recomputation.
type Progress struct {
	GoalID     string          `json:"goalId"`
	Type       Type            `json:"type"`
	Percent    float64         `json:"percent"` // 0..100
	Achieved   bool            `json:"achieved"`
	ComputedAt time.Time       `json:"computedAt"`
	Streak     *StreakSnapshot `json:"streak,omitempty"`
	Trend      []TrendPoint    `json:"trend,omitempty"`
	Label      string          `json:"label,omitempty"`
}

// Band is a presentation hint bucketing how far along a goal is.
type Band string

const (
	BandAchieved  Band = "achieved"
	BandClose     Band = "close"
	BandProgress  Band = "progress"
	BandNeedsWork Band = "needs_work"
)

// ProgressBand maps a completion ratio to its presentation band.
func ProgressBand(ratio float64) Band {
	switch {
	case ratio >= 1.0:
		return BandAchieved
	case ratio >= 0.7:
		return BandClose
	case ratio >= 0.3:
		return BandProgress
	default:
		return BandNeedsWork
	}
}

// Data is everything a progress computation reads: the profile and the
// immutable record/measurement snapshots from the external store.
type Data struct {
	Profile      nutrition.Profile
	Records      []nutrition.DailyRecord
	Measurements []nutrition.Measurement
}

// Resolver computes goal progress from nutrition data. It is pure:
// same goal, data and now always give the same result.
type Resolver struct {
	trendWeeks     int
	complianceDays int
}

type ResolverParams struct {
	TrendWeeks     int
	ComplianceDays int
}

func NewResolver(params ResolverParams) *Resolver {
	if params.TrendWeeks <= 0 {
		params.TrendWeeks = 8
	}
	if params.ComplianceDays <= 0 {
		params.ComplianceDays = 28
	}
	return &Resolver{
		trendWeeks:     params.TrendWeeks,
		complianceDays: params.ComplianceDays,
	}
}

func (r *Resolver) Resolve(goal Goal, data Data, now time.Time) *Progress {
	progress := &Progress{
		GoalID:     goal.ID,
		Type:       goal.Type,
		ComputedAt: now,
	}

	if goal.Type.IsStreak() {
		r.resolveStreak(goal, data, now, progress)
	} else {
		r.resolveTrend(goal, data, now, progress)
	}

	if progress.Achieved {
		progress.Label = "Achieved"
	} else {
		progress.Label = goal.StatusText()
	}
	return progress
}

func (r *Resolver) resolveStreak(goal Goal, data Data, now time.Time, progress *Progress) {
	// the window must cover at least the full target streak, otherwise a
	// long goal could never reach 100%
	days := r.complianceDays
	if goal.Params.TargetDays > days {
		days = goal.Params.TargetDays
	}

	var points []analytics.CompliancePoint
	switch goal.Type {
	case TypeProteinStreak:
		points = analytics.ProteinCompliance(data.Records, goal.Params.GramsPerDay, days, now)
	default: // calorie streak
		points = analytics.CalorieCompliance(data.Records, r.calorieRule(goal, data.Profile), days, now)
	}

	current := analytics.CurrentStreak(points)
	target := goal.Params.TargetDays

	progress.Streak = &StreakSnapshot{Current: current, Target: target}
	if target > 0 {
		progress.Percent = clampPercent(float64(current) / float64(target) * 100)
	}
	progress.Achieved = target > 0 && current >= target
}

// calorieRule resolves the per-day compliance band for a calorie streak:
// the recommended basis means staying at or under the ideal daily
// calories, the custom basis uses the stored min/max bounds.
func (r *Resolver) calorieRule(goal Goal, profile nutrition.Profile) analytics.CalorieRule {
	if goal.Params.Basis == BasisCustom {
		return analytics.CalorieRule{
			Min: goal.Params.MinCalories,
			Max: goal.Params.MaxCalories,
		}
	}
	return analytics.CalorieRule{
		Max: float64(nutrition.IdealCalories(profile)),
	}
}

func (r *Resolver) resolveTrend(goal Goal, data Data, now time.Time, progress *Progress) {
	metric := measurementMetricFor(goal.Type)
	points := analytics.WeeklyMeasurementAverages(data.Measurements, metric, r.trendWeeks, now)

	progress.Trend = make([]TrendPoint, 0, len(points))
	for _, p := range points {
		progress.Trend = append(progress.Trend, TrendPoint{
			WeekStart: nutrition.FormatDate(p.WeekStart),
			Value:     p.Average,
		})
	}

	latest, baseline, ok := latestAndBaseline(points)
	if !ok {
		// no measurements yet: zero progress is a valid state, not an error
		return
	}

	switch goal.Type {
	case TypeWeight:
		target := goal.Params.TargetWeightKg
		progress.Achieved = targetReached(latest, target, goal.Params.Direction)
		progress.Percent = proximityPercent(latest, target, goal.Params.Direction)
	case TypeBodyFat:
		target := goal.Params.TargetPct
		progress.Achieved = targetReached(latest, target, DirectionDown)
		progress.Percent = proximityPercent(latest, target, DirectionDown)
	case TypeLeanMassGain:
		gained := latest - baseline
		target := goal.Params.TargetKg
		progress.Achieved = target > 0 && gained >= target
		if target > 0 {
			progress.Percent = clampPercent(gained / target * 100)
		}
	}
}

func measurementMetricFor(t Type) analytics.MeasurementMetric {
	switch t {
	case TypeBodyFat:
		return analytics.MeasurementBodyFat
	case TypeLeanMassGain:
		return analytics.MeasurementLeanMass
	default:
		return analytics.MeasurementWeight
	}
}

// latestAndBaseline picks the newest and oldest week averages that had
// actual samples.
func latestAndBaseline(points []analytics.WeekPoint) (latest, baseline float64, ok bool) {
	for i := len(points) - 1; i >= 0; i-- {
		if points[i].Samples > 0 {
			latest = points[i].Average
			ok = true
			break
		}
	}
	for i := range points {
		if points[i].Samples > 0 {
			baseline = points[i].Average
			break
		}
	}
	return latest, baseline, ok
}

func targetReached(value, target float64, direction Direction) bool {
	if direction == DirectionUp {
		return value >= target
	}
	return value <= target
}

// proximityPercent maps how close the latest value is to the target
// onto 0..100, direction aware.
func proximityPercent(value, target float64, direction Direction) float64 {
	if target <= 0 || value <= 0 {
		return 0
	}
	if targetReached(value, target, direction) {
		return 100
	}
	if direction == DirectionUp {
		return clampPercent(value / target * 100)
	}
	return clampPercent(target / value * 100)
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
