package analytics

import (
	"time"

	"github.com/ddjurovic/macrotrack/internal/nutrition"
)

// AvgDailyMacros is the windowed actual average of daily totals.
// DaysCounted is the number of days in the window that had a record;
// averages are taken over those days only.
type AvgDailyMacros struct {
	Avg         nutrition.MacroTotals `json:"avg"`
	DaysCounted int                   `json:"daysCounted"`
}

// ComputeAvgDailyMacros averages the daily totals over the trailing
// `days` calendar days ending at now, inclusive. The window check uses
// plain date-string comparison so a record logged late at night never
// shifts buckets under a different timezone.
func ComputeAvgDailyMacros(records []nutrition.DailyRecord, days int, now time.Time) AvgDailyMacros {
	if days <= 0 {
		return AvgDailyMacros{}
	}

	windowEnd := nutrition.FormatDate(now)
	windowStart := nutrition.FormatDate(now.AddDate(0, 0, -(days - 1)))

	var sum nutrition.MacroTotals
	counted := 0
	for _, rec := range records {
		if rec.Date < windowStart || rec.Date > windowEnd {
			continue
		}
		sum.Calories += rec.Total.Calories
		sum.Protein += rec.Total.Protein
		sum.Carbs += rec.Total.Carbs
		sum.Fat += rec.Total.Fat
		counted++
	}

	if counted == 0 {
		return AvgDailyMacros{}
	}

	n := float64(counted)
	return AvgDailyMacros{
		Avg: nutrition.MacroTotals{
			Calories: sum.Calories / n,
			Protein:  sum.Protein / n,
			Carbs:    sum.Carbs / n,
			Fat:      sum.Fat / n,
		},
		DaysCounted: counted,
	}
}

// IdealComparison pairs the profile-derived ideal intake with the
// windowed actual average. Every delta is actual minus ideal.
type IdealComparison struct {
	IdealCalories     int                   `json:"idealCalories"`
	IdealGrams        nutrition.MacroGrams  `json:"idealGrams"`
	ActualAvgCalories float64               `json:"actualAvgCalories"`
	ActualAvgGrams    nutrition.MacroTotals `json:"actualAvgGrams"`
	DeltaCalories     float64               `json:"deltaCalories"`
	DeltaProtein      float64               `json:"deltaProtein"`
	DeltaCarbs        float64               `json:"deltaCarbs"`
	DeltaFat          float64               `json:"deltaFat"`
	DaysCounted       int                   `json:"daysCounted"`
}

func BuildIdealComparison(
	profile nutrition.Profile,
	records []nutrition.DailyRecord,
	days int,
	now time.Time,
) IdealComparison {
	idealCalories := nutrition.IdealCalories(profile)
	idealGrams := nutrition.SplitToGrams(idealCalories, nutrition.DefaultMacroSplit())

	actual := ComputeAvgDailyMacros(records, days, now)

	return IdealComparison{
		IdealCalories:     idealCalories,
		IdealGrams:        idealGrams,
		ActualAvgCalories: actual.Avg.Calories,
		ActualAvgGrams:    actual.Avg,
		DeltaCalories:     actual.Avg.Calories - float64(idealCalories),
		DeltaProtein:      actual.Avg.Protein - float64(idealGrams.Protein),
		DeltaCarbs:        actual.Avg.Carbs - float64(idealGrams.Carbs),
		DeltaFat:          actual.Avg.Fat - float64(idealGrams.Fat),
		DaysCounted:       actual.DaysCounted,
	}
}
