package goals_test

import (
	"testing"
	"time"

	"github.com/ddjurovic/macrotrack/internal/goals"
	"github.com/ddjurovic/macrotrack/internal/nutrition"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday; the week containing it starts Monday 2021-05-03.
var testNow = time.Date(2021, 5, 5, 12, 0, 0, 0, time.UTC)

var testProfile = nutrition.Profile{
	Sex: nutrition.SexMale, Age: 30,
	Height: "180", Weight: "80",
	Units:         nutrition.UnitsMetric,
	ActivityLevel: nutrition.ActivityModerate,
}

func recordOn(date string, calories, protein float64) nutrition.DailyRecord {
	return nutrition.DailyRecord{
		Date:  date,
		Total: nutrition.MacroTotals{Calories: calories, Protein: protein},
	}
}

func newTestResolver() *goals.Resolver {
	return goals.NewResolver(goals.ResolverParams{TrendWeeks: 4, ComplianceDays: 3})
}

func TestResolver_ProteinStreak(t *testing.T) {
	goal := goals.Goal{
		ID:     "g1",
		Type:   goals.TypeProteinStreak,
		Active: true,
		Status: goals.StatusActive,
		Params: goals.Params{GramsPerDay: 100, TargetDays: 3},
	}
	data := goals.Data{
		Profile: testProfile,
		Records: []nutrition.DailyRecord{
			recordOn("2021-05-03", 2100, 120),
			recordOn("2021-05-04", 2000, 80),
			recordOn("2021-05-05", 2200, 150),
		},
	}

	progress := newTestResolver().Resolve(goal, data, testNow)
	require.NotNil(t, progress)
	assert.Equal(t, "g1", progress.GoalID)
	require.NotNil(t, progress.Streak)
	assert.Nil(t, progress.Trend)

	// day two broke the streak, only the newest day counts
	assert.Equal(t, 1, progress.Streak.Current)
	assert.Equal(t, 3, progress.Streak.Target)
	assert.InDelta(t, 100.0/3, progress.Percent, 0.001)
	assert.False(t, progress.Achieved)
	assert.Equal(t, "Active", progress.Label)
}

func TestResolver_ProteinStreak_Achieved(t *testing.T) {
	goal := goals.Goal{
		ID:     "g1",
		Type:   goals.TypeProteinStreak,
		Active: true,
		Status: goals.StatusActive,
		Params: goals.Params{GramsPerDay: 100, TargetDays: 2},
	}
	data := goals.Data{
		Profile: testProfile,
		Records: []nutrition.DailyRecord{
			recordOn("2021-05-04", 2000, 120),
			recordOn("2021-05-05", 2200, 150),
		},
	}

	progress := newTestResolver().Resolve(goal, data, testNow)
	assert.True(t, progress.Achieved)
	assert.Equal(t, 100.0, progress.Percent)
	assert.Equal(t, 2, progress.Streak.Current)
	assert.Equal(t, "Achieved", progress.Label)
}

func TestResolver_StreakWindowCoversTargetDays(t *testing.T) {
	// the target is longer than the configured window; the streak can
	// still reach the full target length
	goal := goals.Goal{
		ID:     "g1",
		Type:   goals.TypeProteinStreak,
		Active: true,
		Status: goals.StatusActive,
		Params: goals.Params{GramsPerDay: 100, TargetDays: 5},
	}
	var records []nutrition.DailyRecord
	for i := 0; i < 5; i++ {
		records = append(records, recordOn(
			nutrition.FormatDate(testNow.AddDate(0, 0, -i)), 2000, 150,
		))
	}

	progress := newTestResolver().Resolve(goal, goals.Data{Profile: testProfile, Records: records}, testNow)
	assert.Equal(t, 5, progress.Streak.Current)
	assert.True(t, progress.Achieved)
}

func TestResolver_CalorieStreak_CustomBasis(t *testing.T) {
	goal := goals.Goal{
		ID:     "g2",
		Type:   goals.TypeCalorieStreak,
		Active: true,
		Status: goals.StatusActive,
		Params: goals.Params{
			TargetDays: 3, Basis: goals.BasisCustom,
			MinCalories: 1800, MaxCalories: 2200,
		},
	}
	data := goals.Data{
		Profile: testProfile,
		Records: []nutrition.DailyRecord{
			recordOn("2021-05-03", 2500, 100), // above max
			recordOn("2021-05-04", 2000, 100),
			recordOn("2021-05-05", 1900, 100),
		},
	}

	progress := newTestResolver().Resolve(goal, data, testNow)
	require.NotNil(t, progress.Streak)
	assert.Equal(t, 2, progress.Streak.Current)
	assert.False(t, progress.Achieved)
}

func TestResolver_CalorieStreak_RecommendedBasis(t *testing.T) {
	// recommended basis judges against the profile's ideal calories (2759 here)
	goal := goals.Goal{
		ID:     "g2",
		Type:   goals.TypeCalorieStreak,
		Active: true,
		Status: goals.StatusActive,
		Params: goals.Params{TargetDays: 1, Basis: goals.BasisRecommended},
	}
	data := goals.Data{
		Profile: testProfile,
		Records: []nutrition.DailyRecord{recordOn("2021-05-05", 2500, 100)},
	}

	progress := newTestResolver().Resolve(goal, data, testNow)
	assert.Equal(t, 1, progress.Streak.Current)
	assert.True(t, progress.Achieved)

	data.Records[0].Total.Calories = 2800 // over the recommended target
	progress = newTestResolver().Resolve(goal, data, testNow)
	assert.Zero(t, progress.Streak.Current)
	assert.False(t, progress.Achieved)
}

func TestResolver_WeightGoal(t *testing.T) {
	goal := goals.Goal{
		ID:     "g3",
		Type:   goals.TypeWeight,
		Active: true,
		Status: goals.StatusActive,
		Params: goals.Params{TargetWeightKg: 80, Direction: goals.DirectionDown},
	}
	data := goals.Data{
		Profile: testProfile,
		Measurements: []nutrition.Measurement{
			{Date: "2021-04-20", WeightKg: 95},
			{Date: "2021-04-27", WeightKg: 90},
		},
	}

	progress := newTestResolver().Resolve(goal, data, testNow)
	require.Nil(t, progress.Streak)
	require.Len(t, progress.Trend, 4)
	assert.Equal(t, "2021-04-26", progress.Trend[2].WeekStart)
	assert.Equal(t, 90.0, progress.Trend[2].Value)
	assert.Equal(t, "2021-05-03", progress.Trend[3].WeekStart)
	assert.Zero(t, progress.Trend[3].Value) // nothing measured this week yet

	// the newest sampled week drives the percent
	assert.False(t, progress.Achieved)
	assert.InDelta(t, 80.0/90.0*100, progress.Percent, 0.001)

	// dropping to the target flips it to achieved
	data.Measurements = append(data.Measurements, nutrition.Measurement{
		Date: "2021-05-05", WeightKg: 79,
	})
	progress = newTestResolver().Resolve(goal, data, testNow)
	assert.True(t, progress.Achieved)
	assert.Equal(t, 100.0, progress.Percent)
}

func TestResolver_WeightGoal_DirectionUp(t *testing.T) {
	goal := goals.Goal{
		ID:     "g3",
		Type:   goals.TypeWeight,
		Active: true,
		Status: goals.StatusActive,
		Params: goals.Params{TargetWeightKg: 80, Direction: goals.DirectionUp},
	}
	data := goals.Data{
		Profile:      testProfile,
		Measurements: []nutrition.Measurement{{Date: "2021-05-04", WeightKg: 72}},
	}

	progress := newTestResolver().Resolve(goal, data, testNow)
	assert.False(t, progress.Achieved)
	assert.InDelta(t, 72.0/80.0*100, progress.Percent, 0.001)
}

func TestResolver_BodyFatGoal(t *testing.T) {
	goal := goals.Goal{
		ID:     "g4",
		Type:   goals.TypeBodyFat,
		Active: true,
		Status: goals.StatusActive,
		Params: goals.Params{TargetPct: 15},
	}
	data := goals.Data{
		Profile:      testProfile,
		Measurements: []nutrition.Measurement{{Date: "2021-05-04", WeightKg: 80, BodyFatPct: 20}},
	}

	progress := newTestResolver().Resolve(goal, data, testNow)
	assert.False(t, progress.Achieved)
	assert.InDelta(t, 15.0/20.0*100, progress.Percent, 0.001)
}

func TestResolver_LeanMassGainGoal(t *testing.T) {
	goal := goals.Goal{
		ID:     "g5",
		Type:   goals.TypeLeanMassGain,
		Active: true,
		Status: goals.StatusActive,
		Params: goals.Params{TargetKg: 5},
	}
	data := goals.Data{
		Profile: testProfile,
		Measurements: []nutrition.Measurement{
			{Date: "2021-04-13", WeightKg: 80, LeanMassKg: 60},
			{Date: "2021-05-04", WeightKg: 82, LeanMassKg: 62},
		},
	}

	progress := newTestResolver().Resolve(goal, data, testNow)
	assert.False(t, progress.Achieved)
	assert.InDelta(t, 40, progress.Percent, 0.001) // gained 2 of 5 kg
}

func TestResolver_NumericGoalWithoutMeasurements(t *testing.T) {
	goal := goals.Goal{
		ID:     "g6",
		Type:   goals.TypeWeight,
		Active: true,
		Status: goals.StatusActive,
		Params: goals.Params{TargetWeightKg: 80, Direction: goals.DirectionDown},
	}

	progress := newTestResolver().Resolve(goal, goals.Data{Profile: testProfile}, testNow)
	require.NotNil(t, progress)
	assert.Zero(t, progress.Percent)
	assert.False(t, progress.Achieved)
	require.Len(t, progress.Trend, 4)
	for _, p := range progress.Trend {
		assert.Zero(t, p.Value)
	}
}

func TestProgressBand(t *testing.T) {
	assert.Equal(t, goals.BandAchieved, goals.ProgressBand(1.0))
	assert.Equal(t, goals.BandAchieved, goals.ProgressBand(1.3))
	assert.Equal(t, goals.BandClose, goals.ProgressBand(0.7))
	assert.Equal(t, goals.BandClose, goals.ProgressBand(0.99))
	assert.Equal(t, goals.BandProgress, goals.ProgressBand(0.3))
	assert.Equal(t, goals.BandProgress, goals.ProgressBand(0.69))
	assert.Equal(t, goals.BandNeedsWork, goals.ProgressBand(0.29))
	assert.Equal(t, goals.BandNeedsWork, goals.ProgressBand(0))
}

func TestGoal_StatusText(t *testing.T) {
	assert.Equal(t, "Achieved", goals.Goal{Status: goals.StatusAchieved}.StatusText())
	assert.Equal(t, "Inactive", goals.Goal{Active: false, Status: goals.StatusActive}.StatusText())
	assert.Equal(t, "Inactive", goals.Goal{Active: true, Status: goals.StatusDeactivated}.StatusText())
	assert.Equal(t, "Active", goals.Goal{Active: true, Status: goals.StatusActive}.StatusText())
}
