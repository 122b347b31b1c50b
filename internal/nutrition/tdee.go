package nutrition

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// activityMultipliers maps activity levels to their TDEE multiplier.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary: 1.2,
	ActivityLight:     1.375,
	ActivityModerate:  1.55,
	ActivityHeavy:     1.725,
	ActivityAthlete:   1.9,
}

const (
	defaultActivityMultiplier = 1.55 // moderate
	defaultAge                = 30
	fallbackHeightCm          = 170
	fallbackWeightLbs         = 160
	lbsPerKg                  = 2.205
)

var imperialHeightRe = regexp.MustCompile(`^\s*(\d+)\s*'\s*(\d+)\s*"?\s*$`)

// ComputeTDEE estimates total daily energy expenditure via the
// Mifflin-St Jeor BMR formula times the activity multiplier, rounded
// to the nearest calorie.
func ComputeTDEE(profile Profile) int {
	weightKg := parseWeightKg(profile)
	heightCm := parseHeightCm(profile)

	age := profile.Age
	if age <= 0 {
		age = defaultAge
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if profile.Sex == SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	mult, ok := activityMultipliers[profile.ActivityLevel]
	if !ok {
		mult = defaultActivityMultiplier
	}

	return int(math.Round(bmr * mult))
}

// FallbackCaloriesBySex returns a coarse maintenance estimate when no
// usable body metrics are available.
func FallbackCaloriesBySex(sex Sex) int {
	switch sex {
	case SexMale:
		return 2500
	case SexFemale:
		return 2000
	default:
		return 2250
	}
}

// IdealCalories is the computed TDEE when positive, sex fallback otherwise.
func IdealCalories(profile Profile) int {
	if tdee := ComputeTDEE(profile); tdee > 0 {
		return tdee
	}
	return FallbackCaloriesBySex(profile.Sex)
}

// TargetSource tells which precedence rule picked the calorie target.
type TargetSource string

const (
	TargetSourceInput    TargetSource = "input"
	TargetSourceTDEE     TargetSource = "tdee"
	TargetSourceFallback TargetSource = "fallback"
)

// ResolveCalorieTarget picks the daily calorie target with precedence:
// explicit positive finite input > computed TDEE > sex fallback.
func ResolveCalorieTarget(profile Profile, explicit float64) (int, TargetSource) {
	if explicit > 0 && !math.IsInf(explicit, 0) && !math.IsNaN(explicit) {
		return int(math.Round(explicit)), TargetSourceInput
	}
	if tdee := ComputeTDEE(profile); tdee > 0 {
		return tdee, TargetSourceTDEE
	}
	return FallbackCaloriesBySex(profile.Sex), TargetSourceFallback
}

func parseHeightCm(profile Profile) float64 {
	raw := strings.TrimSpace(profile.Height)

	if profile.Units == UnitsImperial {
		m := imperialHeightRe.FindStringSubmatch(raw)
		if m == nil {
			return fallbackHeightCm
		}
		feet, _ := strconv.Atoi(m[1])
		inches, _ := strconv.Atoi(m[2])
		return (float64(feet)*12 + float64(inches)) * 2.54
	}

	cm, err := strconv.ParseFloat(raw, 64)
	if err != nil || cm <= 0 {
		return fallbackHeightCm
	}
	return cm
}

func parseWeightKg(profile Profile) float64 {
	raw := strings.TrimSpace(profile.Weight)

	if profile.Units == UnitsImperial {
		lbs, err := strconv.ParseFloat(raw, 64)
		if err != nil || lbs <= 0 {
			lbs = fallbackWeightLbs
		}
		return lbs / lbsPerKg
	}

	kg, err := strconv.ParseFloat(raw, 64)
	if err != nil || kg <= 0 {
		return fallbackWeightLbs / lbsPerKg
	}
	return kg
}
