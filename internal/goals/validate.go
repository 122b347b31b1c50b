package goals

import (
	"math"
	"strconv"
	"strings"
)

// Input is the raw user-submitted goal form. Numeric fields arrive as
// strings straight from the form and are parsed during validation.
type Input struct {
	Type      Type   `json:"type"`
	StartDate string `json:"startDate"` // YYYY-MM-DD
	EndDate   string `json:"endDate"`   // YYYY-MM-DD
	Fields    Fields `json:"fields"`
}

// Fields holds the per-type form fields; only the ones matching the
// goal type are looked at.
type Fields struct {
	TargetPct    string `json:"targetPct"`
	TargetWeight string `json:"targetWeight"`
	Direction    string `json:"direction"`
	TargetKg     string `json:"targetKg"`
	TargetDays   string `json:"targetDays"`
	Basis        string `json:"basis"`
	CalMin       string `json:"calMin"`
	CalMax       string `json:"calMax"`
	GramsPerDay  string `json:"gramsPerDay"`
}

// ValidationResult is the outcome of goal input validation. Params is
// only meaningful when OK is true.
type ValidationResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Params  Params `json:"params,omitempty"`
}

func valid(params Params) ValidationResult {
	return ValidationResult{OK: true, Params: params}
}

func invalid(message string) ValidationResult {
	return ValidationResult{OK: false, Message: message}
}

// ValidateGoalInput checks and normalizes a goal form into typed
// parameters. Pure and deterministic; failures come back as a result
// value, never as an error.
func ValidateGoalInput(in Input) ValidationResult {
	if strings.TrimSpace(in.EndDate) == "" {
		return invalid("pick an end date")
	}
	if in.EndDate < in.StartDate {
		return invalid("end date is before the start date")
	}

	switch in.Type {
	case TypeBodyFat:
		return validateBodyFat(in.Fields)
	case TypeWeight:
		return validateWeight(in.Fields)
	case TypeLeanMassGain:
		return validateLeanMassGain(in.Fields)
	case TypeCalorieStreak:
		return validateCalorieStreak(in.Fields)
	case TypeProteinStreak:
		return validateProteinStreak(in.Fields)
	default:
		return invalid("unknown goal type")
	}
}

func validateBodyFat(f Fields) ValidationResult {
	pct, ok := parseNumber(f.TargetPct)
	if !ok || pct < 5 || pct > 45 {
		return invalid("target body fat must be between 5 and 45 percent")
	}
	return valid(Params{TargetPct: pct})
}

func validateWeight(f Fields) ValidationResult {
	kg, ok := parseNumber(f.TargetWeight)
	if !ok || kg < 30 || kg > 300 {
		return invalid("target weight must be between 30 and 300 kg")
	}
	direction := Direction(f.Direction)
	if direction != DirectionDown && direction != DirectionUp {
		return invalid("weight goal direction must be down or up")
	}
	return valid(Params{TargetWeightKg: kg, Direction: direction})
}

func validateLeanMassGain(f Fields) ValidationResult {
	kg, ok := parseNumber(f.TargetKg)
	if !ok || kg <= 0 || kg > 20 {
		return invalid("lean mass gain target must be above 0 and at most 20 kg")
	}
	return valid(Params{TargetKg: kg})
}

func validateCalorieStreak(f Fields) ValidationResult {
	days, ok := parseDays(f.TargetDays)
	if !ok {
		return invalid("streak length must be between 1 and 365 days")
	}

	basis := Basis(f.Basis)
	if basis == "" {
		basis = BasisRecommended
	}
	if basis != BasisRecommended && basis != BasisCustom {
		return invalid("calorie streak basis must be recommended or custom")
	}

	params := Params{TargetDays: days, Basis: basis}
	if basis == BasisRecommended {
		return valid(params)
	}

	// custom basis: both bounds optional, but whichever is given must be
	// positive, and min < max when both are present
	if f.CalMin != "" {
		minCal, ok := parseNumber(f.CalMin)
		if !ok || minCal <= 0 {
			return invalid("custom calorie minimum must be a positive number")
		}
		params.MinCalories = minCal
	}
	if f.CalMax != "" {
		maxCal, ok := parseNumber(f.CalMax)
		if !ok || maxCal <= 0 {
			return invalid("custom calorie maximum must be a positive number")
		}
		params.MaxCalories = maxCal
	}
	if params.MinCalories > 0 && params.MaxCalories > 0 && params.MinCalories >= params.MaxCalories {
		return invalid("custom calorie minimum must be below the maximum")
	}

	return valid(params)
}

func validateProteinStreak(f Fields) ValidationResult {
	grams, ok := parseNumber(f.GramsPerDay)
	if !ok || grams < 30 || grams > 400 {
		return invalid("protein target must be between 30 and 400 grams per day")
	}
	days, ok := parseDays(f.TargetDays)
	if !ok {
		return invalid("streak length must be between 1 and 365 days")
	}
	return valid(Params{GramsPerDay: grams, TargetDays: days})
}

func parseNumber(s string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func parseDays(s string) (int, bool) {
	days, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || days < 1 || days > 365 {
		return 0, false
	}
	return days, true
}
