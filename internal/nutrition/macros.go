package nutrition

import "math"

// Calories per gram of each macronutrient.
const (
	KcalPerGramProtein = 4
	KcalPerGramCarbs   = 4
	KcalPerGramFat     = 9
)

// MacroSplit is a calorie distribution across macros, in whole percents.
type MacroSplit struct {
	ProteinPct int `json:"proteinPct"`
	CarbsPct   int `json:"carbsPct"`
	FatPct     int `json:"fatPct"`
}

// DefaultMacroSplit is the split used when nothing better is known.
func DefaultMacroSplit() MacroSplit {
	return MacroSplit{ProteinPct: 30, CarbsPct: 40, FatPct: 30}
}

// MacroGrams holds daily gram targets per macronutrient.
type MacroGrams struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// SplitToGrams converts a calorie budget and a percentage split into gram
// targets, rounding each macro up so the targets never undershoot the split.
func SplitToGrams(calories int, split MacroSplit) MacroGrams {
	grams := func(pct, kcalPerGram int) int {
		return int(math.Ceil(float64(calories) * float64(pct) / 100 / float64(kcalPerGram)))
	}
	return MacroGrams{
		Protein: grams(split.ProteinPct, KcalPerGramProtein),
		Carbs:   grams(split.CarbsPct, KcalPerGramCarbs),
		Fat:     grams(split.FatPct, KcalPerGramFat),
	}
}

// GramsToPercents converts macro grams back into a percentage split.
// Protein and carbs are rounded; fat takes the remainder so the three
// always sum to exactly 100. Zero total energy yields the default split.
func GramsToPercents(proteinGrams, carbsGrams, fatGrams float64) MacroSplit {
	proteinKcal := proteinGrams * KcalPerGramProtein
	carbsKcal := carbsGrams * KcalPerGramCarbs
	fatKcal := fatGrams * KcalPerGramFat

	totalKcal := proteinKcal + carbsKcal + fatKcal
	if totalKcal <= 0 {
		return DefaultMacroSplit()
	}

	proteinPct := int(math.Round(proteinKcal / totalKcal * 100))
	carbsPct := int(math.Round(carbsKcal / totalKcal * 100))

	return MacroSplit{
		ProteinPct: proteinPct,
		CarbsPct:   carbsPct,
		FatPct:     100 - proteinPct - carbsPct,
	}
}
