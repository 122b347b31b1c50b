package nutrition

// Measurement is a single body measurement report. Weight is always
// present; body fat and lean mass are optional (zero when not measured).
type Measurement struct {
	Date       string  `json:"date"` // YYYY-MM-DD
	WeightKg   float64 `json:"weightKg"`
	BodyFatPct float64 `json:"bodyFatPct"`
	LeanMassKg float64 `json:"leanMassKg"`
}
