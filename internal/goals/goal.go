package goals

import "time"

// Type is the goal kind. Streak types measure consecutive qualifying
// days; the rest track a numeric value approaching a target.
type Type string

const (
	TypeBodyFat       Type = "body_fat"
	TypeWeight        Type = "weight"
	TypeLeanMassGain  Type = "lean_mass_gain"
	TypeCalorieStreak Type = "calorie_streak"
	TypeProteinStreak Type = "protein_streak"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeBodyFat, TypeWeight, TypeLeanMassGain, TypeCalorieStreak, TypeProteinStreak:
		return true
	default:
		return false
	}
}

// IsStreak reports whether progress for this type is a day streak
// rather than a value trend.
func (t Type) IsStreak() bool {
	return t == TypeCalorieStreak || t == TypeProteinStreak
}

type Status string

const (
	StatusActive      Status = "active"
	StatusDeactivated Status = "deactivated"
	StatusAchieved    Status = "achieved"
)

type Direction string

const (
	DirectionDown Direction = "down"
	DirectionUp   Direction = "up"
)

// Basis tells how calorie streak compliance is judged: against the
// recommended daily target or a custom min/max range.
type Basis string

const (
	BasisRecommended Basis = "recommended"
	BasisCustom      Basis = "custom"
)

// Params carries the type-specific goal parameters. Only the fields
// relevant to the goal type are set; the rest stay zero.
type Params struct {
	// body_fat
	TargetPct float64 `json:"targetPct,omitempty"`
	// weight
	TargetWeightKg float64   `json:"targetWeightKg,omitempty"`
	Direction      Direction `json:"direction,omitempty"`
	// lean_mass_gain
	TargetKg float64 `json:"targetKg,omitempty"`
	// calorie_streak / protein_streak
	TargetDays  int     `json:"targetDays,omitempty"`
	Basis       Basis   `json:"basis,omitempty"`
	MinCalories float64 `json:"minCalories,omitempty"`
	MaxCalories float64 `json:"maxCalories,omitempty"`
	GramsPerDay float64 `json:"gramsPerDay,omitempty"`
}

// Goal is a persisted fitness/nutrition goal. A goal with status
// "achieved" is permanently read-only.
type Goal struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Params    Params    `json:"params"`
	StartDate string    `json:"startDate"` // YYYY-MM-DD
	EndDate   string    `json:"endDate"`   // YYYY-MM-DD
	Active    bool      `json:"active"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsRunning reports whether the goal counts as active for the store's
// partition: flagged active and not deactivated or achieved.
func (g Goal) IsRunning() bool {
	return g.Active && g.Status == StatusActive
}

// StatusText is the display text for the goal state.
func (g Goal) StatusText() string {
	switch {
	case g.Status == StatusAchieved:
		return "Achieved"
	case !g.Active || g.Status == StatusDeactivated:
		return "Inactive"
	default:
		return "Active"
	}
}
