package nutrition

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

type UnitSystem string

const (
	UnitsMetric   UnitSystem = "metric"
	UnitsImperial UnitSystem = "imperial"
)

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityHeavy     ActivityLevel = "heavy"
	ActivityAthlete   ActivityLevel = "athlete"
)

// Profile holds the body metrics needed to compute basal and ideal targets.
// Height and Weight are kept as the raw strings the user entered; parsing
// depends on the unit system (e.g. imperial height comes as 5'10").
type Profile struct {
	Sex           Sex           `json:"sex"`
	Age           int           `json:"age"`
	Height        string        `json:"height"`
	Weight        string        `json:"weight"`
	Units         UnitSystem    `json:"units"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
}
