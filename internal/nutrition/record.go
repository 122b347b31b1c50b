package nutrition

import "time"

// DateLayout is the calendar-date format used across the engine.
// Daily records are bucketed by date string, never by local datetime,
// so aggregation windows do not drift across timezones.
const DateLayout = time.DateOnly

// MacroTotals holds the summed nutrition values of a single day.
type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// LoggedItem is one logged food entry within a day.
type LoggedItem struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DailyRecord is the immutable snapshot of one calendar day of logged
// nutrition. One record exists per distinct date per user; Total is the
// sum of that day's entries.
type DailyRecord struct {
	Date    string       `json:"date"` // YYYY-MM-DD
	Total   MacroTotals  `json:"total"`
	Entries []LoggedItem `json:"entries"`
}

// Day parses the record date. Returns the zero time for malformed dates.
func (r DailyRecord) Day() time.Time {
	day, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return time.Time{}
	}
	return day
}

// FormatDate renders t in the engine's calendar-date format, in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
