package analytics

import (
	"time"

	"github.com/ddjurovic/macrotrack/internal/nutrition"
)

// CompliancePoint marks whether one calendar day satisfied a goal's
// per-day threshold.
type CompliancePoint struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Compliant bool   `json:"compliant"`
}

// ProteinCompliance emits one point per calendar day in the trailing
// `days` window ending at now, oldest to newest. Days without a record
// count as zero protein and are therefore non-compliant.
func ProteinCompliance(
	records []nutrition.DailyRecord,
	gramsPerDay float64,
	days int,
	now time.Time,
) []CompliancePoint {
	byDate := recordsByDate(records)

	points := make([]CompliancePoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := nutrition.FormatDate(now.AddDate(0, 0, -i))
		var protein float64
		if rec, ok := byDate[date]; ok {
			protein = rec.Total.Protein
		}
		points = append(points, CompliancePoint{
			Date:      date,
			Compliant: protein >= gramsPerDay,
		})
	}
	return points
}

// CalorieRule is a resolved per-day calorie compliance band. A zero
// bound means that side is unbounded.
type CalorieRule struct {
	Min float64
	Max float64
}

// CalorieCompliance emits one point per calendar day in the trailing
// window, oldest to newest. A day with nothing logged is never
// compliant, even against a max-only rule.
func CalorieCompliance(
	records []nutrition.DailyRecord,
	rule CalorieRule,
	days int,
	now time.Time,
) []CompliancePoint {
	byDate := recordsByDate(records)

	points := make([]CompliancePoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := nutrition.FormatDate(now.AddDate(0, 0, -i))
		var calories float64
		if rec, ok := byDate[date]; ok {
			calories = rec.Total.Calories
		}

		compliant := calories > 0
		if rule.Min > 0 && calories < rule.Min {
			compliant = false
		}
		if rule.Max > 0 && calories > rule.Max {
			compliant = false
		}

		points = append(points, CompliancePoint{
			Date:      date,
			Compliant: compliant,
		})
	}
	return points
}

// CurrentStreak counts consecutive compliant days at the newest end of
// the point sequence.
func CurrentStreak(points []CompliancePoint) int {
	streak := 0
	for i := len(points) - 1; i >= 0; i-- {
		if !points[i].Compliant {
			break
		}
		streak++
	}
	return streak
}

// ToWeeklyGrid reshapes an oldest-to-newest point sequence into rows of
// seven, Monday through Sunday. The first row is left-padded with nils
// so the first point lands in its weekday column; every following row
// is a straight consecutive slice of seven. Empty input gives an empty
// grid.
func ToWeeklyGrid(points []CompliancePoint) [][]*CompliancePoint {
	if len(points) == 0 {
		return [][]*CompliancePoint{}
	}

	firstDay, err := time.Parse(nutrition.DateLayout, points[0].Date)
	var pad int
	if err == nil {
		pad = (int(firstDay.Weekday()) + 6) % 7 // Monday = 0
	}

	cells := make([]*CompliancePoint, 0, pad+len(points))
	for i := 0; i < pad; i++ {
		cells = append(cells, nil)
	}
	for i := range points {
		cells = append(cells, &points[i])
	}

	var grid [][]*CompliancePoint
	for start := 0; start < len(cells); start += 7 {
		end := start + 7
		if end > len(cells) {
			end = len(cells)
		}
		grid = append(grid, cells[start:end])
	}
	return grid
}

func recordsByDate(records []nutrition.DailyRecord) map[string]nutrition.DailyRecord {
	byDate := make(map[string]nutrition.DailyRecord, len(records))
	for _, rec := range records {
		byDate[rec.Date] = rec
	}
	return byDate
}
