package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ddjurovic/macrotrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrProfileNotFound = errors.New("user profile not found")

// Repo reads daily nutrition records, body measurements and the user
// profile from postgres. The engine treats all of them as immutable
// snapshots; writes happen elsewhere (the logging frontend).
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) DailyRecords(ctx context.Context) (_ []DailyRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.dailyrecords")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT day, calories, protein, carbs, fat, entries
			FROM daily_record
			ORDER BY day;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return rows2records(rows)
}

func (r *Repo) Measurements(ctx context.Context) (_ []Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.measurements")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT day, weight_kg, body_fat_pct, lean_mass_kg
			FROM body_measurement
			ORDER BY day;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	var measurements []Measurement
	for rows.Next() {
		var m Measurement
		var day time.Time
		if err := rows.Scan(&day, &m.WeightKg, &m.BodyFatPct, &m.LeanMassKg); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		m.Date = FormatDate(day)
		measurements = append(measurements, m)
	}
	if measurements == nil {
		measurements = make([]Measurement, 0)
	}

	return measurements, nil
}

func (r *Repo) Profile(ctx context.Context) (_ Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.profile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT sex, age, height, weight, units, activity_level
			FROM user_profile
			LIMIT 1;`,
	)
	if err != nil {
		return Profile{}, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return Profile{}, fmt.Errorf("rows: %w", err)
	}

	if !rows.Next() {
		return Profile{}, ErrProfileNotFound
	}

	var p Profile
	if err := rows.Scan(&p.Sex, &p.Age, &p.Height, &p.Weight, &p.Units, &p.ActivityLevel); err != nil {
		return Profile{}, fmt.Errorf("rows scan: %w", err)
	}
	return p, nil
}

func rows2records(rows pgx.Rows) ([]DailyRecord, error) {
	var records []DailyRecord
	for rows.Next() {
		var rec DailyRecord
		var day time.Time
		var entriesBytes []byte
		if err := rows.Scan(
			&day,
			&rec.Total.Calories, &rec.Total.Protein, &rec.Total.Carbs, &rec.Total.Fat,
			&entriesBytes,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		rec.Date = FormatDate(day)

		if len(entriesBytes) > 0 {
			if err := json.Unmarshal(entriesBytes, &rec.Entries); err != nil {
				return nil, fmt.Errorf("unmarshal entries for day %s: %w", rec.Date, err)
			}
		}

		records = append(records, rec)
	}

	if records == nil {
		records = make([]DailyRecord, 0)
	}

	return records, nil
}
