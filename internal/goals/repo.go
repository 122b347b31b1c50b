package goals

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ddjurovic/macrotrack/internal/telemetry/tracing"
	"github.com/ddjurovic/macrotrack/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrGoalNotFound = errors.New("goal not found")

	// ErrActiveGoalExists means the partial unique index on active goals
	// rejected a second active goal of the same type.
	ErrActiveGoalExists = errors.New("an active goal of this type already exists")
)

// Repo is the postgres persistence for goals. It also enforces the
// at-most-one-active-goal-per-type invariant on create and activate.
type Repo struct {
	db *pgxpool.Pool
}

func NewGoalsRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, type, params, start_date, end_date, active, status, created_at, updated_at
			FROM goal
			ORDER BY created_at DESC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	goals, err := rows2goals(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2goals: %w", err)
	}
	return goals, nil
}

func (r *Repo) Create(ctx context.Context, in Input, params Params, activate bool) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("goal.type", in.Type.String()))

	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("marshal params: %w", err)
	}

	goal := Goal{
		ID:        uuid.NewString(),
		Type:      in.Type,
		Params:    params,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Active:    activate,
		Status:    StatusActive,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if activate {
		// only one active goal per type
		if _, err = tx.Exec(
			ctx,
			`UPDATE goal SET active = FALSE, updated_at = NOW()
				WHERE type = $1 AND active = TRUE AND status = 'active';`,
			goal.Type,
		); err != nil {
			return nil, fmt.Errorf("deactivate same type goals: %w", err)
		}
	}

	if _, err = tx.Exec(
		ctx,
		`INSERT INTO goal
				(id, type, params, start_date, end_date, active, status, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		goal.ID, goal.Type, paramsJSON, goal.StartDate, goal.EndDate,
		goal.Active, goal.Status, goal.CreatedAt, goal.UpdatedAt,
	); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrActiveGoalExists
		}
		return nil, fmt.Errorf("insert goal: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	span.SetAttributes(attribute.String("goal.id", goal.ID))
	return &goal, nil
}

func (r *Repo) SetActive(ctx context.Context, id string) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.setactive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("goal.id", id))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(
		ctx,
		`UPDATE goal SET active = FALSE, updated_at = NOW()
			WHERE active = TRUE AND status = 'active'
			AND type = (SELECT type FROM goal WHERE id = $1)
			AND id != $1;`,
		id,
	); err != nil {
		return nil, fmt.Errorf("deactivate same type goals: %w", err)
	}

	tag, err := tx.Exec(
		ctx,
		`UPDATE goal SET active = TRUE, status = 'active', updated_at = NOW()
			WHERE id = $1 AND status != 'achieved';`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("activate goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		err = ErrGoalNotFound
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return r.get(ctx, id)
}

func (r *Repo) Deactivate(ctx context.Context, id string) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.deactivate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("goal.id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE goal SET active = FALSE, status = 'deactivated', updated_at = NOW()
			WHERE id = $1 AND status != 'achieved';`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("deactivate goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrGoalNotFound
	}

	return r.get(ctx, id)
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("goal.id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM goal WHERE id = $1;`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// MarkAchieved flips a goal into its terminal achieved state.
func (r *Repo) MarkAchieved(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.markachieved")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("goal.id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE goal SET status = 'achieved', active = FALSE, updated_at = NOW()
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *Repo) get(ctx context.Context, id string) (*Goal, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, type, params, start_date, end_date, active, status, created_at, updated_at
			FROM goal
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	goals, err := rows2goals(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2goals: %w", err)
	}
	if len(goals) != 1 {
		return nil, ErrGoalNotFound
	}
	return &goals[0], nil
}

func rows2goals(rows pgx.Rows) ([]Goal, error) {
	var goals []Goal
	for rows.Next() {
		var g Goal
		var paramsBytes []byte
		var startDate, endDate time.Time
		if err := rows.Scan(
			&g.ID, &g.Type, &paramsBytes, &startDate, &endDate,
			&g.Active, &g.Status, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}

		g.StartDate = startDate.UTC().Format(time.DateOnly)
		g.EndDate = endDate.UTC().Format(time.DateOnly)

		if len(paramsBytes) > 0 {
			if err := json.Unmarshal(paramsBytes, &g.Params); err != nil {
				return nil, fmt.Errorf("unmarshal params for goal %s: %w", g.ID, err)
			}
		}

		goals = append(goals, g)
	}

	if goals == nil {
		goals = make([]Goal, 0)
	}

	return goals, nil
}
