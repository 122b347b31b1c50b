package goals

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ddjurovic/macrotrack/internal/events"
	"github.com/ddjurovic/macrotrack/internal/nutrition"
	"github.com/ddjurovic/macrotrack/internal/telemetry/metrics"
	"github.com/ddjurovic/macrotrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// ErrGoalAchieved is returned when a mutation targets an achieved goal;
// achieved goals are permanently read-only.
var ErrGoalAchieved = errors.New("goal is achieved and can no longer be changed")

// ErrInvalidGoalInput wraps a validation failure message on create.
var ErrInvalidGoalInput = errors.New("invalid goal input")

//go:generate mockgen -source=store.go -destination=store_mocks_test.go -package=goals_test

type goalsRepo interface {
	List(ctx context.Context) ([]Goal, error)
	Create(ctx context.Context, in Input, params Params, activate bool) (*Goal, error)
	SetActive(ctx context.Context, id string) (*Goal, error)
	Deactivate(ctx context.Context, id string) (*Goal, error)
	Delete(ctx context.Context, id string) error
}

type nutritionSource interface {
	DailyRecords(ctx context.Context) ([]nutrition.DailyRecord, error)
	Measurements(ctx context.Context) ([]nutrition.Measurement, error)
	Profile(ctx context.Context) (nutrition.Profile, error)
}

type progressCache interface {
	Get(ctx context.Context, goalID string) (*Progress, bool)
	Set(ctx context.Context, progress *Progress)
	Invalidate(ctx context.Context, goalIDs ...string)
}

// Store owns the in-memory partition of active/archived goals and their
// computed progress for one session. It mediates all goal mutations
// against the external persistence layer and re-derives its state with
// a full reload after every mutation except delete, which patches
// locally for responsiveness.
type Store struct {
	repo     goalsRepo
	source   nutritionSource
	cache    progressCache
	resolver *Resolver
	metrics  *metrics.Manager
	now      func() time.Time

	mutex        sync.RWMutex
	goals        []Goal
	archived     []Goal
	progressByID map[string]*Progress
	loading      bool
	lastErr      error

	// guards the achieved-transition reload in RefreshProgress so it
	// cannot cascade: achieved status is terminal, one reload is enough
	reloadInFlight atomic.Bool

	busSub *events.Subscription
}

type NewStoreParams struct {
	Repo     goalsRepo
	Source   nutritionSource
	Cache    progressCache
	Resolver *Resolver
	Metrics  *metrics.Manager
	Now      func() time.Time
}

func NewStore(params NewStoreParams) *Store {
	if params.Now == nil {
		params.Now = time.Now
	}
	if params.Resolver == nil {
		params.Resolver = NewResolver(ResolverParams{})
	}
	return &Store{
		repo:         params.Repo,
		source:       params.Source,
		cache:        params.Cache,
		resolver:     params.Resolver,
		metrics:      params.Metrics,
		now:          params.Now,
		progressByID: map[string]*Progress{},
	}
}

// SubscribeTo registers the store on the bus so that external
// data-changed notifications trigger a progress refresh for all
// currently active goals.
func (s *Store) SubscribeTo(bus *events.Bus) {
	s.busSub = bus.Subscribe(events.TopicNutritionDataChanged, func(ctx context.Context) {
		if s.cache != nil {
			// cached progress is stale the moment the underlying records change
			s.mutex.RLock()
			ids := make([]string, 0, len(s.goals))
			for _, g := range s.goals {
				ids = append(ids, g.ID)
			}
			s.mutex.RUnlock()
			s.cache.Invalidate(ctx, ids...)
		}
		if _, err := s.RefreshProgress(ctx); err != nil {
			log.Errorf("goals store: refresh on data change: %s", err)
		}
	})
}

// Close releases the bus subscription.
func (s *Store) Close() {
	s.busSub.Unsubscribe()
}

// LoadGoals fetches all goals, partitions them into active and archived
// and recomputes progress for every active goal. On failure the
// previous state is kept untouched (last known good) and only the error
// is recorded.
func (s *Store) LoadGoals(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.goals.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if s.reloadInFlight.CompareAndSwap(false, true) {
		defer s.reloadInFlight.Store(false)
	}

	s.setLoading(true)
	defer s.setLoading(false)

	all, err := s.repo.List(ctx)
	if err != nil {
		s.mutex.Lock()
		s.lastErr = err
		s.mutex.Unlock()
		return fmt.Errorf("list goals: %w", err)
	}

	var active, archived []Goal
	for _, g := range all {
		if g.IsRunning() {
			active = append(active, g)
		} else {
			archived = append(archived, g)
		}
	}

	s.mutex.Lock()
	s.goals = active
	s.archived = archived
	s.lastErr = nil
	s.mutex.Unlock()

	if s.metrics != nil {
		s.metrics.CounterGoalsReloads.Inc()
		s.metrics.GaugeActiveGoals.Set(float64(len(active)))
	}
	span.SetAttributes(attribute.Int("goals.active", len(active)))
	span.SetAttributes(attribute.Int("goals.archived", len(archived)))

	activeIDs := make([]string, 0, len(active))
	for _, g := range active {
		activeIDs = append(activeIDs, g.ID)
	}
	if _, err := s.RefreshProgress(ctx, activeIDs...); err != nil {
		log.Errorf("goals store: refresh after load: %s", err)
	}

	return nil
}

// CreateGoal validates the input, delegates the create to the external
// store and then fully reloads, so backend-enforced invariants (at most
// one active goal per type) are reflected locally.
func (s *Store) CreateGoal(ctx context.Context, in Input, activate bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.goals.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("goal.type", in.Type.String()))

	result := ValidateGoalInput(in)
	if !result.OK {
		return fmt.Errorf("%w: %s", ErrInvalidGoalInput, result.Message)
	}

	if _, err := s.repo.Create(ctx, in, result.Params, activate); err != nil {
		return fmt.Errorf("create goal: %w", err)
	}

	if s.metrics != nil {
		s.metrics.CounterGoalsCreated.Inc()
	}

	return s.LoadGoals(ctx)
}

// SetActive activates a goal, then fully reloads. Achieved goals are
// rejected before any external call.
func (s *Store) SetActive(ctx context.Context, goalID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.goals.setactive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("goal.id", goalID))

	if err := s.rejectIfAchieved(goalID); err != nil {
		return err
	}

	if _, err := s.repo.SetActive(ctx, goalID); err != nil {
		return fmt.Errorf("set goal active: %w", err)
	}
	return s.LoadGoals(ctx)
}

// Deactivate deactivates a goal, then fully reloads. Achieved goals are
// rejected before any external call.
func (s *Store) Deactivate(ctx context.Context, goalID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.goals.deactivate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("goal.id", goalID))

	if err := s.rejectIfAchieved(goalID); err != nil {
		return err
	}

	if _, err := s.repo.Deactivate(ctx, goalID); err != nil {
		return fmt.Errorf("deactivate goal: %w", err)
	}
	return s.LoadGoals(ctx)
}

// DeleteGoal delegates the delete and patches local state optimistically:
// the goal is filtered out of both lists and its progress dropped, with
// no full reload.
func (s *Store) DeleteGoal(ctx context.Context, goalID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.goals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("goal.id", goalID))

	if err := s.repo.Delete(ctx, goalID); err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}

	s.mutex.Lock()
	s.goals = filterOut(s.goals, goalID)
	s.archived = filterOut(s.archived, goalID)
	delete(s.progressByID, goalID)
	s.mutex.Unlock()

	if s.cache != nil {
		s.cache.Invalidate(ctx, goalID)
	}
	if s.metrics != nil {
		s.metrics.CounterGoalsDeleted.Inc()
	}
	return nil
}

// RefreshProgress recomputes progress for the given goal ids (all
// currently active goals when none are given), fanning the per-goal
// computations out concurrently and merging the batch into the progress
// map. Goals with no computable progress map to nil, not omission. If a
// goal from the active list comes back achieved, one guarded full
// reload moves it into archived.
func (s *Store) RefreshProgress(ctx context.Context, goalIDs ...string) (_ map[string]*Progress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.goals.refreshprogress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	start := s.now()
	if s.metrics != nil {
		s.metrics.CounterProgressRefreshes.Inc()
		defer func() {
			s.metrics.HistProgressRefreshDuration.Observe(s.now().Sub(start).Seconds())
		}()
	}

	byID := map[string]Goal{}
	s.mutex.RLock()
	for _, g := range s.goals {
		byID[g.ID] = g
	}
	for _, g := range s.archived {
		byID[g.ID] = g
	}
	if len(goalIDs) == 0 {
		for _, g := range s.goals {
			goalIDs = append(goalIDs, g.ID)
		}
	}
	s.mutex.RUnlock()

	span.SetAttributes(attribute.Int("goal.count", len(goalIDs)))
	if len(goalIDs) == 0 {
		return map[string]*Progress{}, nil
	}

	data, err := s.fetchData(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch nutrition data: %w", err)
	}

	results := make(map[string]*Progress, len(goalIDs))
	var resultsMutex sync.Mutex
	var wg sync.WaitGroup
	for _, goalID := range goalIDs {
		wg.Add(1)
		go func(goalID string) {
			defer wg.Done()
			progress := s.progressFor(ctx, byID, goalID, data)
			resultsMutex.Lock()
			results[goalID] = progress
			resultsMutex.Unlock()
		}(goalID)
	}
	wg.Wait()

	newlyAchieved := false
	s.mutex.Lock()
	for goalID, progress := range results {
		s.progressByID[goalID] = progress
		if progress == nil || !progress.Achieved {
			continue
		}
		for _, g := range s.goals {
			if g.ID == goalID {
				newlyAchieved = true
				break
			}
		}
	}
	s.mutex.Unlock()

	if newlyAchieved && !s.reloadInFlight.Load() {
		log.Infof("goals store: goal achieved, reloading goal lists")
		if err := s.LoadGoals(ctx); err != nil {
			log.Errorf("goals store: reload after achievement: %s", err)
		}
	}

	return results, nil
}

func (s *Store) progressFor(ctx context.Context, byID map[string]Goal, goalID string, data Data) *Progress {
	goal, known := byID[goalID]
	if !known {
		return nil
	}

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, goalID); ok {
			if s.metrics != nil {
				s.metrics.CounterProgressCacheHit.Inc()
			}
			return cached
		}
		if s.metrics != nil {
			s.metrics.CounterProgressCacheMiss.Inc()
		}
	}

	progress := s.resolver.Resolve(goal, data, s.now())
	if s.cache != nil && progress != nil {
		s.cache.Set(ctx, progress)
	}
	return progress
}

func (s *Store) fetchData(ctx context.Context) (Data, error) {
	profile, err := s.source.Profile(ctx)
	if err != nil {
		return Data{}, fmt.Errorf("get profile: %w", err)
	}
	records, err := s.source.DailyRecords(ctx)
	if err != nil {
		return Data{}, fmt.Errorf("get daily records: %w", err)
	}
	measurements, err := s.source.Measurements(ctx)
	if err != nil {
		return Data{}, fmt.Errorf("get measurements: %w", err)
	}
	return Data{
		Profile:      profile,
		Records:      records,
		Measurements: measurements,
	}, nil
}

func (s *Store) rejectIfAchieved(goalID string) error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	for _, g := range s.archived {
		if g.ID == goalID && g.Status == StatusAchieved {
			return ErrGoalAchieved
		}
	}
	for _, g := range s.goals {
		if g.ID == goalID && g.Status == StatusAchieved {
			return ErrGoalAchieved
		}
	}
	return nil
}

func (s *Store) setLoading(loading bool) {
	s.mutex.Lock()
	s.loading = loading
	s.mutex.Unlock()
}

// IsLoading reports whether a full goals load is in progress.
func (s *Store) IsLoading() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.loading
}

// Err returns the error recorded by the last failed load, nil after a
// successful one.
func (s *Store) Err() error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.lastErr
}

// ActiveGoals returns a copy of the active goal list in stored order.
func (s *Store) ActiveGoals() []Goal {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return append([]Goal(nil), s.goals...)
}

// ArchivedGoals returns a copy of the archived goal list.
func (s *Store) ArchivedGoals() []Goal {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return append([]Goal(nil), s.archived...)
}

// TopNActive returns the first n active goals in stored order.
func (s *Store) TopNActive(n int) []Goal {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if n > len(s.goals) {
		n = len(s.goals)
	}
	if n < 0 {
		n = 0
	}
	return append([]Goal(nil), s.goals[:n]...)
}

// ByType returns all goals of the given type, active and archived.
func (s *Store) ByType(t Type) []Goal {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	var out []Goal
	for _, g := range s.goals {
		if g.Type == t {
			out = append(out, g)
		}
	}
	for _, g := range s.archived {
		if g.Type == t {
			out = append(out, g)
		}
	}
	return out
}

// ProgressFor returns the computed progress for the goal, nil when none
// is available.
func (s *Store) ProgressFor(goalID string) *Progress {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.progressByID[goalID]
}

// StreakSnapshotFor returns the streak state for a streak goal, nil for
// numeric goals or missing progress.
func (s *Store) StreakSnapshotFor(goalID string) *StreakSnapshot {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if progress := s.progressByID[goalID]; progress != nil {
		return progress.Streak
	}
	return nil
}

func filterOut(goals []Goal, goalID string) []Goal {
	out := goals[:0:0]
	for _, g := range goals {
		if g.ID != goalID {
			out = append(out, g)
		}
	}
	return out
}
