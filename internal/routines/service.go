package routines

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitjournal/internal/telemetry/tracing"
)

type routinesStore interface {
	Get(ctx context.Context, uid, routineID string) (Routine, error)
	Update(ctx context.Context, uid, routineID string, upd RoutineUpdate) error
}

// Service runs the exercise and set operations as read-modify-write
// cycles: get the routine, transform it, write the whole exercises
// field back. A failed transform writes nothing. Concurrent writers are
// not detected, the last write wins.
type Service struct {
	store routinesStore
	now   func() time.Time
}

func NewService(store routinesStore) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

func (s *Service) AddExercise(ctx context.Context, uid, routineID string, in ExerciseInput) (Routine, error) {
	return s.mutate(ctx, "service.routines.add_exercise", uid, routineID, func(r Routine, now time.Time) (Routine, error) {
		return AddExercise(r, in, now)
	})
}

func (s *Service) RemoveExercise(ctx context.Context, uid, routineID, exerciseID string) (Routine, error) {
	return s.mutate(ctx, "service.routines.remove_exercise", uid, routineID, func(r Routine, now time.Time) (Routine, error) {
		return RemoveExercise(r, exerciseID, now)
	})
}

func (s *Service) AppendSet(ctx context.Context, uid, routineID, exerciseID string, in SetInput) (Routine, error) {
	return s.mutate(ctx, "service.routines.append_set", uid, routineID, func(r Routine, now time.Time) (Routine, error) {
		return MutateSets(r, exerciseID, AppendOp(in, now), now)
	})
}

func (s *Service) ReplaceSet(ctx context.Context, uid, routineID, exerciseID, setID string, patch SetPatch) (Routine, error) {
	return s.mutate(ctx, "service.routines.replace_set", uid, routineID, func(r Routine, now time.Time) (Routine, error) {
		return MutateSets(r, exerciseID, ReplaceOp(setID, patch), now)
	})
}

func (s *Service) RemoveSet(ctx context.Context, uid, routineID, exerciseID, setID string) (Routine, error) {
	return s.mutate(ctx, "service.routines.remove_set", uid, routineID, func(r Routine, now time.Time) (Routine, error) {
		return MutateSets(r, exerciseID, RemoveOp(setID), now)
	})
}

func (s *Service) ClearSets(ctx context.Context, uid, routineID, exerciseID string) (Routine, error) {
	return s.mutate(ctx, "service.routines.clear_sets", uid, routineID, func(r Routine, now time.Time) (Routine, error) {
		return MutateSets(r, exerciseID, ClearOp(), now)
	})
}

// ExerciseVolume reads the routine and sums the volume of one exercise.
func (s *Service) ExerciseVolume(ctx context.Context, uid, routineID, exerciseID string) (_ float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.routines.exercise_volume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	r, err := s.store.Get(ctx, uid, routineID)
	if err != nil {
		return 0, err
	}
	ex, err := FindExercise(r, exerciseID)
	if err != nil {
		return 0, err
	}
	return TotalVolume(ex), nil
}

func (s *Service) mutate(
	ctx context.Context,
	spanName, uid, routineID string,
	transform func(r Routine, now time.Time) (Routine, error),
) (_ Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, spanName)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("uid", uid),
		attribute.String("routine.id", routineID),
	)

	current, err := s.store.Get(ctx, uid, routineID)
	if err != nil {
		return Routine{}, err
	}

	now := s.now().UTC()
	updated, err := transform(current, now)
	if err != nil {
		return Routine{}, err
	}

	if err := s.store.Update(ctx, uid, routineID, RoutineUpdate{
		Exercises: &updated.Exercises,
		UpdatedAt: now,
	}); err != nil {
		return Routine{}, err
	}

	return updated, nil
}
