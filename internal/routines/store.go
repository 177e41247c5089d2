package routines

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitjournal/internal/apperr"
	"github.com/2beens/fitjournal/internal/docstore"
	"github.com/2beens/fitjournal/internal/ids"
	"github.com/2beens/fitjournal/internal/telemetry/tracing"
)

const (
	MaxRoutines          = 10
	MaxNameLength        = 30
	MaxDescriptionLength = 100

	routinesCollection = "customRoutines"
)

// Store keeps a user's custom routines under users/{uid}/customRoutines.
type Store struct {
	docs docstore.Store
	now  func() time.Time
}

func NewStore(docs docstore.Store) *Store {
	return &Store{
		docs: docs,
		now:  time.Now,
	}
}

func collectionPath(uid string) string {
	return docstore.Doc("users", uid, routinesCollection)
}

func routinePath(uid, routineID string) string {
	return docstore.Doc("users", uid, routinesCollection, routineID)
}

// List returns the user's routines, most recently updated first.
func (s *Store) List(ctx context.Context, uid string) (_ []Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.routines.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("uid", uid))

	snapshots, err := s.docs.List(ctx, collectionPath(uid), docstore.OrderBy{Field: "updatedAt", Desc: true})
	if err != nil {
		return nil, apperr.Persistence("list routines", err)
	}

	routines := make([]Routine, 0, len(snapshots))
	for i := range snapshots {
		r, err := decodeRoutine(&snapshots[i])
		if err != nil {
			return nil, apperr.Persistence("list routines", err)
		}
		routines = append(routines, r)
	}
	return routines, nil
}

// Create validates the input and writes a new empty routine.
// The routine cap is checked against a fresh List before the write, with
// no transaction: two devices creating at once can both get past it.
func (s *Store) Create(ctx context.Context, uid string, in RoutineInput) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.routines.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("uid", uid))

	name, err := validateName(in.Name)
	if err != nil {
		return "", err
	}
	description, err := validateDescription(in.Description)
	if err != nil {
		return "", err
	}
	if !in.Color.Valid() {
		return "", apperr.Validation("color", "unknown color %q", string(in.Color))
	}

	existing, err := s.List(ctx, uid)
	if err != nil {
		return "", err
	}
	if len(existing) >= MaxRoutines {
		return "", apperr.Validation("routines", "you can have at most %d custom routines", MaxRoutines)
	}

	now := s.now().UTC()
	routine := Routine{
		ID:          ids.New(ids.PrefixRoutine),
		Name:        name,
		Description: description,
		Color:       in.Color,
		Exercises:   []Exercise{},
		History:     []WorkoutLog{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.docs.Set(ctx, routinePath(uid, routine.ID), routine, docstore.SetOptions{}); err != nil {
		return "", apperr.Persistence("create routine", err)
	}

	span.SetAttributes(attribute.String("routine.id", routine.ID))
	log.Debugf("routine [%s] created for user [%s]", routine.ID, uid)

	return routine.ID, nil
}

func (s *Store) Get(ctx context.Context, uid, routineID string) (_ Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.routines.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("uid", uid),
		attribute.String("routine.id", routineID),
	)

	snapshot, err := s.docs.Get(ctx, routinePath(uid, routineID))
	if err != nil {
		if errors.Is(err, docstore.ErrDocumentNotFound) {
			return Routine{}, apperr.NotFound("routine", routineID)
		}
		return Routine{}, apperr.Persistence("get routine", err)
	}

	r, err := decodeRoutine(snapshot)
	if err != nil {
		return Routine{}, apperr.Persistence("get routine", err)
	}
	return r, nil
}

// Update writes the given fields, each one replacing the stored value
// as a whole.
func (s *Store) Update(ctx context.Context, uid, routineID string, upd RoutineUpdate) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.routines.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("uid", uid),
		attribute.String("routine.id", routineID),
	)

	fields := map[string]any{}
	if upd.Name != nil {
		name, err := validateName(*upd.Name)
		if err != nil {
			return err
		}
		fields["name"] = name
	}
	if upd.Description != nil {
		description, err := validateDescription(upd.Description)
		if err != nil {
			return err
		}
		fields["description"] = description
	}
	if upd.Color != nil {
		if !upd.Color.Valid() {
			return apperr.Validation("color", "unknown color %q", string(*upd.Color))
		}
		fields["color"] = *upd.Color
	}
	if upd.Exercises != nil {
		exercises := *upd.Exercises
		if exercises == nil {
			exercises = []Exercise{}
		}
		if err := ValidateExercises(exercises); err != nil {
			return err
		}
		fields["exercises"] = exercises
	}

	updatedAt := upd.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = s.now()
	}
	fields["updatedAt"] = updatedAt.UTC()

	if err := s.docs.Update(ctx, routinePath(uid, routineID), fields); err != nil {
		if errors.Is(err, docstore.ErrDocumentNotFound) {
			return apperr.NotFound("routine", routineID)
		}
		return apperr.Persistence("update routine", err)
	}
	return nil
}

// Delete removes the routine with all its exercises and sets.
func (s *Store) Delete(ctx context.Context, uid, routineID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.routines.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("uid", uid),
		attribute.String("routine.id", routineID),
	)

	if err := s.docs.Delete(ctx, routinePath(uid, routineID)); err != nil {
		return apperr.Persistence("delete routine", err)
	}
	log.Debugf("routine [%s] of user [%s] deleted", routineID, uid)
	return nil
}

func decodeRoutine(snapshot *docstore.Snapshot) (Routine, error) {
	var r Routine
	if err := snapshot.DataTo(&r); err != nil {
		return Routine{}, err
	}
	r.ID = snapshot.ID
	r.normalize()
	return r, nil
}

func validateName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", apperr.Validation("name", "routine name is required")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", apperr.Validation("name", "must be at most %d characters", MaxNameLength)
	}
	return name, nil
}

func validateDescription(raw *string) (*string, error) {
	description := normalizeText(raw)
	if description != nil && utf8.RuneCountInString(*description) > MaxDescriptionLength {
		return nil, apperr.Validation("description", "must be at most %d characters", MaxDescriptionLength)
	}
	return description, nil
}
