package routines

import (
	"strings"
	"time"

	"github.com/2beens/fitjournal/internal/apperr"
	"github.com/2beens/fitjournal/internal/ids"
)

// AddExercise appends a new exercise with no sets to the routine.
func AddExercise(r Routine, in ExerciseInput, now time.Time) (Routine, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Routine{}, apperr.Validation("name", "exercise name is required")
	}
	if !in.Category.Valid() {
		return Routine{}, apperr.Validation("category", "unknown category %q", string(in.Category))
	}

	updated := r.Clone()
	updated.Exercises = append(updated.Exercises, Exercise{
		ID:       ids.New(ids.PrefixExercise),
		Name:     name,
		Category: in.Category,
		Sets:     []Set{},
	})
	updated.UpdatedAt = now.UTC()
	return updated, nil
}

func RemoveExercise(r Routine, exerciseID string, now time.Time) (Routine, error) {
	idx := findExercise(r, exerciseID)
	if idx < 0 {
		return Routine{}, apperr.NotFound("exercise", exerciseID)
	}

	updated := r.Clone()
	updated.Exercises = append(updated.Exercises[:idx], updated.Exercises[idx+1:]...)
	updated.UpdatedAt = now.UTC()
	return updated, nil
}

// MutateSets applies op to one exercise and puts the result back in its
// position. Every other exercise in the returned routine is a copy.
func MutateSets(r Routine, exerciseID string, op SetOp, now time.Time) (Routine, error) {
	idx := findExercise(r, exerciseID)
	if idx < 0 {
		return Routine{}, apperr.NotFound("exercise", exerciseID)
	}

	mutated, err := op(r.Exercises[idx])
	if err != nil {
		return Routine{}, err
	}

	updated := r.Clone()
	updated.Exercises[idx] = mutated.clone()
	updated.UpdatedAt = now.UTC()
	return updated, nil
}

// FindExercise returns a copy of the exercise with the given id.
func FindExercise(r Routine, exerciseID string) (Exercise, error) {
	idx := findExercise(r, exerciseID)
	if idx < 0 {
		return Exercise{}, apperr.NotFound("exercise", exerciseID)
	}
	return r.Exercises[idx].clone(), nil
}

func findExercise(r Routine, exerciseID string) int {
	for i, e := range r.Exercises {
		if e.ID == exerciseID {
			return i
		}
	}
	return -1
}

// ValidateExercises checks a whole exercise list before it replaces the
// stored one: ids are present and unique, names and categories are
// valid, sets are numbered 1..N in order and carry no negative values.
func ValidateExercises(exercises []Exercise) error {
	exerciseIDs := make(map[string]struct{}, len(exercises))
	setIDs := map[string]struct{}{}
	for _, e := range exercises {
		if e.ID == "" {
			return apperr.Validation("exercises", "exercise id is required")
		}
		if _, dup := exerciseIDs[e.ID]; dup {
			return apperr.Validation("exercises", "duplicate exercise id %q", e.ID)
		}
		exerciseIDs[e.ID] = struct{}{}

		if strings.TrimSpace(e.Name) == "" {
			return apperr.Validation("exercises", "exercise [%s] has no name", e.ID)
		}
		if !e.Category.Valid() {
			return apperr.Validation("exercises", "exercise [%s] has unknown category %q", e.ID, string(e.Category))
		}

		for i, s := range e.Sets {
			if s.ID == "" {
				return apperr.Validation("sets", "set id is required")
			}
			if _, dup := setIDs[s.ID]; dup {
				return apperr.Validation("sets", "duplicate set id %q", s.ID)
			}
			setIDs[s.ID] = struct{}{}

			if s.SetNumber != i+1 {
				return apperr.Validation("sets", "set [%s] is numbered %d, expected %d", s.ID, s.SetNumber, i+1)
			}
			if s.Reps < 0 || s.Weight < 0 {
				return apperr.Validation("sets", "set [%s] has negative reps or weight", s.ID)
			}
		}
	}
	return nil
}
