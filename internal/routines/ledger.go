package routines

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fitjournal/internal/apperr"
	"github.com/2beens/fitjournal/internal/ids"
)

// SetOp is a transform over the set list of one exercise.
// Ops never modify their input.
type SetOp func(ex Exercise) (Exercise, error)

func AppendOp(in SetInput, now time.Time) SetOp {
	return func(ex Exercise) (Exercise, error) {
		return AppendSet(ex, in, now)
	}
}

func ReplaceOp(setID string, patch SetPatch) SetOp {
	return func(ex Exercise) (Exercise, error) {
		return ReplaceSet(ex, setID, patch)
	}
}

func RemoveOp(setID string) SetOp {
	return func(ex Exercise) (Exercise, error) {
		return RemoveSet(ex, setID)
	}
}

func ClearOp() SetOp {
	return func(ex Exercise) (Exercise, error) {
		return ClearSets(ex), nil
	}
}

// AppendSet logs a new completed set at the end of the exercise.
func AppendSet(ex Exercise, in SetInput, now time.Time) (Exercise, error) {
	reps, err := parseReps(in.Reps)
	if err != nil {
		return Exercise{}, err
	}
	weight, err := parseWeight(in.Weight)
	if err != nil {
		return Exercise{}, err
	}
	rir, err := parseRIR(in.RIR)
	if err != nil {
		return Exercise{}, err
	}

	updated := ex.clone()
	updated.Sets = append(updated.Sets, Set{
		ID:        ids.New(ids.PrefixSet),
		SetNumber: len(ex.Sets) + 1,
		Reps:      reps,
		Weight:    weight,
		RIR:       rir,
		Notes:     normalizeText(in.Notes),
		Completed: true,
		Date:      now.UTC(),
	})
	return updated, nil
}

// ReplaceSet merges patch into the set with the given id. The id,
// number, date and completion of the set never change.
func ReplaceSet(ex Exercise, setID string, patch SetPatch) (Exercise, error) {
	idx := findSet(ex, setID)
	if idx < 0 {
		return Exercise{}, apperr.NotFound("set", setID)
	}

	updated := ex.clone()
	target := updated.Sets[idx]

	if patch.Reps != nil {
		reps, err := parseReps(*patch.Reps)
		if err != nil {
			return Exercise{}, err
		}
		target.Reps = reps
	}
	if patch.Weight != nil {
		weight, err := parseWeight(*patch.Weight)
		if err != nil {
			return Exercise{}, err
		}
		target.Weight = weight
	}
	if patch.RIR != nil {
		rir, err := parseRIR(*patch.RIR)
		if err != nil {
			return Exercise{}, err
		}
		target.RIR = rir
	}
	if patch.Notes != nil {
		target.Notes = normalizeText(patch.Notes)
	}

	updated.Sets[idx] = target
	return updated, nil
}

// RemoveSet drops the set and renumbers the rest 1..N in order.
func RemoveSet(ex Exercise, setID string) (Exercise, error) {
	idx := findSet(ex, setID)
	if idx < 0 {
		return Exercise{}, apperr.NotFound("set", setID)
	}

	updated := ex
	updated.Sets = make([]Set, 0, len(ex.Sets)-1)
	for i, s := range ex.Sets {
		if i == idx {
			continue
		}
		s = s.clone()
		s.SetNumber = len(updated.Sets) + 1
		updated.Sets = append(updated.Sets, s)
	}
	return updated, nil
}

func ClearSets(ex Exercise) Exercise {
	updated := ex
	updated.Sets = []Set{}
	return updated
}

// TotalVolume is the sum of weight x reps over all sets.
func TotalVolume(ex Exercise) float64 {
	var total float64
	for _, s := range ex.Sets {
		total += s.Volume()
	}
	return total
}

func findSet(ex Exercise, setID string) int {
	for i, s := range ex.Sets {
		if s.ID == setID {
			return i
		}
	}
	return -1
}

func parseReps(raw NumericText) (int, error) {
	v, err := parseNonNegative("reps", raw)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) || v > math.MaxInt32 {
		return 0, apperr.Validation("reps", "must be a whole number, got %q", string(raw))
	}
	return int(v), nil
}

func parseWeight(raw NumericText) (float64, error) {
	return parseNonNegative("weight", raw)
}

func parseNonNegative(field string, raw NumericText) (float64, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return 0, apperr.Validation(field, "is required")
	}
	// decimal comma, as typed on es locale keyboards
	s = strings.Replace(s, ",", ".", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, apperr.Validation(field, "must be a number, got %q", string(raw))
	}
	if v < 0 {
		return 0, apperr.Validation(field, "must not be negative, got %q", string(raw))
	}
	return v, nil
}

// parseRIR accepts any integer; the 0-10 scale is only a UI hint.
func parseRIR(raw NumericText) (*int, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return nil, nil
	}
	rir, err := strconv.Atoi(s)
	if err != nil {
		return nil, apperr.Validation("rir", "must be a whole number, got %q", string(raw))
	}
	return &rir, nil
}

func normalizeText(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
