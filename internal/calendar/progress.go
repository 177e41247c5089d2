package calendar

import (
	"slices"
	"time"

	"github.com/2beens/fitjournal/internal/apperr"
)

// DateLayout is the calendar date format. Dates are compared as plain
// strings, so month and day are always zero padded.
const DateLayout = "2006-01-02"

var (
	ErrWorkoutIncomplete     error = &apperr.ValidationError{Field: "workout", Message: "complete every set of every exercise before finishing"}
	ErrAlreadyCompletedToday error = &apperr.ValidationError{Field: "workout", Message: "already completed today"}
)

// DayProgress maps an exercise id to the done flag of each of its sets.
type DayProgress map[string][]bool

// TrackProgress maps a day id to the progress of that day.
type TrackProgress map[string]DayProgress

func NewDayProgress(day DayDef) DayProgress {
	p := make(DayProgress, len(day.Exercises))
	for _, e := range day.Exercises {
		p[e.ID] = make([]bool, e.Sets)
	}
	return p
}

// NewTrackProgress returns the progress of every day of the track with
// all sets undone.
func NewTrackProgress(def TrackDef) TrackProgress {
	p := make(TrackProgress, len(def.Days))
	for _, d := range def.Days {
		p[d.ID] = NewDayProgress(d)
	}
	return p
}

func (p DayProgress) clone() DayProgress {
	c := make(DayProgress, len(p))
	for id, sets := range p {
		c[id] = slices.Clone(sets)
	}
	return c
}

// ToggleSet flips one set and returns the new progress. The given
// progress is left as it is. An unknown exercise or an index out of
// range changes nothing.
func ToggleSet(p DayProgress, exerciseID string, setIndex int) DayProgress {
	c := p.clone()
	sets, ok := c[exerciseID]
	if !ok || setIndex < 0 || setIndex >= len(sets) {
		return c
	}
	sets[setIndex] = !sets[setIndex]
	return c
}

// IsWorkoutComplete reports whether every set of every exercise of the
// day is done.
func IsWorkoutComplete(p DayProgress, day DayDef) bool {
	for _, e := range day.Exercises {
		sets, ok := p[e.ID]
		if !ok || len(sets) < e.Sets {
			return false
		}
		for _, done := range sets[:e.Sets] {
			if !done {
				return false
			}
		}
	}
	return true
}

// FinishWorkout records today in completedDates. A date is recorded at
// most once; the input slice is never modified.
func FinishWorkout(completedDates []string, today string, complete bool) ([]string, error) {
	if !complete {
		return nil, ErrWorkoutIncomplete
	}
	if slices.Contains(completedDates, today) {
		return nil, ErrAlreadyCompletedToday
	}
	updated := make([]string, 0, len(completedDates)+1)
	updated = append(updated, completedDates...)
	return append(updated, today), nil
}

// Today returns the wall clock date of now in loc.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return now.In(loc).Format(DateLayout)
}

// conform makes p match the shape of def, keeping the flags of sets that
// still exist.
func conform(p TrackProgress, def TrackDef) TrackProgress {
	fresh := NewTrackProgress(def)
	for dayID, day := range fresh {
		old, ok := p[dayID]
		if !ok {
			continue
		}
		for exerciseID, sets := range day {
			copy(sets, old[exerciseID])
		}
	}
	return fresh
}
