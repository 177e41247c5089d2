package routines

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

type Category string

const (
	CategoryFreeWeight Category = "peso-libre"
	CategoryMachine    Category = "maquina"
	CategoryBodyweight Category = "peso-corporal"
	CategoryCardio     Category = "cardio"
	CategoryYoga       Category = "yoga"
)

var Categories = []Category{
	CategoryFreeWeight,
	CategoryMachine,
	CategoryBodyweight,
	CategoryCardio,
	CategoryYoga,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Color string

// Palette lists the identification colors a routine can be given.
var Palette = []Color{
	"#E02424", "#4DA6FF", "#7BE495", "#FFD166", "#A663CC",
	"#06D6A0", "#118AB2", "#EF476F", "#FF9E00", "#073B4C",
}

func (c Color) Valid() bool {
	for _, known := range Palette {
		if c == known {
			return true
		}
	}
	return false
}

// Set is one logged unit of work. Optional fields are nil when absent;
// an empty string is never used to mean "not set".
type Set struct {
	ID        string    `json:"id"`
	SetNumber int       `json:"setNumber"`
	Reps      int       `json:"reps"`
	Weight    float64   `json:"weight"`
	RIR       *int      `json:"rir"`
	Notes     *string   `json:"notes"`
	Completed bool      `json:"completed"`
	Date      time.Time `json:"date"`
}

func (s Set) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

type Exercise struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Sets     []Set    `json:"sets"`
}

// WorkoutLog is a finished session of a routine. It is stored and
// returned as is.
type WorkoutLog struct {
	Date      time.Time  `json:"date"`
	Exercises []Exercise `json:"exercises"`
	Notes     *string    `json:"notes,omitempty"`
}

type Routine struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Description    *string      `json:"description"`
	Color          Color        `json:"color"`
	Exercises      []Exercise   `json:"exercises"`
	History        []WorkoutLog `json:"history"`
	CurrentWorkout *string      `json:"currentWorkout"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// NumericText is a number as the user typed it. It decodes from either
// a JSON number or a JSON string; null and absent decode to "".
type NumericText string

func (n *NumericText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericText(s)
		return nil
	}
	if _, err := strconv.ParseFloat(string(data), 64); err != nil {
		return err
	}
	*n = NumericText(data)
	return nil
}

// SetInput carries the fields of a set to be logged.
type SetInput struct {
	Reps   NumericText `json:"reps"`
	Weight NumericText `json:"weight"`
	RIR    NumericText `json:"rir"`
	Notes  *string     `json:"notes"`
}

// SetPatch lists the fields to change on a logged set. Nil fields are
// left as they are; an empty RIR or notes value clears the field.
type SetPatch struct {
	Reps   *NumericText `json:"reps"`
	Weight *NumericText `json:"weight"`
	RIR    *NumericText `json:"rir"`
	Notes  *string      `json:"notes"`
}

type ExerciseInput struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

type RoutineInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Color       Color   `json:"color"`
}

// RoutineUpdate holds whole field replacements for a routine. Nil
// fields are not written. A zero UpdatedAt is stamped by the store.
// Exercises never come from a request body; they are only changed
// through the registry and set ledger operations.
type RoutineUpdate struct {
	Name        *string     `json:"name"`
	Description *string     `json:"description"`
	Color       *Color      `json:"color"`
	Exercises   *[]Exercise `json:"-"`
	UpdatedAt   time.Time   `json:"-"`
}

func (s Set) clone() Set {
	c := s
	if s.RIR != nil {
		rir := *s.RIR
		c.RIR = &rir
	}
	if s.Notes != nil {
		notes := *s.Notes
		c.Notes = &notes
	}
	return c
}

func (e Exercise) clone() Exercise {
	c := e
	c.Sets = make([]Set, len(e.Sets))
	for i, s := range e.Sets {
		c.Sets[i] = s.clone()
	}
	return c
}

func cloneExercises(exercises []Exercise) []Exercise {
	c := make([]Exercise, len(exercises))
	for i, e := range exercises {
		c[i] = e.clone()
	}
	return c
}

// Clone returns a deep copy of the routine.
func (r Routine) Clone() Routine {
	c := r
	if r.Description != nil {
		d := *r.Description
		c.Description = &d
	}
	if r.CurrentWorkout != nil {
		cw := *r.CurrentWorkout
		c.CurrentWorkout = &cw
	}
	c.Exercises = cloneExercises(r.Exercises)
	c.History = make([]WorkoutLog, len(r.History))
	for i, h := range r.History {
		c.History[i] = h
		c.History[i].Exercises = cloneExercises(h.Exercises)
		if h.Notes != nil {
			n := *h.Notes
			c.History[i].Notes = &n
		}
	}
	return c
}

// normalize replaces nil collections with empty ones, as stored
// documents always carry them.
func (r *Routine) normalize() {
	if r.Exercises == nil {
		r.Exercises = []Exercise{}
	}
	for i := range r.Exercises {
		if r.Exercises[i].Sets == nil {
			r.Exercises[i].Sets = []Set{}
		}
	}
	if r.History == nil {
		r.History = []WorkoutLog{}
	}
}
