// Package onerm estimates a one repetition maximum from a lighter set,
// using the Brzycki formula.
package onerm

import (
	"math"

	"github.com/2beens/fitjournal/internal/apperr"
)

const (
	MinReps = 1
	MaxReps = 10
)

// Percentages are the loads listed below an estimate, in percent of it.
var Percentages = []int{95, 90, 85, 80, 75, 70, 65, 60, 55, 50}

type Load struct {
	Percent int     `json:"percent"`
	Weight  float64 `json:"weight"`
}

// Estimate returns weight × 36 / (37 − reps), rounded to a whole number.
// The formula is only trusted for 1 to 10 reps.
func Estimate(weight float64, reps int) (float64, error) {
	if weight <= 0 || math.IsInf(weight, 0) || math.IsNaN(weight) {
		return 0, apperr.Validation("weight", "must be a positive number")
	}
	if reps < MinReps || reps > MaxReps {
		return 0, apperr.Validation("reps", "must be between %d and %d", MinReps, MaxReps)
	}
	return math.Round(weight * 36 / float64(37-reps)), nil
}

// Table lists the rounded training loads for rm.
func Table(rm float64) []Load {
	loads := make([]Load, 0, len(Percentages))
	for _, p := range Percentages {
		loads = append(loads, Load{
			Percent: p,
			Weight:  math.Round(rm * float64(p) / 100),
		})
	}
	return loads
}
