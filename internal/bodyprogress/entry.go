package bodyprogress

import (
	"math"
	"strings"
	"time"

	"github.com/2beens/fitjournal/internal/apperr"
	"github.com/2beens/fitjournal/internal/calendar"
)

// Entry is one body check in: a photo, the weight and optional
// measurements in centimeters.
type Entry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Weight    float64   `json:"weight"`
	Chest     *float64  `json:"chest,omitempty"`
	Waist     *float64  `json:"waist,omitempty"`
	Arms      *float64  `json:"arms,omitempty"`
	Thighs    *float64  `json:"thighs,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	PhotoURI  string    `json:"photoUri"`
	CreatedAt time.Time `json:"createdAt"`
}

type EntryInput struct {
	Date     string   `json:"date"`
	Weight   *float64 `json:"weight"`
	Chest    *float64 `json:"chest"`
	Waist    *float64 `json:"waist"`
	Arms     *float64 `json:"arms"`
	Thighs   *float64 `json:"thighs"`
	Notes    *string  `json:"notes"`
	PhotoURI string   `json:"photoUri"`
}

func (in EntryInput) validate() error {
	if strings.TrimSpace(in.PhotoURI) == "" {
		return apperr.Validation("photoUri", "a progress photo is required")
	}
	if in.Weight == nil {
		return apperr.Validation("weight", "weight is required")
	}
	if !positive(*in.Weight) {
		return apperr.Validation("weight", "must be a positive number")
	}
	measurements := []struct {
		field string
		value *float64
	}{
		{"chest", in.Chest},
		{"waist", in.Waist},
		{"arms", in.Arms},
		{"thighs", in.Thighs},
	}
	for _, m := range measurements {
		if m.value != nil && !positive(*m.value) {
			return apperr.Validation(m.field, "must be a positive number")
		}
	}
	if in.Date != "" {
		if _, err := time.Parse(calendar.DateLayout, in.Date); err != nil {
			return apperr.Validation("date", "must be a YYYY-MM-DD date")
		}
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
