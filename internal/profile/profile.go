package profile

import (
	"strings"
	"time"

	"github.com/2beens/fitjournal/internal/apperr"
)

// User is the authenticated identity. UID keys every per-user collection.
type User struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// Track is one of the preset difficulty programs.
type Track string

const (
	TrackNovato     Track = "novato"
	TrackIntermedio Track = "intermedio"
	TrackAvanzado   Track = "avanzado"
)

var Tracks = []Track{TrackNovato, TrackIntermedio, TrackAvanzado}

func (t Track) Valid() bool {
	switch t {
	case TrackNovato, TrackIntermedio, TrackAvanzado:
		return true
	}
	return false
}

// CompletedDatesField is the profile document field holding the
// completion dates of the track.
func (t Track) CompletedDatesField() string {
	return string(t) + "CompletedDates"
}

type Profile struct {
	Name                     string    `json:"name"`
	Age                      *int      `json:"age"`
	Height                   *float64  `json:"height"`
	Weight                   *float64  `json:"weight"`
	NovatoCompletedDates     []string  `json:"novatoCompletedDates"`
	IntermedioCompletedDates []string  `json:"intermedioCompletedDates"`
	AvanzadoCompletedDates   []string  `json:"avanzadoCompletedDates"`
	CreatedAt                time.Time `json:"createdAt"`
	UpdatedAt                time.Time `json:"updatedAt"`
}

// CompletedDates returns a copy of the track's completion dates.
func (p Profile) CompletedDates(track Track) []string {
	var dates []string
	switch track {
	case TrackNovato:
		dates = p.NovatoCompletedDates
	case TrackIntermedio:
		dates = p.IntermedioCompletedDates
	case TrackAvanzado:
		dates = p.AvanzadoCompletedDates
	}
	return append([]string{}, dates...)
}

func (p Profile) clone() Profile {
	c := p
	if p.Age != nil {
		age := *p.Age
		c.Age = &age
	}
	if p.Height != nil {
		h := *p.Height
		c.Height = &h
	}
	if p.Weight != nil {
		w := *p.Weight
		c.Weight = &w
	}
	c.NovatoCompletedDates = p.CompletedDates(TrackNovato)
	c.IntermedioCompletedDates = p.CompletedDates(TrackIntermedio)
	c.AvanzadoCompletedDates = p.CompletedDates(TrackAvanzado)
	return c
}

type ProfileInput struct {
	Name   string   `json:"name"`
	Age    *int     `json:"age"`
	Height *float64 `json:"height"`
	Weight *float64 `json:"weight"`
}

// Validate returns the input with the name trimmed, or a ValidationError.
func (in ProfileInput) Validate() (ProfileInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return ProfileInput{}, apperr.Validation("name", "name is required")
	}
	if in.Age != nil && *in.Age <= 0 {
		return ProfileInput{}, apperr.Validation("age", "must be positive")
	}
	if in.Height != nil && *in.Height <= 0 {
		return ProfileInput{}, apperr.Validation("height", "must be positive")
	}
	if in.Weight != nil && *in.Weight <= 0 {
		return ProfileInput{}, apperr.Validation("weight", "must be positive")
	}
	return in, nil
}
