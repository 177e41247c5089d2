package calendar

import (
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/2beens/fitjournal/internal/apperr"
	"github.com/2beens/fitjournal/internal/profile"
)

//go:embed tracks.yaml
var defaultTracks []byte

type ExerciseDef struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
	Area string `yaml:"area" json:"area"`
	Sets int    `yaml:"sets" json:"sets"`
	Reps string `yaml:"reps" json:"reps"`
}

type DayDef struct {
	ID          string        `yaml:"id" json:"id"`
	Label       string        `yaml:"label" json:"label"`
	Description string        `yaml:"description" json:"description"`
	Exercises   []ExerciseDef `yaml:"exercises" json:"exercises"`
}

// TrackDef is the fixed program of a preset track: its days, the
// exercises of each day and how many sets each exercise takes.
type TrackDef struct {
	ID       profile.Track `yaml:"id" json:"id"`
	Title    string        `yaml:"title" json:"title"`
	Subtitle string        `yaml:"subtitle" json:"subtitle"`
	Days     []DayDef      `yaml:"days" json:"days"`
}

func (t TrackDef) Day(dayID string) (DayDef, error) {
	for _, d := range t.Days {
		if d.ID == dayID {
			return d, nil
		}
	}
	return DayDef{}, apperr.NotFound("day", dayID)
}

func (d DayDef) Exercise(exerciseID string) (ExerciseDef, bool) {
	for _, e := range d.Exercises {
		if e.ID == exerciseID {
			return e, true
		}
	}
	return ExerciseDef{}, false
}

// Catalog holds the track definitions. It is read only after loading.
type Catalog struct {
	tracks []TrackDef
}

// DefaultCatalog returns the built in novato, intermedio and avanzado
// programs.
func DefaultCatalog() *Catalog {
	catalog, err := parseCatalog(defaultTracks)
	if err != nil {
		panic(fmt.Sprintf("embedded tracks: %s", err))
	}
	return catalog
}

func LoadCatalog(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read tracks: %w", err)
	}
	return parseCatalog(data)
}

func parseCatalog(data []byte) (*Catalog, error) {
	var tracks []TrackDef
	if err := yaml.Unmarshal(data, &tracks); err != nil {
		return nil, fmt.Errorf("unmarshal tracks: %w", err)
	}

	seenTracks := map[profile.Track]bool{}
	for _, t := range tracks {
		if !t.ID.Valid() {
			return nil, fmt.Errorf("unknown track [%s]", t.ID)
		}
		if seenTracks[t.ID] {
			return nil, fmt.Errorf("track [%s] defined twice", t.ID)
		}
		seenTracks[t.ID] = true

		if len(t.Days) == 0 {
			return nil, fmt.Errorf("track [%s] has no days", t.ID)
		}
		seenDays := map[string]bool{}
		for _, d := range t.Days {
			if d.ID == "" || seenDays[d.ID] {
				return nil, fmt.Errorf("track [%s]: missing or repeated day id [%s]", t.ID, d.ID)
			}
			seenDays[d.ID] = true

			seenExercises := map[string]bool{}
			for _, e := range d.Exercises {
				if e.ID == "" || seenExercises[e.ID] {
					return nil, fmt.Errorf("track [%s] day [%s]: missing or repeated exercise id [%s]", t.ID, d.ID, e.ID)
				}
				seenExercises[e.ID] = true
				if e.Sets <= 0 {
					return nil, fmt.Errorf("track [%s] day [%s] exercise [%s]: sets must be positive", t.ID, d.ID, e.ID)
				}
			}
		}
	}

	return &Catalog{tracks: tracks}, nil
}

func (c *Catalog) Tracks() []TrackDef {
	return append([]TrackDef(nil), c.tracks...)
}

func (c *Catalog) Track(track profile.Track) (TrackDef, error) {
	for _, t := range c.tracks {
		if t.ID == track {
			return t, nil
		}
	}
	return TrackDef{}, apperr.NotFound("track", string(track))
}
