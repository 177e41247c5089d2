package calendar

import (
	"context"
	"slices"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitjournal/internal/apperr"
	"github.com/2beens/fitjournal/internal/profile"
	"github.com/2beens/fitjournal/internal/telemetry/tracing"
)

type completionStore interface {
	Get(ctx context.Context, uid string) (profile.Profile, error)
	SetCompletedDates(ctx context.Context, uid string, track profile.Track, dates []string) error
}

// DayState is a day of a track together with the user's toggles for it.
type DayState struct {
	Track    profile.Track `json:"track"`
	Day      DayDef        `json:"day"`
	Progress DayProgress   `json:"progress"`
	Complete bool          `json:"complete"`
}

// Calendar records finished workouts of the preset tracks. Completion
// dates live on the profile document; set toggles only in the cache.
type Calendar struct {
	catalog  *Catalog
	profiles completionStore
	toggles  *ToggleCache
	loc      *time.Location
	now      func() time.Time

	// serializes read-modify-write cycles of one user's track
	locks *keyLock
}

func NewCalendar(catalog *Catalog, profiles completionStore, toggles *ToggleCache, loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.Local
	}
	return &Calendar{
		catalog:  catalog,
		profiles: profiles,
		toggles:  toggles,
		loc:      loc,
		now:      time.Now,
		locks:    newKeyLock(),
	}
}

func (c *Calendar) Catalog() *Catalog {
	return c.catalog
}

func (c *Calendar) resolve(track profile.Track, dayID string) (TrackDef, DayDef, error) {
	def, err := c.catalog.Track(track)
	if err != nil {
		return TrackDef{}, DayDef{}, err
	}
	day, err := def.Day(dayID)
	if err != nil {
		return TrackDef{}, DayDef{}, err
	}
	return def, day, nil
}

func (c *Calendar) DayState(ctx context.Context, uid string, track profile.Track, dayID string) (_ DayState, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "calendar.day_state")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	def, day, err := c.resolve(track, dayID)
	if err != nil {
		return DayState{}, err
	}

	unlock := c.locks.lock(uid, track)
	defer unlock()

	progress := c.toggles.Load(uid, def)[dayID]
	return DayState{
		Track:    track,
		Day:      day,
		Progress: progress,
		Complete: IsWorkoutComplete(progress, day),
	}, nil
}

// Toggle flips one set of the day.
func (c *Calendar) Toggle(ctx context.Context, uid string, track profile.Track, dayID, exerciseID string, setIndex int) (_ DayState, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "calendar.toggle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("uid", uid),
		attribute.String("track", string(track)),
		attribute.String("day", dayID),
	)

	def, day, err := c.resolve(track, dayID)
	if err != nil {
		return DayState{}, err
	}
	exercise, ok := day.Exercise(exerciseID)
	if !ok {
		return DayState{}, apperr.NotFound("exercise", exerciseID)
	}
	if setIndex < 0 || setIndex >= exercise.Sets {
		return DayState{}, apperr.Validation("setIndex", "must be between 0 and %d", exercise.Sets-1)
	}

	unlock := c.locks.lock(uid, track)
	defer unlock()

	progress := c.toggles.Load(uid, def)
	progress[dayID] = ToggleSet(progress[dayID], exerciseID, setIndex)
	if err := c.toggles.Store(uid, track, progress); err != nil {
		return DayState{}, err
	}

	return DayState{
		Track:    track,
		Day:      day,
		Progress: progress[dayID],
		Complete: IsWorkoutComplete(progress[dayID], day),
	}, nil
}

// Finish records today as a completed workout of the track and returns
// the sorted completion dates. Only the finished day's toggles are reset.
func (c *Calendar) Finish(ctx context.Context, uid string, track profile.Track, dayID string) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "calendar.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("uid", uid),
		attribute.String("track", string(track)),
		attribute.String("day", dayID),
	)

	def, day, err := c.resolve(track, dayID)
	if err != nil {
		return nil, err
	}

	unlock := c.locks.lock(uid, track)
	defer unlock()

	progress := c.toggles.Load(uid, def)
	complete := IsWorkoutComplete(progress[dayID], day)

	p, err := c.profiles.Get(ctx, uid)
	if err != nil {
		return nil, err
	}

	today := Today(c.now(), c.loc)
	updated, err := FinishWorkout(p.CompletedDates(track), today, complete)
	if err != nil {
		return nil, err
	}

	if err := c.profiles.SetCompletedDates(ctx, uid, track, updated); err != nil {
		return nil, err
	}

	progress[dayID] = NewDayProgress(day)
	if err := c.toggles.Store(uid, track, progress); err != nil {
		log.Errorf("reset toggles of [%s/%s/%s]: %s", uid, track, dayID, err)
	}

	log.Debugf("user [%s] finished [%s/%s] on %s", uid, track, dayID, today)
	return sorted(updated), nil
}

// Reset clears the completion dates of the track and the toggles of all
// its days.
func (c *Calendar) Reset(ctx context.Context, uid string, track profile.Track) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "calendar.reset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("uid", uid),
		attribute.String("track", string(track)),
	)

	if _, err := c.catalog.Track(track); err != nil {
		return err
	}

	unlock := c.locks.lock(uid, track)
	defer unlock()

	if err := c.profiles.SetCompletedDates(ctx, uid, track, []string{}); err != nil {
		return err
	}
	c.toggles.Drop(uid, track)

	log.Debugf("user [%s] reset track [%s]", uid, track)
	return nil
}

// CompletedDates returns the track's completion dates sorted ascending.
// A user without a profile has none.
func (c *Calendar) CompletedDates(ctx context.Context, uid string, track profile.Track) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "calendar.completed_dates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := c.catalog.Track(track); err != nil {
		return nil, err
	}

	p, err := c.profiles.Get(ctx, uid)
	if err != nil {
		if apperr.IsNotFound(err) {
			return []string{}, nil
		}
		return nil, err
	}
	return sorted(p.CompletedDates(track)), nil
}

func sorted(dates []string) []string {
	c := slices.Clone(dates)
	if c == nil {
		c = []string{}
	}
	slices.Sort(c)
	return c
}
