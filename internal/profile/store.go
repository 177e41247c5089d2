package profile

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitjournal/internal/apperr"
	"github.com/2beens/fitjournal/internal/docstore"
	"github.com/2beens/fitjournal/internal/telemetry/tracing"
)

// Store reads and writes profiles at users/{uid}.
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

func userPath(uid string) string {
	return docstore.Doc("users", uid)
}

func (s *Store) Get(ctx context.Context, uid string) (_ Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("uid", uid))

	snapshot, err := s.docs.Get(ctx, userPath(uid))
	if err != nil {
		if errors.Is(err, docstore.ErrDocumentNotFound) {
			return Profile{}, apperr.NotFound("profile", uid)
		}
		return Profile{}, apperr.Persistence("get profile", err)
	}

	var p Profile
	if err := snapshot.DataTo(&p); err != nil {
		return Profile{}, apperr.Persistence("get profile", err)
	}
	return p, nil
}

// Save merges the personal data into the profile, creating it when
// missing. Completion dates are never touched here.
func (s *Store) Save(ctx context.Context, uid string, in ProfileInput) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.profile.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("uid", uid))

	in, err = in.Validate()
	if err != nil {
		return err
	}

	now := s.now().UTC()
	fields := map[string]any{
		"name":      in.Name,
		"age":       in.Age,
		"height":    in.Height,
		"weight":    in.Weight,
		"updatedAt": now,
	}

	_, err = s.docs.Get(ctx, userPath(uid))
	switch {
	case errors.Is(err, docstore.ErrDocumentNotFound):
		fields["createdAt"] = now
		for _, track := range Tracks {
			fields[track.CompletedDatesField()] = []string{}
		}
	case err != nil:
		return apperr.Persistence("save profile", err)
	}

	if err := s.docs.Set(ctx, userPath(uid), fields, docstore.SetOptions{Merge: true}); err != nil {
		return apperr.Persistence("save profile", err)
	}
	return nil
}

// SetCompletedDates replaces the completion dates of one track.
func (s *Store) SetCompletedDates(ctx context.Context, uid string, track Track, dates []string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.profile.set_completed_dates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("uid", uid),
		attribute.String("track", string(track)),
		attribute.Int("dates", len(dates)),
	)

	if !track.Valid() {
		return apperr.Validation("track", "unknown track %q", string(track))
	}
	if dates == nil {
		dates = []string{}
	}

	if err := s.docs.Update(ctx, userPath(uid), map[string]any{
		track.CompletedDatesField(): dates,
		"updatedAt":                 s.now().UTC(),
	}); err != nil {
		if errors.Is(err, docstore.ErrDocumentNotFound) {
			return apperr.NotFound("profile", uid)
		}
		return apperr.Persistence("set completed dates", err)
	}
	return nil
}
