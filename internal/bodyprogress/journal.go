package bodyprogress

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitjournal/internal/apperr"
	"github.com/2beens/fitjournal/internal/calendar"
	"github.com/2beens/fitjournal/internal/devicestore"
	"github.com/2beens/fitjournal/internal/ids"
	"github.com/2beens/fitjournal/internal/telemetry/tracing"
)

const entriesKey = "@progress_entries"

// Journal keeps the body progress entries of each user in the device
// store, as one JSON array per user.
type Journal struct {
	items devicestore.Store
	loc   *time.Location
	now   func() time.Time
	mutex sync.Mutex
}

func NewJournal(items devicestore.Store, loc *time.Location) *Journal {
	if loc == nil {
		loc = time.Local
	}
	return &Journal{
		items: items,
		loc:   loc,
		now:   time.Now,
	}
}

func entriesKeyFor(uid string) string {
	return entriesKey + ":" + uid
}

func (j *Journal) load(ctx context.Context, uid string) ([]Entry, error) {
	raw, ok, err := j.items.GetItem(ctx, entriesKeyFor(uid))
	if err != nil {
		return nil, apperr.Persistence("load progress entries", err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []Entry{}, nil
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, apperr.Persistence("load progress entries", fmt.Errorf("unmarshal: %w", err))
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

func (j *Journal) save(ctx context.Context, uid string, entries []Entry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal progress entries: %w", err)
	}
	if err := j.items.SetItem(ctx, entriesKeyFor(uid), string(raw)); err != nil {
		return apperr.Persistence("save progress entries", err)
	}
	return nil
}

// Add validates and stores a new entry. The date defaults to today.
func (j *Journal) Add(ctx context.Context, uid string, in EntryInput) (_ Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "bodyprogress.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("uid", uid))

	if err := in.validate(); err != nil {
		return Entry{}, err
	}

	now := j.now()
	entry := Entry{
		ID:        ids.New(ids.PrefixProgress),
		Date:      in.Date,
		Weight:    *in.Weight,
		Chest:     in.Chest,
		Waist:     in.Waist,
		Arms:      in.Arms,
		Thighs:    in.Thighs,
		Notes:     trimmed(in.Notes),
		PhotoURI:  strings.TrimSpace(in.PhotoURI),
		CreatedAt: now.UTC(),
	}
	if entry.Date == "" {
		entry.Date = calendar.Today(now, j.loc)
	}

	j.mutex.Lock()
	defer j.mutex.Unlock()

	entries, err := j.load(ctx, uid)
	if err != nil {
		return Entry{}, err
	}
	if err := j.save(ctx, uid, append([]Entry{entry}, entries...)); err != nil {
		return Entry{}, err
	}

	log.Debugf("progress entry [%s] added for user [%s]", entry.ID, uid)
	return entry, nil
}

func (j *Journal) Delete(ctx context.Context, uid, entryID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "bodyprogress.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("uid", uid),
		attribute.String("entry.id", entryID),
	)

	j.mutex.Lock()
	defer j.mutex.Unlock()

	entries, err := j.load(ctx, uid)
	if err != nil {
		return err
	}

	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return apperr.NotFound("progress entry", entryID)
	}
	return j.save(ctx, uid, kept)
}

// List returns the user's entries, newest date first.
func (j *Journal) List(ctx context.Context, uid string) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "bodyprogress.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	j.mutex.Lock()
	defer j.mutex.Unlock()

	entries, err := j.load(ctx, uid)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Date > entries[b].Date
	})
	return entries, nil
}
