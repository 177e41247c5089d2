package calendar

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitjournal/internal/profile"
)

const (
	oneDay             = 24 * 60 * 60
	toggleCacheExpire  = oneDay
	defaultToggleCache = 16 * 1024 * 1024
)

// ToggleCache keeps the in progress set toggles of each (user, track).
// Nothing in it is persisted; an entry unused for a day is dropped.
type ToggleCache struct {
	cache *freecache.Cache
}

// NewToggleCache creates a cache of size bytes. A size <= 0 gives the
// default size.
func NewToggleCache(size int) *ToggleCache {
	if size <= 0 {
		size = defaultToggleCache
	}
	return &ToggleCache{
		cache: freecache.NewCache(size),
	}
}

func toggleKey(uid string, track profile.Track) []byte {
	return []byte(fmt.Sprintf("toggles::%s::%s", uid, track))
}

// Load returns the progress stored for the user and track, or a fresh
// one when there is none.
func (c *ToggleCache) Load(uid string, def TrackDef) TrackProgress {
	raw, err := c.cache.Get(toggleKey(uid, def.ID))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Errorf("get toggles of [%s/%s]: %s", uid, def.ID, err)
		}
		return NewTrackProgress(def)
	}

	var p TrackProgress
	if err := json.Unmarshal(raw, &p); err != nil {
		log.Errorf("unmarshal toggles of [%s/%s]: %s", uid, def.ID, err)
		return NewTrackProgress(def)
	}
	return conform(p, def)
}

func (c *ToggleCache) Store(uid string, track profile.Track, p TrackProgress) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal toggles: %w", err)
	}
	if err := c.cache.Set(toggleKey(uid, track), raw, toggleCacheExpire); err != nil {
		return fmt.Errorf("set toggles: %w", err)
	}
	return nil
}

func (c *ToggleCache) Drop(uid string, track profile.Track) {
	c.cache.Del(toggleKey(uid, track))
}
