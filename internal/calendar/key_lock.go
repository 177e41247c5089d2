package calendar

import (
	"sync"

	"github.com/2beens/fitjournal/internal/profile"
)

// keyLock hands out one mutex per user and track. Entries are dropped
// once nobody holds or waits for them, so the map stays as small as the
// number of requests in flight.
type keyLock struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyLock() *keyLock {
	return &keyLock{
		locks: make(map[string]*refMutex),
	}
}

func lockKey(uid string, track profile.Track) string {
	return uid + "/" + string(track)
}

// lock blocks until the key is free and returns its unlock func.
func (kl *keyLock) lock(uid string, track profile.Track) func() {
	key := lockKey(uid, track)

	kl.mu.Lock()
	m, ok := kl.locks[key]
	if !ok {
		m = &refMutex{}
		kl.locks[key] = m
	}
	m.refs++
	kl.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		kl.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(kl.locks, key)
		}
		kl.mu.Unlock()
	}
}

func (kl *keyLock) size() int {
	kl.mu.Lock()
	defer kl.mu.Unlock()
	return len(kl.locks)
}
