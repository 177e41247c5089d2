package profile

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitjournal/internal/apperr"
)

// IdentityProvider is the source of the signed-in user.
type IdentityProvider interface {
	CurrentUser() *User
	// OnChange registers fn to be called with the new user (nil on sign
	// out) and returns a function that removes the registration.
	OnChange(fn func(user *User)) (unsubscribe func())
}

type profileGetter interface {
	Get(ctx context.Context, uid string) (Profile, error)
}

// Session holds the current identity and its cached profile. It is
// created once at the top of the process and passed to whoever needs it.
type Session struct {
	identity IdentityProvider
	profiles profileGetter

	mutex       sync.RWMutex
	ctx         context.Context
	user        *User
	profile     *Profile
	unsubscribe func()
}

func NewSession(identity IdentityProvider, profiles profileGetter) *Session {
	return &Session{
		identity: identity,
		profiles: profiles,
	}
}

// Start loads the current user and profile and subscribes to identity
// changes. ctx is used for the profile loads triggered by those changes.
func (s *Session) Start(ctx context.Context) error {
	s.mutex.Lock()
	if s.unsubscribe != nil {
		s.mutex.Unlock()
		return nil
	}
	s.ctx = ctx
	s.mutex.Unlock()

	if err := s.load(ctx, s.identity.CurrentUser()); err != nil {
		return err
	}

	unsubscribe := s.identity.OnChange(func(user *User) {
		s.mutex.RLock()
		cbCtx := s.ctx
		s.mutex.RUnlock()
		if err := s.load(cbCtx, user); err != nil {
			log.Errorf("session: load profile after identity change: %s", err)
		}
	})

	s.mutex.Lock()
	s.unsubscribe = unsubscribe
	s.mutex.Unlock()
	return nil
}

// Close unsubscribes from identity changes and drops the cached state.
func (s *Session) Close() {
	s.mutex.Lock()
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.user = nil
	s.profile = nil
	s.mutex.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

func (s *Session) User() *User {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Profile returns the cached profile, or nil if there is none (yet).
func (s *Session) Profile() *Profile {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.profile == nil {
		return nil
	}
	p := s.profile.clone()
	return &p
}

// Refresh reloads the profile of the current user.
func (s *Session) Refresh(ctx context.Context) error {
	return s.load(ctx, s.identity.CurrentUser())
}

func (s *Session) load(ctx context.Context, user *User) error {
	if user == nil {
		s.mutex.Lock()
		s.user = nil
		s.profile = nil
		s.mutex.Unlock()
		return nil
	}

	var cached *Profile
	p, err := s.profiles.Get(ctx, user.UID)
	switch {
	case err == nil:
		cached = &p
	case apperr.IsNotFound(err):
		// signed up but never saved a profile
		log.Debugf("session: no profile for user [%s]", user.UID)
	default:
		return err
	}

	u := *user
	s.mutex.Lock()
	s.user = &u
	s.profile = cached
	s.mutex.Unlock()
	return nil
}
