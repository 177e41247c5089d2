package auth

import (
	"sync"

	"github.com/2beens/fitjournal/internal/profile"
)

// Identity is the signed in user of a client process, such as fitctl.
// It implements profile.IdentityProvider.
type Identity struct {
	mutex       sync.Mutex
	user        *profile.User
	token       string
	nextID      int
	subscribers map[int]func(user *profile.User)
}

var _ profile.IdentityProvider = (*Identity)(nil)

func NewIdentity() *Identity {
	return &Identity{
		subscribers: make(map[int]func(user *profile.User)),
	}
}

func (i *Identity) CurrentUser() *profile.User {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	if i.user == nil {
		return nil
	}
	u := *i.user
	return &u
}

func (i *Identity) Token() string {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	return i.token
}

func (i *Identity) SignIn(user profile.User, token string) {
	i.set(&user, token)
}

func (i *Identity) SignOut() {
	i.set(nil, "")
}

func (i *Identity) set(user *profile.User, token string) {
	i.mutex.Lock()
	i.user = user
	i.token = token
	subscribers := make([]func(user *profile.User), 0, len(i.subscribers))
	for _, fn := range i.subscribers {
		subscribers = append(subscribers, fn)
	}
	i.mutex.Unlock()

	// subscribers may call back into the identity
	for _, fn := range subscribers {
		if user == nil {
			fn(nil)
			continue
		}
		u := *user
		fn(&u)
	}
}

func (i *Identity) OnChange(fn func(user *profile.User)) (unsubscribe func()) {
	i.mutex.Lock()
	defer i.mutex.Unlock()

	id := i.nextID
	i.nextID++
	i.subscribers[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			i.mutex.Lock()
			defer i.mutex.Unlock()
			delete(i.subscribers, id)
		})
	}
}
