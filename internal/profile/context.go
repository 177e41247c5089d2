package profile

import (
	"context"
	"net/http"
)

type userCtxKey struct{}

// ContextWithUser attaches the authenticated user to ctx.
func ContextWithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, user)
}

func UserFromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(userCtxKey{}).(*User)
	if !ok || user == nil || user.UID == "" {
		return nil, false
	}
	return user, true
}

// RequestUser returns the authenticated user of r. Without one it
// answers 401 and returns false.
func RequestUser(w http.ResponseWriter, r *http.Request) (*User, bool) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return nil, false
	}
	return user, true
}
