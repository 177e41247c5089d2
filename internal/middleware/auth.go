package middleware

import (
	"context"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/fitjournal/internal/profile"
	"github.com/2beens/fitjournal/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

// AuthTokenHeader carries the session token issued on login.
const AuthTokenHeader = "X-FJ-TOKEN"

var errNotLogged = errors.New("not logged")

type loginChecker interface {
	UserFor(ctx context.Context, token string) (*profile.User, error)
}

type AuthMiddlewareHandler struct {
	loginChecker loginChecker
	allowedPaths map[string]bool
	// the error the checker returns for unknown or expired sessions
	notLoggedErr error
}

func NewAuthMiddlewareHandler(loginChecker loginChecker, notLoggedErr error) *AuthMiddlewareHandler {
	if notLoggedErr == nil {
		notLoggedErr = errNotLogged
	}
	return &AuthMiddlewareHandler{
		loginChecker: loginChecker,
		notLoggedErr: notLoggedErr,
		allowedPaths: map[string]bool{
			"/":        true,
			"/version": true,

			// accounts:
			"/a/register": true,
			"/a/login":    true,
			"/a/logout":   true,

			// tools:
			"/tools/1rm": true,
		},
	}
}

func (h *AuthMiddlewareHandler) pathIsAlwaysAllowed(path string) bool {
	return h.allowedPaths[path]
}

// AuthCheck resolves the session token into a user and puts it into the
// request context. Unauthenticated requests to protected paths get 401.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.pathIsAlwaysAllowed(r.URL.Path) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			// a non-standard req. header is set, and thus - browser makes a preflight/OPTIONS request:
			//	https://developer.mozilla.org/en-US/docs/Web/HTTP/CORS#preflighted_requests
			authToken := r.Header.Get(AuthTokenHeader)
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			user, err := h.loginChecker.UserFor(ctx, authToken)
			if err != nil {
				if errors.Is(err, h.notLoggedErr) {
					log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
					http.Error(w, "no can do", http.StatusUnauthorized)
					span.SetStatus(codes.Error, "not-logged")
					return
				}
				log.Errorf("[failed login check] => %s: %s", r.URL.Path, err)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "check-logged-err")
				span.RecordError(err)
				return
			}

			span.SetAttributes(attribute.String("uid", user.UID))
			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(profile.ContextWithUser(ctx, user)))
		})
	}
}
