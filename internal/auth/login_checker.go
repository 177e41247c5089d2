package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/2beens/fitjournal/internal/profile"
	"github.com/2beens/fitjournal/internal/telemetry/tracing"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// UserFor returns the user of a live session, or ErrNotLogged.
func (lc *LoginChecker) UserFor(ctx context.Context, token string) (_ *profile.User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "loginChecker.userFor")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session, err := getSession(ctx, lc.redisClient, token)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotLogged
		}
		return nil, err
	}

	if time.Since(time.Unix(session.CreatedAt, 0)) > lc.ttl {
		return nil, ErrNotLogged
	}

	return &profile.User{UID: session.UID, Email: session.Email}, nil
}

func (lc *LoginChecker) IsLogged(ctx context.Context, token string) (bool, error) {
	_, err := lc.UserFor(ctx, token)
	if err != nil {
		if errors.Is(err, ErrNotLogged) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
