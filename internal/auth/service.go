package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitjournal/internal/apperr"
	"github.com/2beens/fitjournal/internal/docstore"
	"github.com/2beens/fitjournal/internal/ids"
	"github.com/2beens/fitjournal/internal/profile"
	"github.com/2beens/fitjournal/internal/telemetry/tracing"
	"github.com/2beens/fitjournal/pkg"
)

const (
	DefaultTTL        = 24 * 7 * time.Hour
	MinPasswordLength = 6

	sessionKeyPrefix   = "fitjournal-session||"
	tokensSetKey       = "fitjournal-sessions"
	accountsCollection = "accounts"
	tokenLength        = 35
)

var (
	ErrWrongCredentials error = &apperr.ValidationError{Message: "wrong email or password"}
	ErrAccountExists    error = &apperr.ValidationError{Field: "email", Message: "an account with this email already exists"}
	ErrNotLogged              = errors.New("not logged")
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Account is the credentials document of a user, kept under
// accounts/{email}.
type Account struct {
	UID          string    `json:"uid"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// LoginSession is what is stored in redis for a session token.
type LoginSession struct {
	UID       string `json:"uid"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"createdAt"`
}

type profileSaver interface {
	Save(ctx context.Context, uid string, in profile.ProfileInput) error
}

type Service struct {
	docs        docstore.Store
	profiles    profileSaver
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
	// bcrypt at full cost is too slow for unit tests
	HashPasswordFunc func(password string) (string, error)
}

func NewAuthService(
	ttl time.Duration,
	docs docstore.Store,
	profiles profileSaver,
	redisClient *redis.Client,
) *Service {
	return &Service{
		docs:             docs,
		profiles:         profiles,
		ttl:              ttl,
		redisClient:      redisClient,
		RandStringFunc:   pkg.GenerateRandomString,
		HashPasswordFunc: pkg.HashPassword,
	}
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", apperr.Validation("email", "email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || strings.Contains(email, "/") {
		return "", apperr.Validation("email", "invalid email address")
	}
	return email, nil
}

func accountPath(email string) string {
	return docstore.Doc(accountsCollection, email)
}

// Register creates the account and its initial profile.
func (as *Service) Register(ctx context.Context, creds Credentials, in profile.ProfileInput) (_ profile.User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	email, err := normalizeEmail(creds.Email)
	if err != nil {
		return profile.User{}, err
	}
	if len(creds.Password) < MinPasswordLength {
		return profile.User{}, apperr.Validation("password", "must have at least %d characters", MinPasswordLength)
	}
	if _, err := in.Validate(); err != nil {
		return profile.User{}, err
	}

	hash, err := as.HashPasswordFunc(creds.Password)
	if err != nil {
		return profile.User{}, fmt.Errorf("hash password: %w", err)
	}

	account := Account{
		UID:          ids.New(ids.PrefixUser),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := as.docs.Create(ctx, accountPath(email), account); err != nil {
		if errors.Is(err, docstore.ErrDocumentExists) {
			return profile.User{}, ErrAccountExists
		}
		return profile.User{}, apperr.Persistence("create account", err)
	}
	span.SetAttributes(attribute.String("uid", account.UID))

	if err := as.profiles.Save(ctx, account.UID, in); err != nil {
		return profile.User{}, err
	}

	log.Debugf("new account [%s] for [%s]", account.UID, email)
	return profile.User{UID: account.UID, Email: email}, nil
}

// Authenticate checks the credentials without opening a session.
func (as *Service) Authenticate(ctx context.Context, creds Credentials) (_ profile.User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.authenticate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	email, err := normalizeEmail(creds.Email)
	if err != nil {
		return profile.User{}, ErrWrongCredentials
	}

	snapshot, err := as.docs.Get(ctx, accountPath(email))
	if err != nil {
		if errors.Is(err, docstore.ErrDocumentNotFound) {
			log.Tracef("[email] failed login attempt for: %s", email)
			return profile.User{}, ErrWrongCredentials
		}
		return profile.User{}, apperr.Persistence("get account", err)
	}

	var account Account
	if err := snapshot.DataTo(&account); err != nil {
		return profile.User{}, apperr.Persistence("get account", err)
	}
	if !pkg.CheckPasswordHash(creds.Password, account.PasswordHash) {
		log.Tracef("[password] failed login attempt for: %s", email)
		return profile.User{}, ErrWrongCredentials
	}

	return profile.User{UID: account.UID, Email: account.Email}, nil
}

// Login authenticates and opens a session, returning its token.
func (as *Service) Login(ctx context.Context, creds Credentials, createdAt time.Time) (string, profile.User, error) {
	user, err := as.Authenticate(ctx, creds)
	if err != nil {
		return "", profile.User{}, err
	}

	token, err := as.RandStringFunc(tokenLength)
	if err != nil {
		return "", profile.User{}, err
	}

	session, err := json.Marshal(LoginSession{
		UID:       user.UID,
		Email:     user.Email,
		CreatedAt: createdAt.Unix(),
	})
	if err != nil {
		return "", profile.User{}, err
	}

	sessionKey := sessionKeyPrefix + token
	cmdSet := as.redisClient.Set(ctx, sessionKey, string(session), 0)
	if err := cmdSet.Err(); err != nil {
		return "", profile.User{}, err
	}

	// add token to list of sessions
	cmdSAdd := as.redisClient.SAdd(ctx, tokensSetKey, token)
	if err := cmdSAdd.Err(); err != nil {
		return "", profile.User{}, err
	}

	return token, user, nil
}

// Logout removes the session. It reports false when there was none.
func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	sessionKey := sessionKeyPrefix + token
	cmdDel := as.redisClient.Del(ctx, sessionKey)
	if err := cmdDel.Err(); err != nil {
		return false, err
	}

	// remove token from the list of sessions
	cmdSRem := as.redisClient.SRem(ctx, tokensSetKey, token)
	if err := cmdSRem.Err(); err != nil {
		return false, err
	}

	return cmdDel.Val() > 0, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Debugln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Infof("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		session, err := getSession(ctx, as.redisClient, token)
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// the set is out of sync with the keys
				toRemove = append(toRemove, token)
				continue
			}
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		if time.Since(time.Unix(session.CreatedAt, 0)) > as.ttl {
			log.Debugf("=>\twill clean the session of user: %s", session.UID)
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		sessionKey := sessionKeyPrefix + token
		cmdDel := as.redisClient.Del(ctx, sessionKey)
		if err := cmdDel.Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}

		// remove token from the list of sessions
		cmdSRem := as.redisClient.SRem(ctx, tokensSetKey, token)
		if err := cmdSRem.Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}
	}
}

func getSession(ctx context.Context, redisClient *redis.Client, token string) (LoginSession, error) {
	cmd := redisClient.Get(ctx, sessionKeyPrefix+token)
	if err := cmd.Err(); err != nil {
		return LoginSession{}, err
	}

	var session LoginSession
	if err := json.Unmarshal([]byte(cmd.Val()), &session); err != nil {
		return LoginSession{}, fmt.Errorf("unmarshal session: %w", err)
	}
	return session, nil
}
