package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitjournal/internal/middleware"
	"github.com/2beens/fitjournal/internal/profile"
	"github.com/2beens/fitjournal/internal/telemetry/metrics"
	"github.com/2beens/fitjournal/internal/telemetry/tracing"
	"github.com/2beens/fitjournal/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type accountsService interface {
	Register(ctx context.Context, creds Credentials, in profile.ProfileInput) (profile.User, error)
	Login(ctx context.Context, creds Credentials, createdAt time.Time) (string, profile.User, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type RegisterRequest struct {
	Credentials
	Profile profile.ProfileInput `json:"profile"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  profile.User `json:"user"`
}

type Handler struct {
	service accountsService
}

func NewHandler(service accountsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	allowedPerMin int,
	metricsManager *metrics.Manager,
) {
	loginSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	loginSubrouter.
		HandleFunc("/register", handler.HandleRegister).
		Methods("POST", "OPTIONS").Name("register")
	loginSubrouter.
		HandleFunc("/login", handler.HandleLogin).
		Methods("POST", "OPTIONS").Name("login")
	loginSubrouter.
		HandleFunc("/logout", handler.HandleLogout).
		Methods("GET", "OPTIONS").Name("logout")

	// rate limit the account endpoints to prevent abuse
	loginSubrouter.Use(middleware.RateLimit(rateLimiter, "login", allowedPerMin, metricsManager))
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.register")
	defer span.End()

	var req RegisterRequest
	if !pkg.DecodeJSONBody(w, r, &req) {
		return
	}

	user, err := handler.service.Register(ctx, req.Credentials, req.Profile)
	if err != nil {
		pkg.WriteError(w, span, "register", err)
		return
	}

	log.Trace("new account registered")
	pkg.WriteJSON(w, user, http.StatusCreated)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.login")
	defer span.End()

	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Tracef("login, unmarshal json params: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}

	if creds.Email == "" {
		http.Error(w, "error, email empty", http.StatusBadRequest)
		return
	}
	if creds.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	token, user, err := handler.service.Login(ctx, creds, time.Now())
	if err != nil {
		pkg.WriteError(w, span, "login", err)
		return
	}

	log.Trace("new login success")
	pkg.WriteJSON(w, LoginResponse{Token: token, User: user}, http.StatusOK)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.logout")
	defer span.End()

	authToken := r.Header.Get(middleware.AuthTokenHeader)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.service.Logout(ctx, authToken)
	if err != nil {
		log.Errorf("logout for [%s] failed: %s", authToken, err)
		http.Error(w, "no can do", http.StatusInternalServerError)
		return
	}

	if !loggedOut {
		log.Tracef("logout for [%s] failed, no session", authToken)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

