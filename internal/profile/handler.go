package profile

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/2beens/fitjournal/internal/apperr"
	"github.com/2beens/fitjournal/internal/telemetry/tracing"
	"github.com/2beens/fitjournal/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profile_test

type profileRepo interface {
	Get(ctx context.Context, uid string) (Profile, error)
	Save(ctx context.Context, uid string, in ProfileInput) error
}

type Response struct {
	User    User     `json:"user"`
	Profile *Profile `json:"profile"`
}

type Handler struct {
	repo profileRepo
}

func NewHandler(repo profileRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/profile", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	router.HandleFunc("/profile", handler.HandleSave).Methods("PUT", "OPTIONS").Name("save-profile")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	user, ok := RequestUser(w, r)
	if !ok {
		return
	}

	resp := Response{User: *user}
	p, err := handler.repo.Get(ctx, user.UID)
	switch {
	case err == nil:
		resp.Profile = &p
	case apperr.IsNotFound(err):
		// not filled in yet, respond with the user only
	default:
		pkg.WriteError(w, span, "get profile", err)
		return
	}

	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.save")
	defer span.End()

	user, ok := RequestUser(w, r)
	if !ok {
		return
	}

	var in ProfileInput
	if !pkg.DecodeJSONBody(w, r, &in) {
		return
	}

	if err := handler.repo.Save(ctx, user.UID, in); err != nil {
		pkg.WriteError(w, span, "save profile", err)
		return
	}

	p, err := handler.repo.Get(ctx, user.UID)
	if err != nil {
		pkg.WriteError(w, span, "get saved profile", err)
		return
	}

	pkg.WriteJSON(w, Response{User: *user, Profile: &p}, http.StatusOK)
}
