package calendar

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/2beens/fitjournal/internal/profile"
	"github.com/2beens/fitjournal/internal/telemetry/metrics"
	"github.com/2beens/fitjournal/internal/telemetry/tracing"
	"github.com/2beens/fitjournal/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=calendar_test

type calendarService interface {
	Catalog() *Catalog
	DayState(ctx context.Context, uid string, track profile.Track, dayID string) (DayState, error)
	Toggle(ctx context.Context, uid string, track profile.Track, dayID, exerciseID string, setIndex int) (DayState, error)
	Finish(ctx context.Context, uid string, track profile.Track, dayID string) ([]string, error)
	Reset(ctx context.Context, uid string, track profile.Track) error
	CompletedDates(ctx context.Context, uid string, track profile.Track) ([]string, error)
}

type TrackSummary struct {
	ID       profile.Track `json:"id"`
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Days     int           `json:"days"`
}

type ToggleRequest struct {
	ExerciseID string `json:"exerciseId"`
	SetIndex   int    `json:"setIndex"`
}

type CalendarResponse struct {
	Track          profile.Track `json:"track"`
	CompletedDates []string      `json:"completedDates"`
}

type FinishResponse struct {
	CalendarResponse
	Day string `json:"day"`
}

type Handler struct {
	calendar       calendarService
	metricsManager *metrics.Manager
}

func NewHandler(calendar calendarService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		calendar:       calendar,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/tracks", handler.HandleList).Methods("GET", "OPTIONS").Name("list-tracks")
	router.HandleFunc("/tracks/{track}", handler.HandleTrack).Methods("GET", "OPTIONS").Name("get-track")
	router.HandleFunc("/tracks/{track}/days/{day}", handler.HandleDay).Methods("GET", "OPTIONS").Name("get-track-day")
	router.HandleFunc("/tracks/{track}/days/{day}/toggle", handler.HandleToggle).Methods("POST", "OPTIONS").Name("toggle-set")
	router.HandleFunc("/tracks/{track}/days/{day}/finish", handler.HandleFinish).Methods("POST", "OPTIONS").Name("finish-workout")
	router.HandleFunc("/tracks/{track}/calendar", handler.HandleCalendar).Methods("GET", "OPTIONS").Name("get-calendar")
	router.HandleFunc("/tracks/{track}/calendar", handler.HandleReset).Methods("DELETE", "OPTIONS").Name("reset-calendar")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracks.list")
	defer span.End()

	tracks := handler.calendar.Catalog().Tracks()
	summaries := make([]TrackSummary, 0, len(tracks))
	for _, t := range tracks {
		summaries = append(summaries, TrackSummary{
			ID:       t.ID,
			Title:    t.Title,
			Subtitle: t.Subtitle,
			Days:     len(t.Days),
		})
	}
	pkg.WriteJSON(w, summaries, http.StatusOK)
}

func (handler *Handler) HandleTrack(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracks.get")
	defer span.End()

	def, err := handler.calendar.Catalog().Track(profile.Track(mux.Vars(r)["track"]))
	if err != nil {
		pkg.WriteError(w, span, "get track", err)
		return
	}
	pkg.WriteJSON(w, def, http.StatusOK)
}

func (handler *Handler) HandleDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracks.day")
	defer span.End()

	user, ok := profile.RequestUser(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	state, err := handler.calendar.DayState(ctx, user.UID, profile.Track(vars["track"]), vars["day"])
	if err != nil {
		pkg.WriteError(w, span, "day state", err)
		return
	}
	pkg.WriteJSON(w, state, http.StatusOK)
}

func (handler *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracks.toggle")
	defer span.End()

	user, ok := profile.RequestUser(w, r)
	if !ok {
		return
	}

	var req ToggleRequest
	if !pkg.DecodeJSONBody(w, r, &req) {
		return
	}

	vars := mux.Vars(r)
	state, err := handler.calendar.Toggle(ctx, user.UID, profile.Track(vars["track"]), vars["day"], req.ExerciseID, req.SetIndex)
	if err != nil {
		pkg.WriteError(w, span, "toggle set", err)
		return
	}
	pkg.WriteJSON(w, state, http.StatusOK)
}

func (handler *Handler) HandleFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracks.finish")
	defer span.End()

	user, ok := profile.RequestUser(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	track := profile.Track(vars["track"])
	dates, err := handler.calendar.Finish(ctx, user.UID, track, vars["day"])
	if err != nil {
		pkg.WriteError(w, span, "finish workout", err)
		return
	}
	handler.metricsManager.CounterWorkoutsFinished.WithLabelValues(string(track)).Inc()

	pkg.WriteJSON(w, FinishResponse{
		CalendarResponse: CalendarResponse{Track: track, CompletedDates: dates},
		Day:              vars["day"],
	}, http.StatusOK)
}

func (handler *Handler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracks.calendar")
	defer span.End()

	user, ok := profile.RequestUser(w, r)
	if !ok {
		return
	}

	track := profile.Track(mux.Vars(r)["track"])
	dates, err := handler.calendar.CompletedDates(ctx, user.UID, track)
	if err != nil {
		pkg.WriteError(w, span, "completed dates", err)
		return
	}
	pkg.WriteJSON(w, CalendarResponse{Track: track, CompletedDates: dates}, http.StatusOK)
}

func (handler *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracks.reset")
	defer span.End()

	user, ok := profile.RequestUser(w, r)
	if !ok {
		return
	}

	track := profile.Track(mux.Vars(r)["track"])
	if err := handler.calendar.Reset(ctx, user.UID, track); err != nil {
		pkg.WriteError(w, span, "reset track", err)
		return
	}
	pkg.WriteJSON(w, CalendarResponse{Track: track, CompletedDates: []string{}}, http.StatusOK)
}

