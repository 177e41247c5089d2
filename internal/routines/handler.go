package routines

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitjournal/internal/profile"
	"github.com/2beens/fitjournal/internal/telemetry/metrics"
	"github.com/2beens/fitjournal/internal/telemetry/tracing"
	"github.com/2beens/fitjournal/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=routines_test

type routinesRepo interface {
	List(ctx context.Context, uid string) ([]Routine, error)
	Create(ctx context.Context, uid string, in RoutineInput) (string, error)
	Get(ctx context.Context, uid, routineID string) (Routine, error)
	Update(ctx context.Context, uid, routineID string, upd RoutineUpdate) error
	Delete(ctx context.Context, uid, routineID string) error
}

type routinesService interface {
	AddExercise(ctx context.Context, uid, routineID string, in ExerciseInput) (Routine, error)
	RemoveExercise(ctx context.Context, uid, routineID, exerciseID string) (Routine, error)
	AppendSet(ctx context.Context, uid, routineID, exerciseID string, in SetInput) (Routine, error)
	ReplaceSet(ctx context.Context, uid, routineID, exerciseID, setID string, patch SetPatch) (Routine, error)
	RemoveSet(ctx context.Context, uid, routineID, exerciseID, setID string) (Routine, error)
	ClearSets(ctx context.Context, uid, routineID, exerciseID string) (Routine, error)
	ExerciseVolume(ctx context.Context, uid, routineID, exerciseID string) (float64, error)
}

type ListResponse struct {
	Routines []Routine `json:"routines"`
	Total    int       `json:"total"`
	Max      int       `json:"max"`
}

type CreateResponse struct {
	ID string `json:"id"`
}

type DeleteResponse struct {
	DeletedID string `json:"deletedId"`
}

type VolumeResponse struct {
	ExerciseID string  `json:"exerciseId"`
	Volume     float64 `json:"volume"`
}

type Handler struct {
	repo           routinesRepo
	service        routinesService
	metricsManager *metrics.Manager
}

func NewHandler(repo routinesRepo, service routinesService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		service:        service,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/routines", handler.HandleList).Methods("GET", "OPTIONS").Name("list-routines")
	router.HandleFunc("/routines", handler.HandleCreate).Methods("POST", "OPTIONS").Name("new-routine")
	router.HandleFunc("/routines/{rid}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-routine")
	router.HandleFunc("/routines/{rid}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-routine")
	router.HandleFunc("/routines/{rid}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-routine")
	router.HandleFunc("/routines/{rid}/exercises", handler.HandleAddExercise).Methods("POST", "OPTIONS").Name("new-exercise")
	router.HandleFunc("/routines/{rid}/exercises/{eid}", handler.HandleRemoveExercise).Methods("DELETE", "OPTIONS").Name("remove-exercise")
	router.HandleFunc("/routines/{rid}/exercises/{eid}/volume", handler.HandleVolume).Methods("GET", "OPTIONS").Name("exercise-volume")
	router.HandleFunc("/routines/{rid}/exercises/{eid}/sets", handler.HandleAppendSet).Methods("POST", "OPTIONS").Name("new-set")
	router.HandleFunc("/routines/{rid}/exercises/{eid}/sets", handler.HandleClearSets).Methods("DELETE", "OPTIONS").Name("clear-sets")
	router.HandleFunc("/routines/{rid}/exercises/{eid}/sets/{sid}", handler.HandleReplaceSet).Methods("PUT", "OPTIONS").Name("update-set")
	router.HandleFunc("/routines/{rid}/exercises/{eid}/sets/{sid}", handler.HandleRemoveSet).Methods("DELETE", "OPTIONS").Name("remove-set")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.list")
	defer span.End()

	user, ok := profile.RequestUser(w, r)
	if !ok {
		return
	}
	uid := user.UID

	routines, err := handler.repo.List(ctx, uid)
	if err != nil {
		pkg.WriteError(w, span, "list routines", err)
		return
	}

	pkg.WriteJSON(w, ListResponse{
		Routines: routines,
		Total:    len(routines),
		Max:      MaxRoutines,
	}, http.StatusOK)
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.new")
	defer span.End()

	user, ok := profile.RequestUser(w, r)
	if !ok {
		return
	}
	uid := user.UID

	var in RoutineInput
	if !pkg.DecodeJSONBody(w, r, &in) {
		return
	}

	id, err := handler.repo.Create(ctx, uid, in)
	if err != nil {
		pkg.WriteError(w, span, "create routine", err)
		return
	}
	handler.metricsManager.CounterRoutinesCreated.Inc()

	log.Debugf("new routine [%s] for user [%s]", id, uid)
	pkg.WriteJSON(w, CreateResponse{ID: id}, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.get")
	defer span.End()

	user, ok := profile.RequestUser(w, r)
	if !ok {
		return
	}
	uid := user.UID

	routine, err := handler.repo.Get(ctx, uid, mux.Vars(r)["rid"])
	if err != nil {
		pkg.WriteError(w, span, "get routine", err)
		return
	}
	pkg.WriteJSON(w, routine, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.update")
	defer span.End()

	user, ok := profile.RequestUser(w, r)
	if !ok {
		return
	}
	uid := user.UID

	var upd RoutineUpdate
	if !pkg.DecodeJSONBody(w, r, &upd) {
		return
	}

	routineID := mux.Vars(r)["rid"]
	if err := handler.repo.Update(ctx, uid, routineID, upd); err != nil {
		pkg.WriteError(w, span, "update routine", err)
		return
	}

	routine, err := handler.repo.Get(ctx, uid, routineID)
	if err != nil {
		pkg.WriteError(w, span, "get updated routine", err)
		return
	}
	pkg.WriteJSON(w, routine, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.delete")
	defer span.End()

	user, ok := profile.RequestUser(w, r)
	if !ok {
		return
	}
	uid := user.UID

	routineID := mux.Vars(r)["rid"]
	if err := handler.repo.Delete(ctx, uid, routineID); err != nil {
		pkg.WriteError(w, span, "delete routine", err)
		return
	}
	pkg.WriteJSON(w, DeleteResponse{DeletedID: routineID}, http.StatusOK)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.add_exercise")
	defer span.End()

	user, ok := profile.RequestUser(w, r)
	if !ok {
		return
	}
	uid := user.UID

	var in ExerciseInput
	if !pkg.DecodeJSONBody(w, r, &in) {
		return
	}

	routine, err := handler.service.AddExercise(ctx, uid, mux.Vars(r)["rid"], in)
	if err != nil {
		pkg.WriteError(w, span, "add exercise", err)
		return
	}
	handler.metricsManager.CounterExercisesAdded.Inc()

	pkg.WriteJSON(w, routine, http.StatusCreated)
}

func (handler *Handler) HandleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.remove_exercise")
	defer span.End()

	user, ok := profile.RequestUser(w, r)
	if !ok {
		return
	}
	uid := user.UID

	vars := mux.Vars(r)
	routine, err := handler.service.RemoveExercise(ctx, uid, vars["rid"], vars["eid"])
	if err != nil {
		pkg.WriteError(w, span, "remove exercise", err)
		return
	}
	pkg.WriteJSON(w, routine, http.StatusOK)
}

func (handler *Handler) HandleVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.volume")
	defer span.End()

	user, ok := profile.RequestUser(w, r)
	if !ok {
		return
	}
	uid := user.UID

	vars := mux.Vars(r)
	volume, err := handler.service.ExerciseVolume(ctx, uid, vars["rid"], vars["eid"])
	if err != nil {
		pkg.WriteError(w, span, "exercise volume", err)
		return
	}
	pkg.WriteJSON(w, VolumeResponse{ExerciseID: vars["eid"], Volume: volume}, http.StatusOK)
}

func (handler *Handler) HandleAppendSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.append_set")
	defer span.End()

	user, ok := profile.RequestUser(w, r)
	if !ok {
		return
	}
	uid := user.UID

	var in SetInput
	if !pkg.DecodeJSONBody(w, r, &in) {
		return
	}

	vars := mux.Vars(r)
	routine, err := handler.service.AppendSet(ctx, uid, vars["rid"], vars["eid"], in)
	if err != nil {
		pkg.WriteError(w, span, "append set", err)
		return
	}
	handler.metricsManager.CounterSetsLogged.Inc()

	pkg.WriteJSON(w, routine, http.StatusCreated)
}

func (handler *Handler) HandleReplaceSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.replace_set")
	defer span.End()

	user, ok := profile.RequestUser(w, r)
	if !ok {
		return
	}
	uid := user.UID

	var patch SetPatch
	if !pkg.DecodeJSONBody(w, r, &patch) {
		return
	}

	vars := mux.Vars(r)
	routine, err := handler.service.ReplaceSet(ctx, uid, vars["rid"], vars["eid"], vars["sid"], patch)
	if err != nil {
		pkg.WriteError(w, span, "replace set", err)
		return
	}
	pkg.WriteJSON(w, routine, http.StatusOK)
}

func (handler *Handler) HandleRemoveSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.remove_set")
	defer span.End()

	user, ok := profile.RequestUser(w, r)
	if !ok {
		return
	}
	uid := user.UID

	vars := mux.Vars(r)
	routine, err := handler.service.RemoveSet(ctx, uid, vars["rid"], vars["eid"], vars["sid"])
	if err != nil {
		pkg.WriteError(w, span, "remove set", err)
		return
	}
	pkg.WriteJSON(w, routine, http.StatusOK)
}

func (handler *Handler) HandleClearSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.clear_sets")
	defer span.End()

	user, ok := profile.RequestUser(w, r)
	if !ok {
		return
	}
	uid := user.UID

	vars := mux.Vars(r)
	routine, err := handler.service.ClearSets(ctx, uid, vars["rid"], vars["eid"])
	if err != nil {
		pkg.WriteError(w, span, "clear sets", err)
		return
	}
	pkg.WriteJSON(w, routine, http.StatusOK)
}



