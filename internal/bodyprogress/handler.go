package bodyprogress

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/trace"

	"github.com/2beens/fitjournal/internal/profile"
	"github.com/2beens/fitjournal/internal/telemetry/metrics"
	"github.com/2beens/fitjournal/internal/telemetry/tracing"
	"github.com/2beens/fitjournal/pkg"
)

type progressJournal interface {
	Add(ctx context.Context, uid string, in EntryInput) (Entry, error)
	Delete(ctx context.Context, uid, entryID string) error
	List(ctx context.Context, uid string) ([]Entry, error)
}

type ListResponse struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

type Handler struct {
	journal        progressJournal
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewHandler(journal progressJournal, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		journal:        journal,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/progress", handler.HandleList).Methods("GET", "OPTIONS").Name("list-progress")
	router.HandleFunc("/progress", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-progress")
	router.HandleFunc("/progress/stats", handler.HandleStats).Methods("GET", "OPTIONS").Name("progress-stats")
	router.HandleFunc("/progress/chart", handler.HandleChart).Methods("GET", "OPTIONS").Name("progress-chart")
	router.HandleFunc("/progress/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-progress")
}

func (handler *Handler) entries(w http.ResponseWriter, r *http.Request) ([]Entry, bool) {
	user, ok := profile.RequestUser(w, r)
	if !ok {
		return nil, false
	}
	entries, err := handler.journal.List(r.Context(), user.UID)
	if err != nil {
		pkg.WriteError(w, trace.SpanFromContext(r.Context()), "list progress entries", err)
		return nil, false
	}
	return entries, true
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.list")
	defer span.End()

	entries, ok := handler.entries(w, r.WithContext(ctx))
	if !ok {
		return
	}
	pkg.WriteJSON(w, ListResponse{Entries: entries, Total: len(entries)}, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.new")
	defer span.End()

	user, ok := profile.RequestUser(w, r)
	if !ok {
		return
	}

	var in EntryInput
	if !pkg.DecodeJSONBody(w, r, &in) {
		return
	}

	entry, err := handler.journal.Add(ctx, user.UID, in)
	if err != nil {
		pkg.WriteError(w, span, "add progress entry", err)
		return
	}
	handler.metricsManager.CounterProgressEntries.Inc()

	pkg.WriteJSON(w, entry, http.StatusCreated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.delete")
	defer span.End()

	user, ok := profile.RequestUser(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	if err := handler.journal.Delete(ctx, user.UID, id); err != nil {
		pkg.WriteError(w, span, "delete progress entry", err)
		return
	}
	pkg.WriteJSON(w, map[string]string{"deletedId": id}, http.StatusOK)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.stats")
	defer span.End()

	entries, ok := handler.entries(w, r.WithContext(ctx))
	if !ok {
		return
	}
	// null until there are two entries to compare
	pkg.WriteJSON(w, ComputeStats(entries), http.StatusOK)
}

func (handler *Handler) HandleChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.chart")
	defer span.End()

	entries, ok := handler.entries(w, r.WithContext(ctx))
	if !ok {
		return
	}
	pkg.WriteJSON(w, ChartSeries(entries, handler.now()), http.StatusOK)
}

