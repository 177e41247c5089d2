package onerm

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitjournal/internal/apperr"
	"github.com/2beens/fitjournal/internal/telemetry/tracing"
	"github.com/2beens/fitjournal/pkg"
)

type Response struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
	OneRM  float64 `json:"oneRm"`
	Loads  []Load  `json:"loads"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/tools/1rm", handler.HandleEstimate).Methods("GET", "OPTIONS").Name("one-rm")
}

func (handler *Handler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.tools.1rm")
	defer span.End()

	query := r.URL.Query()
	weight, err := strconv.ParseFloat(strings.ReplaceAll(query.Get("weight"), ",", "."), 64)
	if err != nil {
		http.Error(w, "weight: must be a number", http.StatusBadRequest)
		return
	}
	reps, err := strconv.Atoi(query.Get("reps"))
	if err != nil {
		http.Error(w, "reps: must be a whole number", http.StatusBadRequest)
		return
	}

	rm, err := Estimate(weight, reps)
	if err != nil {
		log.Tracef("estimate 1rm: %s", err)
		http.Error(w, apperr.PublicMessage(err), apperr.HTTPStatus(err))
		return
	}

	pkg.WriteJSON(w, Response{
		Weight: weight,
		Reps:   reps,
		OneRM:  rm,
		Loads:  Table(rm),
	}, http.StatusOK)
}
