package pkg

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"github.com/2beens/fitjournal/internal/apperr"
)

// DecodeJSONBody decodes the request body into v. On failure the error
// response is already written and false is returned.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}

	log.Tracef("%s %s, unmarshal json: %s", r.Method, r.URL.Path, err)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
		return false
	}
	http.Error(w, "invalid request body", http.StatusBadRequest)
	return false
}

// WriteError answers with the status and public message of err. Client
// errors are logged at debug, the rest as errors on the log and the span.
func WriteError(w http.ResponseWriter, span trace.Span, action string, err error) {
	if apperr.IsValidation(err) || apperr.IsNotFound(err) {
		log.Debugf("%s: %s", action, err)
	} else {
		log.Errorf("%s: %s", action, err)
		if span != nil {
			span.RecordError(err)
		}
	}
	http.Error(w, apperr.PublicMessage(err), apperr.HTTPStatus(err))
}
