package handler

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"careercompass/internal/model"
	"careercompass/internal/service"
	"careercompass/internal/validation"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error  string                  `json:"error"`
	Fields []validation.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// decode reads a JSON body into v and validates it
func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errBadBody
	}
	return validation.ValidateStruct(v)
}

var errBadBody = errors.New("invalid request body")

// writeServiceError maps domain and service errors to HTTP statuses. Answer
// shape problems are 422 so clients re-prompt; anything unexpected is logged
// and reported generically.
func writeServiceError(w http.ResponseWriter, log zerolog.Logger, err error) {
	var verr *validation.Error
	switch {
	case errors.Is(err, errBadBody):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation failed", Fields: verr.Fields})
	case errors.Is(err, model.ErrInvalidAnswerShape):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, model.ErrUnknownQuestion):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, service.ErrResultNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSessionFinished),
		errors.Is(err, service.ErrSessionIncomplete),
		errors.Is(err, service.ErrNothingToUndo),
		errors.Is(err, model.ErrSessionComplete):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "could not process your answers")
	}
}
