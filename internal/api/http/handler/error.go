package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ndanilova/calendar-server/internal/model"
)

type messageResponse struct {
	Message string `json:"message"`
}

// writeJSON encodes v with the given status. Encoding failures are ignored;
// the status line is already on the wire.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

// handleError maps domain errors to HTTP responses. notFoundMsg names the
// resource in 404 bodies ("Event not found", "Meeting not found").
func handleError(w http.ResponseWriter, err error, notFoundMsg string) {
	var validationErr *model.ValidationError
	switch {
	case errors.Is(err, model.ErrNotFound):
		writeMessage(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, model.ErrAmbiguousName):
		writeMessage(w, http.StatusConflict, "name matches more than one item, delete by id")
	case errors.Is(err, model.ErrLoginTaken):
		writeMessage(w, http.StatusConflict, "login is already taken")
	case errors.Is(err, model.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "invalid login or password")
	case errors.As(err, &validationErr):
		writeMessage(w, http.StatusBadRequest, validationErr.Error())
	default:
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}
