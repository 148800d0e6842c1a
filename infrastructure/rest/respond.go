package rest

import (
	"fmt"
	"log/slog"
	"net/http"
	"recipe-live/errors"

	"github.com/goccy/go-json"
)

type messageResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, log *slog.Logger, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		log.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		log.Debug("Failed to write JSON response", "error", err)
	}
}

func respondMessage(w http.ResponseWriter, log *slog.Logger, status int, message string) {
	respondJSON(w, log, status, messageResponse{Message: message})
}

// respondError maps err to its status code. Internal errors are logged and never leaked to the client.
func respondError(w http.ResponseWriter, log *slog.Logger, err error) {
	status := errors.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Error("Request failed", "error", err)
		message = http.StatusText(status)
	}
	respondMessage(w, log, status, message)
}

// decode reads a JSON body into dst. A malformed body is reported as ErrInvalidPayload.
func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %s", errors.ErrInvalidPayload, err.Error())
	}
	return nil
}
