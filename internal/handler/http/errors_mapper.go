package http

import (
	"errors"
	"net/http"

	"github.com/dquintero/hr-records/internal/logger"
	"github.com/dquintero/hr-records/internal/service"
	"github.com/dquintero/hr-records/internal/store"
	"github.com/dquintero/hr-records/internal/utils"
	"github.com/dquintero/hr-records/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	// Authentication failures share a status so a caller cannot probe for
	// valid usernames or account states.
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrInactiveAccount:         http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrEmployeeNotFound:      http.StatusNotFound,
	store.ErrNothingToUpdate:       http.StatusBadRequest,
	store.ErrInvalidUserReference:  http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,

	ErrInvalidEmployeeID: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromStatus keeps response bodies generic: clients learn the class
// of the failure, never storage details or which login step failed.
func messageFromStatus(status int, err error) string {
	switch status {
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusInternalServerError:
		return http.StatusText(http.StatusInternalServerError)
	default:
		return err.Error()
	}
}

// writeError maps err onto an HTTP status and writes the JSON error envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	response := models.APIResponse{
		Success: false,
		Message: messageFromStatus(status, err),
	}

	if _, writeErr := utils.WriteJSON(w, response, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
