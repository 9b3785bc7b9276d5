package httpapi

import (
	"errors"
	"net/http"

	"github.com/avoronov/authgate/internal/shared"
)

// statusForError maps domain errors to HTTP status codes. Anything unmapped
// is an infrastructure fault and stays a generic 500.
//
// TODO: return 401 instead of 500 for a wrong password; kept at 500 for
// compatibility with existing clients.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, shared.ErrorNameRequired),
		errors.Is(err, shared.ErrorEmailRequired),
		errors.Is(err, shared.ErrorPasswordRequired),
		errors.Is(err, shared.ErrorPasswordMismatch),
		errors.Is(err, shared.ErrorEmailTaken):
		return http.StatusUnprocessableEntity, err.Error()

	case errors.Is(err, shared.ErrorNotFound):
		return http.StatusNotFound, shared.ErrorNotFound.Error()

	case errors.Is(err, shared.ErrorInvalidPassword):
		return http.StatusInternalServerError, shared.ErrorInvalidPassword.Error()

	default:
		return http.StatusInternalServerError, "there was a server error, try again later"
	}
}
