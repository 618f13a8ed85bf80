package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-library-api/internal/app"
	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/MKhiriev/go-library-api/internal/service"
	"github.com/MKhiriev/go-library-api/internal/store"
	"github.com/MKhiriev/go-library-api/internal/utils"
	"github.com/MKhiriev/go-library-api/internal/validators"
	"github.com/MKhiriev/go-library-api/models"
)

// errorResponse binds a sentinel error to the status and message it is
// reported with.
type errorResponse struct {
	err     error
	status  int
	message string
}

// errorResponses is matched top to bottom with errors.Is, so more specific
// errors must come before the ones they wrap.
var errorResponses = []errorResponse{
	// a book referencing a missing author is a bad request, not a 404
	{service.ErrBookAuthorNotFound, http.StatusBadRequest, app.MsgAuthorNotFound},

	{validators.ErrMissingRequiredFields, http.StatusBadRequest, app.MsgAllFieldsRequired},
	{validators.ErrInvalidEmail, http.StatusBadRequest, app.MsgInvalidEmail},
	{validators.ErrPasswordTooShort, http.StatusBadRequest, app.MsgPasswordTooShort},
	{validators.ErrInvalidAuthorID, http.StatusBadRequest, app.MsgInvalidAuthorID},
	{validators.ErrInvalidBookID, http.StatusBadRequest, app.MsgInvalidBookID},
	{validators.ErrInvalidBirthDate, http.StatusBadRequest, app.MsgInvalidBirthDate},
	{models.ErrInvalidDate, http.StatusBadRequest, app.MsgInvalidBirthDate},
	{validators.ErrInvalidFieldValue, http.StatusBadRequest, app.MsgInvalidInputData},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidInputData},
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{store.ErrInvalidUserData, http.StatusBadRequest, app.MsgInvalidInputData},
	{store.ErrUserHasNoCredential, http.StatusBadRequest, app.MsgInvalidInputData},

	{service.ErrUserAlreadyExists, http.StatusBadRequest, app.MsgUserAlreadyExists},
	{store.ErrUserAlreadyExists, http.StatusBadRequest, app.MsgUserAlreadyExists},
	{store.ErrISBNAlreadyExists, http.StatusBadRequest, app.MsgISBNAlreadyExists},
	{store.ErrAuthorHasBooks, http.StatusBadRequest, app.MsgAuthorHasBooks},
	{store.ErrNothingToUpdate, http.StatusBadRequest, app.MsgNothingToUpdate},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{ErrMissingToken, http.StatusUnauthorized, app.MsgNotAuthorized},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgNotAuthorized},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgNotAuthorized},
	{service.ErrTokenIsInvalid, http.StatusUnauthorized, app.MsgNotAuthorized},

	{ErrForbidden, http.StatusForbidden, app.MsgForbidden},

	{store.ErrBookNotFound, http.StatusNotFound, app.MsgBookNotFound},
	{store.ErrAuthorNotFound, http.StatusNotFound, app.MsgAuthorNotFound},
	{service.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
}

// statusFromError returns the HTTP status and client message for err.
// Unknown errors are reported as 500 without leaking their text.
func statusFromError(err error) (int, string) {
	for _, e := range errorResponses {
		if errors.Is(err, e.err) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and writes the matching `{"message": ...}` response.
// Client errors are logged at debug level, server errors at error level.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg(message)
	}

	utils.WriteMessage(w, message, status)
}
