package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/MKhiriev/go-library-api/internal/service"
	"github.com/MKhiriev/go-library-api/internal/utils"
	"github.com/MKhiriev/go-library-api/models"
)

// tokenQueryParam is the fallback location of the access token, used by the
// browser after the GitHub callback redirect.
const tokenQueryParam = "token"

// auth is the access guard. It verifies the bearer token, re-reads the
// identity it names and stores it in the request context. Any failure is
// reported as 401, except storage errors which are 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromRequest(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		userID, err := h.services.TokenService.Verify(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		user, err := h.services.AuthService.CurrentUser(ctx, userID)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				log.Info().Str("id", userID).Msg("token names an identity that no longer exists")
				writeError(w, r, service.ErrTokenIsInvalid)
				return
			}
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

// restrictTo only lets through users whose role is one of roles. It must
// be mounted behind auth.
func (h *Handler) restrictTo(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := utils.GetUserFromContext(r.Context())
			if !ok {
				writeError(w, r, ErrNoUserInContext)
				return
			}
			if !user.Role.In(roles...) {
				logger.FromRequest(r).Info().
					Str("id", user.ID).
					Str("role", string(user.Role)).
					Msg("access denied")
				writeError(w, r, ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getTokenFromRequest reads the token from the "Authorization" header or,
// when the header is absent, from the token query parameter. A header
// without a token is an error even if the query parameter is set.
func getTokenFromRequest(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		return utils.ParseBearerToken(header)
	}
	if token := r.URL.Query().Get(tokenQueryParam); token != "" {
		return token, nil
	}
	return "", ErrMissingToken
}
