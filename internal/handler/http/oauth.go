package http

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-library-api/internal/app"
	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/MKhiriev/go-library-api/internal/utils"
)

// githubLogin starts the federated login: it opens a login session, binds
// it to the browser with a signed cookie and redirects to GitHub with the
// session's state.
func (h *Handler) githubLogin(w http.ResponseWriter, r *http.Request) {
	if h.github == nil {
		utils.WriteMessage(w, app.MsgGitHubLoginDisabled, http.StatusNotFound)
		return
	}

	s, err := h.sessions.Create(r.Context())
	if err != nil {
		writeError(w, r, fmt.Errorf("login session creation failed: %w", err))
		return
	}

	h.cookies.Set(w, s.ID)
	http.Redirect(w, r, h.github.AuthCodeURL(s.State), http.StatusFound)
}

// githubCallback finishes the federated login. Every failure ends in a
// redirect to the failure page; success redirects to the success page with
// a freshly issued token in the query string.
func (h *Handler) githubCallback(w http.ResponseWriter, r *http.Request) {
	if h.github == nil {
		utils.WriteMessage(w, app.MsgGitHubLoginDisabled, http.StatusNotFound)
		return
	}

	ctx := r.Context()
	log := logger.FromRequest(r)

	sessionID, err := h.cookies.Read(r)
	if err != nil {
		h.failLogin(w, r, "", err)
		return
	}

	token, err := h.completeGitHubLogin(r, sessionID)
	if err != nil {
		h.failLogin(w, r, sessionID, err)
		return
	}

	// the login session is single-use
	if err = h.sessions.Delete(ctx, sessionID); err != nil {
		log.Warn().Err(err).Msg("login session was not deleted")
	}
	h.cookies.Clear(w)

	http.Redirect(w, r, withToken(h.successRedirect, token), http.StatusFound)
}

// completeGitHubLogin runs the callback steps for the given login session
// and returns the signed access token.
func (h *Handler) completeGitHubLogin(r *http.Request, sessionID string) (string, error) {
	ctx := r.Context()
	query := r.URL.Query()

	if providerErr := query.Get("error"); providerErr != "" {
		return "", fmt.Errorf("%w: %s", ErrOAuthDenied, providerErr)
	}

	s, err := h.sessions.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if subtle.ConstantTimeCompare([]byte(query.Get("state")), []byte(s.State)) != 1 {
		return "", ErrOAuthStateMismatch
	}

	profile, err := h.github.FetchProfile(ctx, query.Get("code"))
	if err != nil {
		return "", err
	}

	user, err := h.services.IdentityResolver.Resolve(ctx, profile)
	if err != nil {
		return "", err
	}

	s.UserRef = h.services.SessionBridge.ToSessionRef(user)
	if err = h.sessions.Save(ctx, s); err != nil {
		return "", err
	}

	// the token is issued for the identity the session points to, as any
	// later request on this session would see it
	stored, err := h.sessions.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	sessionUser, err := h.services.SessionBridge.FromSessionRef(ctx, stored.UserRef)
	if err != nil {
		return "", err
	}

	token, err := h.services.TokenService.Issue(ctx, sessionUser.ID)
	if err != nil {
		return "", err
	}

	logger.FromRequest(r).Info().
		Str("id", sessionUser.ID).
		Str("provider", profile.Provider).
		Msg("federated login completed")

	return token.SignedString, nil
}

func (h *Handler) failLogin(w http.ResponseWriter, r *http.Request, sessionID string, err error) {
	logger.FromRequest(r).Warn().Err(err).Msg("github login failed")

	if sessionID != "" {
		_ = h.sessions.Delete(r.Context(), sessionID)
	}
	h.cookies.Clear(w)

	http.Redirect(w, r, h.failureRedirect, http.StatusFound)
}

// withToken appends the token query parameter to target, keeping any query
// it already has.
func withToken(target, token string) string {
	u, err := url.Parse(target)
	if err != nil {
		u = &url.URL{Path: "/"}
	}

	q := u.Query()
	q.Set(tokenQueryParam, token)
	u.RawQuery = q.Encode()

	return u.String()
}
