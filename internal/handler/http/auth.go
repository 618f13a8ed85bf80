package http

import (
	"net/http"

	"github.com/MKhiriev/go-library-api/internal/app"
	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/MKhiriev/go-library-api/internal/utils"
	"github.com/MKhiriev/go-library-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.TokenService.Issue(ctx, registeredUser.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("id", registeredUser.ID).Msg("user registered")
	utils.WriteJSON(w, models.AuthResponse{
		Message: app.MsgUserRegistered,
		Token:   token.SignedString,
		User:    registeredUser.View(),
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.TokenService.Issue(ctx, foundUser.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("id", foundUser.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.AuthResponse{
		Message: app.MsgLoginSuccessful,
		Token:   token.SignedString,
		User:    foundUser.View(),
	}, http.StatusOK)
}

// me returns the identity resolved by the access guard.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	utils.WriteJSON(w, models.CurrentUserResponse{User: user.View()}, http.StatusOK)
}

// logout only acknowledges the request. Tokens are stateless and stay
// valid until they expire; clients discard them.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if user, ok := utils.GetUserFromContext(r.Context()); ok {
		logger.FromRequest(r).Debug().Str("id", user.ID).Msg("user logged out")
	}

	utils.WriteMessage(w, app.MsgSessionClosed, http.StatusOK)
}
