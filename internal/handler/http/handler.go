package http

import (
	"github.com/MKhiriev/go-library-api/internal/adapter"
	"github.com/MKhiriev/go-library-api/internal/config"
	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/MKhiriev/go-library-api/internal/service"
	"github.com/MKhiriev/go-library-api/internal/session"
)

type Handler struct {
	services *service.Services

	// github is nil when federated login is not configured.
	github          adapter.OAuthProvider
	sessions        session.Store
	cookies         *session.Cookies
	successRedirect string
	failureRedirect string

	allowedOrigins []string

	logger *logger.Logger
}

// Option customises a Handler built by [NewHandler].
type Option func(*Handler)

// WithGitHubLogin enables the /auth/github routes. The session store holds
// the short-lived login sessions, referenced from the browser by a signed
// cookie.
func WithGitHubLogin(provider adapter.OAuthProvider, sessions session.Store, cookies *session.Cookies, cfg config.OAuth) Option {
	return func(h *Handler) {
		h.github = provider
		h.sessions = sessions
		h.cookies = cookies
		if cfg.SuccessRedirect != "" {
			h.successRedirect = cfg.SuccessRedirect
		}
		if cfg.FailureRedirect != "" {
			h.failureRedirect = cfg.FailureRedirect
		}
	}
}

// WithAllowedOrigins restricts CORS to the given origins. Without it every
// origin is allowed.
func WithAllowedOrigins(origins []string) Option {
	return func(h *Handler) {
		h.allowedOrigins = origins
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services:        services,
		successRedirect: "/",
		failureRedirect: "/login",
		logger:          logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Bool("github_login", h.github != nil).Msg("http handler created")
	return h
}
