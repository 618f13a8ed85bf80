package handler

import (
	"github.com/MKhiriev/go-library-api/internal/adapter"
	"github.com/MKhiriev/go-library-api/internal/config"
	"github.com/MKhiriev/go-library-api/internal/handler/http"
	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/MKhiriev/go-library-api/internal/service"
	"github.com/MKhiriev/go-library-api/internal/session"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers. GitHub login is only wired
// when its client id, secret and callback URL are all configured; the
// login sessions then live in sessions.
func NewHandlers(services *service.Services, sessions session.Store, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	opts := []http.Option{http.WithAllowedOrigins(cfg.Server.AllowedOrigins)}
	if cfg.OAuth.GitHub.Enabled() {
		if sessions == nil {
			return nil, errNoSessionStore
		}
		provider := adapter.NewGitHubProvider(cfg.OAuth.GitHub, cfg.Server.RequestTimeout, logger)
		cookies := session.NewCookies(cfg.App.TokenSignKey, cfg.OAuth.CookieSecure, cfg.OAuth.SessionTTL)
		opts = append(opts, http.WithGitHubLogin(provider, sessions, cookies, cfg.OAuth))
	} else {
		logger.Info().Msg("github login is not configured, /auth/github is disabled")
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger, opts...),
	}, nil
}
