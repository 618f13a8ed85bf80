package handler

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-library-api/internal/config"
	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/MKhiriev/go-library-api/internal/service"
	"github.com/MKhiriev/go-library-api/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App:    config.App{TokenSignKey: "secret"},
		Server: config.Server{HTTPAddress: ":8080"},
		OAuth:  config.OAuth{SessionTTL: time.Minute},
	}
}

func withGitHub(cfg *config.StructuredConfig) *config.StructuredConfig {
	cfg.OAuth.GitHub = config.GitHub{
		ClientID:     "id",
		ClientSecret: "secret",
		CallbackURL:  "http://localhost:8080/auth/github/callback",
	}
	return cfg
}

func TestNewHandlers_HTTPOnly(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, nil, newTestConfig(), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_WithGitHub(t *testing.T) {
	sessions := session.NewMemoryStore(time.Minute, logger.Nop())

	h, err := NewHandlers(&service.Services{}, sessions, withGitHub(newTestConfig()), logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_GitHubWithoutSessionStore(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, nil, withGitHub(newTestConfig()), logger.Nop())

	require.ErrorIs(t, err, errNoSessionStore)
	assert.Nil(t, h)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	cfg := newTestConfig()
	cfg.Server.HTTPAddress = ""

	h, err := NewHandlers(&service.Services{}, nil, cfg, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
