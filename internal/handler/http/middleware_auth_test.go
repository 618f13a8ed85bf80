package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/MKhiriev/go-library-api/internal/service"
	"github.com/MKhiriev/go-library-api/internal/utils"
	"github.com/MKhiriev/go-library-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newGuardedHandler(t *testing.T) (*Handler, *testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svcs, m := newTestServices(ctrl)
	return NewHandler(svcs, logger.Nop()), m
}

// ─────────────────────────────────────────────
// getTokenFromRequest
// ─────────────────────────────────────────────

func TestGetTokenFromRequest_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		target    string
		wantToken string
		wantErr   error
	}{
		{name: "bearer header", header: "Bearer abc", target: "/", wantToken: "abc"},
		{name: "scheme is case-insensitive", header: "bearer abc", target: "/", wantToken: "abc"},
		{name: "query fallback", target: "/?token=from-query", wantToken: "from-query"},
		{name: "header wins over query", header: "Bearer abc", target: "/?token=from-query", wantToken: "abc"},
		{name: "nothing", target: "/", wantErr: ErrMissingToken},
		{name: "empty query value", target: "/?token=", wantErr: ErrMissingToken},
		{name: "scheme only", header: "Bearer", target: "/?token=x", wantErr: utils.ErrInvalidAuthorizationHeader},
		{name: "wrong scheme", header: "Basic abc", target: "/", wantErr: utils.ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := getTokenFromRequest(req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ─────────────────────────────────────────────
// auth
// ─────────────────────────────────────────────

func TestAuth_PutsUserInContext(t *testing.T) {
	h, m := newGuardedHandler(t)
	expectAuthenticated(m, adminUser)

	var got models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		got, ok = utils.GetUserFromContext(r.Context())
		assert.True(t, ok)
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", bearer)
	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, adminUser, got)
}

func TestAuth_QueryTokenFallback(t *testing.T) {
	h, m := newGuardedHandler(t)
	expectAuthenticated(m, regularUser)

	req := httptest.NewRequest(http.MethodGet, "/?token=good-token", nil)
	rec := httptest.NewRecorder()
	h.auth(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(m *testMocks)
		wantStatus int
	}{
		{
			name:       "no token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			header:     "Token good-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "expired token",
			header: bearer,
			setup: func(m *testMocks) {
				m.token.EXPECT().Verify(gomock.Any(), "good-token").Return("", service.ErrTokenIsExpired)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "bad signature",
			header: bearer,
			setup: func(m *testMocks) {
				m.token.EXPECT().Verify(gomock.Any(), "good-token").Return("", service.ErrTokenIsInvalid)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "identity deleted",
			header: bearer,
			setup: func(m *testMocks) {
				m.token.EXPECT().Verify(gomock.Any(), "good-token").Return("u-9", nil)
				m.auth.EXPECT().CurrentUser(gomock.Any(), "u-9").Return(models.User{}, service.ErrUserNotFound)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "storage failure",
			header: bearer,
			setup: func(m *testMocks) {
				m.token.EXPECT().Verify(gomock.Any(), "good-token").Return("u-9", nil)
				m.auth.EXPECT().CurrentUser(gomock.Any(), "u-9").Return(models.User{}, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newGuardedHandler(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.auth(failHandler(t)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Not authorized to access this route", decodeMessage(t, rec))
			}
		})
	}
}

// ─────────────────────────────────────────────
// restrictTo
// ─────────────────────────────────────────────

func TestRestrictTo(t *testing.T) {
	tests := []struct {
		name       string
		user       *models.User
		wantStatus int
	}{
		{name: "admin allowed", user: &adminUser, wantStatus: http.StatusOK},
		{name: "user forbidden", user: &regularUser, wantStatus: http.StatusForbidden},
		{name: "no user", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&service.Services{}, logger.Nop())

			req := httptest.NewRequest(http.MethodDelete, "/", nil)
			if tt.user != nil {
				req = req.WithContext(utils.WithUser(req.Context(), *tt.user))
			}
			rec := httptest.NewRecorder()
			h.restrictTo(models.RoleAdmin)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusForbidden {
				assert.Equal(t, "You do not have permission to perform this action", decodeMessage(t, rec))
			}
		})
	}
}

func TestRestrictTo_SeveralRoles(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(utils.WithUser(req.Context(), regularUser))
	rec := httptest.NewRecorder()
	h.restrictTo(models.RoleAdmin, models.RoleUser)(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func failHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler must not be called")
	})
}
