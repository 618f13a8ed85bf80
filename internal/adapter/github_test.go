// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/MKhiriev/go-library-api/internal/config"
	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/MKhiriev/go-library-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type fakeGitHub struct {
	userStatus   int
	user         githubUser
	emailsStatus int
	emails       []githubEmail
	tokenStatus  int
}

func (f *fakeGitHub) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "good-code", r.PostForm.Get("code"))

		if f.tokenStatus != 0 {
			w.WriteHeader(f.tokenStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "gho_test", "token_type": "bearer"})
	})
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer gho_test", r.Header.Get("Authorization"))
		if f.userStatus != 0 {
			w.WriteHeader(f.userStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(f.user)
	})
	mux.HandleFunc("/user/emails", func(w http.ResponseWriter, r *http.Request) {
		if f.emailsStatus != 0 {
			w.WriteHeader(f.emailsStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(f.emails)
	})
	return mux
}

// newTestProvider points a GitHub provider at a fake server.
func newTestProvider(t *testing.T, fake *fakeGitHub) OAuthProvider {
	t.Helper()
	srv := httptest.NewServer(fake.handler(t))
	t.Cleanup(srv.Close)

	cfg := config.GitHub{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		CallbackURL:  "http://localhost:8080/auth/github/callback",
		APIBaseURL:   srv.URL,
	}
	return NewGitHubProvider(cfg, 5*time.Second, logger.Nop(), WithEndpoint(oauth2.Endpoint{
		AuthURL:   srv.URL + "/login/oauth/authorize",
		TokenURL:  srv.URL + "/login/oauth/access_token",
		AuthStyle: oauth2.AuthStyleInParams,
	}))
}

func TestAuthCodeURL(t *testing.T) {
	p := NewGitHubProvider(config.GitHub{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		CallbackURL:  "http://localhost:8080/auth/github/callback",
	}, 0, logger.Nop())

	raw := p.AuthCodeURL("state-123")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "github.com", u.Host)
	assert.Equal(t, "/login/oauth/authorize", u.Path)
	q := u.Query()
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "state-123", q.Get("state"))
	assert.Equal(t, "user:email", q.Get("scope"))
	assert.Equal(t, "http://localhost:8080/auth/github/callback", q.Get("redirect_uri"))
	assert.Empty(t, q.Get("client_secret"))
}

func TestFetchProfile_PrimaryVerifiedEmailFirst(t *testing.T) {
	p := newTestProvider(t, &fakeGitHub{
		user: githubUser{ID: 583231, Login: "octocat", Email: "public@x.com"},
		emails: []githubEmail{
			{Email: "other@x.com", Verified: true},
			{Email: "unverified@x.com", Primary: false, Verified: false},
			{Email: "primary@x.com", Primary: true, Verified: true},
		},
	})

	profile, err := p.FetchProfile(context.Background(), "good-code")

	require.NoError(t, err)
	assert.Equal(t, models.ExternalProfile{
		Provider: models.ProviderGitHub,
		ID:       "583231",
		Username: "octocat",
		Emails:   []string{"primary@x.com", "other@x.com"},
	}, profile)
}

func TestFetchProfile_EmailsForbiddenFallsBackToPublicEmail(t *testing.T) {
	p := newTestProvider(t, &fakeGitHub{
		user:         githubUser{ID: 1, Login: "octocat", Email: "public@x.com"},
		emailsStatus: http.StatusForbidden,
	})

	profile, err := p.FetchProfile(context.Background(), "good-code")

	require.NoError(t, err)
	assert.Equal(t, []string{"public@x.com"}, profile.Emails)
}

func TestFetchProfile_NoEmailsAtAll(t *testing.T) {
	p := newTestProvider(t, &fakeGitHub{
		user:   githubUser{ID: 1, Login: "octocat"},
		emails: []githubEmail{},
	})

	profile, err := p.FetchProfile(context.Background(), "good-code")

	require.NoError(t, err)
	assert.Empty(t, profile.Emails)
}

func TestFetchProfile_ExchangeFails(t *testing.T) {
	p := newTestProvider(t, &fakeGitHub{tokenStatus: http.StatusBadRequest})

	_, err := p.FetchProfile(context.Background(), "good-code")

	require.ErrorIs(t, err, ErrCodeExchangeFailed)
}

func TestFetchProfile_UserEndpointErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"server error", http.StatusInternalServerError, ErrProviderUnavailable},
		{"bad gateway", http.StatusBadGateway, ErrProviderUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProvider(t, &fakeGitHub{userStatus: tt.status})

			_, err := p.FetchProfile(context.Background(), "good-code")

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFetchProfile_IncompleteUser(t *testing.T) {
	p := newTestProvider(t, &fakeGitHub{user: githubUser{Login: "octocat"}})

	_, err := p.FetchProfile(context.Background(), "good-code")

	require.ErrorIs(t, err, ErrInvalidProfile)
}
