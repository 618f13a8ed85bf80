package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-library-api/internal/config"
	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/MKhiriev/go-library-api/internal/utils"
	"github.com/MKhiriev/go-library-api/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

const (
	defaultGitHubAPIBaseURL = "https://api.github.com"
	defaultGitHubTimeout    = 10 * time.Second

	githubEmailScope = "user:email"
)

type githubUser struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Email string `json:"email"`
}

type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

type githubProvider struct {
	oauth  *oauth2.Config
	client *utils.HTTPClient

	logger *logger.Logger
}

// GitHubOption customises a provider built by [NewGitHubProvider].
type GitHubOption func(*githubProvider)

// WithEndpoint replaces the GitHub OAuth endpoint, e.g. for GitHub
// Enterprise or tests.
func WithEndpoint(endpoint oauth2.Endpoint) GitHubOption {
	return func(p *githubProvider) {
		p.oauth.Endpoint = endpoint
	}
}

// NewGitHubProvider constructs the GitHub implementation of [OAuthProvider].
// It requests the user:email scope so that private addresses can be read
// from /user/emails. cfg.APIBaseURL overrides the REST API location.
func NewGitHubProvider(cfg config.GitHub, timeout time.Duration, logger *logger.Logger, opts ...GitHubOption) OAuthProvider {
	baseURL := strings.TrimRight(cfg.APIBaseURL, "/")
	if baseURL == "" {
		baseURL = defaultGitHubAPIBaseURL
	}
	if timeout <= 0 {
		timeout = defaultGitHubTimeout
	}

	p := &githubProvider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Endpoint:     github.Endpoint,
			Scopes:       []string{githubEmailScope},
		},
		client: utils.NewHTTPClient(
			utils.WithBaseURL(baseURL),
			utils.WithTimeout(timeout),
			utils.WithHeader("Accept", "application/vnd.github+json"),
		),
		logger: logger,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// AuthCodeURL implements [OAuthProvider].
func (p *githubProvider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

// FetchProfile implements [OAuthProvider]. Emails come from /user/emails,
// primary verified address first, then the other verified ones. When that
// endpoint is not accessible the public profile email is used, if any.
func (p *githubProvider) FetchProfile(ctx context.Context, code string) (models.ExternalProfile, error) {
	log := logger.FromContext(ctx)

	// the token exchange goes through the same pooled client and timeout
	exchangeCtx := context.WithValue(ctx, oauth2.HTTPClient, p.client.GetClient())
	token, err := p.oauth.Exchange(exchangeCtx, code)
	if err != nil {
		log.Err(err).Str("func", "*githubProvider.FetchProfile").Msg("code exchange failed")
		return models.ExternalProfile{}, fmt.Errorf("%w: %w", ErrCodeExchangeFailed, err)
	}

	var user githubUser
	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		SetResult(&user).
		Get("/user")
	if err != nil {
		return models.ExternalProfile{}, fmt.Errorf("%w: get user: %w", ErrProviderUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ExternalProfile{}, err
	}
	if user.ID == 0 || user.Login == "" {
		return models.ExternalProfile{}, ErrInvalidProfile
	}

	profile := models.ExternalProfile{
		Provider: models.ProviderGitHub,
		ID:       strconv.FormatInt(user.ID, 10),
		Username: user.Login,
	}

	emails, err := p.fetchEmails(ctx, token.AccessToken)
	if err != nil {
		log.Warn().Err(err).Str("login", user.Login).Msg("could not read github emails, using public email")
	}
	if len(emails) == 0 && user.Email != "" {
		emails = []string{user.Email}
	}
	profile.Emails = emails

	return profile, nil
}

func (p *githubProvider) fetchEmails(ctx context.Context, accessToken string) ([]string, error) {
	var list []githubEmail
	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&list).
		Get("/user/emails")
	if err != nil {
		return nil, fmt.Errorf("get user emails: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound || resp.StatusCode() == http.StatusForbidden {
		return nil, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(list))
	for _, e := range list {
		if e.Verified && e.Primary {
			emails = append(emails, e.Email)
		}
	}
	for _, e := range list {
		if e.Verified && !e.Primary {
			emails = append(emails, e.Email)
		}
	}

	return emails, nil
}
