package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/MKhiriev/go-library-api/internal/mock"
	"github.com/MKhiriev/go-library-api/internal/store"
	"github.com/MKhiriev/go-library-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func githubProfile(emails ...string) models.ExternalProfile {
	return models.ExternalProfile{
		Provider: models.ProviderGitHub,
		ID:       "583231",
		Username: "octocat",
		Emails:   emails,
	}
}

func TestIdentityResolver_AlreadyLinked(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	resolver := NewIdentityResolver(repo, logger.Nop())
	ctx := context.Background()

	linked := models.User{ID: "user-1", ExternalID: "583231"}
	repo.EXPECT().FindUserByExternalID(ctx, "583231").Return(linked, nil)

	user, err := resolver.Resolve(ctx, githubProfile("octo@github.com"))

	require.NoError(t, err)
	assert.Equal(t, linked, user)
}

func TestIdentityResolver_LinksExistingAccountByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	resolver := NewIdentityResolver(repo, logger.Nop())
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().FindUserByExternalID(ctx, "583231").Return(models.User{}, store.ErrUserNotFound),
		repo.EXPECT().FindUserByEmailOrUsername(ctx, "ana@x.com", "").
			Return(models.User{ID: "user-1", Email: "ana@x.com", Role: models.RoleAdmin}, nil),
		repo.EXPECT().LinkExternalID(ctx, "user-1", "583231").
			Return(models.User{ID: "user-1", Email: "ana@x.com", ExternalID: "583231", Role: models.RoleAdmin}, nil),
	)
	// CreateUser must not be called: no duplicate identity
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)

	user, err := resolver.Resolve(ctx, githubProfile("Ana@X.com"))

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "583231", user.ExternalID)
	assert.Equal(t, models.RoleAdmin, user.Role, "linking keeps the existing role")
}

func TestIdentityResolver_CreatesNewAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	resolver := NewIdentityResolver(repo, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().FindUserByExternalID(ctx, "583231").Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().FindUserByEmailOrUsername(ctx, "octocat@github.com", "").Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "octocat", u.Username)
			assert.Equal(t, "octocat@github.com", u.Email)
			assert.Equal(t, "583231", u.ExternalID)
			assert.Equal(t, models.RoleUser, u.Role)
			assert.Empty(t, u.Password)
			u.ID = "user-9"
			return u, nil
		},
	)

	user, err := resolver.Resolve(ctx, githubProfile())

	require.NoError(t, err)
	assert.Equal(t, "user-9", user.ID)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestIdentityResolver_StorageFailuresBecomeResolutionFailed(t *testing.T) {
	tests := []struct {
		name  string
		setup func(repo *mock.MockUserRepository)
	}{
		{
			name: "external id lookup",
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByExternalID(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUnexpectedDB)
			},
		},
		{
			name: "email lookup",
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByExternalID(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
				repo.EXPECT().FindUserByEmailOrUsername(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUnexpectedDB)
			},
		},
		{
			name: "link loses a race",
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByExternalID(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
				repo.EXPECT().FindUserByEmailOrUsername(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.User{ID: "user-1"}, nil)
				repo.EXPECT().LinkExternalID(gomock.Any(), "user-1", gomock.Any()).Return(models.User{}, store.ErrUserAlreadyExists)
			},
		},
		{
			name: "create loses a race",
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByExternalID(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
				repo.EXPECT().FindUserByEmailOrUsername(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
				repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserAlreadyExists)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockUserRepository(ctrl)
			tt.setup(repo)

			_, err := NewIdentityResolver(repo, logger.Nop()).Resolve(context.Background(), githubProfile())

			require.ErrorIs(t, err, ErrIdentityResolutionFailed)
		})
	}
}

func TestIdentityResolver_IncompleteProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	resolver := NewIdentityResolver(repo, logger.Nop())

	_, err := resolver.Resolve(context.Background(), models.ExternalProfile{Provider: models.ProviderGitHub, Username: "octocat"})
	require.ErrorIs(t, err, ErrIdentityResolutionFailed)
	assert.ErrorIs(t, err, ErrInvalidExternalProfile)

	_, err = resolver.Resolve(context.Background(), models.ExternalProfile{Provider: models.ProviderGitHub, ID: "1"})
	require.ErrorIs(t, err, ErrInvalidExternalProfile)
}

func TestDeriveEmail(t *testing.T) {
	tests := []struct {
		name    string
		profile models.ExternalProfile
		want    string
	}{
		{"first email wins", githubProfile("first@x.com", "second@x.com"), "first@x.com"},
		{"email is normalised", githubProfile("  First@X.com "), "first@x.com"},
		{"blank entries are skipped", githubProfile("", " ", "real@x.com"), "real@x.com"},
		{"no email synthesizes placeholder", githubProfile(), "octocat@github.com"},
		{"only blank emails", githubProfile(""), "octocat@github.com"},
		{
			"unknown provider uses provider key",
			models.ExternalProfile{Provider: "gitlab", ID: "1", Username: "Tanuki"},
			"tanuki@gitlab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveEmail(tt.profile))
		})
	}
}
