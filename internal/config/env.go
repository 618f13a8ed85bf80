// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// legacyEnv lists the variable names used by earlier deployments of the API.
// They are honoured only when the structured variable is unset.
type legacyEnv struct {
	JWTSecret          string        `env:"JWT_SECRET"`
	JWTExpiresIn       time.Duration `env:"JWT_EXPIRES_IN"`
	Port               string        `env:"PORT"`
	GitHubClientID     string        `env:"GITHUB_CLIENT_ID"`
	GitHubClientSecret string        `env:"GITHUB_CLIENT_SECRET"`
	GitHubCallbackURL  string        `env:"GITHUB_CALLBACK_URL"`
	DatabaseURL        string        `env:"DATABASE_URL"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types. Durations accept a
// day suffix in addition to the [time.ParseDuration] syntax.
func parseEnv(cfg *StructuredConfig) error {
	opts := env.Options{
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(time.Duration(0)): func(v string) (any, error) {
				return ParseDuration(v)
			},
		},
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	var legacy legacyEnv
	if err := env.ParseWithOptions(&legacy, opts); err != nil {
		return fmt.Errorf("error getting legacy env configs: %w", err)
	}
	legacy.applyTo(cfg)

	return nil
}

func (l legacyEnv) applyTo(cfg *StructuredConfig) {
	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = l.JWTSecret
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = l.JWTExpiresIn
	}
	if cfg.Server.HTTPAddress == "" && l.Port != "" {
		cfg.Server.HTTPAddress = ":" + l.Port
	}
	if cfg.OAuth.GitHub.ClientID == "" {
		cfg.OAuth.GitHub.ClientID = l.GitHubClientID
	}
	if cfg.OAuth.GitHub.ClientSecret == "" {
		cfg.OAuth.GitHub.ClientSecret = l.GitHubClientSecret
	}
	if cfg.OAuth.GitHub.CallbackURL == "" {
		cfg.OAuth.GitHub.CallbackURL = l.GitHubCallbackURL
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = l.DatabaseURL
	}
}

// ParseDuration extends [time.ParseDuration] with a "d" (day) unit, so that
// relative lifetimes such as "7d" or "1d12h" are accepted.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	idx := strings.Index(s, "d")
	if idx < 0 {
		return time.ParseDuration(s)
	}

	days, err := strconv.Atoi(s[:idx])
	if err != nil || days < 0 {
		return 0, fmt.Errorf("invalid duration %q", s)
	}

	total := time.Duration(days) * 24 * time.Hour
	if rest := s[idx+1:]; rest != "" {
		extra, err := time.ParseDuration(rest)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		total += extra
	}

	return total, nil
}
