package config

import "time"

const (
	defaultTokenIssuer          = "go-library-api"
	defaultTokenDuration        = 7 * 24 * time.Hour
	defaultLogLevel             = "debug"
	defaultVersion              = "1.0.0"
	defaultHTTPAddress          = ":8080"
	defaultRequestTimeout       = 30 * time.Second
	defaultMaxOpenConns         = 10
	defaultSessionTTL           = 10 * time.Minute
	defaultSuccessRedirect      = "/"
	defaultFailureRedirect      = "/login"
	defaultSessionSweepInterval = time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			LogLevel:      defaultLogLevel,
			Version:       defaultVersion,
		},
		OAuth: OAuth{
			SuccessRedirect: defaultSuccessRedirect,
			FailureRedirect: defaultFailureRedirect,
			SessionTTL:      defaultSessionTTL,
		},
		Storage: Storage{
			DB: DB{MaxOpenConns: defaultMaxOpenConns},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{
			SessionSweepInterval: defaultSessionSweepInterval,
		},
	}
}
