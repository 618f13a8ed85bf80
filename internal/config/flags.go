package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// durationFlag is a flag.Value accepting [ParseDuration] syntax.
type durationFlag time.Duration

func (d *durationFlag) String() string {
	return time.Duration(*d).String()
}

func (d *durationFlag) Set(s string) error {
	parsed, err := ParseDuration(s)
	if err != nil {
		return err
	}
	*d = durationFlag(parsed)
	return nil
}

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "7d")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level log level
//	-github-client-id, -github-client-secret, -github-callback-url GitHub OAuth app
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("library-server", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, jsonConfigPath, tokenSignKey, tokenIssuer, logLevel string
	var githubClientID, githubClientSecret, githubCallbackURL string
	var tokenDuration, requestTimeout durationFlag

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.Var(&tokenDuration, "token-duration", "Token duration (e.g., 15m, 7d)")
	fs.Var(&requestTimeout, "request-timeout", "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&githubClientID, "github-client-id", "", "GitHub OAuth client id")
	fs.StringVar(&githubClientSecret, "github-client-secret", "", "GitHub OAuth client secret")
	fs.StringVar(&githubCallbackURL, "github-callback-url", "", "GitHub OAuth callback URL")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: time.Duration(tokenDuration),
			LogLevel:      logLevel,
		},
		OAuth: OAuth{
			GitHub: GitHub{
				ClientID:     githubClientID,
				ClientSecret: githubClientSecret,
				CallbackURL:  githubCallbackURL,
			},
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: time.Duration(requestTimeout),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host binds all interfaces; otherwise the host must
// be "localhost" or a valid IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
