package models

// ProviderGitHub is the provider key of GitHub profiles.
const ProviderGitHub = "github"

// ExternalProfile is the subset of an OAuth provider's user profile needed to
// resolve a local [User].
type ExternalProfile struct {
	// Provider is the provider key, e.g. "github".
	Provider string

	// ID is the stable account id assigned by the provider.
	ID string

	// Username is the provider login.
	Username string

	// Emails lists the addresses reported by the provider, preferred first.
	Emails []string
}
