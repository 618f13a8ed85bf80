package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext credentials into one-way salted digests
// and checks candidates against them. Implementations are stateless and
// safe for concurrent use.
type PasswordHasher interface {
	// Hash returns a salted digest of plain. Every call produces a
	// different digest for the same input.
	Hash(plain string) (string, error)

	// Verify reports whether plain matches hashed. A malformed or empty
	// digest never matches.
	Verify(plain, hashed string) bool
}
