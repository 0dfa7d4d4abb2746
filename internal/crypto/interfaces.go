package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordStore hashes passwords for storage and verifies login attempts
// against the stored record.
type PasswordStore interface {
	// HashPassword derives a one-way hash of plaintext with a fresh random
	// salt and returns the combined "hash.salt" record for persistence.
	HashPassword(plaintext string) (string, error)

	// VerifyPassword recomputes the hash of plaintext with the salt stored
	// in combined and reports whether it matches. A mismatch is (false, nil);
	// an error is returned only when the stored record itself is unusable.
	VerifyPassword(plaintext, combined string) (bool, error)
}
