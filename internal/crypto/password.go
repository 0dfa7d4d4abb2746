// SPDX-License-Identifier: Apache-2.0

// Package crypto implements the credential primitives of the service: the
// scrypt password store and the session token derivation.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// passwordStore is the private implementation of [PasswordStore].
type passwordStore struct {
	// scrypt tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	scryptN      int
	scryptR      int
	scryptP      int
	scryptKeyLen int
	saltLen      int
}

// NewPasswordStore constructs a [PasswordStore] with the scrypt parameters
// the user records were created with:
//   - CPU/memory cost: N=16384, r=8, p=1
//   - derived key length: 64 bytes, hex-encoded
//   - salt: 8 random bytes, hex-encoded (16 characters)
//
// The combined record format is "hash.salt" in one column.
func NewPasswordStore() PasswordStore {
	return &passwordStore{
		scryptN:      16384,
		scryptR:      8,
		scryptP:      1,
		scryptKeyLen: 64,
		saltLen:      8,
	}
}

// HashPassword implements [PasswordStore]. It reads the salt from the OS
// CSPRNG, derives the key with scrypt, and returns "hash.salt".
func (p *passwordStore) HashPassword(plaintext string) (string, error) {
	rawSalt := make([]byte, p.saltLen)
	if _, err := io.ReadFull(rand.Reader, rawSalt); err != nil {
		return "", fmt.Errorf("error generating password salt: %w", err)
	}
	salt := hex.EncodeToString(rawSalt)

	hash, err := p.derive(plaintext, salt)
	if err != nil {
		return "", err
	}

	return hash + "." + salt, nil
}

// VerifyPassword implements [PasswordStore]. The stored record must split
// on "." into exactly hash and salt; anything else is a data-corruption
// condition reported as [ErrMalformedPasswordRecord], never as a mismatch.
// Comparison is constant-time.
func (p *passwordStore) VerifyPassword(plaintext, combined string) (bool, error) {
	parts := strings.Split(combined, ".")
	if len(parts) != 2 {
		return false, ErrMalformedPasswordRecord
	}
	storedHash, salt := parts[0], parts[1]

	hash, err := p.derive(plaintext, salt)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare([]byte(hash), []byte(storedHash)) == 1, nil
}

// derive runs scrypt over plaintext with the hex-encoded salt string.
// The salt participates as its literal string bytes, matching how the
// records were originally produced.
func (p *passwordStore) derive(plaintext, salt string) (string, error) {
	key, err := scrypt.Key([]byte(plaintext), []byte(salt), p.scryptN, p.scryptR, p.scryptP, p.scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("error deriving password hash: %w", err)
	}

	return hex.EncodeToString(key), nil
}
