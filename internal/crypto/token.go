package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// DeriveToken computes the session token for an owner identifier: the
// SHA-256 digest of the id's decimal string form, hex-encoded.
//
// The derivation is deterministic and unkeyed. Two tokens are equal iff they
// were derived from the same identifier; nothing beyond the hash primitive
// protects the token from being recomputed by anyone who knows the id.
func DeriveToken(ownerID int64) string {
	sum := sha256.Sum256([]byte(strconv.FormatInt(ownerID, 10)))
	return hex.EncodeToString(sum[:])
}
