package crypto

import "errors"

// ErrMalformedPasswordRecord is returned by VerifyPassword when the stored
// combined field cannot be split into exactly a hash and a salt. This is a
// data-corruption condition, not a credential mismatch.
var ErrMalformedPasswordRecord = errors.New("malformed stored password record")
