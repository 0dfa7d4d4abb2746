package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveToken_Deterministic(t *testing.T) {
	assert.Equal(t, DeriveToken(42), DeriveToken(42))
}

func TestDeriveToken_DistinctIDs(t *testing.T) {
	assert.NotEqual(t, DeriveToken(1), DeriveToken(2))
}

func TestDeriveToken_KnownVector(t *testing.T) {
	// sha256("1") hex-encoded
	assert.Equal(t,
		"6b86b273ff34fce19d6b804eff5a3f5747ada4eaa22f1d49c01e52ddb7875b4b",
		DeriveToken(1),
	)
}

func TestDeriveToken_UsesDecimalForm(t *testing.T) {
	// 10 must hash the string "10", not the byte 0x0a
	assert.Equal(t,
		"4a44dc15364204a80fe80e9039455cc1608281820fe2b24f1e5233ade6af1dd5",
		DeriveToken(10),
	)
}
