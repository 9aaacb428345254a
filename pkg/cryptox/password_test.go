package cryptox_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veerabala/linkbio/pkg/cryptox"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := cryptox.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$2"))

	require.NoError(t, cryptox.VerifyPassword("correct horse battery staple", hash))
	require.ErrorIs(t, cryptox.VerifyPassword("wrong password", hash), cryptox.ErrMismatch)
}

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := cryptox.HashPassword("same input")
	require.NoError(t, err)
	second, err := cryptox.HashPassword("same input")
	require.NoError(t, err)

	// Different salt, different encoded value, yet both verify.
	require.NotEqual(t, first, second)
	require.NoError(t, cryptox.VerifyPassword("same input", first))
	require.NoError(t, cryptox.VerifyPassword("same input", second))
}

func TestPasswordTruncatedAt72Bytes(t *testing.T) {
	long := strings.Repeat("a", 100)
	hash, err := cryptox.HashPassword(long)
	require.NoError(t, err)

	// Inputs identical in the first 72 bytes are indistinguishable.
	require.NoError(t, cryptox.VerifyPassword(strings.Repeat("a", 72), hash))
	require.NoError(t, cryptox.VerifyPassword(strings.Repeat("a", 80), hash))

	// A difference inside the first 72 bytes still fails.
	require.ErrorIs(t,
		cryptox.VerifyPassword(strings.Repeat("a", 71)+"b", hash),
		cryptox.ErrMismatch,
	)
	require.ErrorIs(t,
		cryptox.VerifyPassword(strings.Repeat("a", 71), hash),
		cryptox.ErrMismatch,
	)
}

func TestVerifyPasswordRejectsCorruptedHash(t *testing.T) {
	err := cryptox.VerifyPassword("whatever", "not-a-bcrypt-hash")
	require.Error(t, err)
	require.ErrorIs(t, err, cryptox.ErrInvalidHash)
	require.NotErrorIs(t, err, cryptox.ErrMismatch)
}
