package jwtx_test

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/veerabala/linkbio/pkg/jwtx"
)

func newHS256(t *testing.T) *jwtx.HS256 {
	t.Helper()
	h, err := jwtx.NewHS256([]byte("test-signing-secret"))
	require.NoError(t, err)
	return h
}

func TestNewHS256RejectsEmptySecret(t *testing.T) {
	_, err := jwtx.NewHS256(nil)
	require.Error(t, err)
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	h := newHS256(t)

	token, err := h.Sign(jwtx.NewAccessClaims("alice", jwtx.DefaultAccessTokenTTL, time.Now()))
	require.NoError(t, err)

	claims, err := h.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Subject)
}

func TestClaimsWireShape(t *testing.T) {
	h := newHS256(t)

	now := time.Unix(1700000000, 0)
	token, err := h.Sign(jwtx.NewAccessClaims("alice", 30*time.Minute, now))
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(payload, &body))

	// External clients depend on exactly {"sub", "exp"}.
	require.Len(t, body, 2)
	require.Equal(t, "alice", body["sub"])
	require.EqualValues(t, now.Add(30*time.Minute).Unix(), body["exp"])
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	h := newHS256(t)

	issuedAt := time.Now().Add(-31 * time.Minute)
	token, err := h.Sign(jwtx.NewAccessClaims("alice", jwtx.DefaultAccessTokenTTL, issuedAt))
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	h := newHS256(t)

	token, err := h.Sign(jwtx.NewAccessClaims("alice", jwtx.DefaultAccessTokenTTL, time.Now()))
	require.NoError(t, err)

	for i := 0; i < len(token); i++ {
		if token[i] == '.' {
			continue
		}
		mutated := []byte(token)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}

		_, err := h.Verify(string(mutated))
		require.Error(t, err, "byte %d", i)
	}
}

func TestVerifyRejectsMissingSubject(t *testing.T) {
	h := newHS256(t)

	token, err := h.Sign(jwtx.NewAccessClaims("", jwtx.DefaultAccessTokenTTL, time.Now()))
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrNoSubject)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	h := newHS256(t)

	_, err := h.Verify("definitely.not.ajwt")
	require.ErrorIs(t, err, jwtx.ErrMalformed)

	_, err = h.Verify("")
	require.ErrorIs(t, err, jwtx.ErrMalformed)
}

func TestSecretRotationInvalidatesTokens(t *testing.T) {
	old := newHS256(t)

	token, err := old.Sign(jwtx.NewAccessClaims("alice", jwtx.DefaultAccessTokenTTL, time.Now()))
	require.NoError(t, err)

	rotated, err := jwtx.NewHS256([]byte("rotated-secret"))
	require.NoError(t, err)

	_, err = rotated.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}
