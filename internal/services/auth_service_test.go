package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-32-bytes-should-be-long-enough"

func newTestAuth(ttl time.Duration) *AuthService {
	return NewAuthService(StaticCredentials{
		Username: "admin",
		Password: "correct horse",
	}, testSecret, ttl)
}

func TestAuthenticate_ValidPairIssuesToken(t *testing.T) {
	auth := newTestAuth(time.Hour)

	sess, token, err := auth.Authenticate("admin", "correct horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "admin", sess.Username)
	require.NotEmpty(t, sess.ID)
	require.True(t, sess.ExpiresAt.After(sess.IssuedAt))

	got, err := auth.Verify(token)
	require.NoError(t, err)
	require.Equal(t, sess.ID, got.ID)

	// verify is repeatable
	_, err = auth.Verify(token)
	require.NoError(t, err)
}

func TestAuthenticate_BadPairsRejected(t *testing.T) {
	auth := newTestAuth(time.Hour)

	cases := []struct{ username, password string }{
		{"admin", "wrong"},
		{"someone", "correct horse"},
		{"", ""},
		{"admin", ""},
	}
	for _, tc := range cases {
		_, token, err := auth.Authenticate(tc.username, tc.password)
		require.ErrorIs(t, err, ErrInvalidCredentials, "pair %q/%q", tc.username, tc.password)
		require.Empty(t, token)
	}
}

func TestVerify_UnissuedTokensRejected(t *testing.T) {
	auth := newTestAuth(time.Hour)

	_, err := auth.Verify("")
	require.ErrorIs(t, err, ErrInvalidToken)

	// non-empty but never issued: the registry check must reject it
	_, err = auth.Verify("some-random-bearer-value")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_ExpiredSessionRejected(t *testing.T) {
	auth := newTestAuth(-time.Minute)

	_, token, err := auth.Authenticate("admin", "correct horse")
	require.NoError(t, err)

	_, err = auth.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRevoke_TokenNoLongerVerifies(t *testing.T) {
	auth := newTestAuth(time.Hour)

	_, token, err := auth.Authenticate("admin", "correct horse")
	require.NoError(t, err)
	_, err = auth.Verify(token)
	require.NoError(t, err)

	auth.Revoke(token)
	_, err = auth.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)

	// revoking twice is harmless
	auth.Revoke(token)
}

func TestStaticCredentials_BcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	creds := StaticCredentials{Username: "admin", PasswordHash: string(hash)}
	require.True(t, creds.Verify("admin", "s3cret"))
	require.False(t, creds.Verify("admin", "other"))
	require.False(t, creds.Verify("root", "s3cret"))
}
