package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/config"
	"shopfront/internal/domain/service"
)

func newTestTokenService(t *testing.T, ttl time.Duration) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.Auth.Secret = "test-secret"
	cfg.Auth.TokenTTL = ttl

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_IssueVerifyRoundTrip(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	token, err := svc.Issue(42, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestJWTService_TamperedSignatureRejected(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	token, err := svc.Issue(7, "user@example.com")
	require.NoError(t, err)

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	issuer := newTestTokenService(t, time.Hour)

	other := &config.Config{}
	other.Auth.Secret = "another-secret"
	verifier, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := issuer.Issue(7, "user@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_UnsignedAlgorithmRejected(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	claims := &service.Claims{UserID: 7, Email: "user@example.com"}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_ExpiredTokenRejected(t *testing.T) {
	svc := newTestTokenService(t, time.Nanosecond)

	token, err := svc.Issue(7, "user@example.com")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_MalformedTokenRejected(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	for _, token := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, service.ErrInvalidToken, "token %q", token)
	}
}
