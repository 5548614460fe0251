package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := New("test-secret", time.Hour)

	token, err := svc.GenerateToken(7, "0901234567")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "0901234567", claims.Phone)
	assert.Equal(t, Issuer, claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := New("secret-a", time.Hour).GenerateToken(7, "0901234567")
	require.NoError(t, err)

	_, err = New("secret-b", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := New("test-secret", -time.Minute).GenerateToken(7, "0901234567")
	require.NoError(t, err)

	_, err = New("test-secret", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := New("test-secret", time.Hour).ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
