package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccessToken_Claims(t *testing.T) {
	at, err := NewAccessToken("secret", "acc-1", "teacher", "Ibu Salsa", 15)
	require.NoError(t, err)
	require.NotEmpty(t, at.Token)

	tok, err := jwt.Parse(at.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims, ok := tok.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "acc-1", claims["sub"])
	assert.Equal(t, "teacher", claims["role"])
	assert.Equal(t, "Ibu Salsa", claims["name"])
}

func TestNewAccessToken_WrongSecretRejected(t *testing.T) {
	at, err := NewAccessToken("secret", "acc-1", "admin", "Administrator Lab", 15)
	require.NoError(t, err)

	_, err = jwt.Parse(at.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("other"), nil
	})
	assert.Error(t, err)
}

func TestRefreshTokenHashing(t *testing.T) {
	rt, err := NewRefreshToken(7)
	require.NoError(t, err)
	assert.Len(t, rt.Raw, 96)

	h1 := HashRefreshRaw(rt.Raw)
	h2 := HashRefreshRaw(rt.Raw)
	assert.Equal(t, h1, h2)
	assert.NotEqual(t, rt.Raw, h1)

	other, err := NewRefreshToken(7)
	require.NoError(t, err)
	assert.NotEqual(t, HashRefreshRaw(other.Raw), h1)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("guru", 4)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "guru"))
	assert.False(t, VerifyPassword(hash, "GURU"))
}
