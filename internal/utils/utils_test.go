package utils

import (
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPNRShapeAndAlphabet(t *testing.T) {
	for i := 0; i < 100; i++ {
		pnr, err := NewPNR()
		require.NoError(t, err)
		assert.Len(t, pnr, PNRLength)
		for _, ch := range pnr {
			assert.True(t, strings.ContainsRune(pnrAlphabet, ch), "pnr %s contains %q", pnr, ch)
		}
	}
}

func TestNewPNRVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		pnr, err := NewPNR()
		require.NoError(t, err)
		seen[pnr] = true
	}
	// 50 draws from a 36^6 space collapsing to a handful of values
	// would mean the generator is broken.
	assert.Greater(t, len(seen), 40)
}

func TestNewPNRCoversAlphabet(t *testing.T) {
	counts := map[rune]int{}
	for i := 0; i < 500; i++ {
		pnr, err := NewPNR()
		require.NoError(t, err)
		for _, ch := range pnr {
			counts[ch]++
		}
	}
	// 3000 uniform draws over 36 characters leave the chance of any
	// character never appearing at effectively zero.
	for _, ch := range pnrAlphabet {
		assert.Greater(t, counts[ch], 0, "character %q never generated", ch)
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Str0ngPassword", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ngPassword", hash)

	assert.True(t, VerifyPassword(hash, "Str0ngPassword"))
	assert.False(t, VerifyPassword(hash, "WrongPassword"))
	assert.False(t, VerifyPassword("not-a-hash", "Str0ngPassword"))
}

func TestNewAccessTokenClaims(t *testing.T) {
	const secret = "test-secret"
	access, err := NewAccessToken(secret, "user-1", "ada@example.com", "Ada Lovelace", 30)
	require.NoError(t, err)
	require.NotEmpty(t, access.Token)

	tok, err := jwt.Parse(access.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims, ok := tok.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "user-1", claims["sub"])
	assert.Equal(t, "ada@example.com", claims["email"])
	assert.Equal(t, "Ada Lovelace", claims["name"])
	assert.NotNil(t, claims["exp"])
	assert.NotNil(t, claims["iat"])
}

func TestNewAccessTokenRejectsWrongSecret(t *testing.T) {
	access, err := NewAccessToken("right-secret", "user-1", "ada@example.com", "Ada", 30)
	require.NoError(t, err)

	_, err = jwt.Parse(access.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	assert.Error(t, err)
}
