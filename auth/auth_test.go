package auth

import (
	"testing"
	"time"

	"vennespill/models"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims *models.MyClaims, key []byte) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	require.NoError(t, err)
	return tokenString
}

func TestParseClaimsReturnsUserID(t *testing.T) {
	tokenString := signedToken(t, &models.MyClaims{
		UserID: 42,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}, JwtKey)

	claims, err := ParseClaims(tokenString)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
}

func TestParseClaimsRejectsWrongKey(t *testing.T) {
	tokenString := signedToken(t, &models.MyClaims{
		UserID: 42,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}, []byte("feil_nøkkel"))

	_, err := ParseClaims(tokenString)
	assert.Error(t, err)
}

func TestParseClaimsRejectsExpiredToken(t *testing.T) {
	tokenString := signedToken(t, &models.MyClaims{
		UserID: 42,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	}, JwtKey)

	_, err := ParseClaims(tokenString)
	assert.Error(t, err)
}

func TestParseClaimsRejectsGarbage(t *testing.T) {
	_, err := ParseClaims("not.a.token")
	assert.Error(t, err)
}
