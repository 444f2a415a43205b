package security

import (
	"TeleInvest/internal/api/config"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims *SessionClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestValidateSessionToken(t *testing.T) {
	config.Cfg = &config.Config{}
	config.Cfg.Users.SessionSecret = "test-secret"

	token := signToken(t, "test-secret", &SessionClaims{
		Roles: []string{"ADMIN"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())
	assert.Equal(t, []string{"ADMIN"}, claims.Roles)
}

func TestValidateSessionTokenRejections(t *testing.T) {
	config.Cfg = &config.Config{}
	config.Cfg.Users.SessionSecret = "test-secret"

	expired := signToken(t, "test-secret", &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	_, err := ValidateSessionToken(expired)
	require.Error(t, err)

	wrongKey := signToken(t, "other-secret", &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	_, err = ValidateSessionToken(wrongKey)
	require.Error(t, err)

	// A token without a subject carries no usable identity.
	anonymous := signToken(t, "test-secret", &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	_, err = ValidateSessionToken(anonymous)
	require.Error(t, err)
}

func TestExtractSignature(t *testing.T) {
	config.Cfg = &config.Config{}
	config.Cfg.Users.SessionSecret = "test-secret"

	token := signToken(t, "test-secret", &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	})

	sig, err := ExtractSignature(token)
	require.NoError(t, err)
	assert.NotEmpty(t, sig)

	_, err = ExtractSignature("not-a-jwt")
	require.Error(t, err)
}
