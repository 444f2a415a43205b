package security

import (
	"TeleInvest/internal/api/config"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ValidateSessionToken verifies a token against the secret published by
// the identity provider and parses its claims. No tokens are minted
// here; authentication is fully delegated.
func ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Cfg.Users.SessionSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("session token parse failed: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("session token invalid or expired")
	}

	if claims.Subject == "" {
		return nil, errors.New("session token missing subject")
	}

	return claims, nil
}

// ExtractSignature returns the signature segment of a token, used as
// the revocation key in redis after logout.
func ExtractSignature(tokenString string) (string, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return "", errors.New("malformed session token")
	}
	return parts[2], nil
}
