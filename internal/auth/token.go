package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// encodeSession signs s as an HS256 JWT. The session ID travels as the jti.
func encodeSession(key []byte, s *Session, issuedAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        s.ID,
		ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("signing session: %w", err)
	}
	return signed, nil
}

// decodeSession verifies the signature and returns the session. Expiry is
// not checked here; the Gate's clock decides that.
func decodeSession(key []byte, tokenStr string) (*Session, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return nil, fmt.Errorf("parsing session token: %w", err)
	}
	if !token.Valid || claims.ID == "" || claims.ExpiresAt == nil {
		return nil, errors.New("invalid session token")
	}

	return &Session{ID: claims.ID, ExpiresAt: claims.ExpiresAt.Time}, nil
}
