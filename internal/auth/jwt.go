package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/noteagent/noteagent/internal/apperrors"
)

// TokenService issues and verifies stateless HS256 tokens. There is no
// server-side revocation list: logout is client-side only and the TTL bounds
// exposure of a leaked token.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify returns the subject user ID of a valid token. Invalid signature,
// elapsed expiry and malformed payload all yield the same Unauthorized error.
func (s *TokenService) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})

	if err != nil || !token.Valid {
		return uuid.Nil, apperrors.Unauthorized("Invalid or expired token")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)

	if !ok || claims.Subject == "" {
		return uuid.Nil, apperrors.Unauthorized("Invalid or expired token")
	}

	userID, err := uuid.Parse(claims.Subject)

	if err != nil {
		return uuid.Nil, apperrors.Unauthorized("Invalid or expired token")
	}

	return userID, nil
}
