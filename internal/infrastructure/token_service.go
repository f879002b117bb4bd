package infrastructure

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"toolbox-api/internal/apperrors"
)

// TokenService issues and verifies stateless bearer tokens. A token
// binds a person id for a bounded time window; any holder is treated as
// that person and there is no revocation list.
type TokenService struct {
	secretKey []byte
	ttl       time.Duration
}

func NewTokenService(secretKey string, ttl time.Duration) *TokenService {
	return &TokenService{
		secretKey: []byte(secretKey),
		ttl:       ttl,
	}
}

func (s *TokenService) Issue(personID uint) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(personID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// Verify checks signature and expiry and returns the bound person id.
// Every failure mode collapses into an InvalidToken error.
func (s *TokenService) Verify(tokenString string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return s.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return 0, apperrors.InvalidToken(err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return 0, apperrors.InvalidToken(fmt.Errorf("missing subject claim"))
	}

	personID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, apperrors.InvalidToken(fmt.Errorf("malformed subject claim: %w", err))
	}

	return uint(personID), nil
}
