package middleware

import (
	"time"

	"catrental/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
)

// IssueToken signs the caller's claims the way the authentication service does.
func IssueToken(secret string, caller entities.Caller, issuer string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role:         string(caller.Role),
		DealershipID: caller.DealershipID,
		Name:         caller.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   caller.UserID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
