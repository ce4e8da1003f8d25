package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AppClaims carries the user's role alongside the registered JWT claims.
type AppClaims struct {
	Cargo string `json:"cargo,omitempty"`
	jwt.RegisteredClaims
}

// GenerateJWT generates a signed HS256 token for the given user. A
// non-positive expiryDuration issues a token without an exp claim.
func GenerateJWT(userID, cargo, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := AppClaims{
		Cargo: cargo,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	if expiryDuration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(expiryDuration))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a token string and validates its signature and
// standard claims. Errors from the jwt library are returned as-is so callers
// can distinguish jwt.ErrTokenExpired from structural failures.
func ParseAndValidateJWT(tokenString string, secretKey string) (*AppClaims, error) {
	claims := &AppClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Don't forget to validate the alg is what you expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
