// Package identity talks to the delegated auth provider's session tokens.
// The provider owns signup and credentials; this side only verifies the
// signed session token and extracts the subject id.
package identity

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	jwt.RegisteredClaims
}

// Verifier checks and re-issues session tokens with the provider's shared
// signing secret.
type Verifier struct {
	secret     []byte
	ttl        time.Duration
	cookieName string
}

func NewVerifier(secret string, ttl time.Duration, cookieName string) *Verifier {
	return &Verifier{
		secret:     []byte(secret),
		ttl:        ttl,
		cookieName: cookieName,
	}
}

func (v *Verifier) CookieName() string { return v.cookieName }

func (v *Verifier) TTL() time.Duration { return v.ttl }

// Parse validates the token signature and expiry and returns the subject id.
func (v *Verifier) Parse(tokenStr string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("invalid session token")
	}
	return claims.Subject, nil
}

// Issue signs a fresh token for the subject, used to slide the session
// window on every request.
func (v *Verifier) Issue(subject string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(v.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
