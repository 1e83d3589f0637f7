// Package token issues and inspects the HS256 access tokens used by the API.
// Tokens carry the user id as subject plus a role claim; the middleware
// verifies them on every protected request.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by Parse for malformed, mis-signed or expired
// tokens.
var ErrInvalidToken = errors.New("invalid token")

// Issuer signs access tokens with a shared HMAC secret. It satisfies the
// store's TokenIssuer interface.
type Issuer struct {
	Secret string
	TTL    time.Duration
}

// Issue builds and signs an HS256 JWT with sub, role, exp and iat claims.
func (i Issuer) Issue(userID, role string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  now.Add(i.TTL).Unix(),
		"iat":  now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(i.Secret))
}

// Claims is the decoded identity carried by an access token.
type Claims struct {
	UserID string
	Role   string
}

// Parse validates a raw token against the secret and extracts its claims.
// Only HMAC-signed tokens are accepted.
func Parse(secret, raw string) (Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Claims{}, ErrInvalidToken
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	out := Claims{}
	if sub, ok := mc["sub"].(string); ok {
		out.UserID = sub
	}
	if role, ok := mc["role"].(string); ok {
		out.Role = role
	}
	if out.UserID == "" {
		return Claims{}, ErrInvalidToken
	}
	return out, nil
}
