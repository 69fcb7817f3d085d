package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ParseBearerToken extracts the token part from an "Authorization" header
// value of the form "Bearer <token>". Returns an error for any other shape.
func ParseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// TokenExpired reports whether the JWT's "exp" claim lies within leeway of
// now. The signature is NOT verified — only the server can do that; the
// client merely uses the expiry to decide when to request a fresh token
// instead of burning a request on a guaranteed 401.
//
// A token that cannot be parsed or carries no expiry is treated as expired,
// forcing re-authentication.
func TokenExpired(tokenString string, leeway time.Duration) bool {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return true
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}

	return time.Now().Add(leeway).After(exp.Time)
}
