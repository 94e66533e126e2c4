package magento

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenMaxAge returns the cookie lifetime in seconds for a customer token.
// Magento releases that issue JWT tokens carry an exp claim; opaque tokens
// use the configured fallback.
func TokenMaxAge(token string, fallback int, now time.Time) int {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fallback
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return fallback
	}
	if secs := int(exp.Time.Sub(now).Seconds()); secs > 0 {
		return secs
	}
	return fallback
}
