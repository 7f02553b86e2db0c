package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Context keys set by Auth.
const (
	// ContextUsername holds the username claim of a verified bearer token.
	ContextUsername = "auth_username"
	// ContextTokenMissing is true when Auth ran in optional mode and the
	// request carried no Authorization header.
	ContextTokenMissing = "auth_token_missing"
)

type authOptions struct {
	optional bool
}

// AuthOption customises Auth.
type AuthOption func(*authOptions)

// Optional lets requests without an Authorization header through. The
// handler decides later whether the token was needed. A header that is
// present but invalid is still rejected.
func Optional() AuthOption {
	return func(o *authOptions) { o.optional = true }
}

// Auth validates the HS256 bearer token and stores its username claim in
// the echo context under ContextUsername.
func Auth(jwtSecret string, opts ...AuthOption) echo.MiddlewareFunc {
	var o authOptions
	for _, opt := range opts {
		opt(&o)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				if o.optional {
					c.Set(ContextTokenMissing, true)
					return next(c)
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			username, _ := claims["username"].(string)
			if username == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing username")
			}

			c.Set(ContextUsername, username)
			return next(c)
		}
	}
}
