package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"

	sessionPort "weblog/internal/ports/session"
)

// AuthCookie is the cookie the login endpoint sets.
const AuthCookie = "auth_token"

var errNoToken = errors.New("no token supplied")

// JWTAuthMiddleware authenticates the request and redirects anonymous
// callers to the login page.
func JWTAuthMiddleware(jwtKey []byte, sessions sessionPort.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := authenticate(c, jwtKey, sessions)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the viewer identity when a valid token is
// present and stays silent otherwise. Listings use it to relax visibility
// for the profile owner.
func OptionalAuthMiddleware(jwtKey []byte, sessions sessionPort.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := authenticate(c, jwtKey, sessions); err == nil {
			setIdentity(c, claims)
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, jwtKey []byte, sessions sessionPort.Store) (*jwt.StandardClaims, error) {
	raw := tokenFromRequest(c)
	if raw == "" {
		return nil, errNoToken
	}

	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	revoked, err := sessions.IsRevoked(c.Request.Context(), claims.Id)
	if err != nil || revoked {
		return nil, errors.New("token revoked")
	}
	return claims, nil
}

func setIdentity(c *gin.Context, claims *jwt.StandardClaims) {
	c.Set("userID", claims.Subject)
	c.Set("tokenID", claims.Id)
	c.Set("tokenExpiresAt", claims.ExpiresAt)
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(AuthCookie); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
