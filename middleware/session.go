package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// SessionCookie names the cookie carrying the signed session token.
	SessionCookie = "fh_session"

	// SessionKey is the gin context key holding the resolved session id.
	SessionKey = "session_id"

	sessionMaxAge = 30 * 24 * 60 * 60 // seconds
)

// Session resolves the caller's session id from a signed cookie, minting a
// fresh session when the cookie is missing or invalid. Carts and the admin
// flag are keyed by this id.
func Session(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(SessionCookie); err == nil {
			if sid, err := parseSessionToken(token, secret); err == nil {
				c.Set(SessionKey, sid)
				c.Next()
				return
			}
		}

		sid := uuid.NewString()
		token, err := signSessionToken(sid, secret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			c.Abort()
			return
		}
		c.SetCookie(SessionCookie, token, sessionMaxAge, "/", "", false, true)
		c.Set(SessionKey, sid)
		c.Next()
	}
}

// SessionID returns the session id set by the Session middleware.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}

func signSessionToken(sessionID, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sessionID,
	})
	return token.SignedString([]byte(secret))
}

func parseSessionToken(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", errors.New("missing session id claim")
	}
	return sid, nil
}
