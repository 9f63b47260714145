package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const CtxSubjectKey = "subject"

// Keys are the accepted bearer credentials. Any non-empty field enables
// that kind of token. With every field empty all requests are refused.
type Keys struct {
	APIKey     string
	APIKeyHash string
	JWTSecret  string
}

func (k Keys) Empty() bool {
	return k.APIKey == "" && k.APIKeyHash == "" && k.JWTSecret == ""
}

// Verify reports whether token is accepted and, if so, who it names.
func (k Keys) Verify(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	if k.APIKey != "" && subtle.ConstantTimeCompare([]byte(token), []byte(k.APIKey)) == 1 {
		return "api-key", true
	}
	if k.APIKeyHash != "" && bcrypt.CompareHashAndPassword([]byte(k.APIKeyHash), []byte(token)) == nil {
		return "api-key", true
	}
	if k.JWTSecret != "" {
		if claims, err := ParseJWT([]byte(k.JWTSecret), token); err == nil {
			return claims.Subject, true
		}
	}
	return "", false
}

// RequireBearer rejects requests without an accepted bearer token.
func RequireBearer(keys Keys) gin.HandlerFunc {
	return func(c *gin.Context) {
		// The scheme name is case-insensitive.
		scheme, token, _ := strings.Cut(strings.TrimSpace(c.GetHeader("Authorization")), " ")
		token = strings.TrimSpace(token)
		if !strings.EqualFold(scheme, "Bearer") || token == "" {
			unauthorized(c, "Not authenticated")
			return
		}
		subject, ok := keys.Verify(token)
		if !ok {
			unauthorized(c, "Invalid authentication credentials")
			return
		}
		c.Set(CtxSubjectKey, subject)
		c.Next()
	}
}

func unauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detail})
}
