package middleware

import (
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"

	"github.com/Ramcharan1706/SkillSwap/config"
)

// CallerKey is the context key holding the authenticated caller pubkey
const CallerKey = "user_pubkey"

// Auth verifies the bearer JWT and places the caller's pubkey in the
// context. Handlers behind this middleware read the authenticated caller
// identity through the CallerKey value.
func Auth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing bearer token"})
		return
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(config.GlobalConfig.Auth.Secret), nil
	})
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		return
	}

	pubkey, ok := claims[CallerKey].(string)
	if !ok || pubkey == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Caller pubkey missing from token"})
		return
	}

	c.Set(CallerKey, pubkey)
	c.Next()
}
