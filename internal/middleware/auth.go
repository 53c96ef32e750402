package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"rescribe/config"
	"rescribe/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthRequired validates JWT and sets UserID and Username in context.
func AuthRequired(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseBearer(cfg, c)
		if err != "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err})
			return
		}
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Next()
	}
}

// AuthOptional parses a bearer token when present but lets anonymous
// requests through. Rewrite and upload endpoints serve both.
func AuthOptional(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			if claims, errMsg := parseBearer(cfg, c); errMsg == "" {
				c.Set("user_id", claims.UserID)
				c.Set("username", claims.Username)
			}
		}
		c.Next()
	}
}

func parseBearer(cfg *config.JWTConfig, c *gin.Context) (*auth.Claims, string) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, "missing authorization header"
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, "invalid authorization format"
	}
	claims, err := auth.ParseAccessToken(cfg, parts[1])
	if err != nil {
		return nil, "invalid or expired token"
	}
	return claims, ""
}

// GetUserID returns the authenticated user ID from context, or 0 for
// anonymous requests.
func GetUserID(c *gin.Context) uint {
	v, _ := c.Get("user_id")
	if v == nil {
		return 0
	}
	return v.(uint)
}

// KeyScope identifies whose stored API keys a request should use.
func KeyScope(c *gin.Context) string {
	if id := GetUserID(c); id != 0 {
		return "user:" + strconv.FormatUint(uint64(id), 10)
	}
	return "anon"
}
