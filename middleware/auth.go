package middleware

import (
	"net/http"
	"strings"

	"aamer/models"
	"aamer/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthMiddleware validates the Bearer token and puts "userID" and
// "userType" into the context. Tokens seen at login sit hashed in the auth
// cache; a cache hit skips signature verification, and a Redis outage just
// falls back to verifying.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		if utils.AuthCacheClient != nil {
			key := utils.AuthCachePrefix + utils.HashToken(tokenString)
			cached, err := utils.AuthCacheClient.Get(c.Request.Context(), key).Result()
			if err == nil {
				if userID, userType, ok := splitCachedIdentity(cached); ok {
					_ = utils.AuthCacheClient.Expire(c.Request.Context(), key, utils.AuthCacheTTL).Err()
					c.Set("userID", userID)
					c.Set("userType", userType)
					c.Next()
					return
				}
			} else if err != redis.Nil {
				utils.GetLogger().Warn("Auth cache lookup failed", zap.Error(err))
			}
		}

		userID, userType, err := utils.ExtractIDsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if utils.AuthCacheClient != nil {
			key := utils.AuthCachePrefix + utils.HashToken(tokenString)
			_ = utils.AuthCacheClient.Set(c.Request.Context(), key, userID+"|"+userType, utils.AuthCacheTTL).Err()
		}

		c.Set("userID", userID)
		c.Set("userType", userType)
		c.Next()
	}
}

func splitCachedIdentity(cached string) (string, string, bool) {
	parts := strings.SplitN(cached, "|", 2)
	if len(parts) != 2 || parts[0] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// RequireUserType restricts a route to one account type. Must run after
// JWTAuthMiddleware.
func RequireUserType(userType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, _ := c.Get("userType")
		if got != userType {
			msg := "Access denied. User only route."
			if userType == models.UserTypeProvider {
				msg = "Access denied. Provider only route."
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": msg})
			return
		}
		c.Next()
	}
}
