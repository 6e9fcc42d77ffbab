package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"medicore/models"
	"medicore/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// Context keys set by JWTAuthMiddleware for downstream handlers.
const (
	CtxUserID   = "userID"
	CtxUserRole = "userRole"
)

// JWTAuthMiddleware validates the bearer token and checks that its session is
// still live in the auth cache. Logout drops the cache entry, so a signed but
// revoked token is rejected here.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c)
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			abortUnauthorized(c)
			return
		}

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			abortUnauthorized(c)
			return
		}

		// A token is only as good as its live session entry.
		cacheKey := utils.AuthCachePrefix + utils.HashToken(tokenString)
		authCache := utils.GetAuthCacheClient()
		if authCache == nil {
			log.Printf("WARNING: Auth cache client not available. Accepting token on signature alone.")
		} else {
			ctx := context.Background()
			if _, err := authCache.Get(ctx, cacheKey).Result(); err != nil {
				if err == redis.Nil {
					abortUnauthorized(c)
					return
				}
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
					"error": "Authorization backend unavailable",
				})
				return
			}
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxUserRole, models.Role(role))
		c.Next()
	}
}

// RequireRoles allows the request through only for the given roles.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get(CtxUserRole)
		if !exists {
			abortUnauthorized(c)
			return
		}
		role, ok := val.(models.Role)
		if !ok {
			abortUnauthorized(c)
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "You do not have permission to perform this action",
		})
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "Insufficient authorization",
	})
}
