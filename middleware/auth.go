package middleware

import (
	"context"
	"net/http"
	"strings"

	userRepo "invoicely/database/repository/user"
	"invoicely/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// JWTAuthMiddleware resolves the bearer identity before any invoice
// operation runs. The token signature is validated first; the token
// hash is then checked against the auth cache, falling back to the
// user's stored hash in the database on a cache miss. Revoked tokens
// fail the hash comparison. On success the resolved user ID is placed
// in the Gin context under "userID".
func JWTAuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID

		ctx := context.Background()
		// Nil when the cache was never initialized; fall through to
		// the DB lookup in that case.
		authCache := utils.AuthCacheClient
		cacheEnabled := authCache != nil

		if cacheEnabled {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash == computedHash {
					// Refresh the TTL on a hit.
					_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
					c.Set("userID", userID)
					c.Next()
					return
				}
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
				return
			} else if err != redis.Nil {
				utils.GetLogger().Warn("auth cache lookup failed, falling back to DB", zap.Error(err))
			}
		}

		// Cache miss: check the stored token hash.
		usr, err := repo.GetByIDWithProjection(userID, bson.M{"id": 1, "tokenHash": 1})
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}
		if usr.TokenHash == "" || usr.TokenHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		}

		if cacheEnabled {
			_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
		}

		c.Set("userID", userID)
		c.Next()
	}
}
