package middlewares

import (
	"log"
	"net/http"

	"emotale/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// CompanionRateLimit caps companion messages per user. Redis trouble fails
// open; the companion must stay reachable.
func CompanionRateLimit() gin.HandlerFunc {
	config := ratelimit.DefaultConfig()
	return func(c *gin.Context) {
		limiter := ratelimit.NewRateLimiter()
		userKey := rateLimitKey(c)

		allowed, err := limiter.CheckMessageRateLimit(userKey, config)
		if err != nil {
			log.Printf("Companion rate limit check failed, allowing request: %v", err)
			c.Next()
			return
		}
		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many messages, slow down a little"})
			c.Abort()
			return
		}

		if err := limiter.RecordMessage(userKey, config); err != nil {
			log.Printf("Failed to record companion message: %v", err)
		}
		c.Next()
	}
}

// GenerationRateLimit caps scenario generation requests per user.
func GenerationRateLimit() gin.HandlerFunc {
	config := ratelimit.DefaultConfig()
	return func(c *gin.Context) {
		limiter := ratelimit.NewRateLimiter()
		userKey := rateLimitKey(c)

		allowed, err := limiter.CheckGenerationRateLimit(userKey, config)
		if err != nil {
			log.Printf("Generation rate limit check failed, allowing request: %v", err)
			c.Next()
			return
		}
		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many generation requests, try again later"})
			c.Abort()
			return
		}

		if err := limiter.RecordGeneration(userKey, config); err != nil {
			log.Printf("Failed to record scenario generation: %v", err)
		}
		c.Next()
	}
}

func rateLimitKey(c *gin.Context) string {
	if email := c.GetString("email"); email != "" {
		return email
	}
	return c.ClientIP()
}
