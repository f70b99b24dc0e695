package middleware

import (
	"net/http"
	"strconv"

	"heartlink/internal/redis"
	"heartlink/internal/services"
	"heartlink/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// AuthRateLimitMiddleware limits auth attempts per client IP.
// Applied to the auth route group.
func AuthRateLimitMiddleware(limiter *redis.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := limiter.AllowAuth(c.Request.Context(), c.ClientIP())
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("Internal server error", "INTERNAL_ERROR"))
			c.Abort()
			return
		}

		setRateLimitHeaders(c, result)

		if !result.Allowed {
			c.JSON(http.StatusTooManyRequests, httpdto.NewErrorResponse("Rate limit exceeded", "RATE_LIMITED"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// MessageRateLimitMiddleware limits message sends per user.
// Must run after the auth middleware.
func MessageRateLimitMiddleware(limiter *redis.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := services.UserIDFromContext(c.Request.Context())
		if !ok {
			// No user context, the auth middleware will reject the request
			c.Next()
			return
		}

		result, err := limiter.AllowMessage(c.Request.Context(), userID.String())
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("Internal server error", "INTERNAL_ERROR"))
			c.Abort()
			return
		}

		setRateLimitHeaders(c, result)

		if !result.Allowed {
			c.JSON(http.StatusTooManyRequests, httpdto.NewErrorResponse("Message rate limit exceeded", "RATE_LIMITED"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// setRateLimitHeaders sets standard rate limit response headers
func setRateLimitHeaders(c *gin.Context, result *redis.RateLimitResult) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(int64(result.ResetIn.Seconds()), 10))
}
