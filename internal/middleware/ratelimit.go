package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// RateLimit is a redis fixed-window limiter keyed by client IP. It guards the
// endpoints that trigger outbound SMS; redis errors fail open so the limiter
// never takes the sign-up flow down with it.
func RateLimit(rdb *redis.Client, limit int, window time.Duration, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		key := "ratelimit:guestlist:" + c.ClientIP()
		ctx := c.Request.Context()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Warn("rate limiter unavailable, failing open",
				logger.String("error", err.Error()),
			)
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, window)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		remaining := int64(limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(limit) {
			ttl, ttlErr := rdb.TTL(ctx, key).Result()
			if ttlErr == nil && ttl > 0 {
				c.Header("Retry-After", strconv.Itoa(int(ttl/time.Second)+1))
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				ginext.H{"error": "too many requests"},
			)
			return
		}

		c.Next()
	}
}
