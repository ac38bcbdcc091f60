package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-leaveai/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyCacheKey = "idempotency_cache_key"
	IdempotencyLockKey  = "idempotency_lock_key"
	idempotencyTTL      = 24 * time.Hour
	idempotencyLockTTL  = 30 * time.Second
)

// Idempotency replays the stored response of a POST carrying a previously
// seen Idempotency-Key, and rejects a duplicate that arrives while the first
// one is still running.
func Idempotency(rdb *redis.Client, logger ...*zap.Logger) gin.HandlerFunc {
	l := zap.L().Named("middleware.idempotency")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("middleware.idempotency")
	}

	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		userID := c.GetString("user_id")
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.Request.URL.Path, userID, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			var cached any
			if json.Unmarshal([]byte(val), &cached) == nil {
				l.Debug("idempotent replay", zap.String("key", cacheKey))
				response.Success(c, http.StatusOK, cached, nil)
				c.Abort()
				return
			}
		}

		isNew, err := rdb.SetNX(c.Request.Context(), lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			l.Warn("idempotency lock unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Error(c, http.StatusConflict, "PROCESSING", "Transaksi Anda sedang diproses, mohon tunggu sebentar.", nil)
			c.Abort()
			return
		}

		c.Set(IdempotencyCacheKey, cacheKey)
		c.Set(IdempotencyLockKey, lockKey)

		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			_ = rdb.Del(c.Request.Context(), lockKey).Err()
		}
	}
}

// RememberIdempotent stores a successful result under the request's cache key
// and releases the in-flight lock.
func RememberIdempotent(c *gin.Context, rdb *redis.Client, resp any) {
	if rdb == nil {
		return
	}
	ctx := c.Request.Context()
	if ck := c.GetString(IdempotencyCacheKey); ck != "" {
		if payload, err := json.Marshal(resp); err == nil {
			_ = rdb.Set(ctx, ck, payload, idempotencyTTL).Err()
		}
	}
	if lk := c.GetString(IdempotencyLockKey); lk != "" {
		_ = rdb.Del(ctx, lk).Err()
	}
}
