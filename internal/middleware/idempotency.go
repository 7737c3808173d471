package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	idempotencyLockTTL  = 30 * time.Second
	idempotencyCacheTTL = 24 * time.Hour
)

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the cached response for a repeated Idempotency-Key
// and rejects a key whose first request is still in flight. Successful
// responses are cached after the handler runs.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		employeeID := c.GetString("employee_id")
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), employeeID, idempKey)
		lockKey := cacheKey + ":lock"

		ctx := c.Request.Context()

		if val, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			status, body := splitCachedResponse(val)
			c.Header("X-Idempotent-Replay", "true")
			c.Data(status, "application/json", []byte(body))
			c.Abort()
			return
		}

		// The short-TTL lock clears itself if the process dies mid-request.
		isNew, _ := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "a request with this idempotency key is already being processed",
			})
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = recorder

		c.Next()

		status := recorder.Status()
		if status >= 200 && status < 300 {
			cached := strconv.Itoa(status) + "|" + recorder.body.String()
			rdb.Set(ctx, cacheKey, cached, idempotencyCacheTTL)
		}
		rdb.Del(ctx, lockKey)
	}
}

// splitCachedResponse separates the "<status>|<body>" cache value so a
// replay carries the original status code, not a blanket 200.
func splitCachedResponse(val string) (int, string) {
	sep := strings.IndexByte(val, '|')
	if sep <= 0 {
		return http.StatusOK, val
	}
	status, err := strconv.Atoi(val[:sep])
	if err != nil {
		return http.StatusOK, val
	}
	return status, val[sep+1:]
}
