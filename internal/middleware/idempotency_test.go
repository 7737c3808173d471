package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestIdempotency_ReplayKeepsOriginalStatus(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/payrolls", middleware.Idempotency(rdb), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	cacheKey := "idemp:/payrolls::key-1"
	mock.ExpectGet(cacheKey).SetVal(`201|{"ok":true}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(`{}`))
	req.Header.Set("Idempotency-Key", "key-1")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "true", w.Header().Get("X-Idempotent-Replay"))
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_FirstRequestCachesStatusAndBody(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/payrolls", middleware.Idempotency(rdb), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"id": "p-1"})
	})

	cacheKey := "idemp:/payrolls::key-2"
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)
	mock.ExpectSet(cacheKey, `201|{"id":"p-1"}`, 24*time.Hour).SetVal("OK")
	mock.ExpectDel(cacheKey + ":lock").SetVal(1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(`{}`))
	req.Header.Set("Idempotency-Key", "key-2")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_InFlightKeyConflicts(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlerRan := false
	router.POST("/payrolls", middleware.Idempotency(rdb), func(c *gin.Context) {
		handlerRan = true
	})

	cacheKey := "idemp:/payrolls::key-3"
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(`{}`))
	req.Header.Set("Idempotency-Key", "key-3")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, handlerRan)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_NoKeyPassesThrough(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/payrolls", middleware.Idempotency(rdb), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(`{}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
