package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abi765/payvault-app/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newIdempotencyRouter(rdb *redis.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/generate",
		func(c *gin.Context) { c.Set("user_id", "op-1") },
		middleware.Idempotency(rdb),
		func(c *gin.Context) {
			c.JSON(http.StatusCreated, gin.H{"ok": true, "data": gin.H{"created": 2, "skipped": 0}})
		},
	)
	return router
}

func TestIdempotency(t *testing.T) {
	cacheKey := "idemp:/generate:op-1:key-1"
	lockKey := cacheKey + ":lock"

	t.Run("replay keeps the original status", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		record, err := json.Marshal(middleware.CachedResponse{
			Status: http.StatusCreated,
			Data:   json.RawMessage(`{"created":2,"skipped":0}`),
		})
		assert.NoError(t, err)
		mock.ExpectGet(cacheKey).SetVal(string(record))

		req := httptest.NewRequest(http.MethodPost, "/generate", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		newIdempotencyRouter(rdb).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"created":2`)
		assert.Contains(t, w.Body.String(), `"ok":true`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache miss takes the lock and runs the handler", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)

		req := httptest.NewRequest(http.MethodPost, "/generate", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		newIdempotencyRouter(rdb).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent duplicate is rejected while the lock holds", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		req := httptest.NewRequest(http.MethodPost, "/generate", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		newIdempotencyRouter(rdb).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "PROCESSING")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no key passes straight through", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		req := httptest.NewRequest(http.MethodPost, "/generate", nil)
		w := httptest.NewRecorder()
		newIdempotencyRouter(rdb).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
