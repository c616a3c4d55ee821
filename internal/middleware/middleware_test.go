package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"job-portal/internal/access"
	"job-portal/internal/auth/token"
	"job-portal/internal/middleware"
	"job-portal/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeEnforcer struct {
	allowed bool
	err     error
	gotVerb access.Verb
}

func (f *fakeEnforcer) Enforce(_ access.Actor, _ access.Resource, verb access.Verb) (bool, error) {
	f.gotVerb = verb
	return f.allowed, f.err
}

func withActor(actor access.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextActor, actor)
		c.Set(middleware.ContextUserID, actor.UserID.String())
		c.Next()
	}
}

func TestAuthMiddleware(t *testing.T) {
	tokens := token.NewManager("secret", time.Minute, time.Hour)
	uid := uuid.New()
	pair, err := tokens.Issue(token.Subject{UserID: uid, Role: "recruiter"})
	assert.NoError(t, err)

	router := gin.New()
	router.GET("/me", middleware.AuthMiddleware(tokens), func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		assert.True(t, ok)
		c.String(http.StatusOK, actor.UserID.String())
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid access token", "Bearer " + pair.Access, http.StatusOK},
		{"refresh token rejected", "Bearer " + pair.Refresh, http.StatusUnauthorized},
		{"missing header", "", http.StatusUnauthorized},
		{"garbage token", "Bearer abc", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, uid.String(), w.Body.String())
			}
		})
	}
}

func TestRBACAuthorize(t *testing.T) {
	actor := access.Actor{UserID: uuid.New(), Role: access.RoleEmployee}

	t.Run("allowed passes through with verb from method", func(t *testing.T) {
		enf := &fakeEnforcer{allowed: true}
		router := gin.New()
		router.PATCH("/jobs/:id", withActor(actor), middleware.RBACAuthorize(enf, access.ResourceJob, zap.NewNop()), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/jobs/1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, access.VerbUpdate, enf.gotVerb)
	})

	t.Run("denied is 403", func(t *testing.T) {
		router := gin.New()
		router.POST("/jobs", withActor(actor), middleware.RBACAuthorize(&fakeEnforcer{}, access.ResourceJob, zap.NewNop()), func(c *gin.Context) {
			t.Fatal("handler must not run")
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/jobs", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("enforcer error is 500", func(t *testing.T) {
		router := gin.New()
		router.GET("/jobs", withActor(actor), middleware.RBACAuthorize(&fakeEnforcer{err: errors.New("boom")}, access.ResourceJob, zap.NewNop()))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("no actor is 401", func(t *testing.T) {
		router := gin.New()
		router.GET("/jobs", middleware.RBACAuthorize(&fakeEnforcer{allowed: true}, access.ResourceJob, zap.NewNop()))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRateLimitByIP(t *testing.T) {
	router := gin.New()
	router.GET("/ping", middleware.RateLimitByIP(0.0001, 1), func(c *gin.Context) { c.Status(http.StatusOK) })

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/ping", nil))
	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestIdempotency(t *testing.T) {
	actor := access.Actor{UserID: uuid.New(), Role: access.RoleEmployee}
	ttl := time.Hour
	cacheKey := middleware.IdempotencyCacheKey("/applications", actor.UserID.String(), "key-1")

	t.Run("first request is stored", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		router := gin.New()
		router.POST("/applications", withActor(actor), middleware.Idempotency(rdb, ttl, zap.NewNop()), func(c *gin.Context) {
			c.JSON(http.StatusCreated, gin.H{"ok": true})
		})

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, `{"status":201,"body":{"ok":true}}`, ttl).SetVal("OK")
		mock.ExpectDel(cacheKey + ":lock").SetVal(1)

		req := httptest.NewRequest(http.MethodPost, "/applications", nil)
		req.Header.Set(middleware.IdempotencyHeader, "key-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeat is replayed without running the handler", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		router := gin.New()
		router.POST("/applications", withActor(actor), middleware.Idempotency(rdb, ttl, zap.NewNop()), func(c *gin.Context) {
			t.Fatal("handler must not run")
		})

		mock.ExpectGet(cacheKey).SetVal(`{"status":201,"body":{"ok":true}}`)

		req := httptest.NewRequest(http.MethodPost, "/applications", nil)
		req.Header.Set(middleware.IdempotencyHeader, "key-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "true", w.Header().Get(middleware.ReplayedHeader))
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	})

	t.Run("client error is not stored so a corrected retry runs", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		calls := 0
		router := gin.New()
		router.POST("/applications", withActor(actor), middleware.Idempotency(rdb, ttl, zap.NewNop()), func(c *gin.Context) {
			calls++
			if calls == 1 {
				c.JSON(http.StatusBadRequest, gin.H{"ok": false})
				return
			}
			c.JSON(http.StatusCreated, gin.H{"ok": true})
		})

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)
		mock.ExpectDel(cacheKey + ":lock").SetVal(1)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, `{"status":201,"body":{"ok":true}}`, ttl).SetVal("OK")
		mock.ExpectDel(cacheKey + ":lock").SetVal(1)

		for _, want := range []int{http.StatusBadRequest, http.StatusCreated} {
			req := httptest.NewRequest(http.MethodPost, "/applications", nil)
			req.Header.Set(middleware.IdempotencyHeader, "key-1")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, want, w.Code)
			assert.Empty(t, w.Header().Get(middleware.ReplayedHeader))
		}
		assert.Equal(t, 2, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent duplicate is 409", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		router := gin.New()
		router.POST("/applications", withActor(actor), middleware.Idempotency(rdb, ttl, zap.NewNop()), func(c *gin.Context) {
			t.Fatal("handler must not run")
		})

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

		req := httptest.NewRequest(http.MethodPost, "/applications", nil)
		req.Header.Set(middleware.IdempotencyHeader, "key-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("no key skips redis", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		router := gin.New()
		router.POST("/applications", withActor(actor), middleware.Idempotency(rdb, ttl, zap.NewNop()), func(c *gin.Context) {
			c.Status(http.StatusCreated)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/applications", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name    string
		inbound string
		keep    bool
	}{
		{name: "well formed id is kept", inbound: "req-2024.10_abc", keep: true},
		{name: "missing id is generated", inbound: ""},
		{name: "id with spaces is replaced", inbound: "bad id"},
		{name: "header injection is replaced", inbound: "abc\r\nX-Evil: 1"},
		{name: "overlong id is replaced", inbound: strings.Repeat("a", 65)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			router := gin.New()
			router.Use(middleware.RequestID())
			router.GET("/ping", func(c *gin.Context) {
				seen = contextutil.GetRequestID(c.Request.Context())
				assert.Equal(t, seen, c.GetString(middleware.ContextRequestID))
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.inbound != "" {
				req.Header.Set(middleware.HeaderRequestID, tt.inbound)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, seen, w.Header().Get(middleware.HeaderRequestID))
			if tt.keep {
				assert.Equal(t, tt.inbound, seen)
				return
			}
			_, err := uuid.Parse(seen)
			assert.NoError(t, err)
		})
	}
}
