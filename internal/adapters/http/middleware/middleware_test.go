package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/ecotips/internal/adapters/http/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{"generated when absent", "", false},
		{"propagated when valid", "req-123", true},
		{"replaced when too long", strings.Repeat("a", maxIDLength+1), false},
		{"replaced when it contains spaces", "has space", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromGin, fromCtx string

			router := gin.New()
			router.Use(RequestID())
			router.GET("/tips", func(c *gin.Context) {
				fromGin = GetRequestID(c)
				fromCtx = RequestIDFromContext(c.Request.Context())
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/tips", nil)
			if tt.header != "" {
				req.Header.Set(HeaderRequestID, tt.header)
			}

			w := serve(router, req)

			require.NotEmpty(t, fromGin)
			assert.Equal(t, fromGin, fromCtx)
			assert.Equal(t, fromGin, w.Header().Get(HeaderRequestID))

			if tt.wantSame {
				assert.Equal(t, tt.header, fromGin)
			} else {
				assert.NotEqual(t, tt.header, fromGin)
				assert.Len(t, fromGin, 36)
			}
		})
	}
}

func TestCorrelationID(t *testing.T) {
	var fromGin, fromCtx string

	router := gin.New()
	router.Use(CorrelationID())
	router.GET("/tips", func(c *gin.Context) {
		fromGin = GetCorrelationID(c)
		fromCtx = CorrelationIDFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/tips", nil)
	req.Header.Set(HeaderCorrelationID, "session-42")

	w := serve(router, req)

	assert.Equal(t, "session-42", fromGin)
	assert.Equal(t, "session-42", fromCtx)
	assert.Equal(t, "session-42", w.Header().Get(HeaderCorrelationID))
}

func TestGetIDs_NotSet(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(ContextKeyRequestID, 99)

	assert.Empty(t, GetRequestID(c))
	assert.Empty(t, GetCorrelationID(c))
}

func TestValidID(t *testing.T) {
	assert.True(t, validID("550e8400-e29b-41d4-a716-446655440000"))
	assert.False(t, validID(""))
	assert.False(t, validID("tab\there"))
	assert.False(t, validID("naïve"))
	assert.True(t, validID(strings.Repeat("x", maxIDLength)))
}

func TestLogging(t *testing.T) {
	logger, buf := bufferLogger()

	router := gin.New()
	router.Use(Logger(logger), RequestID(), Logging())
	router.GET("/api/v1/tips/:id", func(c *gin.Context) {
		if c.Param("id") == "999" {
			c.Status(http.StatusNotFound)
			return
		}

		c.Status(http.StatusOK)
	})
	router.GET("/-/live", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("logs completed requests with the request id", func(t *testing.T) {
		buf.Reset()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/tips/1?x=1", nil)
		req.Header.Set(HeaderRequestID, "req-log")
		serve(router, req)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "request completed", entry["msg"])
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "req-log", entry["request_id"])
		assert.Equal(t, "/api/v1/tips/:id", entry["route"])
		assert.Equal(t, "x=1", entry["query"])
		assert.InDelta(t, 200, entry["status"], 0)
	})

	t.Run("client errors log at warn", func(t *testing.T) {
		buf.Reset()

		serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/tips/999", nil))

		assert.Contains(t, buf.String(), `"level":"WARN"`)
	})

	t.Run("operational endpoints are skipped", func(t *testing.T) {
		buf.Reset()

		serve(router, httptest.NewRequest(http.MethodGet, "/-/live", nil))

		assert.Empty(t, buf.String())
	})
}

func TestRecovery(t *testing.T) {
	logger, buf := bufferLogger()

	router := gin.New()
	router.Use(Recovery(), Logger(logger), RequestID())
	router.GET("/panic", func(*gin.Context) { panic("catalog corrupted") })

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(HeaderRequestID, "req-panic")

	w := serve(router, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeInternal, resp.Error.Code)
	assert.NotContains(t, w.Body.String(), "catalog corrupted")

	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "catalog corrupted")
	assert.Contains(t, buf.String(), "req-panic")
}

func TestTimeout(t *testing.T) {
	t.Run("sets a deadline", func(t *testing.T) {
		var hasDeadline bool

		router := gin.New()
		router.Use(Timeout(time.Second))
		router.GET("/tips", func(c *gin.Context) {
			_, hasDeadline = c.Request.Context().Deadline()
			c.Status(http.StatusOK)
		})

		w := serve(router, httptest.NewRequest(http.MethodGet, "/tips", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, hasDeadline)
	})

	t.Run("writes 504 when the handler gave up", func(t *testing.T) {
		router := gin.New()
		router.Use(Timeout(10 * time.Millisecond))
		router.GET("/slow", func(c *gin.Context) {
			<-c.Request.Context().Done()
		})

		w := serve(router, httptest.NewRequest(http.MethodGet, "/slow", nil))

		require.Equal(t, http.StatusGatewayTimeout, w.Code)
		assert.Contains(t, w.Body.String(), dto.ErrorCodeTimeout)
	})

	t.Run("keeps a response already written", func(t *testing.T) {
		router := gin.New()
		router.Use(Timeout(10 * time.Millisecond))
		router.GET("/slow", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"partial": true})
			<-c.Request.Context().Done()
		})

		w := serve(router, httptest.NewRequest(http.MethodGet, "/slow", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestContextIDs_Together(t *testing.T) {
	ctx := ContextWithCorrelationID(ContextWithRequestID(context.Background(), "r"), "c")

	assert.Equal(t, "r", RequestIDFromContext(ctx))
	assert.Equal(t, "c", CorrelationIDFromContext(ctx))
	assert.Empty(t, RequestIDFromContext(nil)) //nolint:staticcheck // nil context is handled
}
