package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-contact-backend/internal/delivery/http/middleware"
	"portfolio-contact-backend/internal/delivery/http/response"
	"portfolio-contact-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler())
	r.GET("/", handler)
	return r
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
		wantDetails any
	}{
		{
			name:        "app error keeps its status",
			err:         apperror.BadRequest("Invalid request body"),
			wantCode:    http.StatusBadRequest,
			wantMessage: "Invalid request body",
		},
		{
			name:        "validation details are passed through",
			err:         apperror.Validation("fix it", map[string]string{"name": "Name is required"}),
			wantCode:    http.StatusBadRequest,
			wantMessage: "fix it",
			wantDetails: map[string]any{"name": "Name is required"},
		},
		{
			name:        "internal cause is hidden",
			err:         apperror.Internal(errors.New("db password wrong")),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Internal Server Error",
		},
		{
			name:        "plain error becomes 500",
			err:         errors.New("boom"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "An unexpected error occurred. Please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine(func(c *gin.Context) { c.Error(tt.err) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			var body response.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.Equal(t, tt.wantDetails, body.Error)
			assert.NotContains(t, w.Body.String(), "db password")
		})
	}
}

func TestErrorHandler_SkipsWrittenResponse(t *testing.T) {
	r := newEngine(func(c *gin.Context) {
		c.String(http.StatusTeapot, "already sent")
		c.Error(errors.New("late"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "already sent", w.Body.String())
}

func TestRequestID(t *testing.T) {
	r := newEngine(func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(response.RequestIDKey))
	})

	t.Run("generates when missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get(middleware.RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("reuses a valid incoming id", func(t *testing.T) {
		incoming := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, incoming)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, incoming, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("replaces a malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "<script>")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.NotEqual(t, "<script>", w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestCORSMiddleware(t *testing.T) {
	preflight := func(origins []string, origin string) *httptest.ResponseRecorder {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.Use(middleware.CORSMiddleware(origins))
		r.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("listed origin with trailing slash in config", func(t *testing.T) {
		w := preflight([]string{" https://site.example/ "}, "https://site.example")
		assert.Equal(t, "https://site.example", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard", func(t *testing.T) {
		w := preflight([]string{"*"}, "https://anything.example")
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("empty list rejects everything", func(t *testing.T) {
		w := preflight(nil, "https://site.example")
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.SecurityHeadersMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "form-action 'self'")
}
