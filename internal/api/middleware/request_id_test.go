package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestIDRouter(t *testing.T) (*gin.Engine, *string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var seen string
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		seen = RequestIDFrom(c)
		c.Status(http.StatusOK)
	})
	return router, &seen
}

func TestRequestIDMintsWhenAbsent(t *testing.T) {
	router, seen := newRequestIDRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	echoed := w.Header().Get("X-Request-ID")
	require.NotEmpty(t, echoed)
	_, err := uuid.Parse(echoed)
	assert.NoError(t, err, "minted ID is a uuid")
	assert.Equal(t, echoed, *seen, "handler sees the same ID the client gets back")
}

func TestRequestIDHonorsCallerSuppliedID(t *testing.T) {
	router, seen := newRequestIDRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "upload-42")
	router.ServeHTTP(w, req)

	assert.Equal(t, "upload-42", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "upload-42", *seen)
}

func TestRequestIDReplacesOversizedID(t *testing.T) {
	router, _ := newRequestIDRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", strings.Repeat("x", maxRequestIDLen+1))
	router.ServeHTTP(w, req)

	echoed := w.Header().Get("X-Request-ID")
	_, err := uuid.Parse(echoed)
	assert.NoError(t, err, "oversized caller ID is replaced with a minted one")
}

func TestRequestIDFromWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, RequestIDFrom(c))
}
