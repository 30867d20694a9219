package cors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func runCORS(t *testing.T, origins []string, method, origin string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/api/v1/dashboard", nil)
	if origin != "" {
		c.Request.Header.Set("Origin", origin)
	}
	New(origins)(c)
	return w
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	w := runCORS(t, []string{"https://portal.example.com/"}, http.MethodGet, "https://portal.example.com")

	assert.Equal(t, "https://portal.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "X-Request-ID", w.Header().Get("Access-Control-Expose-Headers"))
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	w := runCORS(t, []string{"https://portal.example.com"}, http.MethodGet, "https://evil.example.com")

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSWildcardWithoutCredentials(t *testing.T) {
	w := runCORS(t, nil, http.MethodGet, "https://anywhere.example.com")

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	w := runCORS(t, nil, http.MethodOptions, "https://anywhere.example.com")

	assert.Equal(t, http.StatusNoContent, w.Code)
}
