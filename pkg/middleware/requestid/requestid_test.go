package requestid

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, inbound string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/dashboard", nil)
	if inbound != "" {
		c.Request.Header.Set("X-Request-ID", inbound)
	}
	Middleware()(c)
	return c, w
}

func TestRequestIDReusesInboundID(t *testing.T) {
	c, w := runRequestID(t, "upstream-42")

	assert.Equal(t, "upstream-42", Value(c))
	assert.Equal(t, "upstream-42", w.Header().Get("X-Request-ID"))
}

func TestRequestIDGeneratesWhenMissing(t *testing.T) {
	c, w := runRequestID(t, "")

	id := Value(c)
	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, w.Header().Get("X-Request-ID"))
}

func TestRequestIDReplacesUnacceptableInbound(t *testing.T) {
	c, _ := runRequestID(t, "bad id\nwith newline")
	_, err := uuid.Parse(Value(c))
	assert.NoError(t, err)

	c, _ = runRequestID(t, strings.Repeat("a", 65))
	_, err = uuid.Parse(Value(c))
	assert.NoError(t, err)
}
