package utils

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(req *http.Request) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func TestExtractClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded for wins", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1", "X-Real-IP": "198.51.100.2"}, "10.0.0.9:1234", "203.0.113.7"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.2"}, "10.0.0.9:1234", "198.51.100.2"},
		{"garbage header falls back", map[string]string{"X-Forwarded-For": "nope"}, "10.0.0.9:1234", "10.0.0.9"},
		{"remote addr", nil, "[::1]:80", "::1"},
		{"unparseable remote", nil, "pipe", "127.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ExtractClientIP(newContext(req)))
		})
	}
}

func TestParamUUID(t *testing.T) {
	id := uuid.New()
	c := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	got, err := ParamUUID(c, "id")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	c.Params = gin.Params{{Key: "id", Value: "42"}}
	_, err = ParamUUID(c, "id")
	assert.Error(t, err)
}

func TestFormUUID(t *testing.T) {
	id := uuid.New()
	body := url.Values{"genreid": {id.String()}}.Encode()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	got, err := FormUUID(newContext(req), "genreid")
	require.NoError(t, err)
	assert.Equal(t, id, got)
}
