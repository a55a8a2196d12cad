package tests

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/pine007/pi-todo/internal/adapter/http/middleware"
	"github.com/pine007/pi-todo/internal/core/domain"
)

var testIdentity = domain.Identity{UserID: 1, Username: "alice"}

func newRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.LanguageMiddleware())
	return r
}

// authenticated injects a verified identity the way the auth middleware
// would, so handler tests do not need real tokens.
func authenticated(identity domain.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("identity", identity)
		c.Next()
	}
}

func doRequest(t *testing.T, r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
