package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yungbote/teampulse-backend/internal/platform/logger"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func newProtectedRouter(expectedKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	am := NewAPIKeyMiddleware(testLogger(), expectedKey)
	r.Use(am.RequireAPIKey())
	r.GET("/protected", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestRequireAPIKeyAllowsMatchingKey(t *testing.T) {
	t.Parallel()
	r := newProtectedRouter("sekret")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("X-API-KEY", "sekret")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusOK)
	}
}

func TestRequireAPIKeyRejectsMissingAndWrongKeys(t *testing.T) {
	t.Parallel()
	r := newProtectedRouter("sekret")

	cases := map[string]string{
		"missing": "",
		"wrong":   "not-the-key",
	}
	for name, key := range cases {
		key := key
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if key != "" {
				req.Header.Set("X-API-KEY", key)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusUnauthorized)
			}
			var envelope struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if envelope.Error.Code != "invalid_api_key" {
				t.Fatalf("unexpected error code: %q", envelope.Error.Code)
			}
		})
	}
}
