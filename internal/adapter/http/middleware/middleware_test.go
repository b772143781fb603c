package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"payment_sync/internal/infrastructure/metrics"
)

const testSecret = "hook-secret"

func signed(t *testing.T, method jwt.SigningMethod, key any, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(method, jwt.MapClaims{
		"sub": "platform",
		"exp": exp.Unix(),
	})
	s, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func newAuthRouter(secret string) *gin.Engine {
	r := gin.New()
	r.Use(BearerAuth(secret))
	r.GET("/v1/orders/:code", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextSubjectKey))
	})
	return r
}

func TestBearerAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		secret   string
		header   string
		wantCode int
		wantBody string
	}{
		{name: "disabled without secret", secret: "", header: "", wantCode: http.StatusOK},
		{name: "missing header", secret: testSecret, header: "", wantCode: http.StatusUnauthorized},
		{name: "wrong scheme", secret: testSecret, header: "Basic abc", wantCode: http.StatusUnauthorized},
		{name: "garbage token", secret: testSecret, header: "Bearer not-a-jwt", wantCode: http.StatusUnauthorized},
		{
			name:     "wrong key",
			secret:   testSecret,
			header:   "Bearer " + signed(t, jwt.SigningMethodHS256, []byte("other"), time.Now().Add(time.Hour)),
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "expired",
			secret:   testSecret,
			header:   "Bearer " + signed(t, jwt.SigningMethodHS256, []byte(testSecret), time.Now().Add(-time.Hour)),
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "valid",
			secret:   testSecret,
			header:   "Bearer " + signed(t, jwt.SigningMethodHS256, []byte(testSecret), time.Now().Add(time.Hour)),
			wantCode: http.StatusOK,
			wantBody: "platform",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/orders/100001", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			newAuthRouter(tt.secret).ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d body=%s", tt.wantCode, w.Code, w.Body.String())
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Fatalf("expected body %q, got %q", tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.NewServerMetrics("api")

	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/v1/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	if got := testutil.ToFloat64(m.Requests.WithLabelValues("/v1/ping", "200")); got != 2 {
		t.Fatalf("expected 2 ping requests, got %v", got)
	}
	if got := testutil.ToFloat64(m.Requests.WithLabelValues("unmatched", "404")); got != 1 {
		t.Fatalf("expected 1 unmatched request, got %v", got)
	}
}
