package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/ArowuTest/newslens-backend/internal/config"
	tokens "github.com/ArowuTest/newslens-backend/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, w.Body.String())
	require.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = serve(r, req)
	require.Equal(t, "abc-123", w.Body.String())
}

func TestRecoveryMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware(), RecoveryMiddleware())
	r.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"Something went wrong!"}`, w.Body.String())
}

func TestLoggerMiddleware_PassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(LoggerMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.Status(http.StatusTeapot)
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusTeapot, w.Code)
}

func TestCORSMiddleware(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{AllowedOrigins: []string{"*"}}}
	r := gin.New()
	r.Use(CORSMiddleware(cfg))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://news.example")
	w := serve(r, req)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_RestrictedOrigins(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{AllowedOrigins: []string{"https://app.example"}}}
	r := gin.New()
	r.Use(CORSMiddleware(cfg))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://app.example")
	w := serve(r, req)
	require.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = serve(r, req)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestNotFoundHandler(t *testing.T) {
	r := gin.New()
	r.NoRoute(NotFoundHandler)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error":"Not Found"}`, w.Body.String())
}

func newAuthRouter(verifier TokenVerifier) *gin.Engine {
	r := gin.New()
	r.Use(JWTAuthMiddleware(verifier))
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(SubjectKey))
	})
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	svc, err := tokens.NewTokenService("secret", time.Hour)
	require.NoError(t, err)
	token, err := svc.Issue("dashboard")
	require.NoError(t, err)

	r := newAuthRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := serve(r, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "dashboard", w.Body.String())
}

func TestJWTAuthMiddleware_Rejections(t *testing.T) {
	svc, err := tokens.NewTokenService("secret", time.Hour)
	require.NoError(t, err)
	expired, err := tokens.NewTokenService("secret", -time.Hour)
	require.NoError(t, err)
	stale, err := expired.Issue("dashboard")
	require.NoError(t, err)

	r := newAuthRouter(svc)
	cases := map[string]struct {
		header string
		want   string
	}{
		"missing": {"", "Authorization header is required"},
		"scheme":  {"Basic abc", "Authorization header must start with Bearer "},
		"garbage": {"Bearer not-a-token", "Invalid token"},
		"expired": {"Bearer " + stale, "Token has expired"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := serve(r, req)
			require.Equal(t, http.StatusUnauthorized, w.Code)
			require.Contains(t, w.Body.String(), tc.want)
		})
	}
}

type stubChecker struct {
	params    map[string]string
	signature string
	ok        bool
}

func (s *stubChecker) Validate(params map[string]string, signature string) bool {
	s.params = params
	s.signature = signature
	return s.ok
}

func TestTwilioSignatureMiddleware(t *testing.T) {
	checker := &stubChecker{ok: true}
	r := gin.New()
	r.Use(TwilioSignatureMiddleware(checker))
	r.POST("/sms-webhook", func(c *gin.Context) {
		c.String(http.StatusOK, c.PostForm("Body"))
	})

	newReq := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/sms-webhook", strings.NewReader("From=%2B1555&Body=hello"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("X-Twilio-Signature", "sig")
		return req
	}

	w := serve(r, newReq())
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "hello", w.Body.String())
	require.Equal(t, map[string]string{"From": "+1555", "Body": "hello"}, checker.params)
	require.Equal(t, "sig", checker.signature)

	checker.ok = false
	w = serve(r, newReq())
	require.Equal(t, http.StatusForbidden, w.Code)
}
