package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lifeboard/internal/service"

	"github.com/gin-gonic/gin"
)

// minimal router wiring only the middleware + a protected endpoint
func newMiddlewareOnlyRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/secure", h.sessionMiddleware, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "userId": currentUserID(c)})
	})
	return r
}

func TestSessionMiddleware_Errors(t *testing.T) {
	type want struct {
		code   int
		errMsg string
	}
	cases := []struct {
		name       string
		header     string
		cookie     string
		resolveErr error
		want       want
	}{
		{
			name: "no cookie, no header",
			want: want{code: http.StatusUnauthorized, errMsg: "missing session"},
		},
		{
			name:   "wrong auth scheme",
			header: "Token abc",
			want:   want{code: http.StatusUnauthorized, errMsg: "missing session"},
		},
		{
			name:       "revoked or garbage token",
			header:     "Bearer stale",
			resolveErr: service.ErrUnauthenticated,
			want:       want{code: http.StatusUnauthorized, errMsg: "invalid or expired session"},
		},
		{
			name:       "expired cookie session",
			cookie:     "stale",
			resolveErr: service.ErrUnauthenticated,
			want:       want{code: http.StatusUnauthorized, errMsg: "invalid or expired session"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sessions := &mockSessions{resolveID: 1, resolveErr: tc.resolveErr}
			s := &service.Service{Sessions: sessions}
			r := newMiddlewareOnlyRouter(s)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: tc.cookie})
			}
			r.ServeHTTP(w, req)

			if w.Code != tc.want.code {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.want.code, w.Body.String())
			}

			var out struct {
				Error string `json:"error"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Error != tc.want.errMsg {
				t.Fatalf("error message: got %q, want %q", out.Error, tc.want.errMsg)
			}
		})
	}
}

func TestSessionMiddleware_CookieAndBearerBothWork(t *testing.T) {
	for _, mode := range []string{"cookie", "bearer"} {
		t.Run(mode, func(t *testing.T) {
			sessions := &mockSessions{resolveID: 9}
			s := &service.Service{Sessions: sessions}
			r := newMiddlewareOnlyRouter(s)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if mode == "cookie" {
				req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "tok123"})
			} else {
				req.Header.Set("Authorization", "Bearer tok123")
			}
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
			}
			var out struct {
				UserID int `json:"userId"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.UserID != 9 {
				t.Fatalf("userId=%d, want 9", out.UserID)
			}
			if len(sessions.resolved) != 1 || sessions.resolved[0] != "tok123" {
				t.Fatalf("resolved tokens: %v", sessions.resolved)
			}
		})
	}
}

func TestSessionMiddleware_CookieWinsOverHeader(t *testing.T) {
	sessions := &mockSessions{resolveID: 9}
	s := &service.Service{Sessions: sessions}
	r := newMiddlewareOnlyRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "cookie-token"})
	req.Header.Set("Authorization", "Bearer header-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if sessions.resolved[0] != "cookie-token" {
		t.Fatalf("expected cookie token resolved, got %q", sessions.resolved[0])
	}
}
