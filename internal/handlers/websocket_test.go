package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"lifeboard/internal/models"
	"lifeboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// --- parseInterval unit tests ---

func TestParseInterval(t *testing.T) {
	h := NewHandler(&service.Service{}, nil)

	cases := []struct {
		name string
		u    string
		want time.Duration
	}{
		{"default_when_missing", "/ws", 5 * time.Second},
		{"interval_string_valid", "/ws?interval=200ms", 200 * time.Millisecond},
		{"interval_ms_valid", "/ws?interval_ms=150", 150 * time.Millisecond},
		{"interval_too_large", "/ws?interval=2m", 5 * time.Second},
		{"interval_ms_too_large", "/ws?interval_ms=120000", 5 * time.Second},
		{"interval_invalid_string", "/ws?interval=bogus", 5 * time.Second},
		{"both_present_interval_wins", "/ws?interval=2s&interval_ms=150", 2 * time.Second},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.u, nil)
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			got := h.parseInterval(c)
			if got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

// --- websocket integration tests ---

func newPortfolioWSServer(s *service.Service) *httptest.Server {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/ws", h.sessionMiddleware, h.wsPortfolio)
	return httptest.NewServer(r)
}

func wsURL(srv *httptest.Server, rawQuery string) string {
	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"
	u.RawQuery = rawQuery
	return u.String()
}

func TestWebSocket_PortfolioStream_InitialAndPeriodic(t *testing.T) {
	sessions := &mockSessions{resolveID: 7}
	portfolio := &mockPortfolio{valuateResp: []models.Position{
		{
			Holding:     models.Holding{ID: 1, UserID: 7, Symbol: "AAPL", Shares: 10, Price: 150},
			Current:     200,
			MarketValue: 2000,
			Live:        true,
		},
	}}
	s := &service.Service{Sessions: sessions, Portfolio: portfolio}

	srv := newPortfolioWSServer(s)
	defer srv.Close()

	header := http.Header{}
	header.Set("Authorization", "Bearer tok123")
	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(wsURL(srv, "interval_ms=20"), header)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	type envelope struct {
		Type  string          `json:"type"`
		Data  json.RawMessage `json:"data"`
		Error string          `json:"error"`
	}

	// Read initial snapshot
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read initial: %v", err)
	}
	if env.Type != "portfolio" || len(env.Data) == 0 {
		t.Fatalf("bad envelope: %+v", env)
	}
	var positions []models.Position
	if err := json.Unmarshal(env.Data, &positions); err != nil {
		t.Fatalf("unmarshal positions: %v", err)
	}
	if len(positions) != 1 || positions[0].Symbol != "AAPL" || positions[0].MarketValue != 2000 {
		t.Fatalf("unexpected positions: %+v", positions)
	}

	// Read a subsequent tick
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	env = envelope{}
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read second: %v", err)
	}
	if env.Type != "portfolio" {
		t.Fatalf("expected type=portfolio, got %+v", env)
	}
	if got := portfolio.valuatedFor(); got != 7 {
		t.Fatalf("valuated for user %d, want 7 from session", got)
	}
}

func TestWebSocket_WithoutSession_Rejected(t *testing.T) {
	sessions := &mockSessions{resolveErr: service.ErrUnauthenticated}
	s := &service.Service{Sessions: sessions, Portfolio: &mockPortfolio{}}

	srv := newPortfolioWSServer(s)
	defer srv.Close()

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	_, resp, err := dialer.Dial(wsURL(srv, ""), nil)
	if err == nil {
		t.Fatal("expected handshake failure without a session")
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 handshake response, got %+v", resp)
	}
}

func TestWebSocket_InitialValuateError_Closes(t *testing.T) {
	sessions := &mockSessions{resolveID: 7}
	portfolio := &mockPortfolio{valuateErr: errors.New("boom")}
	s := &service.Service{Sessions: sessions, Portfolio: portfolio}

	srv := newPortfolioWSServer(s)
	defer srv.Close()

	header := http.Header{}
	header.Set("Authorization", "Bearer tok123")
	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(wsURL(srv, ""), header)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	// The server should close immediately after the failed initial valuation
	_ = conn.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
	var raw json.RawMessage
	if err := conn.ReadJSON(&raw); err == nil {
		t.Fatalf("expected read error (closed), got message: %s", string(raw))
	}
}
