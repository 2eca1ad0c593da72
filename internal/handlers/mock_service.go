package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"lifeboard/internal/models"
	"lifeboard/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerID  int
	registerErr error
	verifyID    int
	verifyErr   error

	lastRegisterUsername string
	lastRegisterPassword string
	lastVerifyUsername   string
}

func (m *mockAuth) Register(_ context.Context, username, password string) (int, error) {
	m.lastRegisterUsername = username
	m.lastRegisterPassword = password
	return m.registerID, m.registerErr
}

func (m *mockAuth) Verify(_ context.Context, username, password string) (int, error) {
	m.lastVerifyUsername = username
	return m.verifyID, m.verifyErr
}

type mockSessions struct {
	startToken string
	startErr   error
	resolveID  int
	resolveErr error
	endErr     error

	startedFor []int
	resolved   []string
	ended      []string
}

func (m *mockSessions) Start(_ context.Context, userID int) (string, error) {
	m.startedFor = append(m.startedFor, userID)
	return m.startToken, m.startErr
}

func (m *mockSessions) Resolve(_ context.Context, token string) (int, error) {
	m.resolved = append(m.resolved, token)
	return m.resolveID, m.resolveErr
}

func (m *mockSessions) End(_ context.Context, token string) error {
	m.ended = append(m.ended, token)
	return m.endErr
}

func (m *mockSessions) Sweep(context.Context, time.Duration) {}

type mockNotes struct {
	listResp  []models.Note
	listErr   error
	createRes models.Note
	createErr error
	deleteErr error

	lastListOwner   int
	lastCreateOwner int
	lastContent     string
	lastDeleteOwner int
	lastDeleteID    int
}

func (m *mockNotes) List(_ context.Context, ownerID int) ([]models.Note, error) {
	m.lastListOwner = ownerID
	return m.listResp, m.listErr
}

func (m *mockNotes) Create(_ context.Context, ownerID int, content string) (models.Note, error) {
	m.lastCreateOwner = ownerID
	m.lastContent = content
	return m.createRes, m.createErr
}

func (m *mockNotes) Delete(_ context.Context, ownerID, id int) error {
	m.lastDeleteOwner = ownerID
	m.lastDeleteID = id
	return m.deleteErr
}

type mockTasks struct {
	listResp  []models.Task
	listErr   error
	createRes models.Task
	createErr error
	toggleRes models.Task
	toggleErr error
	deleteErr error

	lastCreateOwner int
	lastToggleOwner int
	lastToggleID    int
	lastDeleteID    int
}

func (m *mockTasks) List(_ context.Context, ownerID int) ([]models.Task, error) {
	return m.listResp, m.listErr
}

func (m *mockTasks) Create(_ context.Context, ownerID int, title, description string) (models.Task, error) {
	m.lastCreateOwner = ownerID
	return m.createRes, m.createErr
}

func (m *mockTasks) Toggle(_ context.Context, ownerID, id int) (models.Task, error) {
	m.lastToggleOwner = ownerID
	m.lastToggleID = id
	return m.toggleRes, m.toggleErr
}

func (m *mockTasks) Delete(_ context.Context, ownerID, id int) error {
	m.lastDeleteID = id
	return m.deleteErr
}

type mockPortfolio struct {
	listResp    []models.Holding
	listErr     error
	addRes      models.Holding
	addErr      error
	deleteErr   error
	searchResp  []models.Quote
	searchErr   error
	valuateResp []models.Position
	valuateErr  error

	lastAddOwner int
	lastSearch   string
	lastDeleteID int

	// valuate bookkeeping is written from the websocket goroutine
	mu             sync.Mutex
	valuateCalls   int
	lastValuateFor int
}

func (m *mockPortfolio) List(_ context.Context, ownerID int) ([]models.Holding, error) {
	return m.listResp, m.listErr
}

func (m *mockPortfolio) Add(_ context.Context, ownerID int, symbol string, shares, price float64) (models.Holding, error) {
	m.lastAddOwner = ownerID
	return m.addRes, m.addErr
}

func (m *mockPortfolio) Delete(_ context.Context, ownerID, id int) error {
	m.lastDeleteID = id
	return m.deleteErr
}

func (m *mockPortfolio) Search(_ context.Context, symbol string) ([]models.Quote, error) {
	m.lastSearch = symbol
	return m.searchResp, m.searchErr
}

func (m *mockPortfolio) Valuate(_ context.Context, ownerID int) ([]models.Position, error) {
	m.mu.Lock()
	m.valuateCalls++
	m.lastValuateFor = ownerID
	m.mu.Unlock()
	return m.valuateResp, m.valuateErr
}

func (m *mockPortfolio) valuatedFor() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastValuateFor
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// authedRequest builds a request carrying a bearer session token.
func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("Authorization", "Bearer tok123")
	return req
}
