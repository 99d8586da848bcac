package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"travelstar/internal/api/controllers"
	"travelstar/internal/repositories"
	"travelstar/internal/services"
	"travelstar/pkg/metrics"
	"travelstar/pkg/utils"
)

const parisAnswer = "TITLE:\nParis on a Budget\nITINERARY:\nDay 1: Museums\n- Morning: Louvre\nDay 2: Montmartre\n- Evening: Sacré-Cœur\nBUDGET:\nTotal: 500 EUR\nTIPS:\n- Buy a museum pass\nPACKING LIST:\n- Umbrella"

type stubCompletionClient struct {
	text string
	err  error
}

func (s *stubCompletionClient) Generate(context.Context, string) (string, error) {
	return s.text, s.err
}

func (s *stubCompletionClient) Model() string { return "stub" }

type testApp struct {
	router *gin.Engine
	llm    *stubCompletionClient
	store  *repositories.MemoryStore
}

func setupRouterTest(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()
	m := metrics.New()
	store := repositories.NewMemoryStore()
	llm := &stubCompletionClient{text: parisAnswer}

	accountService := services.NewAccountService(store, utils.NewSessionSigner("test-secret"), log)
	historyService := services.NewHistoryService(store, log)
	plannerService := services.NewPlannerService(services.NewPromptService(), services.NewRenderService(), historyService, llm, m, log)

	router, err := NewRouter(RouterParams{
		AccountController: controllers.NewAccountController(accountService, m, log),
		PlanController:    controllers.NewPlanController(plannerService, historyService, log),
		PageController:    controllers.NewPageController(accountService, plannerService, historyService, m, log),
		Sessions:          accountService,
		Metrics:           m,
		Log:               log,
	})
	require.NoError(t, err)

	return &testApp{router: router, llm: llm, store: store}
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func jsonRequest(method, path, token string, body any) *http.Request {
	var payload io.Reader = http.NoBody
	if body != nil {
		b, _ := json.Marshal(body)
		payload = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func formRequest(path string, form url.Values, cookie *http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

func pageRequest(path string, cookie *http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	TraceID string          `json:"trace_id"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func apiLogin(t *testing.T, app *testApp, username, password string) string {
	t.Helper()
	w := app.do(jsonRequest(http.MethodPost, "/api/accounts/register", "", map[string]string{
		"username": username, "password": password, "confirm_password": password,
	}))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = app.do(jsonRequest(http.MethodPost, "/api/accounts/login", "", map[string]string{
		"username": username, "password": password,
	}))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestAPIAccounts(t *testing.T) {
	app := setupRouterTest(t)
	apiLogin(t, app, "alice", "s3cret")

	w := app.do(jsonRequest(http.MethodPost, "/api/accounts/register", "", map[string]string{"username": "alice", "password": "other"}))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Username already exists", decode(t, w).Message)

	w = app.do(jsonRequest(http.MethodPost, "/api/accounts/register", "", map[string]string{"username": "bob", "password": "a", "confirm_password": "b"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(jsonRequest(http.MethodPost, "/api/accounts/login", "", map[string]string{"username": "alice", "password": "wrong"}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid username or password", decode(t, w).Message)
}

func TestAPIPlans(t *testing.T) {
	app := setupRouterTest(t)
	token := apiLogin(t, app, "alice", "s3cret")
	trip := map[string]any{"destination": "Paris", "days": 3, "budget": 500, "currency": "EUR", "interests": []string{"museums"}}

	w := app.do(jsonRequest(http.MethodPost, "/api/plans", "", trip))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.do(jsonRequest(http.MethodPost, "/api/plans", token, trip))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	env := decode(t, w)
	assert.NotEmpty(t, env.TraceID)
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))

	var generated struct {
		Saved bool `json:"saved"`
		Plan  struct {
			ID       string `json:"id"`
			Sections struct {
				Title  string `json:"title"`
				Budget string `json:"budget"`
			} `json:"sections"`
		} `json:"plan"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &generated))
	assert.True(t, generated.Saved)
	assert.Equal(t, "Paris on a Budget", generated.Plan.Sections.Title)
	assert.Equal(t, "Total: 500 EUR", generated.Plan.Sections.Budget)

	w = app.do(jsonRequest(http.MethodGet, "/api/plans", token, nil))
	require.Equal(t, http.StatusOK, w.Code)
	var entries []struct {
		ID          string `json:"id"`
		Destination string `json:"destination"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, generated.Plan.ID, entries[0].ID)

	w = app.do(jsonRequest(http.MethodGet, "/api/plans/"+generated.Plan.ID, token, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.do(jsonRequest(http.MethodGet, "/api/plans/not-a-plan", token, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	bobToken := apiLogin(t, app, "bob", "pw")
	w = app.do(jsonRequest(http.MethodGet, "/api/plans/"+generated.Plan.ID, bobToken, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPIPlanErrors(t *testing.T) {
	app := setupRouterTest(t)
	token := apiLogin(t, app, "alice", "s3cret")

	w := app.do(jsonRequest(http.MethodPost, "/api/plans", token, map[string]any{"destination": "", "days": 3, "budget": 500}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please enter a destination to continue", decode(t, w).Message)

	app.llm.err = fmt.Errorf("%w: 429", utils.ErrRateLimited)
	w = app.do(jsonRequest(http.MethodPost, "/api/plans", token, map[string]any{"destination": "Paris", "days": 3, "budget": 500}))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	app.llm.err = fmt.Errorf("%w: eof", utils.ErrInferenceTransport)
	w = app.do(jsonRequest(http.MethodPost, "/api/plans", token, map[string]any{"destination": "Paris", "days": 3, "budget": 500}))
	assert.Equal(t, http.StatusBadGateway, w.Code)

	plans, err := app.store.ListByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestPages(t *testing.T) {
	app := setupRouterTest(t)

	w := app.do(pageRequest("/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome to Travelstar!")

	w = app.do(pageRequest("/history", nil))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = app.do(formRequest("/register", url.Values{"username": {"alice"}, "password": {"s3cret"}, "confirm_password": {"s3cret"}}, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Registration successful! Please login.")

	w = app.do(formRequest("/register", url.Values{"username": {"alice"}, "password": {"s3cret"}}, nil))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Username already exists")

	w = app.do(formRequest("/register", url.Values{"username": {strings.Repeat("u", 65)}, "password": {"s3cret"}}, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Username must be at most 64 characters")

	w = app.do(formRequest("/register", url.Values{"username": {"bob"}, "password": {strings.Repeat("p", 80)}}, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Password is too long")

	w = app.do(formRequest("/login", url.Values{"username": {"alice"}, "password": {"wrong"}}, nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password")

	w = app.do(formRequest("/login", url.Values{"username": {"alice"}, "password": {"s3cret"}}, nil))
	require.Equal(t, http.StatusSeeOther, w.Code)
	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == utils.SessionCookieName {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)

	w = app.do(pageRequest("/", session))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Plan Your Perfect Trip")
	assert.Contains(t, body, "Welcome back, alice")

	w = app.do(formRequest("/plan", url.Values{
		"destination":  {"Paris"},
		"days":         {"2"},
		"budget":       {"500"},
		"currency":     {"EUR"},
		"interests":    {"Art & Museums"},
		"season":       {"Spring"},
		"travel_style": {"Foodie"},
	}, session))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body = w.Body.String()
	assert.Contains(t, body, "Your Paris Itinerary")
	assert.Contains(t, body, "Paris on a Budget")
	assert.Contains(t, body, "Day 1: Museums")
	assert.Contains(t, body, "Morning: Louvre")
	assert.Contains(t, body, "Buy a museum pass")
	assert.Contains(t, body, "Mild weather with blooming flowers")

	w = app.do(pageRequest("/history", session))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Paris")

	plans, err := app.store.ListByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, plans, 1)

	w = app.do(pageRequest("/history/"+plans[0].ID.String(), session))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Umbrella")

	w = app.do(formRequest("/plan", url.Values{"destination": {""}, "days": {"2"}, "budget": {"500"}}, session))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please enter a destination to continue")

	app.llm.err = utils.ErrEmptyResponse
	w = app.do(formRequest("/plan", url.Values{"destination": {"Rome"}, "days": {"2"}, "budget": {"500"}}, session))
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to generate itinerary. Please try again.")

	w = app.do(pageRequest("/logout", session))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Result().Cookies())

	w = app.do(formRequest("/logout", url.Values{}, session))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == utils.SessionCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestStaticPagesAndFallbacks(t *testing.T) {
	app := setupRouterTest(t)

	w := app.do(pageRequest("/tips", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Smart Travel Tips")

	w = app.do(pageRequest("/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")

	w = app.do(jsonRequest(http.MethodGet, "/api/nowhere", "", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", decode(t, w).Status)

	w = app.do(pageRequest("/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "travelstar_persistence_failures_total")

	w = app.do(pageRequest("/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
