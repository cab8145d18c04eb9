package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/playgroundlabs/playground-api/internal/api/middleware"
	"github.com/playgroundlabs/playground-api/internal/core/domain"
	"github.com/playgroundlabs/playground-api/internal/infrastructure/config"
)

// memAccountRepo is an in-memory AccountRepository that enforces email
// uniqueness at insert time, like the Mongo unique index does.
type memAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account
	nextID   int
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{accounts: make(map[string]*domain.Account)}
}

func (r *memAccountRepo) FindByEmail(_ context.Context, emailID string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[emailID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *account
	return &clone, nil
}

func (r *memAccountRepo) Insert(_ context.Context, account *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.accounts[account.EmailID]; exists {
		return nil, domain.ErrConflict
	}
	r.nextID++
	clone := *account
	clone.ID = "acc_" + strconv.Itoa(r.nextID)
	clone.CreatedAt = time.Now()
	r.accounts[account.EmailID] = &clone
	returned := clone
	return &returned, nil
}

// The router registers Prometheus collectors on the default registry, so it
// can only be built once per process. Tests share one instance and use
// distinct emails.
var (
	routerOnce sync.Once
	testRouter *echo.Echo
)

func router(t *testing.T) *echo.Echo {
	t.Helper()
	routerOnce.Do(func() {
		cfg := &config.Config{
			JWTSecret:    "router-test-secret",
			TokenTTL:     8 * time.Hour,
			CookieMaxAge: 3600,
			CORSOrigin:   "http://localhost:3000",
		}
		testRouter = NewRouter(Deps{
			Config:   cfg,
			Accounts: newMemAccountRepo(),
			Logger:   zerolog.Nop(),
		})
	})
	return testRouter
}

func doJSON(e *echo.Echo, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func findSessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestRouter_SignupLoginProfileFlow(t *testing.T) {
	e := router(t)

	rec := doJSON(e, http.MethodPost, "/auth/signup",
		`{"emailid":"flow@x.com","firstname":"Alice","lastname":"Walker","phoneno":"5550100","password":"hunter2"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	if findSessionCookie(rec) != nil {
		t.Fatalf("signup must not set a session cookie")
	}

	rec = doJSON(e, http.MethodPost, "/auth/login", `{"emailid":"flow@x.com","password":"hunter2"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	cookie := findSessionCookie(rec)
	if cookie == nil || cookie.Value == "" {
		t.Fatalf("login must set a session cookie")
	}

	rec = doJSON(e, http.MethodGet, "/auth/profile", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("profile: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("profile: invalid json: %v", err)
	}
	profile, ok := resp["profile"].(map[string]any)
	if !ok || profile["emailid"] != "flow@x.com" {
		t.Fatalf("unexpected profile body: %s", rec.Body.String())
	}

	rec = doJSON(e, http.MethodGet, "/auth/logout", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", rec.Code)
	}
	cleared := findSessionCookie(rec)
	if cleared == nil || cleared.Value != "" || cleared.MaxAge != -1 {
		t.Fatalf("logout must clear the session cookie, got %+v", cleared)
	}
}

func TestRouter_DuplicateSignup(t *testing.T) {
	e := router(t)

	body := `{"emailid":"dup@x.com","firstname":"Bob","lastname":"Ross","phoneno":"5550101","password":"p1"}`
	if rec := doJSON(e, http.MethodPost, "/auth/signup", body); rec.Code != http.StatusCreated {
		t.Fatalf("first signup: expected 201, got %d", rec.Code)
	}

	rec := doJSON(e, http.MethodPost, "/auth/signup", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate signup: expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "already registered") {
		t.Fatalf("unexpected duplicate message: %s", rec.Body.String())
	}
}

func TestRouter_LoginWrongPassword(t *testing.T) {
	e := router(t)

	body := `{"emailid":"wrongpw@x.com","firstname":"Cara","lastname":"Diaz","phoneno":"5550102","password":"right"}`
	if rec := doJSON(e, http.MethodPost, "/auth/signup", body); rec.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d", rec.Code)
	}

	rec := doJSON(e, http.MethodPost, "/auth/login", `{"emailid":"wrongpw@x.com","password":"wrong"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid email ID or password") {
		t.Fatalf("unexpected message: %s", rec.Body.String())
	}

	// Unknown email collapses to the same response.
	rec = doJSON(e, http.MethodPost, "/auth/login", `{"emailid":"ghost@x.com","password":"whatever"}`)
	if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), "invalid email ID or password") {
		t.Fatalf("unknown email must be indistinguishable: %d %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_CrossMethodSignup(t *testing.T) {
	e := router(t)

	rec := doJSON(e, http.MethodPost, "/auth/google-signup", `{"emailid":"cross@x.com","firstname":"Dee"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("google signup: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(e, http.MethodPost, "/auth/signup",
		`{"emailid":"cross@x.com","firstname":"Dee","lastname":"Dee","phoneno":"5550103","password":"p1"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("cross-method signup: expected 400, got %d", rec.Code)
	}
}

func TestRouter_GoogleLoginFlow(t *testing.T) {
	e := router(t)

	rec := doJSON(e, http.MethodPost, "/auth/google-signup", `{"emailid":"google@x.com","firstname":"Grace"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("google signup: expected 201, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/auth/google-login", `{"emailid":"google@x.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("google login: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if cookie := findSessionCookie(rec); cookie == nil || cookie.Value == "" {
		t.Fatalf("google login must set a session cookie")
	}

	// Unregistered Google identity is told to sign up first.
	rec = doJSON(e, http.MethodPost, "/auth/google-login", `{"emailid":"new-google@x.com"}`)
	if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), "please sign up") {
		t.Fatalf("unexpected response: %d %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_SessionGate(t *testing.T) {
	e := router(t)

	rec := doJSON(e, http.MethodGet, "/auth/profile", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no cookie: expected 401, got %d", rec.Code)
	}

	garbage := &http.Cookie{Name: middleware.SessionCookieName, Value: "not-a-token"}
	rec = doJSON(e, http.MethodGet, "/auth/profile", "", garbage)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("garbage cookie: expected 403, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid Token") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRouter_Liveness(t *testing.T) {
	e := router(t)

	rec := doJSON(e, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
