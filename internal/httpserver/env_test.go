package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"

	"github.com/texnomart/backend/internal/audit"
	"github.com/texnomart/backend/internal/cache"
	"github.com/texnomart/backend/internal/config"
	"github.com/texnomart/backend/internal/notify"
	"github.com/texnomart/backend/internal/repo"
	"github.com/texnomart/backend/internal/service"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

type testEnv struct {
	T         *testing.T
	E         *echo.Echo
	DB        *gorm.DB
	Sender    *fakeSender
	AuditDir  string
	JWTSecret []byte
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	auditDir := t.TempDir()
	sender := &fakeSender{}
	r := &repo.GormRepo{DB: db}
	jwtSecret := []byte("test-access-secret")

	catalog := &service.CatalogService{
		Repo:     r,
		Cache:    cache.New(cache.DefaultTTL),
		Audit:    audit.New(auditDir),
		Notifier: &notify.Notifier{Sender: sender, From: "shop@texnomart.uz"},
	}
	auth := &service.AuthService{
		Repo:          r,
		JWTSecret:     jwtSecret,
		RefreshSecret: []byte("test-refresh-secret"),
	}
	orders := &service.OrderService{Repo: r}

	e := echo.New()
	Register(e, &Deps{
		Catalog:   &CatalogHTTP{Svc: catalog},
		Orders:    &OrderHTTP{Svc: orders},
		Auth:      &AuthHTTP{Svc: auth},
		JWTSecret: jwtSecret,
	})

	return &testEnv{T: t, E: e, DB: db, Sender: sender, AuditDir: auditDir, JWTSecret: jwtSecret}
}

// doJSONRequest runs a request through the full router so middleware and
// bindings behave exactly as they do in production.
func (env *testEnv) doJSONRequest(method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) decodeJSON(rec *httptest.ResponseRecorder, out any) {
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), out))
}

// registerAndLogin provisions a user over the API and returns its token
// pair.
func (env *testEnv) registerAndLogin(username string) (access, refresh string) {
	creds := map[string]string{"username": username, "password": "password"}

	rec := env.doJSONRequest("POST", "/auth/register", creds, "")
	require.Equal(env.T, 201, rec.Code)

	rec = env.doJSONRequest("POST", "/auth/login", creds, "")
	require.Equal(env.T, 200, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		User    string `json:"user"`
		Tokens  struct {
			Access  string `json:"access"`
			Refresh string `json:"refresh"`
		} `json:"tokens"`
	}
	env.decodeJSON(rec, &resp)
	require.True(env.T, resp.Success)
	require.Equal(env.T, username, resp.User)
	require.NotEmpty(env.T, resp.Tokens.Access)
	require.NotEmpty(env.T, resp.Tokens.Refresh)

	return resp.Tokens.Access, resp.Tokens.Refresh
}
