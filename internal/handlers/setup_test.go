package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"greatblog/internal/config"
	"greatblog/internal/db"
	"greatblog/internal/middleware"
	"greatblog/internal/router"
	"greatblog/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// setupTestServer wires the full middleware and route stack against an
// in-memory SQLite database.
func setupTestServer(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	users := store.NewUserStore(gdb)
	posts := store.NewPostStore(gdb)

	r := gin.New()
	r.Use(sessions.Sessions("greatblog_session", cookie.NewStore([]byte("test-secret"))))
	r.Use(middleware.LoadUser(users))
	router.RegisterRoutes(r, cfg, users, posts)
	return r
}

func testConfig() config.Config {
	return config.Config{MaxPageSize: 100}
}

// doJSON performs a request with an optional JSON body and session cookies.
func doJSON(t *testing.T, r *gin.Engine, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// registerUser registers a user and returns the session cookies.
func registerUser(t *testing.T, r *gin.Engine, name, email string) []*http.Cookie {
	t.Helper()
	body := `{"name":"` + name + `","email":"` + email + `","password":"password123"}`
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", body, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status = %d, body = %s", email, w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("register did not set a session cookie")
	}
	return cookies
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return m
}
