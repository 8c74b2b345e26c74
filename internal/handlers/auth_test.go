package handlers_test

import (
	"net/http"
	"testing"
)

func TestHealth(t *testing.T) {
	r := setupTestServer(t, testConfig())

	w := doJSON(t, r, http.MethodGet, "/api/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	if body["message"] != "Server is running" {
		t.Errorf("message = %v", body["message"])
	}
	if body["timestamp"] == nil {
		t.Error("timestamp missing")
	}
}

func TestRegisterLoginMe(t *testing.T) {
	r := setupTestServer(t, testConfig())

	cookies := registerUser(t, r, "Test User", "test@example.com")

	// Session from register is immediately usable
	w := doJSON(t, r, http.MethodGet, "/api/auth/me", "", cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("me: status = %d, body = %s", w.Code, w.Body.String())
	}
	me := decodeBody(t, w)
	if me["email"] != "test@example.com" || me["name"] != "Test User" {
		t.Errorf("me = %v", me)
	}
	if _, leaked := me["password"]; leaked {
		t.Error("password leaked in response")
	}

	// Anonymous /me is rejected
	w = doJSON(t, r, http.MethodGet, "/api/auth/me", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous me: status = %d, want 401", w.Code)
	}

	// Fresh login works, wrong password does not
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", `{"email":"test@example.com","password":"password123"}`, nil)
	if w.Code != http.StatusOK {
		t.Errorf("login: status = %d, body = %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", `{"email":"test@example.com","password":"wrong-pass"}`, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad login: status = %d, want 401", w.Code)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	r := setupTestServer(t, testConfig())

	registerUser(t, r, "First", "dup@example.com")
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", `{"name":"Second","email":"dup@example.com","password":"password123"}`, nil)
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
}

func TestRegister_InvalidPayload(t *testing.T) {
	r := setupTestServer(t, testConfig())

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", `{"name":"X","email":"not-an-email","password":"password123"}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad email: status = %d, want 400", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", `{"name":"X","email":"x@example.com","password":"short"}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("short password: status = %d, want 400", w.Code)
	}
}

func TestLogout(t *testing.T) {
	r := setupTestServer(t, testConfig())

	cookies := registerUser(t, r, "Test User", "test@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/auth/logout", "", cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("logout: status = %d", w.Code)
	}

	// The cleared session no longer authenticates
	cleared := w.Result().Cookies()
	w = doJSON(t, r, http.MethodGet, "/api/auth/me", "", cleared)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("me after logout: status = %d, want 401", w.Code)
	}
}
