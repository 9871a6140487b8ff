package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStaticSecretAuthorize(t *testing.T) {
	tests := []struct {
		name       string
		secret     StaticSecret
		credential string
		want       bool
	}{
		{"correct secret", "grammy2026", "grammy2026", true},
		{"wrong secret", "grammy2026", "oscars", false},
		{"empty credential", "grammy2026", "", false},
		{"empty secret rejects everything", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.secret.Authorize(tt.credential); got != tt.want {
				t.Errorf("Authorize(%q) = %v, want %v", tt.credential, got, tt.want)
			}
		})
	}
}

func TestLoginAndValidate(t *testing.T) {
	a := New(StaticSecret("grammy2026"))

	token, ok := a.Login("grammy2026")
	if !ok {
		t.Fatal("Login() with correct credential failed")
	}
	if token == "" {
		t.Fatal("Login() returned empty token")
	}

	if !a.ValidateSession(token) {
		t.Error("ValidateSession() = false for fresh token")
	}

	if _, ok := a.Login("wrong"); ok {
		t.Error("Login() succeeded with wrong credential")
	}
}

func TestLogout(t *testing.T) {
	a := New(StaticSecret("grammy2026"))

	token, _ := a.Login("grammy2026")
	a.Logout(token)

	if a.ValidateSession(token) {
		t.Error("ValidateSession() = true after logout")
	}
}

func TestValidateUnknownToken(t *testing.T) {
	a := New(StaticSecret("grammy2026"))
	if a.ValidateSession("deadbeef") {
		t.Error("ValidateSession() = true for unknown token")
	}
}

func TestRequireAuthAPI(t *testing.T) {
	a := New(StaticSecret("grammy2026"))

	handler := a.RequireAuthAPI(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// No cookie
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/winners", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d without cookie, want 401", rec.Code)
	}

	// Valid cookie
	token, _ := a.Login("grammy2026")
	req := httptest.NewRequest(http.MethodGet, "/api/admin/winners", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d with valid cookie, want 200", rec.Code)
	}
}
