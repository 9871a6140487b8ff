package identity

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGuestProviderResolve(t *testing.T) {
	p := GuestProvider{}

	tests := []struct {
		name    string
		input   string
		wantID  string
		wantErr bool
	}{
		{"plain name", "Alice", "alice", false},
		{"surrounding whitespace trimmed", "  Alice  ", "alice", false},
		{"case folded for identity", "ALICE", "alice", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"too long", strings.Repeat("a", 65), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := p.Resolve(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Resolve(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.input, err)
			}
			if id.ID != tt.wantID {
				t.Errorf("Resolve(%q).ID = %q, want %q", tt.input, id.ID, tt.wantID)
			}
		})
	}
}

func TestGuestProviderStableAcrossDevices(t *testing.T) {
	p := GuestProvider{}

	first, _ := p.Resolve("Alice")
	second, _ := p.Resolve("alice ")
	if first.ID != second.ID {
		t.Errorf("same name resolved to different identities: %q vs %q", first.ID, second.ID)
	}
}

func TestSessionStore(t *testing.T) {
	store := NewSessionStore()
	alice := Identity{ID: "alice", DisplayName: "Alice"}

	token := store.Create(alice)
	if token == "" {
		t.Fatal("Create() returned empty token")
	}

	got, ok := store.Get(token)
	if !ok {
		t.Fatal("Get() did not find fresh session")
	}
	if got != alice {
		t.Errorf("Get() = %+v, want %+v", got, alice)
	}

	store.Delete(token)
	if _, ok := store.Get(token); ok {
		t.Error("Get() found session after delete")
	}
}

func TestFromRequest(t *testing.T) {
	store := NewSessionStore()
	token := store.Create(Identity{ID: "alice", DisplayName: "Alice"})

	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	if _, ok := store.FromRequest(req); ok {
		t.Error("FromRequest() resolved identity without a cookie")
	}

	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	id, ok := store.FromRequest(req)
	if !ok || id.ID != "alice" {
		t.Errorf("FromRequest() = %+v, %v; want alice identity", id, ok)
	}
}
