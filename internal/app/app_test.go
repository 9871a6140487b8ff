package app

import (
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jmercer/awardpool/internal/auth"
	"github.com/jmercer/awardpool/internal/logger"
)

// fakeInterface implements networkInterface for testing
type fakeInterface struct {
	flags net.Flags
	addrs []net.Addr
	err   error
}

func (f fakeInterface) Flags() net.Flags           { return f.flags }
func (f fakeInterface) Addrs() ([]net.Addr, error) { return f.addrs, f.err }

// fakeProvider implements networkProvider for testing
type fakeProvider struct {
	ifaces []networkInterface
	err    error
}

func (f fakeProvider) Interfaces() ([]networkInterface, error) { return f.ifaces, f.err }

func ipNet(s string) *net.IPNet {
	return &net.IPNet{IP: net.ParseIP(s), Mask: net.CIDRMask(24, 32)}
}

func TestGetPreferredIP(t *testing.T) {
	tests := []struct {
		name     string
		provider networkProvider
		want     string
	}{
		{
			name:     "provider error falls back to localhost",
			provider: fakeProvider{err: errors.New("no network")},
			want:     "localhost",
		},
		{
			name:     "no interfaces falls back to localhost",
			provider: fakeProvider{},
			want:     "localhost",
		},
		{
			name: "prefers private 192.168 address",
			provider: fakeProvider{ifaces: []networkInterface{
				fakeInterface{flags: net.FlagUp, addrs: []net.Addr{ipNet("8.8.4.4"), ipNet("192.168.1.50")}},
			}},
			want: "192.168.1.50",
		},
		{
			name: "prefers private 172.16 address",
			provider: fakeProvider{ifaces: []networkInterface{
				fakeInterface{flags: net.FlagUp, addrs: []net.Addr{ipNet("172.20.0.5")}},
			}},
			want: "172.20.0.5",
		},
		{
			name: "skips down and loopback interfaces",
			provider: fakeProvider{ifaces: []networkInterface{
				fakeInterface{flags: 0, addrs: []net.Addr{ipNet("192.168.1.50")}},
				fakeInterface{flags: net.FlagUp | net.FlagLoopback, addrs: []net.Addr{ipNet("127.0.0.1")}},
			}},
			want: "localhost",
		},
		{
			name: "falls back to public address when no private one exists",
			provider: fakeProvider{ifaces: []networkInterface{
				fakeInterface{flags: net.FlagUp, addrs: []net.Addr{ipNet("8.8.4.4")}},
			}},
			want: "8.8.4.4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getPreferredIP(tt.provider); got != tt.want {
				t.Errorf("getPreferredIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewAndServe(t *testing.T) {
	a, err := New(logger.New(), Config{
		DBPath:   ":memory:",
		Deadline: time.Now().Add(time.Hour),
	}, auth.New(auth.StaticSecret("secret")))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer a.Close()

	server := httptest.NewServer(a.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/catalog")
	if err != nil {
		t.Fatalf("GET /api/catalog failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestCORSHeaders(t *testing.T) {
	a, err := New(logger.New(), Config{
		DBPath:      ":memory:",
		Deadline:    time.Now().Add(time.Hour),
		CORSOrigins: []string{"http://localhost:5173"},
	}, auth.New(auth.StaticSecret("secret")))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer a.Close()

	server := httptest.NewServer(a.Handler())
	defer server.Close()

	req, _ := http.NewRequest(http.MethodGet, server.URL+"/api/catalog", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Access-Control-Allow-Origin = %q, want configured origin", got)
	}
}
