package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rs/cors"

	"github.com/jmercer/awardpool/internal/auth"
	"github.com/jmercer/awardpool/internal/catalog"
	"github.com/jmercer/awardpool/internal/clock"
	"github.com/jmercer/awardpool/internal/handlers"
	"github.com/jmercer/awardpool/internal/identity"
	"github.com/jmercer/awardpool/internal/logger"
	"github.com/jmercer/awardpool/internal/repository"
	"github.com/jmercer/awardpool/internal/services"
	"github.com/jmercer/awardpool/internal/websocket"
	"github.com/jmercer/awardpool/internal/winnerfeed"
)

// Config holds the application settings
type Config struct {
	DBPath string
	// Deadline is the wall-clock moment picks freeze for everyone.
	Deadline time.Time
	// CORSOrigins lists the frontend origins allowed to call the API.
	// Empty means same-origin only.
	CORSOrigins []string
}

// App holds all application dependencies
type App struct {
	log             logger.Logger
	handlers        *handlers.Handlers
	repo            *repository.Repository
	cancelCountdown context.CancelFunc
	corsOrigins     []string
}

// New creates and initializes a new application instance
func New(log logger.Logger, cfg Config, adminAuth *auth.Auth) (*App, error) {
	repo, err := repository.New(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	feed := winnerfeed.New()
	lockout := clock.NewLockout(cfg.Deadline)

	hub := websocket.New(log, lockout)
	hub.Start()

	// Start countdown with context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	go hub.StartLockoutCountdown(ctx)

	sessionManager := services.NewSessionManager(log, repo, cat, feed, lockout)
	winnerService := services.NewWinnerService(log, repo, cat, feed, hub)

	h := handlers.New(
		sessionManager,
		winnerService,
		cat,
		identity.GuestProvider{},
		identity.NewSessionStore(),
		adminAuth,
		hub,
		log,
		"", // set in Run once the LAN address is known
	)

	return &App{
		log:             log,
		handlers:        h,
		repo:            repo,
		cancelCountdown: cancel,
		corsOrigins:     cfg.CORSOrigins,
	}, nil
}

// Handler returns the configured HTTP handler, CORS-wrapped when origins
// are configured
func (a *App) Handler() http.Handler {
	router := a.handlers.Router()
	if len(a.corsOrigins) == 0 {
		return router
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   a.corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})
	return c.Handler(router)
}

// Close performs graceful shutdown of app resources
func (a *App) Close() {
	if a.cancelCountdown != nil {
		a.cancelCountdown()
	}
	if a.repo != nil {
		a.repo.Close()
	}
}

// Run starts the HTTP server
func (a *App) Run(addr string) error {
	ip := getPreferredIP(realNetworkProvider{})
	joinURL := fmt.Sprintf("http://%s%s", ip, addr)
	a.handlers.JoinURL = joinURL

	a.log.Info("Server starting", "url", joinURL)
	return http.ListenAndServe(addr, a.Handler())
}

// networkInterface wraps net.Interface for testing
type networkInterface interface {
	Flags() net.Flags
	Addrs() ([]net.Addr, error)
}

// realInterface wraps a real net.Interface
type realInterface struct {
	iface net.Interface
}

func (r realInterface) Flags() net.Flags {
	return r.iface.Flags
}

func (r realInterface) Addrs() ([]net.Addr, error) {
	return r.iface.Addrs()
}

// networkProvider is an interface for getting network interfaces (for testing)
type networkProvider interface {
	Interfaces() ([]networkInterface, error)
}

// realNetworkProvider implements networkProvider using actual net package
type realNetworkProvider struct{}

func (realNetworkProvider) Interfaces() ([]networkInterface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	result := make([]networkInterface, len(ifaces))
	for i, iface := range ifaces {
		result[i] = realInterface{iface: iface}
	}
	return result, nil
}

// getPreferredIP returns the best IP address for LAN access.
// Prefers private network addresses (192.168.x.x, 10.x.x.x, 172.16-31.x.x).
// Falls back to localhost if no suitable address is found.
func getPreferredIP(provider networkProvider) string {
	ifaces, err := provider.Interfaces()
	if err != nil {
		return "localhost"
	}

	var candidates []net.IP

	for _, iface := range ifaces {
		flags := iface.Flags()
		if flags&net.FlagUp == 0 || flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			var ip net.IP
			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}

			if ip == nil || ip.To4() == nil {
				continue
			}
			if ip.IsLoopback() {
				continue
			}

			candidates = append(candidates, ip)
		}
	}

	for _, ip := range candidates {
		ipStr := ip.String()
		if strings.HasPrefix(ipStr, "192.168.") ||
			strings.HasPrefix(ipStr, "10.") ||
			isPrivate172(ip) {
			return ipStr
		}
	}

	if len(candidates) > 0 {
		return candidates[0].String()
	}

	return "localhost"
}

// isPrivate172 checks if IP is in 172.16.0.0/12 range
func isPrivate172(ip net.IP) bool {
	if ip4 := ip.To4(); ip4 != nil {
		return ip4[0] == 172 && ip4[1] >= 16 && ip4[1] <= 31
	}
	return false
}
