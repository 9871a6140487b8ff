package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/jmercer/awardpool/internal/app"
	"github.com/jmercer/awardpool/internal/auth"
	"github.com/jmercer/awardpool/internal/logger"
)

var version = "dev"

// envDefault returns the environment value for key, or fallback when unset
func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// Flags override .env which overrides the defaults
	godotenv.Load()

	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", envDefault("AWARDPOOL_DB", "awardpool.db"), "SQLite database path")
	adminSecret := flag.String("admin-secret", os.Getenv("AWARDPOOL_ADMIN_SECRET"), "Host secret for the winner console")
	deadlineStr := flag.String("deadline", os.Getenv("AWARDPOOL_DEADLINE"), "Pick deadline, RFC3339 (e.g. 2026-02-01T20:00:00-05:00)")
	logLevel := flag.String("loglevel", envDefault("AWARDPOOL_LOGLEVEL", "info"), "Log level (debug, info, warn, error)")
	corsOrigins := flag.String("cors-origins", os.Getenv("AWARDPOOL_CORS_ORIGINS"), "Comma-separated frontend origins allowed to call the API")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `AwardPool - Awards Night Prediction Party

Usage:
  awardpool [options]

Options:
  -port int          HTTP server port (default 8080)
  -db string         SQLite database path (default "awardpool.db")
  -admin-secret str  Host secret for the winner console (required)
  -deadline str      Pick deadline, RFC3339 (default: one hour from start)
  -loglevel str      Log level: debug, info, warn, error (default "info")
  -cors-origins str  Comma-separated frontend origins allowed to call the API
  -version           Show version and exit
  -help              Show this help message

Every option can also be set in a .env file:
  AWARDPOOL_DB, AWARDPOOL_ADMIN_SECRET, AWARDPOOL_DEADLINE,
  AWARDPOOL_LOGLEVEL, AWARDPOOL_CORS_ORIGINS

Examples:
  awardpool -admin-secret hunter2 -deadline 2026-02-01T20:00:00-05:00
  awardpool -port 80 -db /data/party.db -admin-secret hunter2

`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("awardpool %s\n", version)
		os.Exit(0)
	}

	if *adminSecret == "" {
		log.Fatal("An admin secret is required (-admin-secret or AWARDPOOL_ADMIN_SECRET)")
	}

	deadline := time.Now().Add(time.Hour)
	if *deadlineStr != "" {
		parsed, err := time.Parse(time.RFC3339, *deadlineStr)
		if err != nil {
			log.Fatalf("Invalid -deadline %q: %v", *deadlineStr, err)
		}
		deadline = parsed
	}

	appLog := logger.NewWithLevel(logger.ParseLevel(*logLevel))

	var origins []string
	for _, origin := range strings.Split(*corsOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}

	a, err := app.New(appLog, app.Config{
		DBPath:      *dbPath,
		Deadline:    deadline,
		CORSOrigins: origins,
	}, auth.New(auth.StaticSecret(*adminSecret)))
	if err != nil {
		log.Fatal("Failed to initialize application:", err)
	}
	defer a.Close()

	appLog.Info("Pick deadline", "deadline", deadline.Format(time.RFC3339))

	addr := fmt.Sprintf(":%d", *port)
	if err := a.Run(addr); err != nil {
		log.Fatal(err)
	}
}
