package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/erazemk/glitzme/internal/api"
	"github.com/erazemk/glitzme/internal/auth"
	"github.com/erazemk/glitzme/internal/config"
	"github.com/erazemk/glitzme/internal/db"
	"github.com/erazemk/glitzme/internal/logging"
	"github.com/erazemk/glitzme/internal/store"
	"github.com/erazemk/glitzme/internal/web"
)

const usage = `Usage: glitzme [serve|init] [flags]

Commands:
  serve                   run the web server (default)
  init                    create the schema and seed an empty catalog, then exit

Flags:
  -d, -db <path>          SQLite database path (default: $GLITZME_DB or glitzme_rentals.db)
  -a, -addr <host:port>   listen address, serve only (default: $GLITZME_ADDR or :6001)
  -l, -log <path>         log file path (default: $GLITZME_LOG, stdout/stderr only)
  -h, -help               show this help and exit

Environment:
  GLITZME_ADMIN_PASSWORD  admin panel password (required by serve)
  GLITZME_SESSION_TTL     admin session lifetime (default: 1h)
  GLITZME_SESSION_KEY     cookie signing key (default: random per process)
  GLITZME_SECURE_COOKIES  mark the session cookie HTTPS-only
  GLITZME_UPLOAD_DIR      directory for uploaded images (default: uploads)
  GLITZME_LOG_LEVEL       debug, info, warn or error (default: info)
`

// flags are command-line overrides. Empty values leave the environment alone.
type flags struct {
	dbPath  string
	addr    string
	logPath string
}

func parseFlags(name string, args []string) (*flags, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stdout, usage) }

	f := &flags{}
	fs.StringVar(&f.dbPath, "db", "", "")
	fs.StringVar(&f.dbPath, "d", "", "")
	fs.StringVar(&f.addr, "addr", "", "")
	fs.StringVar(&f.addr, "a", "", "")
	fs.StringVar(&f.logPath, "log", "", "")
	fs.StringVar(&f.logPath, "l", "", "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return nil, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}
	return f, nil
}

func (f *flags) apply(b *config.Base) {
	if f.dbPath != "" {
		b.DBPath = f.dbPath
	}
	if f.logPath != "" {
		b.LogPath = f.logPath
	}
}

func main() {
	args := os.Args[1:]
	command := "serve"
	if len(args) > 0 && (args[0] == "serve" || args[0] == "init") {
		command, args = args[0], args[1:]
	}

	f, err := parseFlags(command, args)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	switch command {
	case "init":
		err = cmdInit(f)
	default:
		err = cmdServe(f)
	}
	if err != nil {
		slog.Error("fatal", "command", command, "error", err)
		os.Exit(1)
	}
}

// openStore opens the database, creates missing tables and seeds an empty
// catalog.
func openStore(ctx context.Context, path string) (*sql.DB, *store.Store, error) {
	database, err := db.Open(path)
	if err != nil {
		return nil, nil, err
	}
	if err := db.EnsureSchema(database); err != nil {
		database.Close()
		return nil, nil, err
	}

	st := store.New(database)
	seeded, err := st.Seed(ctx)
	if err != nil {
		database.Close()
		return nil, nil, err
	}
	if seeded {
		slog.Info("seeded empty catalog with default data", "path", path)
	}
	return database, st, nil
}

func cmdInit(f *flags) error {
	base, err := config.LoadBase()
	if err != nil {
		return err
	}
	f.apply(&base)

	closeLog, err := logging.Setup(base.LogPath, base.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	database, _, err := openStore(context.Background(), base.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	fmt.Printf("Database ready: %s\n", base.DBPath)
	return nil
}

func cmdServe(f *flags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	f.apply(&cfg.Base)
	if f.addr != "" {
		cfg.Addr = f.addr
	}

	closeLog, err := logging.Setup(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	database, st, err := openStore(context.Background(), cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()
	slog.Info("database ready", "path", cfg.DBPath)

	gate, err := auth.NewGate(cfg.AdminPassword, cfg.SessionTTL)
	if err != nil {
		return err
	}
	sessions := auth.NewCookieStore([]byte(cfg.SessionKey), st)
	sessions.MaxAge = cfg.SessionTTL
	sessions.Secure = cfg.SecureCookies

	webRouter, err := web.NewRouter(st, gate, sessions, cfg.UploadDir)
	if err != nil {
		return fmt.Errorf("setting up web router: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", api.NewRouter(st))
	mux.Handle("/", webRouter)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.LoggingMiddleware(api.SecurityHeaders(mux)),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-quit
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	slog.Info("server started", "addr", cfg.Addr, "session_ttl", cfg.SessionTTL)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	slog.Info("server stopped, closing database")
	return nil
}
