package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"panomaster/internal/api"
	"panomaster/pkg/config"
	"panomaster/pkg/db"
	"panomaster/pkg/input"
	"panomaster/pkg/logging"
	"panomaster/pkg/session"
	"panomaster/pkg/stats"
	"panomaster/pkg/store"
	"panomaster/pkg/version"
)

var (
	initConfig = flag.Bool("init-config", false, "Generate default config file and exit")
	configPath = flag.String("config", "configs/panomaster.yaml", "Path to config file")
)

func main() {
	flag.Parse()

	// Local overrides for development (PANOMASTER_ADDR, PANOMASTER_DB)
	_ = godotenv.Load()

	// Handle --init-config flag
	if *initConfig {
		if err := config.GenerateDefault(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Config file generated:", *configPath)
		return
	}

	if err := run(context.Background(), *configPath); err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL ERROR: Application failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	appCfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cleanupLogs, err := logging.Init(&appCfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer cleanupLogs()

	slog.Info("PanoMaster started", "version", version.Version)

	dbConn, err := db.Init(appCfg.DB.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	st := store.NewSQLiteStore(dbConn)
	defer st.Close()

	tr := stats.New()
	hub := api.NewHub()
	master := session.NewMaster(hub, tr, inputSettings(&appCfg.Input))
	hub.SetMaster(master)

	// Input producers attach and start pushing immediately; accept their
	// events from the first frame.
	master.Activate()

	return runServer(ctx, appCfg, master, hub, st, tr)
}

// inputSettings maps the config section onto translator tuning.
func inputSettings(cfg *config.InputConfig) input.Settings {
	return input.Settings{
		Sensitivity:       cfg.Sensitivity,
		MovementCount:     cfg.MovementCount,
		MovementThreshold: cfg.MovementThreshold,
		MovementCooldown:  time.Duration(cfg.MovementCooldown),
	}
}

func runServer(ctx context.Context, cfg *config.Config, master *session.Master, hub *api.Hub, st store.Store, tr *stats.Tracker) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	shutdownFunc := func() { quit <- syscall.SIGTERM }

	srv := api.NewServer(cfg.Server.Address,
		api.NewStateHandler(master),
		api.NewSceneHandler(master, st),
		api.NewStatsHandler(tr, master, hub),
		hub,
		shutdownFunc,
	)

	srv.Handler = loggingMiddleware(srv.Handler)
	return runServerLifecycle(ctx, srv, quit)
}

func runServerLifecycle(ctx context.Context, srv *http.Server, quit chan os.Signal) error {
	slog.Info("Starting server", "addr", srv.Addr)
	serverErrors := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()
	select {
	case <-quit:
		slog.Info("Shutting down server...")
	case <-ctx.Done():
		slog.Info("Context cancelled, shutting down...")
	case err := <-serverErrors:
		return fmt.Errorf("server failed: %w", err)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logging.TraceDefault("Request processed", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
