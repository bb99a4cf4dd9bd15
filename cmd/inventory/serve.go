package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/amoylab/inventory/internal/auth/jwt"
	"github.com/amoylab/inventory/internal/i18n"
	"github.com/amoylab/inventory/internal/inventory/database"
	"github.com/amoylab/inventory/internal/session"
	"github.com/amoylab/inventory/pkg/helper"
	"github.com/amoylab/inventory/pkg/logger"
	"github.com/amoylab/inventory/pkg/metrics"
	"github.com/amoylab/inventory/pkg/trace"
	"github.com/amoylab/inventory/pkg/version"
	"go.uber.org/zap"
)

func serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lg, err := logger.NewLogger(&cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer lg.Sync()

	lg.Info("Starting inventory server", zap.String("version", version.Get()))

	if pidFile != "" {
		path := helper.GetPIDPath(pidFile)
		removePID, err := helper.WritePID(path)
		if err != nil {
			lg.Fatal("failed to write pid file", zap.String("path", path), zap.Error(err))
		}
		defer func() {
			if err := removePID(); err != nil {
				lg.Warn("failed to remove pid file", zap.String("path", path), zap.Error(err))
			}
		}()
	}

	shutdownTracing, err := trace.InitTracing(ctx, &cfg.Tracing, lg)
	if err != nil {
		lg.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			lg.Warn("failed to shutdown tracing", zap.Error(err))
		}
	}()

	if err := i18n.InitTranslator(cfg.I18n.Path); err != nil {
		lg.Fatal("failed to initialize translations", zap.String("path", cfg.I18n.Path), zap.Error(err))
	}

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		lg.Fatal("failed to initialize database",
			zap.String("type", cfg.Database.Type),
			zap.String("host", cfg.Database.Host),
			zap.String("dbname", cfg.Database.DBName),
			zap.Error(err))
	}
	defer db.Close()

	if cfg.SuperAdmin.Username != "" {
		created, err := database.InitSuperAdmin(ctx, db, cfg.SuperAdmin.Username, cfg.SuperAdmin.Password)
		if err != nil {
			lg.Fatal("failed to initialize super admin", zap.Error(err))
		}
		if created {
			lg.Info("created super admin", zap.String("username", cfg.SuperAdmin.Username))
		}
	}

	sessionStore, err := session.NewStore(lg, &cfg.Session)
	if err != nil {
		lg.Fatal("failed to initialize session store", zap.Error(err))
	}
	if closer, ok := sessionStore.(io.Closer); ok {
		defer closer.Close()
	}

	tokens, err := jwt.NewService(jwt.Config{SecretKey: cfg.JWT.SecretKey, Duration: cfg.JWT.Duration})
	if err != nil {
		lg.Fatal("failed to initialize session tokens", zap.Error(err))
	}
	sessions := session.NewManager(sessionStore, tokens, cfg.Session)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics)
	}

	router := newRouter(cfg, lg, db, sessions, m)
	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Server.Port),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			lg.Error("server stopped unexpectedly", zap.Error(err))
			return err
		}
	case <-ctx.Done():
	}

	lg.Info("Shutting down server")
	sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		lg.Error("failed to shutdown server", zap.Error(err))
		return err
	}
	lg.Info("Server stopped")
	return nil
}
