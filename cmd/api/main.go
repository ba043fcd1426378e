package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freshmart/internal/bootstrap"
	"freshmart/internal/config"
	"freshmart/internal/logger"
	"freshmart/internal/metrics"
	"freshmart/internal/router"
	"freshmart/internal/storefront"
	"freshmart/internal/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	janitorInterval = time.Minute
	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// ───────────────────────── ENV ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ───────────────────────── CATALOG ─────────────────────────
	cat, err := bootstrap.LoadCatalog(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	rec := metrics.New()
	rec.SetCatalogSize(cat.Len())

	// ───────────────────────── SESSIONS ─────────────────────────
	issuer, err := token.NewIssuer(cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		return err
	}
	sessions := storefront.NewService(storefront.NewInMemoryRepository(), cat, log, rec, cfg.SessionTTL)

	// ───────────────────────── HTTP ─────────────────────────
	r, err := router.NewRouter(router.Deps{
		Catalog:      cat,
		Sessions:     sessions,
		Issuer:       issuer,
		Metrics:      rec,
		Log:          log,
		CORSOrigins:  cfg.CORSOrigins,
		SecureCookie: cfg.Production(),
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// ───────────────────────── START ─────────────────────────
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sessions.RunJanitor(gctx, janitorInterval)
		return nil
	})

	g.Go(func() error {
		log.Info("storefront listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
