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

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/amastore/admin/internal/auth"
	"github.com/amastore/admin/internal/config"
	"github.com/amastore/admin/internal/guard"
	"github.com/amastore/admin/internal/identity"
	"github.com/amastore/admin/internal/nav"
	"github.com/amastore/admin/internal/storage/memory"
	"github.com/amastore/admin/internal/web"
	"github.com/amastore/admin/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	provider, err := newProvider(cfg)
	if err != nil {
		logger.Error("Failed to initialize identity provider", "error", err)
		os.Exit(1)
	}
	logger.Info("Identity provider ready",
		"provider", cfg.IdentityProvider,
		"allowed_emails", len(cfg.AllowedEmails),
	)

	gd := guard.New(provider, guard.NewAllowList(cfg.AllowedEmails...),
		guard.WithRedirect("/"),
		guard.WithLogger(logger),
	)

	srv := web.NewServer(gd, nav.Default(), memory.New(), web.Options{
		LoginURL:    cfg.LoginURL,
		RegisterURL: cfg.RegisterURL,
		LogoutURL:   cfg.LogoutURL,
		StaticDir:   cfg.StaticDir,
	}, logger)

	// Wrap with h2c so HTTP/2 works without TLS behind a proxy
	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2c.NewHandler(srv.Routes(), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Dashboard server starting", "address", httpServer.Addr, "url", fmt.Sprintf("http://localhost%s", httpServer.Addr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("Shutting down", "timeout", cfg.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}

// newProvider selects the identity provider named in the configuration.
func newProvider(cfg *config.Config) (identity.Provider, error) {
	switch cfg.IdentityProvider {
	case config.ProviderJWT:
		tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
		return identity.NewTokenProvider(tokens, cfg.SessionCookie), nil
	case config.ProviderKratos:
		return identity.NewKratosProvider(cfg.KratosURL, cfg.ProviderTimeout), nil
	default:
		return nil, fmt.Errorf("unknown identity provider %q", cfg.IdentityProvider)
	}
}
