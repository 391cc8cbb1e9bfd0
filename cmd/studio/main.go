// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the studio site: the public pages
// and the dashboard. All content comes from the content API; the site
// renders fallback content whenever the API cannot answer.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bridalstudio/internal/auth"
	"bridalstudio/internal/cache"
	"bridalstudio/internal/client"
	"bridalstudio/internal/config"
	"bridalstudio/internal/handlers"
	"bridalstudio/internal/middleware"
	"bridalstudio/internal/render"
	"bridalstudio/internal/router"
	"bridalstudio/internal/session"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"content_api", cfg.ContentAPIURL,
	)

	// In non-development environments, mark cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()

	api := client.New(cfg.ContentAPIURL)
	authCtx := auth.New(api, secureCookies, session.DefaultTTL)

	renderer, err := render.New()
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// The page cache is optional: without Valkey every public page is
	// rendered per request.
	var pageCache *cache.PageCache
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey unavailable, page cache disabled", "error", err)
	} else {
		defer valkeyClient.Close()
		pageCache = cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)
	}

	publicHandlers := handlers.NewPublic(renderer, api, pageCache, cfg.SiteName, secureCookies)
	authHandlers := handlers.NewAuth(renderer, authCtx, cfg.SiteName, secureCookies)
	dashHandlers := handlers.NewDashboard(renderer, authCtx, cfg.SiteName, secureCookies)

	// Five login attempts per visitor per minute.
	loginLimiter := middleware.NewRateLimiter(5, time.Minute).
		TrustProxies(middleware.NewProxyTrust(cfg.TrustedProxies)).
		OnLimit(http.HandlerFunc(authHandlers.TooManyAttempts))
	defer loginLimiter.Stop()

	r := router.New(authCtx, publicHandlers, authHandlers, dashHandlers, loginLimiter, secureCookies)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
