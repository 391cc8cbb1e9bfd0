// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the content API. It loads
// configuration, connects to PostgreSQL and Valkey, runs migrations and
// serves the JSON API with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bridalstudio/internal/api"
	"bridalstudio/internal/cache"
	"bridalstudio/internal/config"
	"bridalstudio/internal/database"
	"bridalstudio/internal/middleware"
	"bridalstudio/internal/router"
	"bridalstudio/internal/session"
	"bridalstudio/internal/storage"
	"bridalstudio/internal/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
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
		"addr", cfg.APIAddr(),
		"media_backend", cfg.MediaBackend,
	)

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	sessionStore := session.NewStore(valkeyClient, session.DefaultTTL)

	media, err := storage.New(cfg)
	if err != nil {
		slog.Error("failed to initialize media storage", "error", err)
		os.Exit(1)
	}
	if media == nil {
		slog.Warn("media storage not configured, uploads disabled")
	}

	a := api.New(api.Deps{
		Services:     store.NewServiceStore(db),
		Banners:      store.NewBannerStore(db),
		Offers:       store.NewOfferStore(db),
		Testimonials: store.NewTestimonialStore(db),
		PageBanners:  store.NewPageBannerStore(db),
		SEO:          store.NewSEOStore(db),
		Settings:     store.NewSiteSettingStore(db),
		Users:        store.NewUserStore(db),
		Sessions:     sessionStore,
		Media:        media,
		Pages:        cache.NewPageCache(valkeyClient, cache.DefaultPageTTL),
		Issuer:       cfg.SiteName,
	})

	// Ten login attempts per visitor per minute. The site forwards the
	// visitor's address, so it must be listed in API_TRUSTED_PROXIES.
	loginLimiter := middleware.NewRateLimiter(10, time.Minute).
		TrustProxies(middleware.NewProxyTrust(cfg.APITrustedProxies)).
		OnLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			middleware.WriteJSONError(w, http.StatusTooManyRequests, "Too many login attempts. Please wait a minute and try again.")
		}))
	defer loginLimiter.Stop()

	r := router.NewAPI(a, sessionStore, loginLimiter)

	srv := &http.Server{
		Addr:         cfg.APIAddr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("content api starting", "addr", cfg.APIAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

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

	slog.Info("content api stopped gracefully")
}
