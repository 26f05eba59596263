// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/olegiv/academy-go/internal/auth"
	"github.com/olegiv/academy-go/internal/cache"
	"github.com/olegiv/academy-go/internal/config"
	"github.com/olegiv/academy-go/internal/demo"
	"github.com/olegiv/academy-go/internal/events"
	"github.com/olegiv/academy-go/internal/logging"
	"github.com/olegiv/academy-go/internal/scheduler"
	"github.com/olegiv/academy-go/internal/service"
	"github.com/olegiv/academy-go/internal/store"
	"github.com/olegiv/academy-go/internal/validate"
	"github.com/olegiv/academy-go/internal/version"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	flag.Parse()

	versionInfo := version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}
	if *showVersion {
		fmt.Println(versionInfo)
		os.Exit(0)
	}

	if err := run(versionInfo); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run(versionInfo version.Info) error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)
	slog.Info("starting", "version", versionInfo.Version, "env", cfg.Env)

	// The mock backend: in-memory collections behind the store ports,
	// seeded from embedded fixtures.
	mem := store.New(store.WithLatency(cfg.Latency()))
	if err := mem.Seed(); err != nil {
		return fmt.Errorf("seeding store: %w", err)
	}
	slog.Info("store seeded", "latency", cfg.Latency())

	// Upgrade the logger to also write WARN and ERROR logs to the event log.
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	logger = slog.New(logging.NewEventLogHandler(textHandler, mem.Events))
	slog.SetDefault(logger)
	slog.Info("event log integration enabled", "min_level", "warn")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Change bus: mutations publish here, the sink mirrors them into the
	// audit event log.
	bus := events.NewBus(logger)
	defer func() { _ = bus.Close() }()

	sink := events.NewLogSink(bus, mem.Events, logger)
	go func() {
		if err := sink.Run(ctx); err != nil {
			logger.Error("event sink stopped", "error", err)
		}
	}()

	c := cache.New(cfg.CacheTTLDuration())
	defer c.Stop()

	v := validate.New()
	insight := service.NewInsightService(mem.Posts, v, c, cfg.FeaturedPosts, bus, logger)
	reviews := service.NewReviewService(mem.Reviews, v, c, cfg.FeaturedReviews, bus, logger)
	catalog := service.NewCatalogService(mem.Programs, mem.Lectures, insight, reviews, v, bus, logger)
	users := service.NewUserService(mem.Users, v, bus, logger)
	sessions := auth.NewManager(mem.Users)

	// Warm the composite home view once so the first visitor does not pay
	// the full fan-out.
	home, err := catalog.LoadHome(ctx)
	if err != nil {
		return fmt.Errorf("warming home view: %w", err)
	}
	slog.Info("content ready",
		"programs", len(home.Programs),
		"featured_posts", len(home.FeaturedPosts),
		"featured_reviews", len(home.FeaturedReviews),
	)

	sched := scheduler.New(mem, c, logger, cfg.DemoResetInterval())
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	if cfg.IsDevelopment() {
		// Fresh fixtures on every dev start, mirroring what the reset job
		// does periodically in production.
		if err := demo.Reset(mem, c, logger); err != nil {
			return fmt.Errorf("initial demo reset: %w", err)
		}

		// Smoke-check the session and access layers against the fixtures.
		accounts, err := users.ListUsers(ctx, "", "all")
		if err != nil {
			return fmt.Errorf("listing users: %w", err)
		}
		token, member, err := sessions.Login(ctx, 2)
		if err != nil {
			return fmt.Errorf("demo login: %w", err)
		}
		detail, err := catalog.LoadProgramDetail(ctx, "web-development", &member)
		if err != nil {
			return fmt.Errorf("loading program detail: %w", err)
		}
		sessions.Logout(token)
		slog.Info("access check",
			"users", len(accounts),
			"viewer", member.Name,
			"accessible", len(detail.Accessible),
			"locked", len(detail.Locked),
		)
	}

	slog.Info("academy backend running, press Ctrl+C to stop")
	<-ctx.Done()
	slog.Info("shutting down")
	return nil
}
