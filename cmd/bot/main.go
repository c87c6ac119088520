// Package main is the entry point for the 24.7 group Telegram bot.
//
// The layout follows Clean Architecture:
//   - Domain: member, attendance, performance and announcement records
//   - Application: commands and queries behind the menu screens
//   - Infrastructure: PostgreSQL record store, Redis cache, Telegram client
//   - Interface: the menu state machine and screen handlers
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bahadir04/grupa247-bot/config"
	"github.com/bahadir04/grupa247-bot/internal/application/command"
	"github.com/bahadir04/grupa247-bot/internal/application/query"
	"github.com/bahadir04/grupa247-bot/internal/infrastructure/persistence/postgres"
	"github.com/bahadir04/grupa247-bot/internal/infrastructure/persistence/redis"
	"github.com/bahadir04/grupa247-bot/internal/interface/telegram"
	"github.com/bahadir04/grupa247-bot/pkg/timeutil"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// ─────────────────────────────────────────────────────────────────────────
	// CONFIGURATION AND LOGGING
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := setupLogger(cfg)
	log.Info("starting 24.7 group bot",
		"env", cfg.App.Environment,
		"debug", cfg.App.Debug,
	)

	// ─────────────────────────────────────────────────────────────────────────
	// DATABASE
	// ─────────────────────────────────────────────────────────────────────────
	log.Info("connecting to database")
	dbConn, err := postgres.NewConnectionFromURL(ctx, cfg.Database.URL, postgres.PoolSettings{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer func() {
		log.Info("closing database connection")
		dbConn.Close()
	}()

	log.Info("running database migrations")
	migrator := postgres.NewMigrator(dbConn)
	if err := migrator.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	log.Info("migrations completed")

	// ─────────────────────────────────────────────────────────────────────────
	// REPOSITORIES AND APPLICATION LAYER
	// ─────────────────────────────────────────────────────────────────────────
	memberRepo := postgres.NewMemberRepository(dbConn)
	attendanceRepo := postgres.NewAttendanceRepository(dbConn)
	performanceRepo := postgres.NewPerformanceRepository(dbConn)
	announcementRepo := postgres.NewAnnouncementRepository(dbConn)

	clock := timeutil.SystemClock()

	registerMemberCmd := command.NewRegisterMemberHandler(memberRepo, clock)

	memberStatsQuery := query.NewGetMemberStatsHandler(memberRepo, clock)
	attendanceStatsQuery := query.NewGetAttendanceStatsHandler(memberRepo, attendanceRepo, clock)
	performanceStatsQuery := query.NewGetPerformanceStatsHandler(performanceRepo, clock)
	announcementsQuery := query.NewListAnnouncementsHandler(announcementRepo)
	membersQuery := query.NewListMembersHandler(memberRepo)
	attendanceQuery := query.NewListAttendanceHandler(attendanceRepo)
	performanceQuery := query.NewListPerformanceHandler(performanceRepo)

	// The ranking optionally goes through the Redis cache; any cache
	// trouble falls back to Postgres.
	var rankingQuery query.ActivityRankingProvider = query.NewGetActivityRankingHandler(memberRepo, clock)

	if cfg.Redis.Enabled && cfg.Redis.URL != "" {
		log.Info("connecting to redis")
		redisCache, err := redis.NewCacheFromURL(ctx, cfg.Redis.URL)
		if err != nil {
			log.Warn("redis unavailable, ranking cache disabled", "error", err)
		} else {
			defer redisCache.Close()
			rankingQuery = redis.NewRankingCache(redisCache, rankingQuery, log)
			log.Info("redis connection established")
		}
	}

	// ─────────────────────────────────────────────────────────────────────────
	// TELEGRAM BOT
	// ─────────────────────────────────────────────────────────────────────────
	botConfig := telegram.DefaultBotConfig(cfg.Telegram.Token)
	botConfig.Debug = cfg.App.Debug
	botConfig.Logger = log
	botConfig.PollingTimeout = cfg.Telegram.PollingTimeout
	botConfig.MaxConcurrentUpdates = cfg.Telegram.MaxConcurrentUpdates
	botConfig.GracefulShutdownTimeout = cfg.App.ShutdownTimeout

	bot, err := telegram.NewBot(botConfig, telegram.BotDependencies{
		RegisterMemberCmd:     registerMemberCmd,
		MemberStatsQuery:      memberStatsQuery,
		AttendanceStatsQuery:  attendanceStatsQuery,
		PerformanceStatsQuery: performanceStatsQuery,
		ActivityRankingQuery:  rankingQuery,
		AnnouncementsQuery:    announcementsQuery,
		MembersQuery:          membersQuery,
		AttendanceQuery:       attendanceQuery,
		PerformanceQuery:      performanceQuery,
	})
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Start(ctx); err != nil && ctx.Err() == nil {
			errCh <- fmt.Errorf("telegram bot: %w", err)
		}
	}()

	// ─────────────────────────────────────────────────────────────────────────
	// GRACEFUL SHUTDOWN
	// ─────────────────────────────────────────────────────────────────────────
	log.Info("24.7 group bot is running")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		log.Error("service error", "error", err)
		return err
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer shutdownCancel()

	if err := bot.Stop(shutdownCtx); err != nil {
		log.Error("failed to stop bot gracefully", "error", err)
		return err
	}

	log.Info("shutdown completed")
	return nil
}

// setupLogger configures structured logging. JSON in production, text
// otherwise.
func setupLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.App.Debug {
		opts.Level = slog.LevelDebug
	}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}
