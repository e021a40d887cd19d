package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/omarshaarawi/courtside/internal/api/sports"
	"github.com/omarshaarawi/courtside/internal/api/statsapi"
	"github.com/omarshaarawi/courtside/internal/bot"
	"github.com/omarshaarawi/courtside/internal/cache"
	"github.com/omarshaarawi/courtside/internal/config"
	"github.com/omarshaarawi/courtside/internal/handlers"
	"github.com/omarshaarawi/courtside/internal/repository/memory"
	"github.com/omarshaarawi/courtside/internal/scheduler"
	"github.com/omarshaarawi/courtside/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file loaded", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}
	setupLogger(cfg)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := statsapi.NewClient(cfg.StatsAPI)
	var sweeper scheduler.Sweeper
	if cfg.Cache.RedisURL != "" {
		rdb, err := cache.Connect(ctx, cfg.Cache.RedisURL)
		if err != nil {
			return err
		}
		defer rdb.Close()
		client = client.WithCache(cache.NewRedisStore(rdb, cfg.Cache.TTL))
		slog.Info("Caching upstream responses in redis", "ttl", cfg.Cache.TTL)
	} else {
		mem := memory.NewCache(cfg.Cache.TTL)
		client = client.WithCache(mem)
		sweeper = mem
	}

	registry := sports.NewRegistry()
	registry.Register("nba", "Basketball", statsapi.NewAPI(client, "nba", loc))

	repo := memory.NewRepository()
	dashboard := service.NewDashboardService(registry, repo, loc, cfg.Teams.MaxAge)

	sched, err := scheduler.NewScheduler(dashboard, scheduler.Options{
		Location:        loc,
		Sports:          registry.Enabled(),
		RefreshInterval: cfg.Teams.RefreshInterval,
		RefreshTimeout:  cfg.StatsAPI.Timeout,
		SweepInterval:   cfg.Cache.TTL,
		Sweeper:         sweeper,
	})
	if err != nil {
		return err
	}
	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	if cfg.TelegramBot.Token != "" {
		telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, dashboard, "nba")
		if err != nil {
			return err
		}
		go func() {
			if err := telegramBot.Start(ctx); err != nil {
				slog.Error("Error running telegram bot", "error", err)
			}
		}()
	}

	router := handlers.NewRouter(handlers.NewHandler(dashboard, cfg.StatsAPI.Timeout), cfg.HTTP.CORSOrigins)
	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("HTTP server listening", "addr", cfg.HTTP.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Error starting HTTP server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func setupLogger(cfg *config.Config) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
