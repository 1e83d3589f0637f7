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
	"github.com/labstack/echo/v4"

	"github.com/matchday/matchday/internal/config"
	"github.com/matchday/matchday/internal/handler"
	"github.com/matchday/matchday/internal/middleware"
	"github.com/matchday/matchday/internal/queue"
	"github.com/matchday/matchday/internal/router"
	"github.com/matchday/matchday/internal/service"
	"github.com/matchday/matchday/internal/store"
	"github.com/matchday/matchday/internal/token"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	issuer := token.Issuer{
		Secret: cfg.JWTSecret,
		TTL:    time.Duration(cfg.AccessTTLMin) * time.Minute,
	}
	st := store.New(logger, issuer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := st.Seed(ctx); err != nil {
		logger.Error("seed failed", "err", err)
		os.Exit(1)
	}

	pub := service.Publisher{URL: cfg.AMQPURL, Log: logger}
	if cfg.AMQPURL != "" {
		go func() {
			if err := queue.StartReservationConsumer(ctx, cfg.AMQPURL, st, logger); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("reservation consumer stopped", "err", err)
			}
		}()
	} else {
		logger.Info("no broker configured, notifications are written synchronously")
	}

	e := echo.New()
	e.HideBanner = true

	rdb := config.NewRedisClient()
	rateLimit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	e.Use(rateLimit)

	router.RegisterRoutes(e)
	router.RegisterPublic(e, handler.NewPublicHandler(st), cache)
	router.RegisterAuth(e, handler.NewAuthHandler(st), cfg.JWTSecret)
	router.RegisterOwner(e, handler.NewOwnerHandler(st, pub), cfg.JWTSecret)
	router.RegisterCustomer(e, handler.NewCustomerHandler(st, pub), cfg.JWTSecret)
	router.RegisterNotifications(e, handler.NewNotificationHandler(st), cfg.JWTSecret)

	addr := ":" + cfg.Port
	go func() {
		logger.Info("listening", "addr", addr, "env", cfg.Env)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	logger.Info("bye")
}
