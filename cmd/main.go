// Package main wires the HTTP server for the project tracking service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Pranshu-project/zyro/internal/transport/http/server/handlers-fiber"
	"github.com/Pranshu-project/zyro/internal/usecase"

	"github.com/Pranshu-project/zyro/config"
	"github.com/Pranshu-project/zyro/internal/cache"
	"github.com/Pranshu-project/zyro/internal/mailer"
	"github.com/Pranshu-project/zyro/internal/repository"
	"github.com/Pranshu-project/zyro/internal/transport/http/middleware"
	"github.com/Pranshu-project/zyro/pkg/logger"
	"github.com/Pranshu-project/zyro/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	var mail mailer.Mailer = mailer.NewNoop(log)
	if cfg.RabbitMQ.Enabled {
		pub, err := mailer.NewPublisher(cfg.RabbitMQ, log)
		if err != nil {
			log.Errorw("mailer initialization error", "error", err)
			return
		}
		mail = pub
	}
	defer mail.Close()

	var dashCache cache.DashboardCache = cache.Noop{}
	if cfg.Redis.Enabled {
		dashCache = cache.NewRedis(cfg.Redis, log)
	}
	defer func() {
		_ = dashCache.Close()
	}()

	if cfg.Metrics.Enabled {
		go func() {
			if err := metrics.Serve(cfg.Metrics.Addr); err != nil {
				log.Errorw("metrics listener error", "error", err)
			}
		}()
	}

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, ctx, repo, timeout, cfg.Auth, mail, dashCache)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	h := handlers_fiber.NewHandler(log, uc)
	handlers_fiber.RegisterRoutes(serv, h, cfg.Auth.JWTSecret)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
