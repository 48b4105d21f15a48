// Package main wires the HTTP server and scheduler for the standup bot service.
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/ShivamShwaira/Daily-Standup-Slackbot/config"
	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/repository"
	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/scheduler"
	handlers_fiber "github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/transport/http/server/handlers-fiber"
	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/transport/http/middleware"
	transportslack "github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/transport/slack"
	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/usecase"
	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/usecase/domain"
	"github.com/ShivamShwaira/Daily-Standup-Slackbot/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

const dispatchRunTimeout = 5 * time.Minute

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

	notifier := transportslack.NewNotifier(log, cfg.Slack.BotToken)

	// The registry job body closes over uc, which is assigned below before
	// Start; no trigger can fire earlier.
	var uc usecase.InterfaceUsecase
	registry := scheduler.New(log, func(workspaceID string) {
		runCtx, cancel := context.WithTimeout(context.Background(), dispatchRunTimeout)
		defer cancel()
		if err := uc.DispatchWorkspace(runCtx, workspaceID); err != nil {
			log.Errorw("dispatch run failed", "error", err, "workspace_id", workspaceID)
		}
	})

	uc = usecase.New(log, ctx, repo, notifier, registry, domain.Defaults{
		Time:     cfg.Standup.DefaultTime,
		Timezone: cfg.Standup.DefaultTimezone,
	}, cfg.HTTP.RequestTimeout)

	if err := uc.ReloadSchedules(ctx); err != nil {
		log.Errorw("schedule reload error", "error", err)
		return
	}
	registry.Start()

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc, cfg.Slack)
	h.Register(serv)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := registry.Stop(shutdownCtx); err != nil {
		log.Warnw("scheduler shutdown timeout", "error", err)
	}

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
