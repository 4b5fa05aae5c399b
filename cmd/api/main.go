package main

import (
	"context"
	"log"
	"net/http"

	"order-pulse/internal/core/config"
	"order-pulse/internal/core/logger"
	redisconn "order-pulse/internal/core/redis"
	"order-pulse/internal/core/server"
	announcehandler "order-pulse/internal/features/announce/handler"
	announceservice "order-pulse/internal/features/announce/service"
	feedadapters "order-pulse/internal/features/feed/adapters"
	feedhandler "order-pulse/internal/features/feed/handler"
	feedservice "order-pulse/internal/features/feed/service"
	notifyadapters "order-pulse/internal/features/notify/adapters"
	notifyhandler "order-pulse/internal/features/notify/handler"
	notifyservice "order-pulse/internal/features/notify/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// @title Order Pulse API
// @version 1.0
// @description Order lifecycle event pipeline: live pending-order counts, new-order announcements and best-effort customer notifications.
// @contact.name API Support
// @contact.email support@orderpulse.dev
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	ctx := context.Background()

	// Connect to Redis; the change feed and pending index live there.
	client, err := redisconn.Connect(ctx, cfg.Redis.URL)
	if err != nil {
		l.Fatal("Redis Health Check Failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	// UI broadcast hub and pending-count tracker, seeded with one
	// authoritative read so the first page render has a value.
	hub := announceservice.NewHub()
	counter := feedadapters.NewRedisCounter(client, cfg.Redis.PendingKey)

	seed, err := counter.CountPending(ctx)
	if err != nil {
		l.Warn("Initial pending count read failed", zap.Error(err))
		seed = 0
	}
	tracker := feedservice.NewTracker(counter, hub, seed)

	// Change feed listener fanning out to the tracker and the announcer.
	announcer := announceservice.NewAnnouncer(hub)
	feed := feedadapters.NewRedisFeed(client, cfg.Redis.FeedChannel)
	listener := feedservice.NewListener(feed, tracker, announcer)
	go listener.Run(ctx)

	// Notification dispatcher over the two channel senders.
	emailSender := notifyadapters.NewEmailSenderAdapter(cfg.Notify.BaseURL)
	whatsappSender := notifyadapters.NewWhatsAppSenderAdapter(cfg.Notify.BaseURL)
	dispatcher := notifyservice.NewDispatcher(emailSender, whatsappSender)

	pendingHdl := feedhandler.NewPendingHandler(tracker)
	streamHdl := announcehandler.NewStreamHandler(hub)
	notifyHdl := notifyhandler.NewNotifyHandler(dispatcher)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/healthz", func(c *fiber.Ctx) error {
		if err := client.Ping(c.Context()).Err(); err != nil {
			return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})
	srv.App.Get("/events/stream", streamHdl.Stream)
	srv.App.Get("/orders/pending/count", pendingHdl.GetPendingCount)
	srv.App.Post("/orders/:id/notify", notifyHdl.Notify)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
