// Package server boots the storefront: config, stores, background workers
// and both listeners (HTTP and gRPC health).
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/htoohtoo/storefront/app/controllers"
	appgraphql "github.com/htoohtoo/storefront/app/graphql"
	"github.com/htoohtoo/storefront/app/notifications"
	"github.com/htoohtoo/storefront/app/routes"
	"github.com/htoohtoo/storefront/app/services"
	"github.com/htoohtoo/storefront/app/store"
	"github.com/htoohtoo/storefront/config"
	"github.com/htoohtoo/storefront/pkg/cache"
	"github.com/htoohtoo/storefront/pkg/database"
	"github.com/htoohtoo/storefront/pkg/event"
	grpcserver "github.com/htoohtoo/storefront/pkg/grpc"
	"github.com/htoohtoo/storefront/pkg/logger"
	"github.com/htoohtoo/storefront/pkg/metrics"
	"github.com/htoohtoo/storefront/pkg/middleware"
	"github.com/htoohtoo/storefront/pkg/notification"
	"github.com/htoohtoo/storefront/pkg/reqid"
	"github.com/htoohtoo/storefront/pkg/router"
	"github.com/htoohtoo/storefront/pkg/schedule"
	"github.com/htoohtoo/storefront/pkg/session"
	"github.com/htoohtoo/storefront/pkg/snapshot"
	"github.com/htoohtoo/storefront/pkg/workerpool"
	"github.com/htoohtoo/storefront/pkg/ws"
)

// Start runs the server until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	// Audit trail: tee structured logs into Mongo when configured.
	if uri := config.MongoAuditURI(); uri != "" {
		h, err := logger.NewMongoHandler(uri, "storefront", "audit", slog.LevelInfo)
		if err != nil {
			logger.Warn("audit log disabled", "error", err)
		} else {
			logger.Tee(h)
			defer h.Close()
		}
	}

	cache.Connect()
	if config.SnapshotDriver() == "database" {
		if err := database.Connect(); err != nil {
			return err
		}
	}

	snapshots, err := snapshot.Open()
	if err != nil {
		return err
	}

	manager := store.NewManager(store.NewAccounts(), snapshots)
	ledger := store.NewSeededLedger()
	checkout := services.NewCheckout(services.NewPaymentGatewayFromConfig(), ledger)
	hub := ws.NewHub()

	pool := workerpool.New(4, 64)
	defer pool.Stop()
	dispatcher := notification.NewDispatcher(pool)

	event.Listen(services.EventOrderPlaced, func(payload any) {
		p, ok := payload.(services.OrderPlaced)
		if !ok {
			return
		}
		dispatcher.Send(notifications.OrderConfirmation{
			Order:         p.Order,
			CustomerName:  p.CustomerName,
			CustomerEmail: p.CustomerEmail,
		})
		hub.PublishJSON(map[string]any{
			"event":   services.EventOrderPlaced,
			"orderId": p.Order.ID,
			"status":  p.Order.Status,
			"total":   p.Order.Total,
		})
	})
	event.Listen(controllers.EventOrderStatusChanged, func(payload any) {
		if p, ok := payload.(controllers.OrderStatusChanged); ok {
			hub.PublishJSON(map[string]any{
				"event":   controllers.EventOrderStatusChanged,
				"orderId": p.OrderID,
				"status":  p.Status,
			})
		}
	})

	schema, err := appgraphql.NewSchema()
	if err != nil {
		return err
	}

	r := router.New()
	r.Use(
		middleware.Recovery,
		reqid.Middleware(),
		session.Middleware,
		middleware.Logger,
		metrics.Middleware,
		middleware.CORS(middleware.DefaultCORSOptions()),
	)
	routes.RegisterAPI(r, routes.Deps{
		Manager:  manager,
		Ledger:   ledger,
		Checkout: checkout,
		Hub:      hub,
		Schema:   schema,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched := schedule.New()
	sched.Every(10*time.Minute, "session-eviction", func() {
		if n := manager.EvictStale(config.SessionTTL()); n > 0 {
			logger.Info("evicted idle sessions", "count", n)
		}
	})
	sched.Start(ctx)

	grpcSrv := grpcserver.NewServer()
	go func() {
		if err := grpcSrv.Start(":" + config.GRPCPort()); err != nil {
			logger.Error("grpc: serve failed", "error", err)
		}
	}()

	httpSrv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		grpcSrv.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http: shutdown", "error", err)
		}
	}()

	logger.Info("storefront listening", "http", httpSrv.Addr, "grpc", ":"+config.GRPCPort(), "env", config.AppEnv())
	if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
