package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "dispatch/internal/app"
	"dispatch/internal/handlers/rest/carrier_availability_put"
	"dispatch/internal/handlers/rest/carrier_get"
	"dispatch/internal/handlers/rest/carrier_offers_get"
	"dispatch/internal/handlers/rest/carrier_position_put"
	"dispatch/internal/handlers/rest/carrier_post"
	"dispatch/internal/handlers/rest/carrier_put"
	"dispatch/internal/handlers/rest/carrier_ratings_get"
	"dispatch/internal/handlers/rest/carrier_stats_get"
	"dispatch/internal/handlers/rest/carriers_get"
	"dispatch/internal/handlers/rest/carriers_nearby_get"
	"dispatch/internal/handlers/rest/healthcheck_head"
	"dispatch/internal/handlers/rest/notification_read_post"
	"dispatch/internal/handlers/rest/notifications_get"
	"dispatch/internal/handlers/rest/order_accept_post"
	"dispatch/internal/handlers/rest/order_candidate_get"
	"dispatch/internal/handlers/rest/order_candidates_get"
	"dispatch/internal/handlers/rest/order_get"
	"dispatch/internal/handlers/rest/order_post"
	"dispatch/internal/handlers/rest/order_reject_post"
	"dispatch/internal/handlers/rest/orders_get"
	"dispatch/internal/handlers/rest/ping_get"
	"dispatch/internal/handlers/rest/rating_post"
	"dispatch/internal/handlers/rest/stats_get"
	"dispatch/internal/handlers/rest/trip_confirm_post"
	"dispatch/internal/handlers/rest/trip_delivered_post"
	"dispatch/internal/handlers/rest/trip_get"
	"dispatch/internal/handlers/rest/trip_position_post"
	"dispatch/internal/handlers/rest/trips_get"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/dotenv"
	"dispatch/internal/pkg/grpchealth"
	metrics_system "dispatch/internal/pkg/metrics"
	"dispatch/internal/pkg/middlewares/actor"
	"dispatch/internal/pkg/middlewares/graceful_shutdown"
	"dispatch/internal/pkg/middlewares/metrics"
	"dispatch/internal/pkg/middlewares/rate_limiter"
	"dispatch/internal/pkg/middlewares/request_id"
	"dispatch/internal/pkg/middlewares/timeout"
	"dispatch/pkg/logger"
	"dispatch/pkg/logger/zap_adapter"
	"dispatch/pkg/token_bucket"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load environment: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.LogLevel)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting dispatch application",
		logger.NewField("storage", cfg.Storage.Driver),
	)

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx намеренно наследуются от context.Background()
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	businessApp, cleanup, err := application.InitializeApplication(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	defer cleanup()

	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx не отменяется по SIGTERM, только после server.Shutdown()
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(log, &isShuttingDown, businessApp),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}

	// grpc health для балансировщиков, которые не умеют в HTTP HEAD
	var healthServer *grpchealth.Server
	var healthServerErr chan error
	if cfg.Server.GRPCHealthPort != "" {
		healthServer = grpchealth.New(log, cfg.Server.GRPCHealthPort)

		healthServerErr = make(chan error, 1)
		go func() {
			defer close(healthServerErr)
			if err := healthServer.Serve(); err != nil {
				healthServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil канал, если pprof выключен
		return fmt.Errorf("pprof server: %w", err)
	case err := <-healthServerErr:
		return fmt.Errorf("grpc health server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)
	if healthServer != nil {
		healthServer.Drain()
	}

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}
	if healthServer != nil {
		healthServer.Stop()
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(request_id.Middleware)
	router.Use(actor.Middleware(log))
	router.Use(metrics.Middleware(log))
	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(log, app.Storage.Health, isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/order", order_post.New(log, app.Orders)).Methods("POST")
	router.Handle("/orders", orders_get.New(log, app.Orders)).Methods("GET")
	router.Handle("/order/{id:[0-9]+}", order_get.New(log, app.Orders)).Methods("GET")
	router.Handle("/order/{id:[0-9]+}/candidates", order_candidates_get.New(log, app.Matching)).Methods("GET")
	router.Handle("/order/{id:[0-9]+}/candidates/{carrier_id:[0-9]+}", order_candidate_get.New(log, app.Matching)).Methods("GET")
	router.Handle("/order/{id:[0-9]+}/accept", order_accept_post.New(log, app.Orders)).Methods("POST")
	router.Handle("/order/{id:[0-9]+}/reject", order_reject_post.New(log, app.Orders)).Methods("POST")

	router.Handle("/trips", trips_get.New(log, app.Orders)).Methods("GET")
	router.Handle("/trip/{id:[0-9]+}", trip_get.New(log, app.Telemetry)).Methods("GET")
	router.Handle("/trip/{id:[0-9]+}/position", trip_position_post.New(log, app.Telemetry)).Methods("POST")
	router.Handle("/trip/{id:[0-9]+}/delivered", trip_delivered_post.New(log, app.Orders)).Methods("POST")
	router.Handle("/trip/{id:[0-9]+}/confirm", trip_confirm_post.New(log, app.Orders)).Methods("POST")

	// статичные пути раньше шаблонных
	router.Handle("/carriers/nearby", carriers_nearby_get.New(log, app.Matching)).Methods("GET")
	router.Handle("/carriers", carriers_get.New(log, app.Carriers)).Methods("GET")
	router.Handle("/carrier", carrier_post.New(log, app.Carriers)).Methods("POST")
	router.Handle("/carrier/availability", carrier_availability_put.New(log, app.Carriers)).Methods("PUT")
	router.Handle("/carrier/position", carrier_position_put.New(log, app.Carriers)).Methods("PUT")
	router.Handle("/carrier/{id:[0-9]+}", carrier_get.New(log, app.Carriers)).Methods("GET")
	router.Handle("/carrier/{id:[0-9]+}", carrier_put.New(log, app.Carriers)).Methods("PUT")
	router.Handle("/carrier/{id:[0-9]+}/stats", carrier_stats_get.New(log, app.Carriers)).Methods("GET")
	router.Handle("/carrier/{id:[0-9]+}/offers", carrier_offers_get.New(log, app.Matching)).Methods("GET")
	router.Handle("/carrier/{id:[0-9]+}/ratings", carrier_ratings_get.New(log, app.Ratings)).Methods("GET")

	router.Handle("/notifications", notifications_get.New(log, app.Notifications)).Methods("GET")
	router.Handle("/notification/{id:[0-9]+}/read", notification_read_post.New(log, app.Notifications)).Methods("POST")

	router.Handle("/rating", rating_post.New(log, app.Ratings)).Methods("POST")

	router.Handle("/stats", stats_get.New(log, app.Stats)).Methods("GET")

	return router
}

func initPprofRouter(log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(log, app.Storage.Health, isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
