package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "quickparcel/internal/app"
	"quickparcel/internal/handlers/rest/admin_deliveries_get"
	"quickparcel/internal/handlers/rest/admin_login_post"
	"quickparcel/internal/handlers/rest/admin_partners_get"
	"quickparcel/internal/handlers/rest/admin_stats_get"
	"quickparcel/internal/handlers/rest/calculate_price_post"
	"quickparcel/internal/handlers/rest/cash_confirm_post"
	"quickparcel/internal/handlers/rest/delivery_accept_post"
	"quickparcel/internal/handlers/rest/delivery_get"
	"quickparcel/internal/handlers/rest/delivery_post"
	"quickparcel/internal/handlers/rest/delivery_status_put"
	"quickparcel/internal/handlers/rest/healthcheck_head"
	"quickparcel/internal/handlers/rest/partner_deliveries_get"
	"quickparcel/internal/handlers/rest/partner_login_post"
	"quickparcel/internal/handlers/rest/partner_register_post"
	"quickparcel/internal/handlers/rest/partner_status_get"
	"quickparcel/internal/handlers/rest/partner_status_put"
	"quickparcel/internal/handlers/rest/payment_cash_post"
	"quickparcel/internal/handlers/rest/payment_order_post"
	"quickparcel/internal/handlers/rest/payment_verify_post"
	"quickparcel/internal/handlers/rest/ping_get"
	"quickparcel/internal/handlers/rest/stop_deliver_post"
	"quickparcel/internal/pkg/auth"
	"quickparcel/internal/pkg/config"
	"quickparcel/internal/pkg/dotenv"
	"quickparcel/internal/pkg/kafka"
	metrics_system "quickparcel/internal/pkg/metrics"
	"quickparcel/internal/pkg/middlewares/bearer_auth"
	"quickparcel/internal/pkg/middlewares/graceful_shutdown"
	"quickparcel/internal/pkg/middlewares/metrics"
	"quickparcel/internal/pkg/middlewares/rate_limiter"
	"quickparcel/internal/pkg/middlewares/timeout"
	"quickparcel/internal/pkg/postgres"
	"quickparcel/pkg/logger"
	"quickparcel/pkg/logger/zap_adapter"
	"quickparcel/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
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

	mainLog.Info("starting quickparcel application")

	if _, err := os.Stat(".env"); err != nil {
		mainLog.Warn("No .env file found, using system environment variables")
	}
	if err := dotenv.Load(); err != nil {
		mainLog.Error("failed to load environment", logger.NewField("error", err))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod        = 15 * time.Second
		shutdownHardPeriod    = 3 * time.Second
		readinessDrainDelay   = 5 * time.Second
		systemMetricsInterval = 15 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	producer, err := kafka.NewProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}

	// фоновые задачи живут до отмены ctx
	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, producer, cfg)
	if err != nil {
		if closeErr := producer.Close(); closeErr != nil {
			runLog.Error("failed to close kafka producer", logger.NewField("error", closeErr))
		}
		return fmt.Errorf("business logic: %w", err)
	}
	defer func() {
		// Publisher закрывает и producer, дожидаясь отправки буфера.
		if err := businessApp.Publisher.Close(); err != nil {
			runLog.Error("failed to close kafka publisher",
				logger.NewField("error", err),
			)
		}
	}()

	metrics_system.StartSystemMetricsCollector(ctx, systemMetricsInterval)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(log, &isShuttingDown, businessApp, pool, cfg.Server),
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
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
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
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

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

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	pool healthcheck_head.Pinger,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(log, isShuttingDown))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	limiter := token_bucket.NewKeyedLimiter(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst), cfg.RateLimiterIdleTTL)
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, limiter))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	api.Handle("/calculate-price", calculate_price_post.New(log, app.ServicePricing)).Methods("POST")

	api.Handle("/deliveries", delivery_post.New(log, app.ServiceDelivery)).Methods("POST")
	api.Handle("/deliveries/{id}", delivery_get.New(log, app.ServiceDelivery)).Methods("GET")

	api.Handle("/partner/register", partner_register_post.New(log, app.ServicePartner)).Methods("POST")
	api.Handle("/partner/login", partner_login_post.New(log, app.ServicePartner, app.TokenIssuer)).Methods("POST")

	partner := api.PathPrefix("/partner").Subrouter()
	partner.Use(bearer_auth.Middleware(log, app.TokenIssuer, auth.RolePartner))
	partner.Handle("/status", partner_status_get.New(log, app.ServicePartner)).Methods("GET")
	partner.Handle("/status", partner_status_put.New(log, app.ServicePartner)).Methods("PUT")
	partner.Handle("/deliveries", partner_deliveries_get.New(log, app.ServiceDelivery)).Methods("GET")
	partner.Handle("/deliveries/{id}/accept", delivery_accept_post.New(log, app.ServiceDelivery)).Methods("POST")
	partner.Handle("/deliveries/{id}/status", delivery_status_put.New(log, app.ServiceDelivery)).Methods("PUT")
	partner.Handle("/deliveries/{id}/stops/{stop}/deliver", stop_deliver_post.New(log, app.ServiceDelivery)).Methods("POST")
	partner.Handle("/deliveries/{id}/cash-confirm", cash_confirm_post.New(log, app.ServicePayment)).Methods("POST")

	api.Handle("/payments/{id}/order", payment_order_post.New(log, app.ServicePayment)).Methods("POST")
	api.Handle("/payments/{id}/verify", payment_verify_post.New(log, app.ServicePayment)).Methods("POST")
	api.Handle("/payments/{id}/cash", payment_cash_post.New(log, app.ServicePayment)).Methods("POST")

	api.Handle("/admin/login", admin_login_post.New(log, app.ServiceAdmin, app.TokenIssuer)).Methods("POST")

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(bearer_auth.Middleware(log, app.TokenIssuer, auth.RoleAdmin))
	admin.Handle("/stats", admin_stats_get.New(log, app.ServiceAdmin)).Methods("GET")
	admin.Handle("/deliveries", admin_deliveries_get.New(log, app.ServiceAdmin)).Methods("GET")
	admin.Handle("/partners", admin_partners_get.New(log, app.ServiceAdmin)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
