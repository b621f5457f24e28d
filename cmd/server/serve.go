package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-service-errors/internal/adapters/clients/ledger"
	adapthttp "github.com/jsamuelsen11/go-service-errors/internal/adapters/http"
	"github.com/jsamuelsen11/go-service-errors/internal/adapters/http/errhandler"
	"github.com/jsamuelsen11/go-service-errors/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-service-errors/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-service-errors/internal/adapters/repository/memory"
	"github.com/jsamuelsen11/go-service-errors/internal/app"
	"github.com/jsamuelsen11/go-service-errors/internal/platform/config"
	"github.com/jsamuelsen11/go-service-errors/internal/platform/health"
	"github.com/jsamuelsen11/go-service-errors/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-service-errors/internal/platform/logging"
	"github.com/jsamuelsen11/go-service-errors/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-service-errors/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func newServeCmd() *cobra.Command {
	var profile, configDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if profile == "" {
				return errors.New("a profile is required: pass --profile or set APP_PROFILE (e.g. local, dev, qa, prod)")
			}
			return run(cmd.Context(), profile, configDir)
		},
	}

	cmd.Flags().StringVar(&profile, "profile", os.Getenv("APP_PROFILE"), "configuration profile to load")
	cmd.Flags().StringVar(&configDir, "config-dir", "configs", "directory holding base.yaml and profile files")

	return cmd
}

func run(ctx context.Context, profile, configDir string) error {
	cfg, err := config.Load(profile, config.WithConfigDir(configDir))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr,
		logging.WithVerbatimKeys(errhandler.LoggedMapKeys...),
	)

	providers, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer flushTelemetry(providers, logger)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.Metrics)
	provideCore(injector, cfg, logger)
	provideHTTP(injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Start() }()

	select {
	case <-server.Ready():
		logger.Info("service ready",
			slog.String("profile", profile),
			slog.String("addr", server.Addr()),
			slog.String("ledger_url", cfg.Client.BaseURL),
			slog.Bool("problem_stack_traces", cfg.Problem.IncludeStackTrace),
		)
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested", slog.Any("cause", context.Cause(ctx)))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), serverShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-serverErr

	logger.Info("shutdown complete")
	return nil
}

func flushTelemetry(providers *telemetry.Providers, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()
	if err := providers.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

// provideCore registers the error dispatcher, the downstream ledger client,
// storage and application services.
func provideCore(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*errhandler.Handler, error) {
		return errhandler.New(cfg.Problem, logger,
			errhandler.WithTraceProvider(telemetry.SpanContextIDs{}),
			errhandler.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*ledger.Client, error) {
		transport := httpclient.New(&cfg.Client, ledger.ServiceName, do.MustInvoke[*telemetry.Metrics](i), logger)
		return ledger.NewClient(transport, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		registry.Register(do.MustInvoke[*ledger.Client](i))
		return registry, nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.CustomerRepository, error) {
		return memory.NewCustomerRepository(), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CustomerService, error) {
		return app.NewCustomerService(do.MustInvoke[ports.CustomerRepository](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AccountService, error) {
		return app.NewAccountService(do.MustInvoke[*ledger.Client](i), logger), nil
	})
}

// provideHTTP registers handlers, the middleware pipeline and the server.
func provideHTTP(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		errs := do.MustInvoke[*errhandler.Handler](i)

		// Spans are only worth opening when a tracer provider is installed.
		var otelMW func(nethttp.Handler) nethttp.Handler
		if cfg.Telemetry.Enabled {
			otelMW = middleware.OpenTelemetry(do.MustInvoke[*telemetry.Metrics](i))
		}

		return adapthttp.NewRouter(
			handlers.NewCustomerHandler(do.MustInvoke[ports.CustomerService](i), errs),
			handlers.NewAccountHandler(do.MustInvoke[ports.AccountService](i), errs),
			handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			errs,
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.Logging(logger),
			otelMW,
			middleware.Timeout(cfg.Server.WriteTimeout, errs),
			middleware.Recovery(errs, logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}
