// Package worker contains the search worker's HTTP delivery.
package worker

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"kalado/config"
	"kalado/internal/delivery"
	"kalado/internal/delivery/middleware"
	"kalado/internal/delivery/worker/handler"
	"kalado/internal/domain/lifecycle"
	"kalado/internal/infra/metrics"
	"kalado/internal/usecase"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc             fx.Lifecycle
	Cfg            *config.Config
	Logger         *slog.Logger
	PushHandler    *handler.PushHandler
	SearchHandler  *handler.SearchHandler
	IndexerUsecase usecase.IndexerUsecase
}

// NewServer creates a new worker HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true

	// Recover first so panics in later middleware are caught.
	e.Use(echomiddleware.Recover())

	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	e.Use(loggerMiddleware.Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Pub/Sub push endpoint
	e.POST("/push", params.PushHandler.HandlePush)

	// Search query endpoint
	e.GET("/search", params.SearchHandler.HandleSearch)

	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Rebuild the index in the background so a slow or unreachable
			// catalog does not block startup; the push endpoint keeps the
			// index current while the rebuild runs.
			go srv.reconcile(params.IndexerUsecase)

			return nil
		},
		OnStop: srv.stop,
	})

	return srv, nil
}

// reconcile rebuilds the search index from the catalog at startup.
func (s *workerServer) reconcile(indexer usecase.IndexerUsecase) {
	s.logger.Info("[Worker] Starting index reconciliation")

	indexed, err := indexer.Reconcile(context.Background())
	if err != nil {
		s.logger.Error("[Worker] Index reconciliation failed", slog.Any("error", err))

		return
	}

	metrics.ReconciledProducts.Set(float64(indexed))
	s.logger.Info("[Worker] Index reconciliation finished", slog.Int("indexed", indexed))
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting Worker HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the worker server
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
