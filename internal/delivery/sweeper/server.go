// Package sweeper hosts the reminder sweep worker: a ticker that runs the
// sweep on a fixed interval plus a small HTTP surface for health checks and
// manual triggers.
package sweeper

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"beacon/config"
	"beacon/internal/delivery"
	"beacon/internal/delivery/http/response"
	deliverymiddleware "beacon/internal/delivery/middleware"
	"beacon/internal/domain/lifecycle"
	"beacon/internal/errors"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type sweeperServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
	sweep  usecase.SweepUsecase

	stopTicker context.CancelFunc
}

// ServerParams holds dependencies for the sweeper server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	SweepUC usecase.SweepUsecase
}

// NewServer creates the sweep worker server.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())

	requestIDMiddleware := deliverymiddleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	e.Use(slogecho.New(params.Logger))

	srv := &sweeperServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
		sweep:  params.SweepUC,
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Manual trigger, useful in development and for backfills.
	e.POST("/sweep", srv.handleSweep)

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the background ticker and the HTTP surface. It blocks until
// the server shuts down.
func (s *sweeperServer) Serve(ctx context.Context) error {
	tickerCtx, cancel := context.WithCancel(ctx)
	s.stopTicker = cancel
	go s.runTicker(tickerCtx)

	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting sweeper HTTP server",
		slog.String("host_port", hostPort),
		slog.Duration("sweep_interval", s.cfg.Notification.SweepInterval),
	)
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// runTicker executes sweeps on the configured interval until ctx is canceled.
// The first sweep fires immediately so a fresh deployment does not sit idle
// for a full interval.
func (s *sweeperServer) runTicker(ctx context.Context) {
	s.runOnce(ctx)

	ticker := time.NewTicker(s.cfg.Notification.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *sweeperServer) runOnce(ctx context.Context) {
	if _, err := s.sweep.RunSweep(ctx); err != nil {
		s.logger.Error("Scheduled sweep failed", slog.Any("error", err))
	}
}

// handleSweep runs one sweep synchronously and reports its counters.
func (s *sweeperServer) handleSweep(c echo.Context) error {
	result, err := s.sweep.RunSweep(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

func (s *sweeperServer) stop(ctx context.Context) error {
	if s.stopTicker != nil {
		s.stopTicker()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down sweeper HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
