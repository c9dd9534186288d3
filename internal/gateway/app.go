// Package gateway wires the gateway together: one client handle per backend
// service, the external HTTP surface, and graceful shutdown on OS signals.
package gateway

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/riyal-rj/Microservices-GRPC/internal/gateway/clients"
	"github.com/riyal-rj/Microservices-GRPC/internal/gateway/config"
	"github.com/riyal-rj/Microservices-GRPC/internal/gateway/httpapi"
	"github.com/riyal-rj/Microservices-GRPC/internal/logging"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	backends *clients.Backends
	handler  http.Handler
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewDefault("gateway")

	backends, err := clients.Dial(c.UserServiceAddr, c.OrderServiceAddr)
	if err != nil {
		return nil, err
	}

	h := httpapi.NewHandlers(backends.Users, backends.Orders, c.UserServiceAddr, c.OrderServiceAddr, logger)

	return &App{
		config:   c,
		logger:   logger,
		backends: backends,
		handler:  httpapi.NewRouter(h),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	srv := &http.Server{Addr: app.config.EndpointAddrHTTP, Handler: app.handler}

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, err.Error())
		}
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", app.config.EndpointAddrHTTP)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting gateway...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.backends.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
