// Package userservice wires the user service together: store, service
// logic and the gRPC endpoint, with graceful shutdown on OS signals.
package userservice

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/riyal-rj/Microservices-GRPC/internal/logging"
	"github.com/riyal-rj/Microservices-GRPC/internal/userservice/config"
	gs "github.com/riyal-rj/Microservices-GRPC/internal/userservice/grpc"
	"github.com/riyal-rj/Microservices-GRPC/internal/userservice/service"
	"github.com/riyal-rj/Microservices-GRPC/internal/userservice/store"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *service.Service
	cleanup     func() error
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewDefault("user-service")

	var repo store.Repository
	cleanup := func() error { return nil }

	if c.DatabaseDSN != "" {
		db, pg, err := store.OpenPostgres(context.Background(), c.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		repo = pg
		cleanup = db.Close
	} else {
		repo = store.NewMemoryRepository()
	}

	us := service.New(repo, logger)

	return &App{config: c, logger: logger, userService: us, cleanup: cleanup}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting user service...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.cleanup(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
