// Package orderservice wires the order service together: store, user-service
// client, service logic and the gRPC endpoint, with graceful shutdown on OS
// signals.
package orderservice

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/riyal-rj/Microservices-GRPC/internal/logging"
	"github.com/riyal-rj/Microservices-GRPC/internal/orderservice/config"
	gs "github.com/riyal-rj/Microservices-GRPC/internal/orderservice/grpc"
	"github.com/riyal-rj/Microservices-GRPC/internal/orderservice/service"
	"github.com/riyal-rj/Microservices-GRPC/internal/orderservice/store"
	"github.com/riyal-rj/Microservices-GRPC/internal/orderservice/userclient"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	orderService *service.Service
	cleanup      []func() error
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewDefault("order-service")

	var repo store.Repository
	var cleanup []func() error

	if c.DatabaseDSN != "" {
		db, pg, err := store.OpenPostgres(context.Background(), c.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		repo = pg
		cleanup = append(cleanup, db.Close)
	} else {
		repo = store.NewMemoryRepository()
	}

	users, err := userclient.Dial(c.UserServiceAddr)
	if err != nil {
		return nil, err
	}
	cleanup = append(cleanup, users.Close)

	svc := service.New(repo, users, logger)

	return &App{config: c, logger: logger, orderService: svc, cleanup: cleanup}, nil
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

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.orderService)

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

	app.logger.Info(ctx, "Starting order service...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	for _, fn := range app.cleanup {
		if err := fn(); err != nil {
			app.logger.Error(ctx, err.Error())
		}
	}
}
