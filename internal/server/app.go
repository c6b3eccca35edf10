// Package server initializes and runs the application server. It validates
// configuration, connects storage, wires the user service and starts the
// HTTP endpoint with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/avasquez/softjobs/internal/logging"
	"github.com/avasquez/softjobs/internal/server/auth"
	"github.com/avasquez/softjobs/internal/server/config"
	"github.com/avasquez/softjobs/internal/server/httpapi"
	"github.com/avasquez/softjobs/internal/server/shared/db"
	"github.com/avasquez/softjobs/internal/server/users"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	httpServer *httpapi.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger()

	// a missing signing secret is a fatal configuration error at startup,
	// never a per-request discovery
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	rm, err := db.NewPostgresRepositoryManager(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(rm.Users(), auth.NewHasher(c.BcryptCost), c)
	hs := httpapi.NewServer(c, logger, us)

	return &App{config: c, logger: logger, httpServer: hs}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.httpServer.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()
}
