package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backend-parkhub/internal/config"
	"backend-parkhub/internal/server"
	"backend-parkhub/internal/shared/logger"
	"backend-parkhub/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var mainDepsProvider = defaultDeps
var mainRunner = realMain

func main() {
	mainRunner(mainDepsProvider())
}

type mainDeps struct {
	loadConfig func() config.Config
	newLogger  func(string) (*zap.Logger, error)
	notify     func(chan<- os.Signal, ...os.Signal)
	run        func(context.Context, config.Config, *zap.Logger, <-chan os.Signal, ListenFunc) error
}

func defaultDeps() mainDeps {
	return mainDeps{
		loadConfig: config.Load,
		newLogger:  logger.New,
		notify:     signal.Notify,
		run:        Run,
	}
}

func realMain(deps mainDeps) {
	cfg := deps.loadConfig()

	zl, err := deps.newLogger(cfg.LogLevel)
	if err != nil {
		log.Printf("logger setup failed: %v", err)
		zl = zap.NewNop()
	}
	defer zl.Sync()

	signals := make(chan os.Signal, 1)
	deps.notify(signals, syscall.SIGINT, syscall.SIGTERM)

	if err := deps.run(context.Background(), cfg, zl, signals, nil); err != nil {
		zl.Error("server exited with error", zap.Error(err))
	}
}

type ListenFunc func(app *fiber.App, addr string) error

var defaultListen ListenFunc = func(app *fiber.App, addr string) error {
	return app.Listen(addr)
}

// Run prepares the data directory, starts the HTTP server and waits for
// termination signals.
func Run(ctx context.Context, cfg config.Config, zl *zap.Logger, signals <-chan os.Signal, listen ListenFunc) error {
	if zl == nil {
		zl = zap.NewNop()
	}

	st := store.New(afero.NewOsFs(), cfg.DataDir, zl)
	if err := st.EnsureLayout(); err != nil {
		return err
	}

	srv := server.NewServer(cfg, st, zl)
	zl.Info("parks api starting", zap.String("port", cfg.ServerPort), zap.String("dataDir", cfg.DataDir))

	if listen == nil {
		listen = defaultListen
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- listen(srv.App, cfg.ServerPort)
	}()

	select {
	case <-signals:
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.App.ShutdownWithContext(shutdownCtx)
}
