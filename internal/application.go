package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

// RunApp - runs the console until the player exits, input ends or a signal arrives.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameManager := usecase.NewGameManager(logger)

	consoleErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting console")
		consoleErrCh <- console.New(logger, gameManager, conf.Console).Start(ctx, in, out)
	}()

	select {
	case err := <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}

		log.Info("Console finished, shutting down")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")

		// The console may still be blocked reading a line; closing the input releases it.
		if closer, ok := in.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				log.Warn("Failed to close console input", "error", err)
			}
		}

		return nil
	}
}
