package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/eventregistry/events"
	"github.com/KirkDiggler/eventregistry/internal/config"
	regerrors "github.com/KirkDiggler/eventregistry/internal/errors"
	"github.com/KirkDiggler/eventregistry/internal/logging"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.Setup(cfg.Logging.Service, cfg.Logging.Version, cfg.Logging.Format, cfg.Logging.Level, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("eventdemo failed", "error", err)
		os.Exit(1)
	}
}

// run applies each input line to a Door until the input ends or ctx is done.
// A failing command is reported and the next line is read.
func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, logger *slog.Logger, opts ...events.Option) error {
	door, err := NewDoor(cfg.Events.Types, out, append([]events.Option{events.WithLogger(logger)}, opts...)...)
	if err != nil {
		return err
	}

	logger.Info("door ready", "event_types", cfg.Events.Types)

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}
		lineNo++

		if err := door.Exec(scanner.Text()); err != nil {
			logger.Warn("command failed",
				"line", lineNo,
				"code", regerrors.GetCode(err),
				"meta", regerrors.GetMeta(err),
				"error", err)
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return regerrors.Wrap(err, "failed to read input")
	}
	return nil
}
