package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/google/uuid"

	"github.com/kos368437/networks-2-lab3/internal/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger, tagged so the lines of one run can be grouped
	logger := cfg.NewLogger().With("run_id", uuid.NewString())
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdin, os.Stdout); err != nil {
		stop()
		log.Fatal(err)
	}
}

// run performs one query; the caller reports the returned error
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, in io.Reader, out io.Writer) error {
	return NewApp(cfg, logger).Run(ctx, in, out)
}
