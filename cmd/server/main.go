// Command server runs the protocol-766 connection handshake core (spec.md §6).
// Adapted from the teacher's cmd/paysys/main.go entry point: load configuration,
// build the server, and wait for SIGINT/SIGTERM — but with a cobra/pflag flag
// surface instead of an INI file, since this core persists no state to load.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"mc-protocol-server/internal/config"
	"mc-protocol-server/internal/server"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "server [host] [port]",
		Short: "A protocol-766 Minecraft handshake server",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				cfg.Host = args[0]
			}
			if len(args) > 1 {
				port, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid port %q: %w", args[1], err)
				}
				cfg.Port = port
			}
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Host, "host", cfg.Host, "listen address")
	flags.IntVar(&cfg.Port, "port", cfg.Port, "listen port")
	flags.Int32Var(&cfg.CompressionThreshold, "compression-threshold", cfg.CompressionThreshold,
		"packet compression threshold in bytes (negative disables compression, 0 compresses everything)")
	flags.IntVar(&cfg.PoolSize, "pool-size", cfg.PoolSize, "maximum concurrently running connection tasks")
	flags.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")

	return cmd
}

func run(cfg config.Config) error {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))

	srv := server.New(cfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		srv.Shutdown()
		return nil
	}
}
