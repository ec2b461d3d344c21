package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/innermond/greet/http"
	"github.com/innermond/greet/static"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newServeCmd(envFile *string) *cobra.Command {
	var (
		addr     string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the greeting server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(*envFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("log-level") {
				if err := cfg.SetLogLevel(logLevel); err != nil {
					return err
				}
			}

			logger := newLogger(cfg.LogLevel)
			logger.Debug().Int("pid", os.Getpid()).Str("version", ServerGitHash).Msg("initiating...")

			server := http.NewServer()
			server.Addr = cfg.Addr
			server.MaxInFlight = cfg.MaxInFlight
			server.Logger = logger
			server.GreetingService = static.NewGreetingService()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := server.Open(); err != nil {
				return errors.Wrapf(err, "listen on %s", cfg.Addr)
			}
			<-ctx.Done()

			logger.Info().Msg("closing server...")
			if err := server.Close(); err != nil {
				logger.Error().Err(err).Msg("shutdown")
			}

			stats := server.Stats()
			logger.Info().
				Int64("served", stats.Served).
				Int64("unsupported", stats.Unsupported).
				Int64("abandoned", stats.Abandoned).
				Msg("server closed")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", http.DefaultAddr, "address to listen on, overrides GREET_ADDR")
	cmd.Flags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level, overrides GREET_LOG_LEVEL")
	return cmd
}
