// Package main provides the userlist binary: the in-memory users API and
// the two hello world servers.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alfagnish/userlist/internal/config"
	"github.com/alfagnish/userlist/internal/health"
	"github.com/alfagnish/userlist/internal/server"
	"github.com/alfagnish/userlist/internal/users"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	Version = "0.1.0"
	appName = "userlist"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "In-memory users API and hello world servers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides LOG_LEVEL")

	cmd.AddCommand(usersCmd(&logLevel), helloCmd(&logLevel))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})
	return cmd
}

func usersCmd(logLevel *string) *cobra.Command {
	var (
		host     string
		port     int
		grpcAddr string
	)
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Serve the users API (GET/POST /users)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *logLevel)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("host") {
				cfg.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("grpc-addr") {
				cfg.GRPCAddr = grpcAddr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runUsers(ctx, cfg, newLogger(cfg.LogLevel, os.Stderr))
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "HTTP bind host; overrides HOST")
	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP port; overrides PORT")
	cmd.Flags().StringVar(&grpcAddr, "grpc-addr", "", "gRPC health listen address; overrides GRPC_ADDR")
	return cmd
}

func helloCmd(logLevel *string) *cobra.Command {
	var (
		port    int
		variant string
	)
	cmd := &cobra.Command{
		Use:   "hello",
		Short: "Serve a fixed hello world response on every path",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *logLevel)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("variant") {
				cfg.HelloVariant = variant
			}

			logger := newLogger(cfg.LogLevel, os.Stderr)
			handler, err := server.NewHello(cfg.HelloVariant, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.Run(ctx, cfg.ListenAddr(), handler, logger)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP port; overrides PORT")
	cmd.Flags().StringVar(&variant, "variant", "lec3", "Greeting variant (lec1 or lec3); overrides HELLO_VARIANT")
	return cmd
}

func loadConfig(cmd *cobra.Command, logLevel string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

// runUsers serves the users API, plus the gRPC health service when
// configured, until ctx is cancelled or either server fails.
func runUsers(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	reg := users.NewRegistry(users.SeedUsers()...)
	handler := server.NewUsers(cfg, reg, logger)

	ln, err := net.Listen("tcp", cfg.ListenAddr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.ListenAddr(), err)
	}

	g, gctx := errgroup.WithContext(ctx)
	if cfg.GRPCAddr != "" {
		hs, err := health.New(cfg.GRPCAddr, logger)
		if err != nil {
			ln.Close()
			return err
		}
		hs.SetServing(true)
		g.Go(func() error { return hs.Serve(gctx) })
	}
	g.Go(func() error { return server.Serve(gctx, ln, handler, logger) })

	logger.Info("users api ready", "addr", ln.Addr().String(), "users", reg.Len())
	return g.Wait()
}

func newLogger(level string, w io.Writer) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}
