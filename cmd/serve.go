package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/urlhaus-mcp/urlhaus-mcp/internal/config"
	"github.com/urlhaus-mcp/urlhaus-mcp/internal/dependency"
	"github.com/urlhaus-mcp/urlhaus-mcp/internal/logger"
	"github.com/urlhaus-mcp/urlhaus-mcp/internal/server"
)

var (
	serveConfigPath string
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server on stdio",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Config file path (default ~/.urlhaus-mcp/config.yaml)")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Debug logging")

	rootCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Config file path (default ~/.urlhaus-mcp/config.yaml)")
	rootCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Debug logging")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := cfg.Log.Level
	if serveVerbose {
		level = "debug"
	}
	log := logger.New(level)

	c, err := dependency.New(cfg, log)
	if err != nil {
		return fmt.Errorf("wire services: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.WithField("version", config.Version).Info("urlhaus-mcp listening on stdio")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenStdio(ctx, c.Server(), log)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("serve: %w", err)
	}
	log.Info("urlhaus-mcp stopped")
	return nil
}
