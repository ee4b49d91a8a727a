package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"rumorlens/internal/analysis"
	"rumorlens/internal/api"
	"rumorlens/internal/config"
	"rumorlens/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the RumorLens web server with the embedded front-end.

The server exposes POST /api/v1/analyze and serves the claim-submission
page at /.

Examples:
  # Start with defaults (localhost:8080)
  rumorlens serve

  # Start on a custom host and port
  rumorlens serve --host 0.0.0.0 --port 3000

  # Disable CORS (behind a reverse proxy)
  rumorlens serve --no-cors`,
	RunE: runServe,
}

var (
	serveHost   string
	servePort   int
	serveNoCORS bool
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "",
		"host address to bind to (overrides config)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0,
		"port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveNoCORS, "no-cors", false,
		"disable CORS headers")
}

func runServe(cmd *cobra.Command, _ []string) error {
	appCfg, loader, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(appCfg)

	// Log level follows config file edits without a restart.
	loader.Watch(func(fresh *config.Config) {
		logger.SetLevel(fresh.Log.Level)
		logger.Info("config reloaded", slog.String("log_level", fresh.Log.Level))
	})

	client, err := analysis.New(cmd.Context(), analysis.Config{
		APIKey: appCfg.Gemini.APIKey,
		Model:  appCfg.Gemini.Model,
	}, logger)
	if err != nil {
		return fmt.Errorf("creating analysis client: %w", err)
	}

	apiServer := api.NewServer(client,
		api.WithLogger(logger.Logger),
		api.WithVersion(appVersion),
	)

	cfg := web.DefaultConfig()
	cfg.Host = appCfg.Server.Host
	cfg.Port = appCfg.Server.Port
	cfg.EnableCORS = appCfg.Server.EnableCORS && !serveNoCORS
	cfg.CORSOrigins = appCfg.Server.CORSOrigins
	if serveHost != "" {
		cfg.Host = serveHost
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	server := web.New(cfg, logger.Logger, apiServer)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if startErr := server.Start(); startErr != nil {
			return fmt.Errorf("starting server: %w", startErr)
		}
		logger.Info("server started",
			slog.String("addr", server.Addr()),
			slog.Bool("cors", cfg.EnableCORS),
		)
		<-ctx.Done()
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		if shutdownErr := server.Shutdown(context.Background()); shutdownErr != nil {
			return fmt.Errorf("server shutdown: %w", shutdownErr)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}
