package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/sesmt-lab/sentinela/pkg/cli/config"
	httpctrl "github.com/sesmt-lab/sentinela/pkg/controller/http"
	"github.com/sesmt-lab/sentinela/pkg/service/reflimit"
	"github.com/sesmt-lab/sentinela/pkg/service/template"
	"github.com/sesmt-lab/sentinela/pkg/service/worker"
	"github.com/sesmt-lab/sentinela/pkg/usecase"
	"github.com/sesmt-lab/sentinela/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var templatePath string
	var reflimitPath string
	var reflimitRefresh time.Duration
	var attentionLimit int
	var appCfg config.AppConfig
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("SENTINELA_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "template-file",
			Usage:       "Path to checklist template TOML (checklist provisioning disabled when empty)",
			Sources:     cli.EnvVars("SENTINELA_TEMPLATE_FILE"),
			Destination: &templatePath,
		},
		&cli.StringFlag{
			Name:        "reflimit-file",
			Usage:       "Path to reference limit TOML (measurement comparison disabled when empty)",
			Sources:     cli.EnvVars("SENTINELA_REFLIMIT_FILE"),
			Destination: &reflimitPath,
		},
		&cli.DurationFlag{
			Name:        "reflimit-refresh",
			Usage:       "Reference limit reload interval (0 disables reloading)",
			Value:       10 * time.Minute,
			Sources:     cli.EnvVars("SENTINELA_REFLIMIT_REFRESH"),
			Destination: &reflimitRefresh,
		},
		&cli.IntFlag{
			Name:        "attention-limit",
			Usage:       "Maximum size of the dashboard attention list",
			Value:       8,
			Sources:     cli.EnvVars("SENTINELA_ATTENTION_LIMIT"),
			Destination: &attentionLimit,
		},
	}

	// Add shared config flags
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := appCfg.Load(); err != nil {
				return goerr.Wrap(err, "failed to load application configuration")
			}

			// Initialize repository based on backend type
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			ucOpts := []usecase.Option{
				usecase.WithMatrixConfig(appCfg.MatrixConfig()),
				usecase.WithAttentionLimit(attentionLimit),
			}

			if templatePath != "" {
				registry, err := template.Load(templatePath)
				if err != nil {
					return goerr.Wrap(err, "failed to load checklist templates")
				}
				ucOpts = append(ucOpts, usecase.WithTemplates(registry))
				logging.Default().Info("Checklist templates loaded",
					"path", templatePath, "count", registry.Len())
			} else {
				logging.Default().Info("Template file not configured, checklist provisioning disabled")
			}

			var reflimitWorker *worker.RefLimitRefreshWorker
			if reflimitPath != "" {
				refs, err := reflimit.LoadTable(reflimitPath)
				if err != nil {
					return goerr.Wrap(err, "failed to load reference limits")
				}
				table := reflimit.NewStaticTable(refs)
				ucOpts = append(ucOpts, usecase.WithComparator(table))
				logging.Default().Info("Reference limits loaded",
					"path", reflimitPath, "count", table.Len())

				if reflimitRefresh > 0 {
					reflimitWorker = worker.NewRefLimitRefreshWorker(table, reflimitPath, reflimitRefresh)
					if err := reflimitWorker.Start(ctx); err != nil {
						return goerr.Wrap(err, "failed to start reference limit refresh worker")
					}
				}
			} else {
				logging.Default().Info("Reference limit file not configured, measurement comparison disabled")
			}

			uc := usecase.New(repo, ucOpts...)

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				if reflimitWorker != nil {
					reflimitWorker.Stop()
				}

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
