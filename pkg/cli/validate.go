package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/sesmt-lab/sentinela/pkg/cli/config"
	"github.com/sesmt-lab/sentinela/pkg/service/reflimit"
	"github.com/sesmt-lab/sentinela/pkg/service/template"
	"github.com/sesmt-lab/sentinela/pkg/utils/logging"
)

// cmdValidate checks the configuration files without starting the
// server, for use in CI and pre-deploy checks.
func cmdValidate() *cli.Command {
	var templatePath string
	var reflimitPath string
	var appCfg config.AppConfig

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "template-file",
			Usage:       "Path to checklist template TOML",
			Sources:     cli.EnvVars("SENTINELA_TEMPLATE_FILE"),
			Destination: &templatePath,
		},
		&cli.StringFlag{
			Name:        "reflimit-file",
			Usage:       "Path to reference limit TOML",
			Sources:     cli.EnvVars("SENTINELA_REFLIMIT_FILE"),
			Destination: &reflimitPath,
		},
	}
	flags = append(flags, appCfg.Flags()...)

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate configuration files",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			if err := appCfg.Load(); err != nil {
				return goerr.Wrap(err, "application configuration is invalid")
			}
			logger.Info("Application configuration OK", "bands", len(appCfg.Bands))

			if templatePath != "" {
				registry, err := template.Load(templatePath)
				if err != nil {
					return goerr.Wrap(err, "template configuration is invalid")
				}
				logger.Info("Template configuration OK",
					"path", templatePath, "templates", registry.Len())
			}

			if reflimitPath != "" {
				refs, err := reflimit.LoadTable(reflimitPath)
				if err != nil {
					return goerr.Wrap(err, "reference limit configuration is invalid")
				}
				logger.Info("Reference limit configuration OK",
					"path", reflimitPath, "references", len(refs))
			}

			logger.Info("All configuration files are valid")
			return nil
		},
	}
}
