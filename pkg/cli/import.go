package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/sesmt-lab/sentinela/pkg/cli/config"
	"github.com/sesmt-lab/sentinela/pkg/service/legacy"
	"github.com/sesmt-lab/sentinela/pkg/usecase"
	"github.com/sesmt-lab/sentinela/pkg/utils/logging"
)

func cmdImport() *cli.Command {
	var inputPath string
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Path to legacy records JSON file (array of flat records)",
			Required:    true,
			Sources:     cli.EnvVars("SENTINELA_IMPORT_INPUT"),
			Destination: &inputPath,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:  "import",
		Usage: "Import legacy risk records into the current hierarchy",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			// #nosec G304 - path is expected to be provided by CLI argument
			data, err := os.ReadFile(inputPath)
			if err != nil {
				return goerr.Wrap(err, "failed to read input file", goerr.V("path", inputPath))
			}

			var records []legacy.Record
			if err := json.Unmarshal(data, &records); err != nil {
				return goerr.Wrap(err, "failed to parse legacy records", goerr.V("path", inputPath))
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			uc := usecase.New(repo)
			result, err := uc.Legacy.ImportRecords(ctx, records)
			if err != nil {
				return goerr.Wrap(err, "legacy import failed")
			}

			logging.Default().Info("Legacy import completed",
				"records", len(records),
				"imported", result.Imported)
			return nil
		},
	}
}
