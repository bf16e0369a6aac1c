package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/sesmt-lab/sentinela/pkg/cli/config"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
	"github.com/sesmt-lab/sentinela/pkg/usecase"
	"github.com/sesmt-lab/sentinela/pkg/utils/logging"
	"github.com/sesmt-lab/sentinela/pkg/utils/safe"
)

func severityColor(s types.Severity) *color.Color {
	switch s {
	case types.SeverityOK:
		return color.New(color.FgGreen)
	case types.SeverityWarning:
		return color.New(color.FgYellow)
	case types.SeverityDanger:
		return color.New(color.FgRed, color.Bold)
	case types.SeverityPending:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgHiBlack)
	}
}

func cmdDashboard() *cli.Command {
	var companyID string
	var topN int
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "company-id",
			Usage:       "Company ID to report on",
			Required:    true,
			Destination: &companyID,
		},
		&cli.IntFlag{
			Name:        "top",
			Usage:       "Size of the attention list",
			Value:       8,
			Destination: &topN,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "dashboard",
		Aliases: []string{"d"},
		Usage:   "Print the compliance dashboard of a company",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
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
			report, err := uc.Dashboard.CompanyCompliance(ctx, types.CompanyID(companyID), topN)
			if err != nil {
				return goerr.Wrap(err, "failed to build compliance report")
			}

			bold := color.New(color.Bold)
			safe.Write(ctx, os.Stdout, []byte(bold.Sprintf("Company %s\n\n", report.CompanyID)))

			s := report.Summary
			summary := fmt.Sprintf(
				"Checklists: %d applicable, %d inspected, %d never inspected\n"+
					"Coverage:   %d%%\n"+
					"Compliance: %d%%\n"+
					"Actions:    %d needed\n\n",
				s.Applicable, s.Inspected, s.NoInspection,
				s.CoveragePct, s.CompliancePct, s.ActionsNeeded,
			)
			safe.Write(ctx, os.Stdout, []byte(summary))

			safe.Write(ctx, os.Stdout, []byte(bold.Sprint("Attention list\n")))
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tCOMPLIANCE\tACTIONS\tSEVERITY\tLAST INSPECTION")
			for _, m := range report.Attention {
				date := m.InspectionDate
				if !m.HasInspection {
					date = "never"
				}
				fmt.Fprintf(w, "%s\t%d%%\t%d\t%s\t%s\n",
					m.Category,
					m.CompliancePct,
					m.ActionsNeeded,
					severityColor(m.Severity).Sprint(m.Severity.String()),
					date,
				)
			}
			if err := w.Flush(); err != nil {
				return goerr.Wrap(err, "failed to render dashboard table")
			}

			return nil
		},
	}
}
