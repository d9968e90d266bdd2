package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lotto-tools/report-center/pkg/models/domain"
	"github.com/lotto-tools/report-center/pkg/runtime/terminal/export"
	"github.com/lotto-tools/report-center/pkg/services/fetch"
	"github.com/lotto-tools/report-center/pkg/services/registry"
	"github.com/lotto-tools/report-center/pkg/services/report"
)

const dateLayout = "02-01-2006"

// Reporter renders a finished report for the console.
type Reporter interface {
	Handle(vm domain.ReportViewModel) error
}

func NewRunCmd(reg report.Registry, factories fetch.FactoryRegistry, reporter Reporter) *cobra.Command {
	var (
		fromStr string
		toStr   string
		bankCfg string
		csvPath string
	)

	cmd := &cobra.Command{
		Use:   "run <entity> <grouping>",
		Short: "Run one report and print it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			now := time.Now().UTC()
			start, end, err := parseRange(fromStr, toStr, now)
			if err != nil {
				return err
			}

			bankRegistry, err := registry.NewConfigRegistry(bankCfg)
			if err != nil {
				return fmt.Errorf("load bank config: %w", err)
			}
			profiles, err := bankRegistry.GetProfiles()
			if err != nil {
				return fmt.Errorf("read bank profiles: %w", err)
			}

			sources, err := fetch.BuildSources(ctx, factories, profiles)
			if err != nil {
				return err
			}

			svc := report.NewService(report.ServiceOptions{
				Registry: reg,
				Fetcher:  fetch.NewMerger(sources...),
			})

			vm, err := svc.Generate(ctx, domain.Entity(args[0]), domain.Grouping(args[1]), start, end)
			if err != nil {
				return err
			}

			if err := reporter.Handle(vm); err != nil {
				return err
			}

			if csvPath != "" {
				f, err := os.Create(csvPath)
				if err != nil {
					return fmt.Errorf("create csv file: %w", err)
				}
				defer f.Close()
				if err := export.WriteCSV(f, vm); err != nil {
					return fmt.Errorf("export csv: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "range start (DD-MM-YYYY, default 7 days ago)")
	cmd.Flags().StringVar(&toStr, "to", "", "range end (DD-MM-YYYY, default now)")
	cmd.Flags().StringVar(&bankCfg, "bankcfg", "banks.cfg", "path to the bank profile file")
	cmd.Flags().StringVar(&csvPath, "csv", "", "also write the report table to this CSV file")

	return cmd
}

func parseRange(fromStr, toStr string, now time.Time) (time.Time, time.Time, error) {
	start := now.AddDate(0, 0, -7)
	end := now

	var err error
	if fromStr != "" {
		start, err = time.Parse(dateLayout, fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from date: %w", err)
		}
	}
	if toStr != "" {
		end, err = time.Parse(dateLayout, toStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to date: %w", err)
		}
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("--from must not be after --to")
	}
	return start, end, nil
}
