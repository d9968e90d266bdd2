package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lotto-tools/report-center/pkg/services/report"
)

func NewListCmd(reg report.Registry, output io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, d := range reg.List() {
				_, err := fmt.Fprintf(output, "%s/%s\t%s\n", d.Entity, d.Grouping, d.Title)
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}
