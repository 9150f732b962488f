package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/export"
)

// NewRunCmd answers a question over the full dataset with a progress trail.
func NewRunCmd(service Service, header *export.HeaderReporter, reporter *export.Reporter) *cobra.Command {
	return &cobra.Command{
		Use:   "run [question]",
		Short: "Run a sales question over the full dataset",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			input := strings.Join(args, " ")

			preview := service.ProcessQuery(ctx, input)
			if preview.Error != "" {
				fmt.Fprintln(cmd.OutOrStdout(), preview.Error)
				return nil
			}

			err := header.Handle(export.Header{
				Understood: service.DescribeQuery(preview.Keywords),
				Summary:    service.DescribeSQL(preview.Keywords),
				SQL:        preview.SQL,
			})
			if err != nil {
				return err
			}

			result := service.ExecuteFullQuery(ctx, preview.SQL, preview.Keywords, func(p int) {
				fmt.Fprintf(cmd.OutOrStdout(), "\r実行中... %d%%", p)
				if p == 100 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
			})
			if result.Error != "" {
				return fmt.Errorf("%s", result.Error)
			}
			return reporter.Handle(result.FullResults)
		},
	}
}
