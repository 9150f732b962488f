package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/export"
)

// NewAskCmd previews a question: extract, compile, show the first rows.
func NewAskCmd(service Service, header *export.HeaderReporter, reporter *export.Reporter) *cobra.Command {
	return &cobra.Command{
		Use:   "ask [question]",
		Short: "Preview the answer to a sales question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			input := strings.Join(args, " ")

			result := service.ProcessQuery(ctx, input)
			if result.Error != "" && result.SQL == "" {
				fmt.Fprintln(cmd.OutOrStdout(), result.Error)
				return nil
			}

			err := header.Handle(export.Header{
				Understood: service.DescribeQuery(result.Keywords),
				Summary:    service.DescribeSQL(result.Keywords),
				SQL:        result.SQL,
			})
			if err != nil {
				return err
			}

			if result.Error != "" {
				return fmt.Errorf("%s", result.Error)
			}
			return reporter.Handle(result.Preview)
		},
	}
}
