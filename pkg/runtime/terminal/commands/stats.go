package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewStatsCmd loads the dataset and reports its size.
func NewStatsCmd(service Service) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dataset statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := service.PreloadData(cmd.Context()); err != nil {
				return err
			}

			stats := service.DataStats()
			fmt.Fprintf(cmd.OutOrStdout(), "データ件数: %d\n", stats.TotalRows)
			return nil
		},
	}
}
