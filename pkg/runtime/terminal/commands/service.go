package commands

import (
	"context"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// Service is the orchestrator surface the commands drive.
type Service interface {
	ProcessQuery(ctx context.Context, input string) domain.QueryResult
	ExecuteFullQuery(ctx context.Context, sql string, kw domain.Keywords, onProgress func(int)) domain.QueryResult
	DescribeQuery(kw domain.Keywords) string
	DescribeSQL(kw domain.Keywords) string
	PreloadData(ctx context.Context) error
	DataStats() domain.DatasetStats
}
