// Package agent sequences the question pipeline: keyword extraction, SQL
// generation and execution. It is the fault boundary of the core: stages
// below fail fast with errors, the processor converts every fault into the
// QueryResult's Error field and never lets one escape.
package agent

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/extractor"
	"github.com/de-tools/sales-atlas/pkg/services/sqlgen"
)

// User-facing guidance; wording is part of the product contract.
const (
	msgNotActionable    = "より具体的にお聞かせください。ブランド名や時期を含めて入力してください。"
	msgGenerationFailed = "クエリの生成に失敗しました。入力内容を確認してください。"
)

// Executor is the execution backend the processor drives.
type Executor interface {
	Load(ctx context.Context) error
	Preview(ctx context.Context, sql string) ([]domain.Row, error)
	Execute(ctx context.Context, sql string, onProgress func(int)) ([]domain.Row, error)
	RowCount() int
	IsLoaded() bool
}

// Processor is the query orchestrator.
type Processor struct {
	extractor *extractor.Extractor
	generator *sqlgen.Generator
	executor  Executor
}

func NewProcessor(executor Executor) *Processor {
	return &Processor{
		extractor: extractor.New(),
		generator: sqlgen.New(),
		executor:  executor,
	}
}

// ProcessQuery runs the preview phase for a raw question: extract, gate on
// actionability, generate, smoke-test, preview-run.
func (p *Processor) ProcessQuery(ctx context.Context, input string) domain.QueryResult {
	logger := zerolog.Ctx(ctx)

	kw := p.extractor.Extract(input)

	if !p.extractor.HasActionableKeywords(kw) {
		logger.Debug().Str("input", input).Msg("no actionable keywords found")
		return domain.QueryResult{
			Keywords: kw,
			Error:    msgNotActionable,
		}
	}

	sql := p.generator.Generate(kw)
	if !p.generator.IsValidSQL(sql) {
		logger.Error().Str("sql", sql).Msg("generated query failed validation")
		return domain.QueryResult{
			SQL:      sql,
			Keywords: kw,
			Error:    msgGenerationFailed,
		}
	}

	preview, err := p.executor.Preview(ctx, sql)
	if err != nil {
		logger.Error().Err(err).Msg("preview execution failed")
		return domain.QueryResult{
			Keywords: kw,
			Error:    fmt.Sprintf("処理中にエラーが発生しました: %v", err),
		}
	}

	logger.Debug().
		Str("brand", kw.Brand).
		Str("analysisType", string(kw.AnalysisType)).
		Int("previewRows", len(preview)).
		Msg("query processed")

	return domain.QueryResult{
		SQL:       sql,
		Preview:   preview,
		Keywords:  kw,
		TotalRows: len(preview),
	}
}

// ExecuteFullQuery runs an already-compiled query over the full dataset.
// It does not re-extract; the keywords travel with the result for display.
func (p *Processor) ExecuteFullQuery(ctx context.Context, sql string, kw domain.Keywords, onProgress func(int)) domain.QueryResult {
	logger := zerolog.Ctx(ctx)

	rows, err := p.executor.Execute(ctx, sql, onProgress)
	if err != nil {
		logger.Error().Err(err).Msg("full execution failed")
		return domain.QueryResult{
			SQL:      sql,
			Keywords: kw,
			Error:    fmt.Sprintf("実行中にエラーが発生しました: %v", err),
		}
	}

	return domain.QueryResult{
		SQL:         sql,
		FullResults: rows,
		Keywords:    kw,
		TotalRows:   len(rows),
	}
}

// PreloadData warms the dataset cache ahead of the first question.
func (p *Processor) PreloadData(ctx context.Context) error {
	return p.executor.Load(ctx)
}

// DescribeQuery summarizes what was understood from the input.
func (p *Processor) DescribeQuery(kw domain.Keywords) string {
	return p.extractor.Describe(kw)
}

// DescribeSQL summarizes the aggregate and filters of the generated query.
func (p *Processor) DescribeSQL(kw domain.Keywords) string {
	return p.generator.DescribeSQL(kw)
}

// PreviewSQL renders the preview-capped query for display.
func (p *Processor) PreviewSQL(kw domain.Keywords) string {
	return p.generator.GeneratePreview(kw)
}

// DataStats reports the dataset's load state for diagnostics.
func (p *Processor) DataStats() domain.DatasetStats {
	return domain.DatasetStats{
		TotalRows: p.executor.RowCount(),
		IsLoaded:  p.executor.IsLoaded(),
	}
}

// ExampleQueries returns starter questions surfaced by the UI.
func (p *Processor) ExampleQueries() []string {
	return []string{
		"ワンピースの9月の売り上げを教えて",
		"鬼滅の刃のフィギュアの販売数量を知りたい",
		"ポケモンの関東地域での売上ランキングを表示して",
		"セーラームーンの夏の売上を教えて",
		"呪術廻戦の年間売上を集計して",
	}
}

// PopularKeywords returns suggestion chips surfaced by the UI.
func (p *Processor) PopularKeywords() domain.PopularKeywords {
	return domain.PopularKeywords{
		Brands:     []string{"ワンピース", "鬼滅の刃", "ポケモン", "セーラームーン", "呪術廻戦"},
		Categories: []string{"フィギュア", "ぬいぐるみ", "Tシャツ", "マグカップ", "キーホルダー"},
		Timeframes: []string{"9月", "夏", "2024年", "春", "10月"},
	}
}
