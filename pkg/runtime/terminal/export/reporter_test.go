package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

func TestReporter_RendersTable(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	err := reporter.Handle([]domain.Row{
		{"brand": "ワンピース", "total_sales": float64(2000)},
		{"brand": "ポケモン", "total_sales": float64(1500)},
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "brand")
	assert.Contains(t, out, "total_sales")
	assert.Contains(t, out, "ワンピース")
	assert.Contains(t, out, "2000")
	assert.Contains(t, out, "2 件")
	// brand is pinned before the aggregate column
	assert.Less(t, strings.Index(out, "brand"), strings.Index(out, "total_sales"))
}

func TestReporter_EmptyRows(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	require.NoError(t, reporter.Handle(nil))
	assert.Contains(t, buf.String(), "結果がありません")
}

func TestColumnsFor_UnknownColumnsFollowSorted(t *testing.T) {
	columns := columnsFor(domain.Row{
		"zeta":        "1",
		"alpha":       "2",
		"brand":       "ワンピース",
		"total_sales": float64(10),
	})

	assert.Equal(t, []string{"brand", "total_sales", "alpha", "zeta"}, columns)
}

func TestHeaderReporter(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewHeaderReporter(&buf)

	err := reporter.Handle(Header{
		Understood: "ワンピース の 売上分析",
		Summary:    "売上金額を集計 | 条件: ブランド: ワンピース",
		SQL:        "SELECT *\nFROM sales_data",
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "解析結果: ワンピース の 売上分析")
	assert.Contains(t, out, "売上金額を集計")
	assert.Contains(t, out, "SELECT *\nFROM sales_data")
}
