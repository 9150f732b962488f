package sqlgen

import (
	"strings"
	"testing"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func fixedClock() time.Time {
	return time.Date(2024, 10, 15, 12, 0, 0, 0, time.UTC)
}

func TestGenerate_SalesGroupedByBrand(t *testing.T) {
	g := New()

	sql := g.Generate(domain.Keywords{
		Brand:         "ワンピース",
		TimeCondition: "MONTH(sale_date) = 9",
		AnalysisType:  domain.AnalysisSales,
	})

	want := "SELECT brand, SUM(sale_price * quantity) as total_sales\n" +
		"FROM sales_data\n" +
		"WHERE brand = 'ワンピース'\n" +
		"  AND MONTH(sale_date) = 9\n" +
		"GROUP BY brand\n" +
		"ORDER BY total_sales DESC"
	assert.Equal(t, want, sql)
}

func TestGenerate_SalesUngroupedTotal(t *testing.T) {
	g := New()

	sql := g.Generate(domain.Keywords{
		Manufacturer: "バンダイ",
		AnalysisType: domain.AnalysisSales,
	})

	want := "SELECT SUM(sale_price * quantity) as total_sales\n" +
		"FROM sales_data\n" +
		"WHERE manufacturer = 'バンダイ'"
	assert.Equal(t, want, sql)
}

func TestGenerate_SalesExplicitGroupByWinsOverFilters(t *testing.T) {
	g := New()

	sql := g.Generate(domain.Keywords{
		Brand:        "ポケモン",
		GroupBy:      []domain.GroupDimension{domain.GroupStore},
		AnalysisType: domain.AnalysisSales,
	})

	assert.Contains(t, sql, "SELECT store_name, SUM(sale_price * quantity) as total_sales")
	assert.Contains(t, sql, "GROUP BY store_name")
	assert.Contains(t, sql, "ORDER BY total_sales DESC")
}

func TestGenerate_WhereClauseOrderIsFixed(t *testing.T) {
	g := NewWithClock(fixedClock)

	sql := g.Generate(domain.Keywords{
		Brand:         "ワンピース",
		Category:      "フィギュア",
		TimeCondition: "season = '夏'",
		Region:        "関東",
		Store:         "東京渋谷店",
		Manufacturer:  "バンダイ",
		IsLimited:     true,
		DateRange: &domain.DateRange{
			Kind:      domain.DateRangeRelative,
			StartDays: 90,
			EndDays:   0,
		},
		AnalysisType: domain.AnalysisSales,
	})

	wantOrder := []string{
		"sale_date >= '2024-07-17' AND sale_date <= '2024-10-15'",
		"brand = 'ワンピース'",
		"category = 'フィギュア'",
		"season = '夏'",
		"region = '関東'",
		"store_name = '東京渋谷店'",
		"manufacturer = 'バンダイ'",
		"is_limited = 'TRUE'",
	}

	pos := -1
	for _, cond := range wantOrder {
		next := strings.Index(sql, cond)
		assert.Greater(t, next, pos, "condition %q out of order", cond)
		pos = next
	}
}

func TestGenerate_TrendWithDateGroupOrdersByDateAsc(t *testing.T) {
	g := New()

	sql := g.Generate(domain.Keywords{
		Brand:        "ワンピース",
		GroupBy:      []domain.GroupDimension{domain.GroupDate},
		AnalysisType: domain.AnalysisTrend,
		TimeSeries:   true,
	})

	assert.Contains(t, sql, "SELECT DATE(sale_date) as date, SUM(sale_price * quantity) as total_sales, SUM(quantity) as total_quantity")
	assert.Contains(t, sql, "GROUP BY DATE(sale_date)")
	assert.Contains(t, sql, "ORDER BY date ASC")
}

func TestGenerate_TrendWithoutDateGroupOrdersByTotalSales(t *testing.T) {
	g := New()

	sql := g.Generate(domain.Keywords{
		GroupBy:      []domain.GroupDimension{domain.GroupStore, domain.GroupBrand},
		AnalysisType: domain.AnalysisTrend,
		TimeCondition: "YEAR(sale_date) = 2024",
	})

	assert.Contains(t, sql, "SELECT store_name, brand,")
	assert.Contains(t, sql, "GROUP BY store_name, brand")
	assert.Contains(t, sql, "ORDER BY total_sales DESC")
}

func TestGenerate_RankingByStore(t *testing.T) {
	g := New()

	sql := g.Generate(domain.Keywords{
		Region:       "関東",
		GroupBy:      []domain.GroupDimension{domain.GroupStore},
		AnalysisType: domain.AnalysisRanking,
	})

	assert.Contains(t, sql, "SELECT store_name, SUM(sale_price * quantity) as total_sales")
	assert.Contains(t, sql, "GROUP BY store_name")
	assert.Contains(t, sql, "LIMIT 10")
}

func TestGenerate_RankingByProductDefault(t *testing.T) {
	g := New()

	sql := g.Generate(domain.Keywords{
		Brand:        "セーラームーン",
		AnalysisType: domain.AnalysisRanking,
	})

	assert.Contains(t, sql, "SELECT product_name, brand, SUM(sale_price * quantity) as total_sales")
	assert.Contains(t, sql, "GROUP BY product_name, brand")
	assert.Contains(t, sql, "ORDER BY total_sales DESC")
	assert.Contains(t, sql, "LIMIT 10")
}

func TestGenerate_CountGroupedByBrandAndCategory(t *testing.T) {
	g := New()

	sql := g.Generate(domain.Keywords{
		Brand:        "鬼滅の刃",
		Category:     "フィギュア",
		AnalysisType: domain.AnalysisCount,
	})

	assert.Contains(t, sql, "SELECT brand, category, SUM(quantity) as total_quantity")
	assert.Contains(t, sql, "GROUP BY brand, category")
	assert.Contains(t, sql, "ORDER BY total_quantity DESC")
}

func TestGenerate_AverageByCategory(t *testing.T) {
	g := New()

	sql := g.Generate(domain.Keywords{
		Category:     "ぬいぐるみ",
		AnalysisType: domain.AnalysisAverage,
	})

	assert.Contains(t, sql, "SELECT category, AVG(sale_price) as avg_price")
	assert.Contains(t, sql, "GROUP BY category")
}

func TestGenerate_AverageUngrouped(t *testing.T) {
	g := New()

	sql := g.Generate(domain.Keywords{
		Brand:        "ナルト",
		AnalysisType: domain.AnalysisAverage,
	})

	assert.Contains(t, sql, "SELECT AVG(sale_price) as avg_price")
	assert.NotContains(t, sql, "GROUP BY")
}

func TestGeneratePreview_AppendsLimitOnlyOnce(t *testing.T) {
	g := New()

	plain := g.GeneratePreview(domain.Keywords{
		Brand:        "ワンピース",
		AnalysisType: domain.AnalysisSales,
	})
	assert.True(t, strings.HasSuffix(plain, "LIMIT 5"))

	ranked := g.GeneratePreview(domain.Keywords{
		Brand:        "ワンピース",
		AnalysisType: domain.AnalysisRanking,
	})
	assert.Contains(t, ranked, "LIMIT 10")
	assert.NotContains(t, ranked, "LIMIT 5")
}

func TestIsValidSQL(t *testing.T) {
	g := New()

	assert.True(t, g.IsValidSQL("SELECT * FROM sales_data"))
	assert.True(t, g.IsValidSQL("select x from y"))
	assert.False(t, g.IsValidSQL("DROP TABLE sales_data"))
	assert.False(t, g.IsValidSQL(""))
}

func TestGenerate_AlwaysValid(t *testing.T) {
	g := New()

	records := []domain.Keywords{
		{},
		{AnalysisType: domain.AnalysisSales},
		{AnalysisType: domain.AnalysisTrend},
		{Brand: "ポケモン", AnalysisType: domain.AnalysisRanking},
		{AnalysisType: domain.AnalysisCount},
		{AnalysisType: domain.AnalysisAverage},
	}
	for _, kw := range records {
		assert.True(t, g.IsValidSQL(g.Generate(kw)), "keywords: %+v", kw)
	}
}

func TestDescribeSQL(t *testing.T) {
	g := New()

	got := g.DescribeSQL(domain.Keywords{
		Brand:        "ワンピース",
		TimeDisplay:  "9月",
		AnalysisType: domain.AnalysisSales,
	})
	assert.Equal(t, "売上金額を集計 | 条件: ブランド: ワンピース, 期間: 9月", got)

	got = g.DescribeSQL(domain.Keywords{AnalysisType: domain.AnalysisTrend})
	assert.Equal(t, "売上推移を分析", got)
}
