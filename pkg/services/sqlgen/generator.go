// Package sqlgen compiles a Keywords record into a query over the
// sales_data table. The output is a fixed SQL subset: the generator is the
// only producer and pkg/services/engine the only consumer, so the two sides
// share vocabulary through the rendered text.
package sqlgen

import (
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// statement holds the clauses of a generated query before rendering.
// Keeping them as typed fields makes the clause order explicit; render is
// the single place where text is produced.
type statement struct {
	selectClause string
	conditions   []string
	groupBy      string
	orderBy      string
	limit        string
}

func (s statement) render() string {
	var b strings.Builder
	b.WriteString(s.selectClause)
	b.WriteString("\nFROM sales_data")

	for i, cond := range s.conditions {
		if i == 0 {
			b.WriteString("\nWHERE ")
		} else {
			b.WriteString("\n  AND ")
		}
		b.WriteString(cond)
	}

	if s.groupBy != "" {
		b.WriteString("\n" + s.groupBy)
	}
	if s.orderBy != "" {
		b.WriteString("\n" + s.orderBy)
	}
	if s.limit != "" {
		b.WriteString("\n" + s.limit)
	}
	return b.String()
}

// Generator renders Keywords records into query text. The zero value is not
// usable; construct with New.
type Generator struct {
	now func() time.Time
}

func New() *Generator {
	return &Generator{now: time.Now}
}

// NewWithClock pins "today" for relative date ranges. Used by tests.
func NewWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Generate compiles the record into query text. It is deterministic for a
// fixed clock and never fails; an empty record yields a structurally valid
// ungrouped aggregate.
func (g *Generator) Generate(kw domain.Keywords) string {
	var stmt statement

	if kw.DateRange != nil && kw.DateRange.Kind == domain.DateRangeRelative {
		today := g.now()
		start := today.AddDate(0, 0, -kw.DateRange.StartDays).Format("2006-01-02")
		end := today.AddDate(0, 0, -kw.DateRange.EndDays).Format("2006-01-02")
		stmt.conditions = append(stmt.conditions,
			fmt.Sprintf("sale_date >= '%s' AND sale_date <= '%s'", start, end))
	}

	switch kw.AnalysisType {
	case domain.AnalysisTrend:
		fields := groupFields(kw.GroupBy)
		stmt.selectClause = fmt.Sprintf(
			"SELECT %s, SUM(sale_price * quantity) as total_sales, SUM(quantity) as total_quantity",
			strings.Join(fields, ", "))
		stmt.groupBy = "GROUP BY " + strings.Join(stripAliases(fields), ", ")
		if contains(fields, "DATE(sale_date) as date") {
			stmt.orderBy = "ORDER BY date ASC"
		} else {
			stmt.orderBy = "ORDER BY total_sales DESC"
		}

	case domain.AnalysisSales:
		switch {
		case len(kw.GroupBy) > 0:
			fields := groupFields(kw.GroupBy)
			stmt.selectClause = fmt.Sprintf(
				"SELECT %s, SUM(sale_price * quantity) as total_sales",
				strings.Join(fields, ", "))
			stmt.groupBy = "GROUP BY " + strings.Join(stripAliases(fields), ", ")
			stmt.orderBy = "ORDER BY total_sales DESC"
		case kw.Brand != "" || kw.Category != "" || kw.Region != "" || kw.Store != "":
			var fields []string
			if kw.Brand != "" {
				fields = append(fields, "brand")
			}
			if kw.Category != "" {
				fields = append(fields, "category")
			}
			if kw.Region != "" {
				fields = append(fields, "region")
			}
			if kw.Store != "" {
				fields = append(fields, "store_name")
			}
			stmt.selectClause = fmt.Sprintf(
				"SELECT %s, SUM(sale_price * quantity) as total_sales",
				strings.Join(fields, ", "))
			stmt.groupBy = "GROUP BY " + strings.Join(fields, ", ")
			stmt.orderBy = "ORDER BY total_sales DESC"
		default:
			stmt.selectClause = "SELECT SUM(sale_price * quantity) as total_sales"
		}

	case domain.AnalysisRanking:
		if kw.HasGroup(domain.GroupStore) {
			stmt.selectClause = "SELECT store_name, SUM(sale_price * quantity) as total_sales"
			stmt.groupBy = "GROUP BY store_name"
		} else {
			stmt.selectClause = "SELECT product_name, brand, SUM(sale_price * quantity) as total_sales"
			stmt.groupBy = "GROUP BY product_name, brand"
		}
		stmt.orderBy = "ORDER BY total_sales DESC"
		stmt.limit = "LIMIT 10"

	case domain.AnalysisCount:
		if kw.Brand != "" || kw.Category != "" {
			var fields []string
			if kw.Brand != "" {
				fields = append(fields, "brand")
			}
			if kw.Category != "" {
				fields = append(fields, "category")
			}
			stmt.selectClause = fmt.Sprintf(
				"SELECT %s, SUM(quantity) as total_quantity", strings.Join(fields, ", "))
			stmt.groupBy = "GROUP BY " + strings.Join(fields, ", ")
			stmt.orderBy = "ORDER BY total_quantity DESC"
		} else {
			stmt.selectClause = "SELECT SUM(quantity) as total_quantity"
		}

	case domain.AnalysisAverage:
		if kw.Category != "" {
			stmt.selectClause = "SELECT category, AVG(sale_price) as avg_price"
			stmt.groupBy = "GROUP BY category"
		} else {
			stmt.selectClause = "SELECT AVG(sale_price) as avg_price"
		}

	default:
		stmt.selectClause = "SELECT *"
	}

	if kw.Brand != "" {
		stmt.conditions = append(stmt.conditions, fmt.Sprintf("brand = '%s'", kw.Brand))
	}
	if kw.Category != "" {
		stmt.conditions = append(stmt.conditions, fmt.Sprintf("category = '%s'", kw.Category))
	}
	if kw.TimeCondition != "" {
		stmt.conditions = append(stmt.conditions, kw.TimeCondition)
	}
	if kw.Region != "" {
		stmt.conditions = append(stmt.conditions, fmt.Sprintf("region = '%s'", kw.Region))
	}
	if kw.Store != "" {
		stmt.conditions = append(stmt.conditions, fmt.Sprintf("store_name = '%s'", kw.Store))
	}
	if kw.Manufacturer != "" {
		stmt.conditions = append(stmt.conditions, fmt.Sprintf("manufacturer = '%s'", kw.Manufacturer))
	}
	if kw.IsLimited {
		stmt.conditions = append(stmt.conditions, "is_limited = 'TRUE'")
	}

	return stmt.render()
}

// GeneratePreview renders the query capped for the preview phase. Queries
// that already carry a LIMIT keep their own.
func (g *Generator) GeneratePreview(kw domain.Keywords) string {
	sql := g.Generate(kw)
	if strings.Contains(sql, "LIMIT") {
		return sql
	}
	return sql + " LIMIT 5"
}

// IsValidSQL is a smoke test for generated text, not a grammar check.
func (g *Generator) IsValidSQL(sql string) bool {
	upper := strings.ToUpper(sql)
	return strings.Contains(upper, "SELECT") && strings.Contains(upper, "FROM")
}

var aggregateLabels = map[domain.AnalysisType]string{
	domain.AnalysisSales:   "売上金額を集計",
	domain.AnalysisRanking: "売上ランキングを表示",
	domain.AnalysisCount:   "販売数量を集計",
	domain.AnalysisAverage: "平均価格を算出",
	domain.AnalysisTrend:   "売上推移を分析",
}

// DescribeSQL summarizes the chosen aggregate and filters without touching
// the generated text.
func (g *Generator) DescribeSQL(kw domain.Keywords) string {
	var parts []string
	if label, ok := aggregateLabels[kw.AnalysisType]; ok {
		parts = append(parts, label)
	}

	var conditions []string
	if kw.Brand != "" {
		conditions = append(conditions, "ブランド: "+kw.Brand)
	}
	if kw.Category != "" {
		conditions = append(conditions, "カテゴリ: "+kw.Category)
	}
	if kw.TimeDisplay != "" {
		conditions = append(conditions, "期間: "+kw.TimeDisplay)
	}
	if kw.Region != "" {
		conditions = append(conditions, "地域: "+kw.Region)
	}
	if kw.Store != "" {
		conditions = append(conditions, "店舗: "+kw.Store)
	}
	if kw.Manufacturer != "" {
		conditions = append(conditions, "メーカー: "+kw.Manufacturer)
	}
	if kw.IsLimited {
		conditions = append(conditions, "限定商品のみ")
	}
	if len(conditions) > 0 {
		parts = append(parts, "条件: "+strings.Join(conditions, ", "))
	}

	return strings.Join(parts, " | ")
}

// groupFields maps grouping dimensions to dataset columns. The date axis
// carries an alias so ORDER BY and the result rows agree on the name.
func groupFields(dims []domain.GroupDimension) []string {
	var fields []string
	for _, dim := range dims {
		switch dim {
		case domain.GroupStore:
			fields = append(fields, "store_name")
		case domain.GroupDate:
			fields = append(fields, "DATE(sale_date) as date")
		case domain.GroupBrand:
			fields = append(fields, "brand")
		case domain.GroupCategory:
			fields = append(fields, "category")
		}
	}
	return fields
}

func stripAliases(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		if idx := strings.Index(f, " as "); idx >= 0 {
			out[i] = f[:idx]
		} else {
			out[i] = f
		}
	}
	return out
}

func contains(fields []string, want string) bool {
	for _, f := range fields {
		if f == want {
			return true
		}
	}
	return false
}
