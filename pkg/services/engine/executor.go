// Package engine evaluates generated query text against the cached sales
// dataset. It is not a SQL engine: only the subset emitted by
// pkg/services/sqlgen is understood, and clauses are located by keyword
// rather than parsed from a grammar. Evaluation order is fixed (WHERE,
// GROUP BY, ORDER BY, LIMIT) regardless of clause position in the text.
package engine

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Dataset is the loaded-once row cache the executor reads from.
type Dataset interface {
	Load(ctx context.Context) error
	Rows() []map[string]string
	RowCount() int
	IsLoaded() bool
}

// PreviewRows caps the preview phase result.
const PreviewRows = 5

var progressCheckpoints = []int{0, 20, 40, 60, 80, 100}

var (
	selectRe  = regexp.MustCompile(`(?is)SELECT\s+(.+?)\s+FROM`)
	whereRe   = regexp.MustCompile(`(?is)WHERE\s+(.+?)(?:\s+GROUP\s+BY|\s+ORDER\s+BY|\s+LIMIT|$)`)
	groupByRe = regexp.MustCompile(`(?is)GROUP\s+BY\s+(.+?)(?:\s+ORDER\s+BY|\s+LIMIT|$)`)
	orderByRe = regexp.MustCompile(`(?is)ORDER\s+BY\s+(.+?)(?:\s+LIMIT|$)`)
	limitRe   = regexp.MustCompile(`(?i)LIMIT\s+(\d+)`)

	andSplitRe = regexp.MustCompile(`(?i)\s+AND\s+`)
	equalRe    = regexp.MustCompile(`(\w+)\s*=\s*'([^']+)'`)
	monthRe    = regexp.MustCompile(`(?i)MONTH\((\w+)\)\s*=\s*(\d+)`)
	yearRe     = regexp.MustCompile(`(?i)YEAR\((\w+)\)\s*=\s*(\d+)`)
	dateFnRe   = regexp.MustCompile(`(?i)^DATE\((\w+)\)$`)
)

// Executor runs queries against a Dataset.
type Executor struct {
	dataset Dataset
}

func NewExecutor(dataset Dataset) *Executor {
	return &Executor{dataset: dataset}
}

// Load makes the dataset available. Safe to call repeatedly.
func (e *Executor) Load(ctx context.Context) error {
	return e.dataset.Load(ctx)
}

// Preview runs the query and returns at most PreviewRows rows.
func (e *Executor) Preview(ctx context.Context, sql string) ([]domain.Row, error) {
	if err := e.dataset.Load(ctx); err != nil {
		return nil, err
	}

	rows := e.run(sql)
	if len(rows) > PreviewRows {
		rows = rows[:PreviewRows]
	}
	return rows, nil
}

// Execute runs the query over the full dataset. onProgress, when non-nil,
// receives monotonically non-decreasing checkpoints ending at 100; they
// pace the UI and carry no correctness meaning.
func (e *Executor) Execute(ctx context.Context, sql string, onProgress func(int)) ([]domain.Row, error) {
	if err := e.dataset.Load(ctx); err != nil {
		return nil, err
	}

	if onProgress != nil {
		for _, p := range progressCheckpoints {
			onProgress(p)
		}
	}

	return e.run(sql), nil
}

func (e *Executor) RowCount() int {
	return e.dataset.RowCount()
}

func (e *Executor) IsLoaded() bool {
	return e.dataset.IsLoaded()
}

func (e *Executor) run(sql string) []domain.Row {
	source := e.dataset.Rows()
	if len(source) == 0 {
		return nil
	}

	rows := make([]domain.Row, len(source))
	for i, r := range source {
		row := make(domain.Row, len(r))
		for k, v := range r {
			row[k] = v
		}
		rows[i] = row
	}

	if m := whereRe.FindStringSubmatch(sql); m != nil {
		rows = applyWhere(rows, m[1])
	}
	if m := groupByRe.FindStringSubmatch(sql); m != nil {
		rows = applyGroupBy(rows, strings.Split(m[1], ","), sql)
	}
	if m := orderByRe.FindStringSubmatch(sql); m != nil {
		rows = applyOrderBy(rows, m[1])
	}
	if m := limitRe.FindStringSubmatch(sql); m != nil {
		limit, _ := strconv.Atoi(m[1])
		if limit < len(rows) {
			rows = rows[:limit]
		}
	}
	return rows
}

// applyWhere keeps rows satisfying every conjunct. A conjunct that matches
// no known pattern never filters; generated date-range bounds fall through
// here on purpose.
func applyWhere(rows []domain.Row, clause string) []domain.Row {
	conjuncts := andSplitRe.Split(clause, -1)

	var out []domain.Row
	for _, row := range rows {
		keep := true
		for _, cond := range conjuncts {
			if !evalConjunct(row, cond) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, row)
		}
	}
	return out
}

func evalConjunct(row domain.Row, cond string) bool {
	if m := equalRe.FindStringSubmatch(cond); m != nil {
		return stringValue(row[m[1]]) == m[2]
	}
	if m := monthRe.FindStringSubmatch(cond); m != nil {
		month, _ := strconv.Atoi(m[2])
		t, ok := parseDate(stringValue(row[m[1]]))
		return ok && int(t.Month()) == month
	}
	if m := yearRe.FindStringSubmatch(cond); m != nil {
		year, _ := strconv.Atoi(m[2])
		t, ok := parseDate(stringValue(row[m[1]]))
		return ok && t.Year() == year
	}
	return true
}

// applyGroupBy buckets rows by the tuple of group columns, preserving
// first-seen bucket order, and computes the aggregates named in the SELECT
// clause. A DATE(col) group field is bucketed on col and surfaced under the
// alias "date" so ORDER BY finds it.
func applyGroupBy(rows []domain.Row, groupFields []string, sql string) []domain.Row {
	m := selectRe.FindStringSubmatch(sql)
	if m == nil {
		return rows
	}
	selectClause := m[1]

	type field struct {
		name   string
		column string
	}
	fields := make([]field, 0, len(groupFields))
	for _, f := range groupFields {
		f = strings.TrimSpace(f)
		if dm := dateFnRe.FindStringSubmatch(f); dm != nil {
			fields = append(fields, field{name: "date", column: dm[1]})
		} else {
			fields = append(fields, field{name: f, column: f})
		}
	}

	var order []string
	buckets := make(map[string][]domain.Row)
	for _, row := range rows {
		parts := make([]string, len(fields))
		for i, f := range fields {
			parts[i] = stringValue(row[f.column])
		}
		key := strings.Join(parts, "|")
		if _, seen := buckets[key]; !seen {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], row)
	}

	sumSales := strings.Contains(selectClause, "SUM(sale_price * quantity)")
	sumQuantity := strings.Contains(selectClause, "SUM(quantity)")
	avgPrice := strings.Contains(selectClause, "AVG(sale_price)")

	out := make([]domain.Row, 0, len(order))
	for _, key := range order {
		group := buckets[key]
		values := strings.Split(key, "|")

		result := make(domain.Row, len(fields)+2)
		for i, f := range fields {
			result[f.name] = values[i]
		}

		if sumSales {
			var total float64
			for _, row := range group {
				total += numberValue(row["sale_price"]) * numberValue(row["quantity"])
			}
			result["total_sales"] = total
		}
		if sumQuantity {
			var total float64
			for _, row := range group {
				total += numberValue(row["quantity"])
			}
			result["total_quantity"] = total
		}
		if avgPrice {
			var sum float64
			for _, row := range group {
				sum += numberValue(row["sale_price"])
			}
			avg := sum / float64(len(group))
			result["avg_price"] = roundTo2(avg)
		}

		out = append(out, result)
	}
	return out
}

// applyOrderBy sorts on a single field. Values that both parse as numbers
// compare numerically; anything else compares as Japanese-collated strings.
// Direction defaults to ascending.
func applyOrderBy(rows []domain.Row, clause string) []domain.Row {
	parts := strings.Fields(strings.TrimSpace(clause))
	if len(parts) == 0 {
		return rows
	}
	field := parts[0]
	desc := len(parts) > 1 && strings.EqualFold(parts[1], "DESC")

	coll := collate.New(language.Japanese)

	out := make([]domain.Row, len(rows))
	copy(out, rows)

	// Stable sort keeps ties in bucket order.
	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareValues(coll, out[i][field], out[j][field])
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

func compareValues(coll *collate.Collator, a, b any) int {
	an, aok := toFloat(a)
	bn, bok := toFloat(b)
	if aok && bok {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}
	return coll.CompareString(stringValue(a), stringValue(b))
}

func parseDate(v string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func stringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return ""
	}
}

// numberValue parses the value as a float; anything non-numeric counts as 0.
func numberValue(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func toFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
