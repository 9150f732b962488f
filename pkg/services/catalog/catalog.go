// Package catalog is the single source of truth for the vocabulary the
// agent recognizes: brands, categories, time phrases, regions, stores,
// manufacturers, analysis-type synonyms, relative date ranges and grouping
// phrases. The extractor and the SQL generator consume these tables and
// never hardcode vocabulary of their own.
package catalog

import (
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// TimePhrase maps a detected period to a WHERE fragment and display label.
type TimePhrase struct {
	Condition string
	Display   string
}

// DateRangeSpec is a relative window measured backwards from today, in days.
type DateRangeSpec struct {
	Phrase    string
	StartDays int
	EndDays   int
	Display   string
}

// AnalysisSynonyms lists the phrases that select one analysis type.
// The slice order is the detection priority.
type AnalysisSynonyms struct {
	Type     domain.AnalysisType
	Synonyms []string
}

// GroupPhrases lists the phrases that request grouping by one dimension.
type GroupPhrases struct {
	Dimension domain.GroupDimension
	Phrases   []string
}

// Brands returns the brand table. Canonical names match verbatim, aliases
// match case-insensitively. Earlier entries take priority.
func Brands() []Pattern[string] {
	entries := []struct {
		name    string
		aliases []string
	}{
		{"ワンピース", []string{"ONE PIECE", "onepiece"}},
		{"鬼滅の刃", []string{"鬼滅", "Demon Slayer"}},
		{"ドラゴンボール", []string{"DRAGON BALL"}},
		{"ナルト", []string{"NARUTO"}},
		{"進撃の巨人", []string{"進撃", "Attack on Titan"}},
		{"ポケモン", []string{"ポケットモンスター", "Pokemon"}},
		{"ドラえもん", []string{"Doraemon"}},
		{"アンパンマン", []string{"Anpanman"}},
		{"セーラームーン", []string{"Sailor Moon"}},
		{"エヴァンゲリオン", []string{"エヴァ", "Evangelion"}},
		{"ジョジョの奇妙な冒険", []string{"ジョジョ", "JoJo"}},
		{"ハンターハンター", []string{"HUNTER×HUNTER", "Hunter x Hunter"}},
		{"スパイファミリー", []string{"SPY×FAMILY", "Spy Family"}},
		{"呪術廻戦", []string{"呪術", "Jujutsu Kaisen"}},
		{"チェンソーマン", []string{"Chainsaw Man"}},
	}

	patterns := make([]Pattern[string], len(entries))
	for i, e := range entries {
		patterns[i] = Pattern[string]{Value: e.name, Matches: named(e.name, e.aliases...)}
	}
	return patterns
}

// Categories returns the product category table.
func Categories() []Pattern[string] {
	entries := []struct {
		name    string
		aliases []string
	}{
		{"フィギュア", []string{"フィギア", "figure"}},
		{"ぬいぐるみ", []string{"plush"}},
		{"Tシャツ", []string{"tシャツ", "T-shirt", "tee"}},
		{"マグカップ", []string{"マグ", "カップ"}},
		{"キーホルダー", []string{"キーチェーン"}},
		{"ポスター", nil},
		{"バッグ", []string{"バック", "bag"}},
		{"文房具", []string{"文具", "stationery"}},
		{"アクセサリー", []string{"アクセ"}},
		{"タオル", nil},
	}

	patterns := make([]Pattern[string], len(entries))
	for i, e := range entries {
		patterns[i] = Pattern[string]{Value: e.name, Matches: named(e.name, e.aliases...)}
	}
	return patterns
}

// TimePhrases returns the period table: months, seasons and years. Only the
// first phrase found in the input applies.
func TimePhrases() []Pattern[TimePhrase] {
	var patterns []Pattern[TimePhrase]
	for m := 1; m <= 12; m++ {
		label := fmt.Sprintf("%d月", m)
		patterns = append(patterns, Pattern[TimePhrase]{
			Value: TimePhrase{
				Condition: fmt.Sprintf("MONTH(sale_date) = %d", m),
				Display:   label,
			},
			Matches: substring(label),
		})
	}
	for _, s := range []string{"春", "夏", "秋", "冬"} {
		patterns = append(patterns, Pattern[TimePhrase]{
			Value: TimePhrase{
				Condition: fmt.Sprintf("season = '%s'", s),
				Display:   s,
			},
			Matches: substring(s),
		})
	}
	for _, y := range []string{"2023", "2024"} {
		patterns = append(patterns, Pattern[TimePhrase]{
			Value: TimePhrase{
				Condition: fmt.Sprintf("YEAR(sale_date) = %s", y),
				Display:   y + "年",
			},
			Matches: substring(y),
		})
	}
	return patterns
}

// Regions returns the sales region table.
func Regions() []Pattern[string] {
	names := []string{"東北", "関東", "関西", "中部", "九州", "北海道", "中国"}
	patterns := make([]Pattern[string], len(names))
	for i, n := range names {
		patterns[i] = Pattern[string]{Value: n, Matches: substring(n)}
	}
	return patterns
}

// Stores returns the store name table.
func Stores() []Pattern[string] {
	names := []string{
		"仙台本店", "東京渋谷店", "大阪梅田店", "名古屋栄店", "福岡天神店",
		"札幌すすきの店", "横浜みなとみらい店", "神戸三宮店", "広島本通店", "金沢香林坊店",
	}
	patterns := make([]Pattern[string], len(names))
	for i, n := range names {
		patterns[i] = Pattern[string]{Value: n, Matches: substring(n)}
	}
	return patterns
}

// Manufacturers returns the manufacturer table.
func Manufacturers() []Pattern[string] {
	names := []string{
		"バンダイ", "タカラトミー", "グッドスマイルカンパニー", "メガハウス", "フリュー",
		"セガ", "アニプレックス", "ブシロード", "コトブキヤ", "エンスカイ",
	}
	patterns := make([]Pattern[string], len(names))
	for i, n := range names {
		patterns[i] = Pattern[string]{Value: n, Matches: substring(n)}
	}
	return patterns
}

// AnalysisTypes returns the analysis-type synonym lists in priority order.
// The first type with a synonym hit wins.
func AnalysisTypes() []AnalysisSynonyms {
	return []AnalysisSynonyms{
		{domain.AnalysisSales, []string{"売上", "売り上げ", "売上高", "販売額", "sales"}},
		{domain.AnalysisRanking, []string{"ランキング", "順位", "トップ", "上位", "ranking"}},
		{domain.AnalysisCount, []string{"数量", "個数", "売れた数", "販売数", "count"}},
		{domain.AnalysisAverage, []string{"平均", "平均価格", "average", "avg"}},
		{domain.AnalysisTrend, []string{"推移", "傾向", "トレンド", "変化", "trend"}},
	}
}

// AnalysisMatcher wraps the synonym lists as an ordered pattern table.
func AnalysisMatcher() []Pattern[domain.AnalysisType] {
	types := AnalysisTypes()
	patterns := make([]Pattern[domain.AnalysisType], len(types))
	for i, t := range types {
		patterns[i] = Pattern[domain.AnalysisType]{Value: t.Type, Matches: anyOfFold(t.Synonyms...)}
	}
	return patterns
}

// DateRanges returns the relative date-range table. Longer phrases come
// before their prefixes so "本日から2ヶ月前" wins over "2ヶ月前".
func DateRanges() []Pattern[DateRangeSpec] {
	entries := []DateRangeSpec{
		{"本日から2ヶ月前", 60, 0, "本日から2ヶ月前まで"},
		{"2ヶ月前", 60, 0, "2ヶ月前から"},
		{"直近1年", 365, 0, "直近1年"},
		{"直近3ヶ月", 90, 0, "直近3ヶ月"},
		{"直近6ヶ月", 180, 0, "直近6ヶ月"},
		{"今月", 30, 0, "今月"},
		{"先月", 60, 30, "先月"},
	}
	patterns := make([]Pattern[DateRangeSpec], len(entries))
	for i, e := range entries {
		patterns[i] = Pattern[DateRangeSpec]{Value: e, Matches: substring(e.Phrase)}
	}
	return patterns
}

// GroupBy returns the grouping phrase lists in dimension order. Unlike the
// other tables every matching dimension applies, not just the first.
func GroupBy() []GroupPhrases {
	return []GroupPhrases{
		{domain.GroupStore, []string{"店舗ごと", "各店舗", "店舗別", "by store"}},
		{domain.GroupDate, []string{"日毎", "日ごと", "日別", "毎日", "daily", "by date"}},
		{domain.GroupBrand, []string{"ブランドごと", "各ブランド", "ブランド別"}},
		{domain.GroupCategory, []string{"カテゴリごと", "各カテゴリ", "カテゴリ別"}},
	}
}

// GroupByMatcher wraps the grouping phrases as a pattern table for
// AllMatches.
func GroupByMatcher() []Pattern[domain.GroupDimension] {
	groups := GroupBy()
	patterns := make([]Pattern[domain.GroupDimension], len(groups))
	for i, g := range groups {
		patterns[i] = Pattern[domain.GroupDimension]{Value: g.Dimension, Matches: anyOf(g.Phrases...)}
	}
	return patterns
}

// TimeSeriesPhrases returns the phrases that request a time-series view.
func TimeSeriesPhrases() []string {
	return []string{"推移", "トレンド", "変化", "時系列", "経過"}
}

// LimitedMarkers returns the phrases that restrict results to limited items.
func LimitedMarkers() []string {
	return []string{"限定", "レア", "特別"}
}
