package catalog

import (
	"testing"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestFirstMatch_TableOrderIsPriority(t *testing.T) {
	patterns := []Pattern[string]{
		{Value: "first", Matches: substring("abc")},
		{Value: "second", Matches: substring("abc")},
	}

	got, ok := FirstMatch(patterns, "xx abc yy")
	assert.True(t, ok)
	assert.Equal(t, "first", got)
}

func TestFirstMatch_NoMatch(t *testing.T) {
	got, ok := FirstMatch(Brands(), "こんにちは")
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestBrands_AliasIsCaseInsensitive(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"canonical name", "ワンピースの売上", "ワンピース"},
		{"alias exact", "ONE PIECEの売上", "ワンピース"},
		{"alias lowercased", "one pieceの売上", "ワンピース"},
		{"short alias", "鬼滅のグッズ", "鬼滅の刃"},
		{"english alias folded", "demon slayerのフィギュア", "鬼滅の刃"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FirstMatch(Brands(), tt.input)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategories_AliasResolvesToCanonicalName(t *testing.T) {
	got, ok := FirstMatch(Categories(), "フィギアの在庫")
	assert.True(t, ok)
	assert.Equal(t, "フィギュア", got)

	got, ok = FirstMatch(Categories(), "マグはある？")
	assert.True(t, ok)
	assert.Equal(t, "マグカップ", got)
}

func TestTimePhrases_MonthSeasonYear(t *testing.T) {
	tests := []struct {
		input         string
		wantCondition string
		wantDisplay   string
	}{
		{"9月の売上", "MONTH(sale_date) = 9", "9月"},
		{"夏の売上", "season = '夏'", "夏"},
		{"2024の実績", "YEAR(sale_date) = 2024", "2024年"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := FirstMatch(TimePhrases(), tt.input)
			assert.True(t, ok)
			assert.Equal(t, tt.wantCondition, got.Condition)
			assert.Equal(t, tt.wantDisplay, got.Display)
		})
	}
}

func TestTimePhrases_FirstPhraseWins(t *testing.T) {
	// Both 3月 and 9月 are present; the table is ordered by month so 3月 wins.
	got, ok := FirstMatch(TimePhrases(), "3月と9月の比較")
	assert.True(t, ok)
	assert.Equal(t, "MONTH(sale_date) = 3", got.Condition)
}

func TestDateRanges_LongerPhraseShadowsPrefix(t *testing.T) {
	got, ok := FirstMatch(DateRanges(), "本日から2ヶ月前の売上")
	assert.True(t, ok)
	assert.Equal(t, "本日から2ヶ月前", got.Phrase)
	assert.Equal(t, 60, got.StartDays)
	assert.Equal(t, 0, got.EndDays)
}

func TestAnalysisMatcher_PriorityOrder(t *testing.T) {
	// 売上 (sales) outranks 推移 (trend) when both are present.
	got, ok := FirstMatch(AnalysisMatcher(), "売上の推移")
	assert.True(t, ok)
	assert.Equal(t, domain.AnalysisSales, got)
}

func TestGroupByMatcher_CollectsEveryDimension(t *testing.T) {
	got := AllMatches(GroupByMatcher(), "店舗ごとの日別売上")
	assert.Equal(t, []domain.GroupDimension{domain.GroupStore, domain.GroupDate}, got)
}
