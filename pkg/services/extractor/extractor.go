// Package extractor turns a free-text question into a structured Keywords
// record by scanning the pattern catalog. Extraction is pure and never
// fails: input with no recognizable vocabulary yields a record that only
// carries the default analysis type.
package extractor

import (
	"strings"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/catalog"
)

// Extractor scans input text against the pattern catalog.
type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

// Extract builds a Keywords record from raw input. Each vocabulary category
// is scanned independently; within a category the first catalog entry wins.
func (e *Extractor) Extract(input string) domain.Keywords {
	var kw domain.Keywords

	if brand, ok := catalog.FirstMatch(catalog.Brands(), input); ok {
		kw.Brand = brand
	}
	if category, ok := catalog.FirstMatch(catalog.Categories(), input); ok {
		kw.Category = category
	}
	if phrase, ok := catalog.FirstMatch(catalog.TimePhrases(), input); ok {
		kw.TimeCondition = phrase.Condition
		kw.TimeDisplay = phrase.Display
	}
	if region, ok := catalog.FirstMatch(catalog.Regions(), input); ok {
		kw.Region = region
	}
	if store, ok := catalog.FirstMatch(catalog.Stores(), input); ok {
		kw.Store = store
	}
	if manufacturer, ok := catalog.FirstMatch(catalog.Manufacturers(), input); ok {
		kw.Manufacturer = manufacturer
	}

	for _, marker := range catalog.LimitedMarkers() {
		if strings.Contains(input, marker) {
			kw.IsLimited = true
			break
		}
	}

	kw.AnalysisType = domain.AnalysisSales
	if analysis, ok := catalog.FirstMatch(catalog.AnalysisMatcher(), input); ok {
		kw.AnalysisType = analysis
	}

	// A relative date range replaces the display label only; any extracted
	// TimeCondition still filters.
	if rng, ok := catalog.FirstMatch(catalog.DateRanges(), input); ok {
		kw.DateRange = &domain.DateRange{
			Kind:      domain.DateRangeRelative,
			Phrase:    rng.Phrase,
			StartDays: rng.StartDays,
			EndDays:   rng.EndDays,
			Display:   rng.Display,
		}
		kw.TimeDisplay = rng.Display
	}

	for _, dim := range catalog.AllMatches(catalog.GroupByMatcher(), input) {
		if !kw.HasGroup(dim) {
			kw.GroupBy = append(kw.GroupBy, dim)
		}
	}

	for _, phrase := range catalog.TimeSeriesPhrases() {
		if strings.Contains(input, phrase) {
			kw.TimeSeries = true
			if !kw.HasGroup(domain.GroupDate) {
				kw.GroupBy = append(kw.GroupBy, domain.GroupDate)
			}
			if kw.AnalysisType == domain.AnalysisSales {
				kw.AnalysisType = domain.AnalysisTrend
			}
			break
		}
	}

	return kw
}

// HasActionableKeywords reports whether the record is specific enough to
// compile. At least one descriptive filter has to be present.
func (e *Extractor) HasActionableKeywords(kw domain.Keywords) bool {
	return kw.Brand != "" || kw.Category != "" || kw.TimeCondition != "" ||
		kw.Region != "" || kw.Store != "" || kw.Manufacturer != ""
}

var analysisLabels = map[domain.AnalysisType]string{
	domain.AnalysisSales:   "売上分析",
	domain.AnalysisRanking: "ランキング分析",
	domain.AnalysisCount:   "数量分析",
	domain.AnalysisAverage: "平均分析",
	domain.AnalysisTrend:   "推移分析",
}

// Describe renders the record as a short human-readable summary.
func (e *Extractor) Describe(kw domain.Keywords) string {
	var parts []string

	if kw.Brand != "" {
		parts = append(parts, kw.Brand)
	}
	if kw.Category != "" {
		parts = append(parts, kw.Category)
	}
	if kw.TimeDisplay != "" {
		parts = append(parts, kw.TimeDisplay)
	}
	if kw.Region != "" {
		parts = append(parts, kw.Region)
	}
	if kw.Store != "" {
		parts = append(parts, kw.Store)
	}
	if kw.Manufacturer != "" {
		parts = append(parts, kw.Manufacturer)
	}
	if kw.IsLimited {
		parts = append(parts, "限定商品")
	}

	label, ok := analysisLabels[kw.AnalysisType]
	if !ok {
		label = analysisLabels[domain.AnalysisSales]
	}

	if len(parts) == 0 {
		return "全体の" + label
	}
	return strings.Join(parts, "・") + "の" + label
}
