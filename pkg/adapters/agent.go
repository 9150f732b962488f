package adapters

import (
	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

func MapDomainKeywordsToApi(kw domain.Keywords) api.Keywords {
	out := api.Keywords{
		Brand:         kw.Brand,
		Category:      kw.Category,
		Region:        kw.Region,
		Store:         kw.Store,
		Manufacturer:  kw.Manufacturer,
		TimeCondition: kw.TimeCondition,
		TimeDisplay:   kw.TimeDisplay,
		AnalysisType:  string(kw.AnalysisType),
		IsLimited:     kw.IsLimited,
		TimeSeries:    kw.TimeSeries,
	}
	for _, g := range kw.GroupBy {
		out.GroupBy = append(out.GroupBy, string(g))
	}
	if kw.DateRange != nil {
		out.DateRange = &api.DateRange{
			Type:         string(kw.DateRange.Kind),
			Value:        kw.DateRange.Phrase,
			StartDaysAgo: kw.DateRange.StartDays,
			EndDaysAgo:   kw.DateRange.EndDays,
			Display:      kw.DateRange.Display,
		}
	}
	return out
}

func MapApiKeywordsToDomain(kw api.Keywords) domain.Keywords {
	out := domain.Keywords{
		Brand:         kw.Brand,
		Category:      kw.Category,
		Region:        kw.Region,
		Store:         kw.Store,
		Manufacturer:  kw.Manufacturer,
		TimeCondition: kw.TimeCondition,
		TimeDisplay:   kw.TimeDisplay,
		AnalysisType:  domain.AnalysisType(kw.AnalysisType),
		IsLimited:     kw.IsLimited,
		TimeSeries:    kw.TimeSeries,
	}
	for _, g := range kw.GroupBy {
		out.GroupBy = append(out.GroupBy, domain.GroupDimension(g))
	}
	if kw.DateRange != nil {
		out.DateRange = &domain.DateRange{
			Kind:      domain.DateRangeKind(kw.DateRange.Type),
			Phrase:    kw.DateRange.Value,
			StartDays: kw.DateRange.StartDaysAgo,
			EndDays:   kw.DateRange.EndDaysAgo,
			Display:   kw.DateRange.Display,
		}
	}
	return out
}

func MapDomainResultToApi(res domain.QueryResult) api.QueryResult {
	return api.QueryResult{
		SQL:         res.SQL,
		Preview:     mapRows(res.Preview),
		FullResults: mapRows(res.FullResults),
		Keywords:    MapDomainKeywordsToApi(res.Keywords),
		Error:       res.Error,
		TotalRows:   res.TotalRows,
	}
}

func MapDomainStatsToApi(stats domain.DatasetStats) api.DatasetStats {
	return api.DatasetStats{
		TotalRows: stats.TotalRows,
		IsLoaded:  stats.IsLoaded,
	}
}

func mapRows(rows []domain.Row) []map[string]any {
	if rows == nil {
		return nil
	}
	out := make([]map[string]any, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return out
}
