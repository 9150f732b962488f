package domain

// AnalysisType selects the aggregate shape of a generated query.
type AnalysisType string

const (
	AnalysisSales   AnalysisType = "sales"
	AnalysisRanking AnalysisType = "ranking"
	AnalysisCount   AnalysisType = "count"
	AnalysisAverage AnalysisType = "average"
	AnalysisTrend   AnalysisType = "trend"
)

// GroupDimension is a grouping axis recognized in user input.
type GroupDimension string

const (
	GroupStore    GroupDimension = "store"
	GroupDate     GroupDimension = "date"
	GroupBrand    GroupDimension = "brand"
	GroupCategory GroupDimension = "category"
)

// DateRangeKind distinguishes how a date range was phrased.
type DateRangeKind string

const (
	DateRangeRelative DateRangeKind = "relative"
	DateRangeAbsolute DateRangeKind = "absolute"
)

// DateRange is a date window measured backwards from today.
type DateRange struct {
	Kind      DateRangeKind
	Phrase    string
	StartDays int
	EndDays   int
	Display   string
}

// Keywords is the structured intent extracted from a free-text question.
// String fields are empty when the corresponding vocabulary was not found.
type Keywords struct {
	Brand         string
	Category      string
	Region        string
	Store         string
	Manufacturer  string
	TimeCondition string
	TimeDisplay   string
	DateRange     *DateRange
	GroupBy       []GroupDimension
	AnalysisType  AnalysisType
	IsLimited     bool
	TimeSeries    bool
}

// HasGroup reports whether dim is already part of the group-by set.
func (k Keywords) HasGroup(dim GroupDimension) bool {
	for _, g := range k.GroupBy {
		if g == dim {
			return true
		}
	}
	return false
}

// Row is a single result record. Values are strings for dataset columns and
// numbers for computed aggregates.
type Row map[string]any

// QueryResult is the orchestrator's answer to a single question. Faults are
// carried in Error rather than returned as Go errors; an empty Error means
// the run succeeded.
type QueryResult struct {
	SQL         string
	Preview     []Row
	FullResults []Row
	Keywords    Keywords
	Error       string
	TotalRows   int
}

// PopularKeywords are suggestion chips surfaced by the UI.
type PopularKeywords struct {
	Brands     []string
	Categories []string
	Timeframes []string
}
