package api

// QueryRequest carries a free-text question.
type QueryRequest struct {
	Input string `json:"input"`
}

// ExecuteRequest asks for a full run of a previously previewed query. The
// keywords ride along so the response can echo what was understood.
type ExecuteRequest struct {
	SQL      string   `json:"sql"`
	Keywords Keywords `json:"keywords"`
}

type DateRange struct {
	Type         string `json:"type"`
	Value        string `json:"value"`
	StartDaysAgo int    `json:"startDaysAgo"`
	EndDaysAgo   int    `json:"endDaysAgo"`
	Display      string `json:"display"`
}

type Keywords struct {
	Brand         string     `json:"brand,omitempty"`
	Category      string     `json:"category,omitempty"`
	Region        string     `json:"region,omitempty"`
	Store         string     `json:"store,omitempty"`
	Manufacturer  string     `json:"manufacturer,omitempty"`
	TimeCondition string     `json:"timeCondition,omitempty"`
	TimeDisplay   string     `json:"timeDisplay,omitempty"`
	DateRange     *DateRange `json:"dateRange,omitempty"`
	GroupBy       []string   `json:"groupBy,omitempty"`
	AnalysisType  string     `json:"analysisType,omitempty"`
	IsLimited     bool       `json:"isLimited,omitempty"`
	TimeSeries    bool       `json:"timeSeries,omitempty"`
}

type QueryResult struct {
	SQL         string           `json:"sql"`
	Preview     []map[string]any `json:"preview,omitempty"`
	FullResults []map[string]any `json:"fullResults,omitempty"`
	Keywords    Keywords         `json:"keywords"`
	Error       string           `json:"error,omitempty"`
	TotalRows   int              `json:"totalRows"`
}

type DatasetStats struct {
	TotalRows int  `json:"totalRows"`
	IsLoaded  bool `json:"isLoaded"`
}

// Examples bundles the starter questions and suggestion chips for the UI.
type Examples struct {
	Queries    []string `json:"queries"`
	Brands     []string `json:"brands"`
	Categories []string `json:"categories"`
	Timeframes []string `json:"timeframes"`
}
