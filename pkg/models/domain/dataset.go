package domain

// DatasetColumns is the fixed schema of the sales dataset, in file order.
var DatasetColumns = []string{
	"id", "product_name", "category", "brand", "character",
	"sale_date", "sale_price", "cost_price", "quantity", "store_id",
	"store_name", "region", "manufacturer", "release_date", "season",
	"target_age", "size", "color", "event_id", "event_name", "is_limited",
}

// DatasetStats describes the load state of the cached dataset.
type DatasetStats struct {
	TotalRows int
	IsLoaded  bool
}
