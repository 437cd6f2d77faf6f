package domain

// UncategorizedLabel buckets records whose category is null so the category
// breakdown never drops them.
const UncategorizedLabel = "Uncategorized"

// StatsOverview aggregates the whole unfiltered store. The maps serialize
// with keys in ascending alphabetical order.
type StatsOverview struct {
	TotalServices int64
	ByCity        map[string]int64
	ByCategory    map[string]int64
}
