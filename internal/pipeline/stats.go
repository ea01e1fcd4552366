package pipeline

// RunStats tracks aggregate counters and byte totals for one run.
type RunStats struct {
	Listed   int    // identifiers selected for fetching
	Fetched  int    // frames downloaded and decoded
	Failed   int    // frames lost to fetch or decode errors
	Written  int    // frames streamed into the encoder
	Skipped  int    // decoded frames dropped for mismatched dimensions
	BytesIn  int64  // compressed bytes downloaded
	BytesOut int64  // final artifact size
	Artifact string // artifact path, empty when none was produced
}
