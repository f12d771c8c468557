package filesum

import (
	"cmp"
	"slices"
	"time"
)

// DefaultTopN is the number of entries in each top-N view.
const DefaultTopN = 5

// ExtCount is the number of files sharing one extension.
type ExtCount struct {
	Extension string
	Count     int
}

// Summary holds everything the report needs from a scan.
type Summary struct {
	// Root is the scanned directory.
	Root string
	// Extensions lists counts per extension in first-seen order.
	Extensions []ExtCount
	// Largest contains the TopN largest files, largest first.
	Largest []FileRecord
	// Oldest contains the TopN oldest files, oldest first.
	Oldest []FileRecord
	// FileCount is the number of files recorded.
	FileCount int
	// TotalBytes is the cumulative size of all recorded files.
	TotalBytes int64
	// ErrorCount is the number of entries skipped because of errors.
	ErrorCount int
	// Elapsed is the time taken by the scan.
	Elapsed time.Duration
	// TopN is the requested length of the top-N views.
	TopN int
}

// SummarizeByExtension counts records per extension. The result is ordered by
// the first occurrence of each extension in records.
func SummarizeByExtension(records []FileRecord) []ExtCount {
	index := make(map[string]int)
	counts := make([]ExtCount, 0)

	for _, r := range records {
		i, ok := index[r.Extension]
		if !ok {
			i = len(counts)
			index[r.Extension] = i
			counts = append(counts, ExtCount{Extension: r.Extension})
		}

		counts[i].Count++
	}

	return counts
}

// TopLargest returns up to n records ordered by size, largest first.
// Records of equal size keep their relative order from the input.
func TopLargest(records []FileRecord, n int) []FileRecord {
	return topN(records, n, func(a, b FileRecord) int {
		return cmp.Compare(b.Size, a.Size)
	})
}

// TopOldest returns up to n records ordered by modification time, oldest first.
// Records with equal times keep their relative order from the input.
func TopOldest(records []FileRecord, n int) []FileRecord {
	return topN(records, n, func(a, b FileRecord) int {
		return a.ModTime.Compare(b.ModTime)
	})
}

func topN(records []FileRecord, n int, compare func(a, b FileRecord) int) []FileRecord {
	if n <= 0 {
		return []FileRecord{}
	}

	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, compare)

	if len(sorted) > n {
		sorted = sorted[:n]
	}

	if sorted == nil {
		return []FileRecord{}
	}

	return sorted
}

// Summarize derives the extension counts and both top-N views from a scan.
// A non-positive n falls back to DefaultTopN.
func Summarize(result *ScanResult, n int) *Summary {
	if n <= 0 {
		n = DefaultTopN
	}

	var total int64
	for _, r := range result.Records {
		total += r.Size
	}

	return &Summary{
		Root:       result.Root,
		Extensions: SummarizeByExtension(result.Records),
		Largest:    TopLargest(result.Records, n),
		Oldest:     TopOldest(result.Records, n),
		FileCount:  len(result.Records),
		TotalBytes: total,
		ErrorCount: result.ErrorCount,
		Elapsed:    result.Elapsed,
		TopN:       n,
	}
}
