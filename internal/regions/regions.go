// Package regions classifies and aggregates coverage-failure regions.
package regions

import "github.com/ousamg/vcqc/internal/types"

// Bucket is an ordinal region-length category.
type Bucket string

// Buckets in display order. Thresholds are fixed and non-overlapping so the
// classification is a total, deterministic function of (start, stop).
const (
	BucketUnder10 Bucket = "<10"
	Bucket10to19  Bucket = "10-19"
	Bucket20to29  Bucket = "20-29"
	Bucket30to49  Bucket = "30-49"
	Bucket50to99  Bucket = "50-99"
	Bucket100Plus Bucket = "100+"
)

// Order is the fixed display order of size buckets.
//
//nolint:gochecknoglobals // configuration data, effectively const
var Order = []Bucket{
	BucketUnder10,
	Bucket10to19,
	Bucket20to29,
	Bucket30to49,
	Bucket50to99,
	Bucket100Plus,
}

// Classify buckets a region by its inclusive span length (stop - start + 1).
func Classify(start, stop int) Bucket {
	length := stop - start + 1

	switch {
	case length < 10:
		return BucketUnder10
	case length < 20:
		return Bucket10to19
	case length < 30:
		return Bucket20to29
	case length < 50:
		return Bucket30to49
	case length < 100:
		return Bucket50to99
	default:
		return Bucket100Plus
	}
}

// CountDepths returns the frequency of each raw depth value across regions.
func CountDepths(regions []types.FailedRegion) map[int]int {
	counts := make(map[int]int, len(regions))

	for _, region := range regions {
		counts[region.Depth]++
	}

	return counts
}

// CountSizes returns the frequency of each size bucket across regions.
func CountSizes(regions []types.FailedRegion) map[Bucket]int {
	counts := make(map[Bucket]int, len(regions))

	for _, region := range regions {
		counts[Classify(region.Start, region.Stop)]++
	}

	return counts
}
