package search

import "math"

// Bucket is a named numeric range, inclusive at both ends
type Bucket struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"` // +Inf for open-ended buckets
}

func (b Bucket) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

type Buckets []Bucket

var ExperienceBuckets = Buckets{
	{Label: "0-5", Min: 0, Max: 5},
	{Label: "6-10", Min: 6, Max: 10},
	{Label: "11-16", Min: 11, Max: 16},
	{Label: "17+", Min: 17, Max: math.Inf(1)},
}

// Fee buckets share their 500 and 1000 edges
var FeeBuckets = Buckets{
	{Label: "100-500", Min: 100, Max: 500},
	{Label: "500-1000", Min: 500, Max: 1000},
	{Label: "1000+", Min: 1000, Max: math.Inf(1)},
}

func (bs Buckets) Find(label string) (Bucket, bool) {
	for _, b := range bs {
		if b.Label == label {
			return b, true
		}
	}
	return Bucket{}, false
}

// Contains reports whether v falls in the bucket called label. An unknown label
// constrains nothing.
func (bs Buckets) Contains(label string, v float64) bool {
	b, ok := bs.Find(label)
	if !ok {
		return true
	}
	return b.Contains(v)
}
