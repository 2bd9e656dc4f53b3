package plan

import (
	"iter"

	"github.com/lsds/partitions/srcs/go/partition"
	"github.com/lsds/partitions/srcs/go/utils/assert"
)

// Interval represents the interval of integers [Begin, End)
type Interval struct {
	Begin int
	End   int
}

func (i Interval) Len() int { return i.End - i.Begin }

// EvenPartition parts an Interval into k parts such that the length of each part differ at most 1
func EvenPartition(r Interval, k int) []Interval {
	parts := make([]Interval, 0, k)
	for i := range EvenIntervals(r, k) {
		parts = append(parts, i)
	}
	return parts
}

// EvenIntervals yields the parts of EvenPartition one by one, shorter parts
// first. If r has fewer than k integers, the trailing parts are empty.
func EvenIntervals(r Interval, k int) iter.Seq[Interval] {
	assert.Truef(k > 0, "partition %v into %d parts", r, k)
	assert.Truef(r.Len() >= 0, "invalid interval %v", r)
	return func(yield func(Interval) bool) {
		ps := partition.NewCounted(r.Len(), min(k, r.Len()))
		offset := r.Begin
		for i := 0; i < k; i++ {
			size, _ := ps.Next()
			if !yield(Interval{Begin: offset, End: offset + size}) {
				return
			}
			offset += size
		}
	}
}
