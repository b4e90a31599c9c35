package msort

import (
	"github.com/sbezverk/msort/sort"
)

// Outcome carries a sequence sorted both ways together with the verification of each order.
type Outcome struct {
	Input            []int
	Ascending        []int
	Descending       []int
	AscendingSorted  bool
	DescendingSorted bool
}

// SortBothWays sorts copies of values in ascending and descending order and verifies both,
// values itself is not modified.
func SortBothWays(values []int) *Outcome {
	o := &Outcome{
		Input:      append([]int(nil), values...),
		Ascending:  append([]int(nil), values...),
		Descending: append([]int(nil), values...),
	}
	sort.Sort(o.Ascending, sort.Less[int])
	o.AscendingSorted = sort.IsSorted(o.Ascending, sort.Less[int])
	sort.Sort(o.Descending, sort.Greater[int])
	o.DescendingSorted = sort.IsSorted(o.Descending, sort.Greater[int])

	return o
}

// Verified is true when both orders passed the check.
func (o *Outcome) Verified() bool {
	return o.AscendingSorted && o.DescendingSorted
}
