package sort

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	// ErrInvalidArgument error returns when SortN gets a buffer which cannot hold n elements
	ErrInvalidArgument = errors.New("invalid argument")
)

// Less is the natural ascending ordering of T.
func Less[T constraints.Ordered](a, b T) bool {
	return a < b
}

// Greater is the mirror of Less, it sorts in descending order.
func Greater[T constraints.Ordered](a, b T) bool {
	return a > b
}

func merge[T any](s []T, low, mid, high int, less func(a, b T) bool) {
	n1 := mid - low + 1
	n2 := high - mid
	left := make([]T, n1)
	right := make([]T, n2)
	copy(left, s[low:mid+1])
	copy(right, s[mid+1:high+1])

	i, j, k := 0, 0, low
	for i < n1 && j < n2 {
		// Taking from the right only when it strictly precedes keeps equal elements in order
		if less(right[j], left[i]) {
			s[k] = right[j]
			j++
		} else {
			s[k] = left[i]
			i++
		}
		k++
	}
	k += copy(s[k:], left[i:])
	copy(s[k:], right[j:])
}

func sort[T any](s []T, low, high int, less func(a, b T) bool) {
	if low >= high {
		return
	}
	// low+(high-low)/2 cannot overflow, (low+high)/2 can
	mid := low + (high-low)/2
	sort(s, low, mid, less)
	sort(s, mid+1, high, less)
	merge(s, low, mid, high, less)
}

// Sort sorts s in place with a stable merge sort, elements which are equal under
// less keep their original relative order. A nil or empty slice is left untouched.
func Sort[T any](s []T, less func(a, b T) bool) {
	if len(s) <= 1 {
		return
	}
	sort(s, 0, len(s)-1, less)
}

// SortOrdered sorts s in ascending natural order.
func SortOrdered[T constraints.Ordered](s []T) {
	Sort(s, Less[T])
}

// SortN sorts the first n elements of s. It is the explicit length form of Sort, n of 0
// succeeds for any s including nil, otherwise s must hold at least n elements.
// The arguments are validated before s is touched.
func SortN[T any](s []T, n int, less func(a, b T) bool) error {
	switch {
	case n == 0:
		return nil
	case n < 0:
		return fmt.Errorf("negative length %d: %w", n, ErrInvalidArgument)
	case s == nil:
		return fmt.Errorf("nil buffer with length %d: %w", n, ErrInvalidArgument)
	case n > len(s):
		return fmt.Errorf("length %d exceeds buffer size %d: %w", n, len(s), ErrInvalidArgument)
	}
	Sort(s[:n], less)

	return nil
}

// IsSorted reports whether no element of s strictly precedes its predecessor under less.
func IsSorted[T any](s []T, less func(a, b T) bool) bool {
	for i := 0; i < len(s)-1; i++ {
		if less(s[i+1], s[i]) {
			return false
		}
	}
	return true
}

// IsSortedOrdered reports whether s is in ascending natural order.
func IsSortedOrdered[T constraints.Ordered](s []T) bool {
	return IsSorted(s, Less[T])
}
