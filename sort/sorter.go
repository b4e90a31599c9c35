package sort

// Sorter binds a comparator so the same ordering can be handed around and reused.
type Sorter[T any] struct {
	less func(a, b T) bool
}

// New returns a Sorter ordering elements by less.
func New[T any](less func(a, b T) bool) Sorter[T] {
	return Sorter[T]{less: less}
}

func (s Sorter[T]) Sort(items []T) {
	Sort(items, s.less)
}

func (s Sorter[T]) SortN(items []T, n int) error {
	return SortN(items, n, s.less)
}

func (s Sorter[T]) IsSorted(items []T) bool {
	return IsSorted(items, s.less)
}

// Reverse returns a Sorter with the mirrored ordering.
func (s Sorter[T]) Reverse() Sorter[T] {
	less := s.less
	return Sorter[T]{
		less: func(a, b T) bool {
			return less(b, a)
		},
	}
}
