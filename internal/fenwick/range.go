package fenwick

// RangeList is a list of numbers supporting both range additions and
// range sums in O(log n).
//
// Adding x to [i, j) contributes x*(k-i) to every prefix sum ending at
// k in (i, j], and x*(j-i) beyond. Keeping the added amounts in one
// tree and the amounts scaled by their start index in another lets a
// prefix sum be rebuilt as k*Sum(added) - Sum(scaled).
type RangeList[T Number] struct {
	base   *List[T]
	added  *List[T]
	scaled *List[T]
}

// NewRange creates a new range list with the given elements.
func NewRange[T Number](values ...T) *RangeList[T] {
	n := len(values)
	return &RangeList[T]{
		base:   New(values...),
		added:  New(make([]T, n)...),
		scaled: New(make([]T, n)...),
	}
}

// Len returns the number of elements in the list.
func (l *RangeList[T]) Len() int {
	return l.base.Len()
}

// AddRange adds x to every element from index i to index j-1.
func (l *RangeList[T]) AddRange(i, j int, x T) {
	if i >= j {
		return
	}
	l.added.Add(i, x)
	l.added.Add(j, -x)
	l.scaled.Add(i, x*T(i))
	l.scaled.Add(j, -x*T(j))
}

// Sum returns the sum of the elements from index 0 to index k-1.
func (l *RangeList[T]) Sum(k int) T {
	return l.base.Sum(k) + l.added.Sum(k)*T(k) - l.scaled.Sum(k)
}

// SumRange returns the sum of the elements from index i to index j-1.
func (l *RangeList[T]) SumRange(i, j int) T {
	return l.Sum(j) - l.Sum(i)
}

// Get returns the element at index i.
func (l *RangeList[T]) Get(i int) T {
	return l.SumRange(i, i+1)
}
