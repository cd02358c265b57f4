package segtree

import "golang.org/x/exp/constraints"

// Number is the set of types the arithmetic algebras below work with.
type Number interface {
	constraints.Integer | constraints.Float
}

// MinSet answers range-minimum queries; updates assign a new value to
// every element in the range.
type MinSet[T constraints.Ordered] struct{}

func (MinSet[T]) JoinValues(a, b T) T {
	if b < a {
		return b
	}
	return a
}

func (MinSet[T]) ApplyDelta(_ T, d T, _ int) T { return d }

// JoinDeltas lets the more recent assignment win.
func (MinSet[T]) JoinDeltas(_, newer T) T { return newer }

// MaxSet answers range-maximum queries; updates assign a new value to
// every element in the range.
type MaxSet[T constraints.Ordered] struct{}

func (MaxSet[T]) JoinValues(a, b T) T {
	if b > a {
		return b
	}
	return a
}

func (MaxSet[T]) ApplyDelta(_ T, d T, _ int) T { return d }

func (MaxSet[T]) JoinDeltas(_, newer T) T { return newer }

// SumAdd answers range-sum queries; updates add the delta to every
// element in the range.
type SumAdd[T Number] struct{}

func (SumAdd[T]) JoinValues(a, b T) T { return a + b }

func (SumAdd[T]) ApplyDelta(v T, d T, length int) T { return v + d*T(length) }

func (SumAdd[T]) JoinDeltas(older, newer T) T { return older + newer }

// SumSet answers range-sum queries; updates assign a new value to every
// element in the range.
type SumSet[T Number] struct{}

func (SumSet[T]) JoinValues(a, b T) T { return a + b }

func (SumSet[T]) ApplyDelta(_ T, d T, length int) T { return d * T(length) }

func (SumSet[T]) JoinDeltas(_, newer T) T { return newer }

// MinAdd answers range-minimum queries; updates add the delta to every
// element in the range.
type MinAdd[T Number] struct{}

func (MinAdd[T]) JoinValues(a, b T) T {
	if b < a {
		return b
	}
	return a
}

func (MinAdd[T]) ApplyDelta(v T, d T, _ int) T { return v + d }

func (MinAdd[T]) JoinDeltas(older, newer T) T { return older + newer }
