package segment

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
)

// Number is the element constraint for segments: any ordered type that
// supports subtraction and addition.
type Number interface {
	constraints.Integer | constraints.Float
}

// Segment is the half-open interval [Start, End).
//
// Build segments with Descriptor.Create so that degenerate and inverted
// ranges become the canonical empty value Segment[T]{}.
type Segment[T Number] struct {
	Start T
	End   T
}

// IsEmpty reports whether s covers no element (Start >= End).
func (s Segment[T]) IsEmpty() bool {
	return s.Start >= s.End
}

// Size returns End - Start, or 0 when s is empty.
func (s Segment[T]) Size() T {
	if s.IsEmpty() {
		return 0
	}
	return s.End - s.Start
}

// Contains reports whether Start <= x < End.
func (s Segment[T]) Contains(x T) bool {
	return s.Start <= x && x < s.End
}

// String renders s as "[Start, End)".
func (s Segment[T]) String() string {
	return fmt.Sprintf("[%v, %v)", s.Start, s.End)
}

// Collection is the contract shared by Set and TreeSet.
//
// Every mutating method reports whether the member sequence changed.
// Segments and All always yield members ascending by Start.
type Collection[T Number] interface {
	Add(s Segment[T]) bool
	AddRange(segments ...Segment[T]) bool
	Intersect(s Segment[T]) bool
	Intersects(s Segment[T]) bool
	Subtract(s Segment[T]) bool
	Clear()

	Len() int
	IsEmpty() bool
	Contains(x T) bool
	ContainsSegment(s Segment[T]) bool
	Min() (T, bool)
	Bounding() Segment[T]
	Size() T

	Segments() []Segment[T]
	All() iter.Seq[Segment[T]]
	String() string
}

var (
	_ Collection[int64] = (*Set[int64])(nil)
	_ Collection[int64] = (*TreeSet[int64])(nil)
)
