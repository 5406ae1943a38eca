package segment

import "cmp"

// Descriptor is the stateless algebra over segments of element type T.
// The zero value is ready to use; Int32 and Int64 are provided for the
// common integer widths.
//
// All operations are total: degenerate inputs are normalized to the empty
// segment instead of being rejected.
type Descriptor[T Number] struct{}

var (
	// Int32 describes segments over int32.
	Int32 Descriptor[int32]

	// Int64 describes segments over int64.
	Int64 Descriptor[int64]
)

// Empty returns the canonical empty segment [0, 0).
func (Descriptor[T]) Empty() Segment[T] {
	return Segment[T]{}
}

// Create returns [start, end), or the canonical empty segment when start >= end.
// Complexity: O(1).
func (Descriptor[T]) Create(start, end T) Segment[T] {
	if start >= end {
		return Segment[T]{}
	}
	return Segment[T]{Start: start, End: end}
}

// IsEmpty reports whether s.Start >= s.End.
func (Descriptor[T]) IsEmpty(s Segment[T]) bool {
	return s.IsEmpty()
}

// Size returns s.End - s.Start, 0 for an empty segment.
func (Descriptor[T]) Size(s Segment[T]) T {
	return s.Size()
}

// AreEqual reports whether a and b are both empty or share Start and End.
func (Descriptor[T]) AreEqual(a, b Segment[T]) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return a.IsEmpty() && b.IsEmpty()
	}
	return a.Start == b.Start && a.End == b.End
}

// Contains reports whether element lies in s. Always false for an empty s.
func (Descriptor[T]) Contains(s Segment[T], element T) bool {
	return s.Contains(element)
}

// ContainsSegment reports whether other lies entirely within s.
// The empty segment is contained in every segment, the empty one included.
func (Descriptor[T]) ContainsSegment(s, other Segment[T]) bool {
	if other.IsEmpty() {
		return true
	}
	return !s.IsEmpty() && s.Start <= other.Start && other.End <= s.End
}

// Intersection returns a ∩ b, empty when they are disjoint or merely touch.
func (d Descriptor[T]) Intersection(a, b Segment[T]) Segment[T] {
	return d.Create(max(a.Start, b.Start), min(a.End, b.End))
}

// Intersects reports whether a ∩ b is non-empty.
func (d Descriptor[T]) Intersects(a, b Segment[T]) bool {
	return !d.Intersection(a, b).IsEmpty()
}

// Touches reports whether a and b overlap or are adjacent, i.e. whether
// their union is a single segment. False when either one is empty.
//
// This is size(Bounding(a, b)) <= size(a) + size(b), written as endpoint
// comparisons so that it cannot overflow.
func (Descriptor[T]) Touches(a, b Segment[T]) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}
	return a.Start <= b.End && b.Start <= a.End
}

// Bounding returns the smallest segment covering both a and b.
// The empty segment is the identity: Bounding(∅, b) == b.
func (d Descriptor[T]) Bounding(a, b Segment[T]) Segment[T] {
	switch {
	case a.IsEmpty():
		return b
	case b.IsEmpty():
		return a
	}
	return d.Create(min(a.Start, b.Start), max(a.End, b.End))
}

// Union returns a ∪ b as 0, 1 or 2 segments ordered by Start.
// Touching segments are merged into one.
//
//	a     : [a--)       |  [a--)
//	b     :       [b--) |     [b--)
//	result: [a--) [b--) |  [a----b--)
func (d Descriptor[T]) Union(a, b Segment[T]) []Segment[T] {
	aEmpty, bEmpty := a.IsEmpty(), b.IsEmpty()
	switch {
	case aEmpty && bEmpty:
		return nil
	case aEmpty:
		return []Segment[T]{b}
	case bEmpty:
		return []Segment[T]{a}
	case a.End < b.Start:
		return []Segment[T]{a, b}
	case b.End < a.Start:
		return []Segment[T]{b, a}
	}
	return []Segment[T]{d.Bounding(a, b)}
}

// Subtract returns a \ b as 0, 1 or 2 segments ordered by Start.
//
//	a     : [a--------)  |  [a--)   |    [a--)  |    [a--)
//	b     :    [b--)     |     [b--)|  [b--)    |  [b-------)
//	result: [a-)   [a-)  |  [a-)    |     [a-)  |  ∅
func (d Descriptor[T]) Subtract(a, b Segment[T]) []Segment[T] {
	switch {
	case a.IsEmpty():
		return nil
	case b.IsEmpty():
		return []Segment[T]{a}
	case a.End <= b.Start || b.End <= a.Start:
		return []Segment[T]{a}
	}

	if a.Start < b.Start {
		if a.End <= b.End {
			return []Segment[T]{d.Create(a.Start, b.Start)}
		}
		return []Segment[T]{d.Create(a.Start, b.Start), d.Create(b.End, a.End)}
	}
	if a.End > b.End {
		return []Segment[T]{d.Create(b.End, a.End)}
	}
	// b covers a entirely
	return nil
}

// Translate shifts s by delta. The empty segment stays empty.
func (d Descriptor[T]) Translate(s Segment[T], delta T) Segment[T] {
	if s.IsEmpty() {
		return Segment[T]{}
	}
	return d.Create(s.Start+delta, s.End+delta)
}

// StartLess orders segments by Start.
func (Descriptor[T]) StartLess(a, b Segment[T]) bool {
	return a.Start < b.Start
}

// EndLess orders segments by End.
func (Descriptor[T]) EndLess(a, b Segment[T]) bool {
	return a.End < b.End
}

// CompareStart is the three-way form of StartLess, for slices.SortFunc.
func (Descriptor[T]) CompareStart(a, b Segment[T]) int {
	return cmp.Compare(a.Start, b.Start)
}

// NewSet returns a Set holding the union of segments.
// Complexity: O(k·(log n + n)) for k input segments.
func (Descriptor[T]) NewSet(segments ...Segment[T]) *Set[T] {
	s := &Set[T]{}
	s.AddRange(segments...)
	return s
}

// NewTreeSet returns a TreeSet holding the union of segments.
func (Descriptor[T]) NewTreeSet(segments []Segment[T], opts ...TreeOption) *TreeSet[T] {
	t := NewTreeSet[T](opts...)
	t.AddRange(segments...)
	return t
}
