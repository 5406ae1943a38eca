package segment

import (
	"iter"
	"slices"
	"sort"
	"strings"
)

// Set is a union of disjoint, non-touching segments stored as a slice
// sorted by Start. The zero value is an empty set ready to use.
//
// Set is not safe for concurrent mutation.
type Set[T Number] struct {
	segments []Segment[T]
}

// window returns the half-open index range [lo, hi) of members that touch s.
// Members are sorted by Start and, being disjoint, by End as well, so both
// predicates are monotone.
func (s *Set[T]) window(seg Segment[T]) (lo, hi int) {
	lo = sort.Search(len(s.segments), func(i int) bool { return s.segments[i].End >= seg.Start })
	hi = sort.Search(len(s.segments), func(i int) bool { return s.segments[i].Start > seg.End })
	return lo, hi
}

// Add merges seg into the set. Every member that overlaps or touches seg is
// replaced by their common bounding segment.
// Returns false when seg is empty or already covered by a single member.
// Complexity: O(log n) search plus O(n) splice.
func (s *Set[T]) Add(seg Segment[T]) bool {
	if seg.IsEmpty() {
		return false
	}
	var d Descriptor[T]

	lo, hi := s.window(seg)
	merged := seg
	for _, m := range s.segments[lo:hi] {
		merged = d.Bounding(merged, m)
	}
	if hi-lo == 1 && s.segments[lo] == merged {
		return false
	}
	s.segments = slices.Replace(s.segments, lo, hi, merged)

	return true
}

// AddRange adds every segment in order and reports whether any Add changed the set.
func (s *Set[T]) AddRange(segments ...Segment[T]) bool {
	changed := false
	for _, seg := range segments {
		if s.Add(seg) {
			changed = true
		}
	}
	return changed
}

// Intersection returns a new set holding member ∩ seg for every member.
// The receiver is not modified.
func (s *Set[T]) Intersection(seg Segment[T]) *Set[T] {
	var d Descriptor[T]
	out := &Set[T]{}
	for _, m := range s.segments {
		if piece := d.Intersection(m, seg); !piece.IsEmpty() {
			// pieces are sub-ranges of disjoint members, so order and gaps hold
			out.segments = append(out.segments, piece)
		}
	}
	return out
}

// Intersect replaces the members with Intersection(seg).
// Intersecting with the empty segment clears the set.
// Returns whether the member sequence changed.
func (s *Set[T]) Intersect(seg Segment[T]) bool {
	if seg.IsEmpty() {
		if s.IsEmpty() {
			return false
		}
		s.Clear()
		return true
	}
	next := s.Intersection(seg)
	if s.Equal(next) {
		return false
	}
	s.segments = next.segments

	return true
}

// Intersects reports whether any member shares at least one element with seg.
func (s *Set[T]) Intersects(seg Segment[T]) bool {
	var d Descriptor[T]
	for _, m := range s.segments {
		if d.Intersects(m, seg) {
			return true
		}
	}
	return false
}

// Subtraction returns a new set holding member \ seg for every member.
// The receiver is not modified.
func (s *Set[T]) Subtraction(seg Segment[T]) *Set[T] {
	var d Descriptor[T]
	out := &Set[T]{segments: make([]Segment[T], 0, len(s.segments)+1)}
	for _, m := range s.segments {
		out.segments = append(out.segments, d.Subtract(m, seg)...)
	}
	return out
}

// Subtract removes seg from the set. Subtracting the empty segment is a no-op.
// Returns whether the member sequence changed.
func (s *Set[T]) Subtract(seg Segment[T]) bool {
	if seg.IsEmpty() {
		return false
	}
	next := s.Subtraction(seg)
	if s.Equal(next) {
		return false
	}
	s.segments = next.segments

	return true
}

// Clear removes all members.
func (s *Set[T]) Clear() {
	s.segments = nil
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	return len(s.segments)
}

// IsEmpty reports whether the set has no members.
func (s *Set[T]) IsEmpty() bool {
	return len(s.segments) == 0
}

// Contains reports whether some member contains x.
func (s *Set[T]) Contains(x T) bool {
	i := sort.Search(len(s.segments), func(i int) bool { return s.segments[i].End > x })
	return i < len(s.segments) && s.segments[i].Start <= x
}

// ContainsSegment reports whether seg lies within a single member.
// The empty segment is contained in every set, the empty one included.
func (s *Set[T]) ContainsSegment(seg Segment[T]) bool {
	if seg.IsEmpty() {
		return true
	}
	var d Descriptor[T]
	i := sort.Search(len(s.segments), func(i int) bool { return s.segments[i].End > seg.Start })
	return i < len(s.segments) && d.ContainsSegment(s.segments[i], seg)
}

// Min returns the lowest covered element; ok is false for an empty set.
func (s *Set[T]) Min() (v T, ok bool) {
	if len(s.segments) == 0 {
		return v, false
	}
	return s.segments[0].Start, true
}

// Bounding returns [first.Start, last.End), or the empty segment.
func (s *Set[T]) Bounding() Segment[T] {
	if len(s.segments) == 0 {
		return Segment[T]{}
	}
	return Segment[T]{Start: s.segments[0].Start, End: s.segments[len(s.segments)-1].End}
}

// Size returns the total number of covered elements (sum of member sizes).
func (s *Set[T]) Size() T {
	var total T
	for _, m := range s.segments {
		total += m.Size()
	}
	return total
}

// Segments returns a copy of the members, ascending by Start.
func (s *Set[T]) Segments() []Segment[T] {
	return slices.Clone(s.segments)
}

// All yields the members ascending by Start. The iterator may be reused;
// it must not be used while the set is being mutated.
func (s *Set[T]) All() iter.Seq[Segment[T]] {
	return func(yield func(Segment[T]) bool) {
		for _, m := range s.segments {
			if !yield(m) {
				return
			}
		}
	}
}

// Clone returns an independent copy of s.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{segments: slices.Clone(s.segments)}
}

// Equal reports whether s and other hold the same members in the same order.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s == other {
		return true
	}
	if other == nil {
		return false
	}
	return slices.Equal(s.segments, other.segments)
}

// String renders the set as "∅" or "{ [s1, e1), [s2, e2) }".
func (s *Set[T]) String() string {
	return format(s.All())
}

func format[T Number](members iter.Seq[Segment[T]]) string {
	var sb strings.Builder
	for m := range members {
		if sb.Len() == 0 {
			sb.WriteString("{ ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(m.String())
	}
	if sb.Len() == 0 {
		return "∅"
	}
	sb.WriteString(" }")
	return sb.String()
}
