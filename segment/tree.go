package segment

import (
	"iter"

	"github.com/google/btree"
)

// TreeSet holds the same union of disjoint, non-touching segments as Set,
// kept in a B-tree ordered by Start. Member sequences and the changed
// results of every method match Set exactly; only the cost model differs.
//
// Use NewTreeSet; the zero value is not usable.
// TreeSet is not safe for concurrent mutation.
type TreeSet[T Number] struct {
	tree   *btree.BTreeG[Segment[T]]
	degree int
}

// NewTreeSet returns an empty TreeSet.
func NewTreeSet[T Number](opts ...TreeOption) *TreeSet[T] {
	cfg := newTreeConfig(opts...)
	var d Descriptor[T]
	return &TreeSet[T]{
		tree:   btree.NewG[Segment[T]](cfg.degree, d.StartLess),
		degree: cfg.degree,
	}
}

func (t *TreeSet[T]) empty() *TreeSet[T] {
	return NewTreeSet[T](WithDegree(t.degree))
}

// touching collects, in order, the members for which keep holds, starting
// from the predecessor of seg when that predecessor satisfies keep and
// stopping at the first member starting after stop.
func (t *TreeSet[T]) touching(seg Segment[T], keep func(Segment[T]) bool, past func(Segment[T]) bool) []Segment[T] {
	pivot := seg
	t.tree.DescendLessOrEqual(seg, func(m Segment[T]) bool {
		if keep(m) {
			pivot = m
		}
		return false
	})

	var hits []Segment[T]
	t.tree.AscendGreaterOrEqual(pivot, func(m Segment[T]) bool {
		if past(m) {
			return false
		}
		if keep(m) {
			hits = append(hits, m)
		}
		return true
	})
	return hits
}

// Add merges seg into the set; see Set.Add.
// Complexity: O(log n + k) for k merged members.
func (t *TreeSet[T]) Add(seg Segment[T]) bool {
	if seg.IsEmpty() {
		return false
	}
	var d Descriptor[T]

	hits := t.touching(seg,
		func(m Segment[T]) bool { return d.Touches(m, seg) },
		func(m Segment[T]) bool { return m.Start > seg.End },
	)
	merged := seg
	for _, m := range hits {
		merged = d.Bounding(merged, m)
	}
	if len(hits) == 1 && hits[0] == merged {
		return false
	}
	for _, m := range hits {
		t.tree.Delete(m)
	}
	t.tree.ReplaceOrInsert(merged)

	return true
}

// AddRange adds every segment in order and reports whether any Add changed the set.
func (t *TreeSet[T]) AddRange(segments ...Segment[T]) bool {
	changed := false
	for _, seg := range segments {
		if t.Add(seg) {
			changed = true
		}
	}
	return changed
}

// overlapping returns the members sharing at least one element with seg.
func (t *TreeSet[T]) overlapping(seg Segment[T]) []Segment[T] {
	if seg.IsEmpty() {
		return nil
	}
	var d Descriptor[T]
	return t.touching(seg,
		func(m Segment[T]) bool { return d.Intersects(m, seg) },
		func(m Segment[T]) bool { return m.Start >= seg.End },
	)
}

// Intersection returns a new TreeSet holding member ∩ seg for every member.
func (t *TreeSet[T]) Intersection(seg Segment[T]) *TreeSet[T] {
	var d Descriptor[T]
	out := t.empty()
	for _, m := range t.overlapping(seg) {
		out.tree.ReplaceOrInsert(d.Intersection(m, seg))
	}
	return out
}

// Intersect replaces the members with Intersection(seg); see Set.Intersect.
func (t *TreeSet[T]) Intersect(seg Segment[T]) bool {
	if seg.IsEmpty() {
		if t.IsEmpty() {
			return false
		}
		t.Clear()
		return true
	}
	next := t.Intersection(seg)
	if t.Equal(next) {
		return false
	}
	t.tree = next.tree

	return true
}

// Intersects reports whether any member shares at least one element with seg.
func (t *TreeSet[T]) Intersects(seg Segment[T]) bool {
	return len(t.overlapping(seg)) > 0
}

// Subtraction returns a new TreeSet holding member \ seg for every member.
// The receiver is not modified.
func (t *TreeSet[T]) Subtraction(seg Segment[T]) *TreeSet[T] {
	out := &TreeSet[T]{tree: t.tree.Clone(), degree: t.degree}
	out.Subtract(seg)
	return out
}

// Subtract removes seg from the set; see Set.Subtract.
// Complexity: O(log n + k) for k affected members.
func (t *TreeSet[T]) Subtract(seg Segment[T]) bool {
	hits := t.overlapping(seg)
	if len(hits) == 0 {
		return false
	}
	var d Descriptor[T]
	for _, m := range hits {
		t.tree.Delete(m)
		for _, piece := range d.Subtract(m, seg) {
			t.tree.ReplaceOrInsert(piece)
		}
	}
	return true
}

// Clear removes all members.
func (t *TreeSet[T]) Clear() {
	t.tree.Clear(false)
}

// Len returns the number of members.
func (t *TreeSet[T]) Len() int {
	return t.tree.Len()
}

// IsEmpty reports whether the set has no members.
func (t *TreeSet[T]) IsEmpty() bool {
	return t.tree.Len() == 0
}

// Contains reports whether some member contains x.
func (t *TreeSet[T]) Contains(x T) bool {
	found := false
	t.tree.DescendLessOrEqual(Segment[T]{Start: x, End: x}, func(m Segment[T]) bool {
		found = m.Contains(x)
		return false
	})
	return found
}

// ContainsSegment reports whether seg lies within a single member.
func (t *TreeSet[T]) ContainsSegment(seg Segment[T]) bool {
	if seg.IsEmpty() {
		return true
	}
	var d Descriptor[T]
	found := false
	t.tree.DescendLessOrEqual(seg, func(m Segment[T]) bool {
		found = d.ContainsSegment(m, seg)
		return false
	})
	return found
}

// Min returns the lowest covered element; ok is false for an empty set.
func (t *TreeSet[T]) Min() (v T, ok bool) {
	m, ok := t.tree.Min()
	return m.Start, ok
}

// Bounding returns [first.Start, last.End), or the empty segment.
func (t *TreeSet[T]) Bounding() Segment[T] {
	first, ok := t.tree.Min()
	if !ok {
		return Segment[T]{}
	}
	last, _ := t.tree.Max()
	return Segment[T]{Start: first.Start, End: last.End}
}

// Size returns the total number of covered elements.
func (t *TreeSet[T]) Size() T {
	var total T
	for m := range t.All() {
		total += m.Size()
	}
	return total
}

// Segments returns the members ascending by Start.
func (t *TreeSet[T]) Segments() []Segment[T] {
	out := make([]Segment[T], 0, t.tree.Len())
	t.tree.Ascend(func(m Segment[T]) bool {
		out = append(out, m)
		return true
	})
	return out
}

// All yields the members ascending by Start; see Set.All.
func (t *TreeSet[T]) All() iter.Seq[Segment[T]] {
	return func(yield func(Segment[T]) bool) {
		t.tree.Ascend(func(m Segment[T]) bool {
			return yield(m)
		})
	}
}

// Equal reports whether t and other hold the same members in the same order.
func (t *TreeSet[T]) Equal(other *TreeSet[T]) bool {
	if t == other {
		return true
	}
	if other == nil || t.Len() != other.Len() {
		return false
	}
	a, b := t.Segments(), other.Segments()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String renders the set like Set.String.
func (t *TreeSet[T]) String() string {
	return format(t.All())
}
