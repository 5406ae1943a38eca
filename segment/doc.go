// Package segment implements half-open numeric intervals and a set container
// that keeps a union of them in canonical form.
//
// 🚀 What is a segment?
//
//	A Segment[T] is the half-open interval [Start, End) over an integer or
//	floating-point type. Every range with Start >= End is empty, and all empty
//	ranges collapse to the single zero value Segment[T]{} (Start = End = 0).
//
// ✨ Key features:
//   - Descriptor[T]: stateless algebra over pairs of segments
//     (Intersection, Bounding, Touches, Union, Subtract, Translate, ...)
//   - Set[T]: sorted-slice union of disjoint, non-touching segments
//   - TreeSet[T]: the same contract on top of a B-tree for large member counts
//   - Collection[T]: the interface both set types satisfy
//
// Set invariants, restored after every mutating call:
//
//	- members neither overlap nor touch ([10,20) and [20,30) are merged)
//	- members are sorted ascending by Start
//	- the empty segment is never a member
//
// ⚙️ Usage:
//
//	d := segment.Int64
//	s := d.NewSet(d.Create(10, 20), d.Create(30, 40))
//	s.Add(d.Create(20, 30))        // true, s == { [10, 40) }
//	s.Subtract(d.Create(15, 35))   // true, s == { [10, 15), [35, 40) }
//	fmt.Println(s)                 // { [10, 15), [35, 40) }
//
// Concurrency: none of the types are safe for concurrent mutation; guard a
// shared set with a sync.Mutex around mutating calls.
//
// Performance:
//
//   - Segment algebra: O(1)
//   - Set.Add:         O(log n + n) (binary search, slice splice)
//   - TreeSet.Add:     O(log n + k) where k is the number of merged members
//   - Intersection / Subtraction: O(n)
package segment
