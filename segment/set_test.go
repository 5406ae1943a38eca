package segment_test

import (
	"testing"

	"github.com/katalvlaran/segments/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectionFactory builds a Collection from initial segments, so that every
// contract test runs against both Set and TreeSet.
type collectionFactory struct {
	name string
	make func(initial ...segment.Segment[int64]) segment.Collection[int64]
}

var factories = []collectionFactory{
	{"Set", func(initial ...segment.Segment[int64]) segment.Collection[int64] {
		return d.NewSet(initial...)
	}},
	{"TreeSet", func(initial ...segment.Segment[int64]) segment.Collection[int64] {
		// smallest degree to force node splits in small tests
		return d.NewTreeSet(initial, segment.WithDegree(2))
	}},
}

func forEachCollection(t *testing.T, fn func(t *testing.T, f collectionFactory)) {
	for _, f := range factories {
		t.Run(f.name, func(t *testing.T) { fn(t, f) })
	}
}

// TestCollection_Add covers merge-on-insert, touch merging and idempotence.
func TestCollection_Add(t *testing.T) {
	tests := []struct {
		name        string
		initial     []segment.Segment[int64]
		add         segment.Segment[int64]
		wantChanged bool
		want        []segment.Segment[int64]
	}{
		{"empty into empty", nil, seg(0, 0), false, nil},
		{"empty into one", segs(10, 20), seg(0, 0), false, segs(10, 20)},
		{"empty into two", segs(10, 20, 30, 40), seg(0, 0), false, segs(10, 20, 30, 40)},
		{"into empty set", nil, seg(10, 20), true, segs(10, 20)},
		{"existing member", segs(10, 20), seg(10, 20), false, segs(10, 20)},
		{"covered by member", segs(10, 20), seg(12, 18), false, segs(10, 20)},
		{"before", segs(10, 20), seg(0, 5), true, segs(0, 5, 10, 20)},
		{"after", segs(10, 20), seg(30, 40), true, segs(10, 20, 30, 40)},
		{"bridges by touching", segs(10, 20, 30, 40), seg(20, 30), true, segs(10, 40)},
		{"inside gap", segs(10, 20, 30, 40), seg(22, 28), true, segs(10, 20, 22, 28, 30, 40)},
		{"overlaps next", segs(10, 20, 30, 40), seg(25, 35), true, segs(10, 20, 25, 40)},
		{"overlaps previous", segs(10, 20, 30, 40), seg(15, 25), true, segs(10, 25, 30, 40)},
		{"touches left edge", segs(10, 20), seg(5, 10), true, segs(5, 20)},
		{"swallows all", segs(10, 20, 30, 40, 50, 60), seg(5, 65), true, segs(5, 65)},
		{"swallows prefix", segs(10, 20, 30, 40, 50, 60), seg(5, 35), true, segs(5, 40, 50, 60)},
		{"extends member", segs(10, 20, 30, 40), seg(10, 25), true, segs(10, 25, 30, 40)},
	}
	forEachCollection(t, func(t *testing.T, f collectionFactory) {
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				s := f.make(tc.initial...)
				changed := s.Add(tc.add)
				assert.Equal(t, tc.wantChanged, changed, "changed")
				assert.Equal(t, tc.want, nilIfEmpty(s.Segments()), "members")
			})
		}
	})
}

// TestCollection_AddRange reports true when any add changed the set.
func TestCollection_AddRange(t *testing.T) {
	forEachCollection(t, func(t *testing.T, f collectionFactory) {
		s := f.make()
		assert.True(t, s.AddRange(segs(30, 40, 10, 20)...))
		assert.False(t, s.AddRange(segs(12, 18, 30, 35)...))
		assert.True(t, s.AddRange(seg(12, 18), seg(20, 30)))
		assert.Equal(t, segs(10, 40), s.Segments())
		assert.False(t, s.AddRange())
	})
}

// TestCollection_Intersect checks the mutating intersection and Intersects.
func TestCollection_Intersect(t *testing.T) {
	tests := []struct {
		name           string
		initial        []segment.Segment[int64]
		with           segment.Segment[int64]
		want           []segment.Segment[int64]
		wantChanged    bool
		wantIntersects bool
	}{
		{"empty with empty", nil, seg(0, 0), nil, false, false},
		{"one with empty", segs(10, 20), seg(0, 0), nil, true, false},
		{"empty with one", nil, seg(10, 20), nil, false, false},
		{"same segment", segs(10, 20), seg(10, 20), segs(10, 20), false, true},
		{"trims two", segs(10, 20, 30, 40, 50, 60), seg(15, 35), segs(15, 20, 30, 35), true, true},
		{"trims last", segs(10, 20, 30, 40, 50, 60), seg(55, 100), segs(55, 60), true, true},
		{"misses all", segs(10, 20, 30, 40, 50, 60), seg(65, 100), nil, true, false},
		{"left overlap", segs(10, 20), seg(5, 15), segs(10, 15), true, true},
		{"touching only", segs(10, 20), seg(20, 30), nil, true, false},
	}
	forEachCollection(t, func(t *testing.T, f collectionFactory) {
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				s := f.make(tc.initial...)
				assert.Equal(t, tc.wantIntersects, s.Intersects(tc.with), "Intersects before")
				changed := s.Intersect(tc.with)
				assert.Equal(t, tc.wantChanged, changed, "changed")
				assert.Equal(t, tc.want, nilIfEmpty(s.Segments()), "members")
				assert.Equal(t, tc.wantIntersects, s.Intersects(tc.with), "Intersects after")
			})
		}
	})
}

// TestCollection_Subtract checks the mutating subtraction.
func TestCollection_Subtract(t *testing.T) {
	tests := []struct {
		name        string
		initial     []segment.Segment[int64]
		without     segment.Segment[int64]
		want        []segment.Segment[int64]
		wantChanged bool
	}{
		{"empty minus empty", nil, seg(0, 0), nil, false},
		{"one minus empty", segs(10, 20), seg(0, 0), segs(10, 20), false},
		{"empty minus one", nil, seg(10, 20), nil, false},
		{"exact member", segs(10, 20), seg(10, 20), nil, true},
		{"across two", segs(10, 20, 30, 40, 50, 60), seg(15, 35), segs(10, 15, 35, 40, 50, 60), true},
		{"tail", segs(10, 20, 30, 40, 50, 60), seg(55, 100), segs(10, 20, 30, 40, 50, 55), true},
		{"past the end", segs(10, 20, 30, 40, 50, 60), seg(65, 100), segs(10, 20, 30, 40, 50, 60), false},
		{"splits member", segs(10, 40), seg(20, 30), segs(10, 20, 30, 40), true},
		{"gap only", segs(10, 20, 30, 40), seg(20, 30), segs(10, 20, 30, 40), false},
		{"everything", segs(10, 20, 30, 40), seg(0, 100), nil, true},
	}
	forEachCollection(t, func(t *testing.T, f collectionFactory) {
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				s := f.make(tc.initial...)
				changed := s.Subtract(tc.without)
				assert.Equal(t, tc.wantChanged, changed, "changed")
				assert.Equal(t, tc.want, nilIfEmpty(s.Segments()), "members")
			})
		}
	})
}

// TestCollection_Queries checks Len, Contains, ContainsSegment, Min, Bounding and Size.
func TestCollection_Queries(t *testing.T) {
	forEachCollection(t, func(t *testing.T, f collectionFactory) {
		empty := f.make()
		assert.True(t, empty.IsEmpty())
		assert.Equal(t, 0, empty.Len())
		_, ok := empty.Min()
		assert.False(t, ok)
		assert.Equal(t, d.Empty(), empty.Bounding())
		assert.Equal(t, int64(0), empty.Size())
		assert.False(t, empty.Contains(0))
		assert.True(t, empty.ContainsSegment(d.Empty()))
		assert.False(t, empty.ContainsSegment(seg(1, 2)))

		s := f.make(segs(10, 20, 30, 40, 50, 60)...)
		assert.False(t, s.IsEmpty())
		assert.Equal(t, 3, s.Len())
		minimum, ok := s.Min()
		require.True(t, ok)
		assert.Equal(t, int64(10), minimum)
		assert.Equal(t, seg(10, 60), s.Bounding())
		assert.Equal(t, int64(30), s.Size())

		for x, want := range map[int64]bool{9: false, 10: true, 19: true, 20: false, 25: false, 30: true, 59: true, 60: false} {
			assert.Equal(t, want, s.Contains(x), "Contains(%d)", x)
		}
		assert.True(t, s.ContainsSegment(seg(32, 38)))
		assert.True(t, s.ContainsSegment(seg(50, 60)))
		assert.False(t, s.ContainsSegment(seg(15, 35)))
		assert.False(t, s.ContainsSegment(seg(20, 30)))
		assert.True(t, s.ContainsSegment(d.Empty()))
	})
}

// TestCollection_ClearAndString checks Clear and the diagnostic string form.
func TestCollection_ClearAndString(t *testing.T) {
	forEachCollection(t, func(t *testing.T, f collectionFactory) {
		assert.Equal(t, "∅", f.make().String())
		assert.Equal(t, "{ [10, 20) }", f.make(segs(10, 20)...).String())
		assert.Equal(t, "{ [10, 20), [30, 40) }", f.make(segs(30, 40, 10, 20)...).String())

		s := f.make(segs(10, 20, 30, 40)...)
		s.Clear()
		assert.True(t, s.IsEmpty())
		assert.Empty(t, s.Segments())
		assert.Equal(t, "∅", s.String())
		assert.True(t, s.Add(seg(1, 2)), "cleared set is reusable")
	})
}

// TestCollection_AllRestartable iterates twice and stops early once.
func TestCollection_AllRestartable(t *testing.T) {
	forEachCollection(t, func(t *testing.T, f collectionFactory) {
		s := f.make(segs(10, 20, 30, 40, 50, 60)...)
		var first, second []segment.Segment[int64]
		for m := range s.All() {
			first = append(first, m)
		}
		for m := range s.All() {
			second = append(second, m)
			if len(second) == 2 {
				break
			}
		}
		assert.Equal(t, segs(10, 20, 30, 40, 50, 60), first)
		assert.Equal(t, segs(10, 20, 30, 40), second)
		assert.Equal(t, 3, s.Len(), "iteration never mutates")
	})
}

// TestSet_NonMutating checks Intersection and Subtraction leave the receiver intact.
func TestSet_NonMutating(t *testing.T) {
	s := d.NewSet(segs(10, 20, 30, 40, 50, 60)...)

	in := s.Intersection(seg(15, 35))
	assert.Equal(t, segs(15, 20, 30, 35), in.Segments())

	out := s.Subtraction(seg(15, 35))
	assert.Equal(t, segs(10, 15, 35, 40, 50, 60), out.Segments())

	assert.Equal(t, segs(10, 20, 30, 40, 50, 60), s.Segments())
	assert.True(t, s.Intersection(d.Empty()).IsEmpty())
}

// TestSet_IntersectScenario mirrors the documented {[10,20)} ∩ [5,15) walk-through.
func TestSet_IntersectScenario(t *testing.T) {
	s := d.NewSet(seg(10, 20))
	result := s.Intersection(seg(5, 15))
	changed := s.Intersect(seg(5, 15))

	assert.True(t, changed)
	assert.True(t, result.Equal(s))
	assert.Equal(t, "{ [10, 15) }", s.String())
}

// TestSet_Equal checks order-insensitive construction and structural equality.
func TestSet_Equal(t *testing.T) {
	tests := []struct {
		left, right []segment.Segment[int64]
		want        bool
	}{
		{nil, nil, true},
		{nil, segs(10, 20), false},
		{segs(10, 20), nil, false},
		{segs(10, 20), segs(10, 20), true},
		{segs(10, 20), segs(10, 20, 30, 40), false},
		{segs(10, 20, 30, 40), segs(10, 20), false},
		{segs(10, 20, 30, 40), segs(10, 20, 30, 40), true},
		{segs(10, 20, 30, 40), segs(30, 40, 10, 20), true},
		{segs(10, 20, 30, 40), segs(10, 20, 25, 35), false},
		{segs(10, 20, 20, 30), segs(10, 30), true},
	}
	for _, tc := range tests {
		l, r := d.NewSet(tc.left...), d.NewSet(tc.right...)
		assert.True(t, l.Equal(l))
		assert.False(t, l.Equal(nil))
		assert.Equal(t, tc.want, l.Equal(r), "%v == %v", l, r)
		assert.Equal(t, tc.want, r.Equal(l), "%v == %v", r, l)

		lt := d.NewTreeSet(tc.left)
		rt := d.NewTreeSet(tc.right)
		assert.Equal(t, tc.want, lt.Equal(rt), "tree %v == %v", lt, rt)
	}
}

// TestSet_CloneIsIndependent checks that mutating a clone leaves the original alone.
func TestSet_CloneIsIndependent(t *testing.T) {
	s := d.NewSet(segs(10, 20, 30, 40)...)
	c := s.Clone()
	c.Add(seg(20, 30))
	c.Subtract(seg(0, 15))

	assert.Equal(t, segs(10, 20, 30, 40), s.Segments())
	assert.Equal(t, segs(15, 40), c.Segments())
}

// TestSet_ZeroValue checks that a declared Set works without a constructor.
func TestSet_ZeroValue(t *testing.T) {
	var s segment.Set[int64]
	assert.True(t, s.IsEmpty())
	assert.True(t, s.Add(seg(1, 3)))
	assert.True(t, s.Add(seg(3, 5)))
	assert.Equal(t, segs(1, 5), s.Segments())
}

// TestSet_SegmentsIsCopy checks that callers cannot corrupt members through Segments.
func TestSet_SegmentsIsCopy(t *testing.T) {
	s := d.NewSet(segs(10, 20)...)
	out := s.Segments()
	out[0] = seg(0, 100)
	assert.Equal(t, segs(10, 20), s.Segments())
}

func nilIfEmpty(in []segment.Segment[int64]) []segment.Segment[int64] {
	if len(in) == 0 {
		return nil
	}
	return in
}
