package almanac

import (
	"github.com/katalvlaran/segments/segment"
	"github.com/pkg/errors"
)

// Apply maps every value in src through m and returns the destination set.
// src is not modified.
//
// Rows are applied to the original source values, never to already
// translated ones; values outside every row map to themselves.
// Complexity: O(rows · n) segment operations for n source members.
func (m Map) Apply(src *segment.Set[int64]) *segment.Set[int64] {
	d := segment.Int64
	out := d.NewSet()
	rest := src.Clone()

	for _, line := range m.Lines {
		row := line.SourceSegment()
		for piece := range src.Intersection(row).All() {
			out.Add(d.Translate(piece, line.Offset()))
		}
		rest.Subtract(row)
	}
	out.AddRange(rest.Segments()...)

	return out
}

// Locate pushes src through every map in order and returns the resulting
// location set. The first map must start at SeedCategory and each following
// map must start where the previous one ended (ErrBrokenChain otherwise).
func (a *Almanac) Locate(src *segment.Set[int64]) (*segment.Set[int64], error) {
	category := SeedCategory
	cur := src
	for _, m := range a.Maps {
		if m.From != category {
			return nil, errors.Wrapf(ErrBrokenChain, "expected %q map, got %q-to-%q", category, m.From, m.To)
		}
		cur = m.Apply(cur)
		category = m.To
	}
	return cur, nil
}

// SeedSet returns every seed value as the unit segment [s, s+1).
func (a *Almanac) SeedSet() *segment.Set[int64] {
	d := segment.Int64
	s := d.NewSet()
	for _, v := range a.Seeds {
		s.Add(d.Create(v, v+1))
	}
	return s
}

// SeedRangeSet reads the seeds as (start, length) pairs.
func (a *Almanac) SeedRangeSet() (*segment.Set[int64], error) {
	if len(a.Seeds)%2 != 0 {
		return nil, errors.Wrapf(ErrOddSeedCount, "got %d values", len(a.Seeds))
	}
	d := segment.Int64
	s := d.NewSet()
	for i := 0; i < len(a.Seeds); i += 2 {
		s.Add(d.Create(a.Seeds[i], a.Seeds[i]+a.Seeds[i+1]))
	}
	return s, nil
}

// LowestLocation returns the lowest location of any individual seed.
func (a *Almanac) LowestLocation() (int64, error) {
	return a.lowest(a.SeedSet())
}

// LowestRangeLocation returns the lowest location of any seed in the seed ranges.
func (a *Almanac) LowestRangeLocation() (int64, error) {
	seeds, err := a.SeedRangeSet()
	if err != nil {
		return 0, err
	}
	return a.lowest(seeds)
}

func (a *Almanac) lowest(seeds *segment.Set[int64]) (int64, error) {
	if seeds.IsEmpty() {
		return 0, ErrNoSeeds
	}
	locations, err := a.Locate(seeds)
	if err != nil {
		return 0, err
	}
	lowest, _ := locations.Min()
	return lowest, nil
}
