package almanac

import "github.com/katalvlaran/segments/segment"

// SeedCategory is the category every map chain starts from.
const SeedCategory = "seed"

// MapLine is one (destination, source, length) row of a category map.
type MapLine struct {
	Destination int64
	Source      int64
	Length      int64
}

// SourceSegment returns [Source, Source+Length).
func (l MapLine) SourceSegment() segment.Segment[int64] {
	return segment.Int64.Create(l.Source, l.Source+l.Length)
}

// Offset returns the translation applied to values inside SourceSegment.
func (l MapLine) Offset() int64 {
	return l.Destination - l.Source
}

// Map translates values of category From into category To.
type Map struct {
	From  string
	To    string
	Lines []MapLine
}

// Almanac is a parsed puzzle input: the seed values and the ordered map chain.
type Almanac struct {
	Seeds []int64
	Maps  []Map
}
