// Package almanac solves the "If You Give A Seed A Fertilizer" puzzle
// (Advent of Code 2023, day 5) on top of segment sets.
//
// An almanac lists seeds and a chain of category maps
// (seed → soil → fertilizer → … → location). Each map is a table of
// (destination, source, length) rows: source values inside
// [source, source+length) move by destination-source, everything else maps
// to itself.
//
// Instead of walking individual values, Map.Apply pushes a whole
// segment.Set[int64] through a table at once:
//
//	for each row:   out += translate(src ∩ row.source, row.offset)
//	                rest = rest \ row.source
//	finally:        out += rest             (identity for uncovered values)
//
// so the cost depends on the number of ranges, not on how many values they hold.
//
// ⚙️ Usage:
//
//	a, err := almanac.Parse(strings.NewReader(text))
//	lowest, err := a.LowestLocation()        // part 1: individual seeds
//	lowest, err = a.LowestRangeLocation()    // part 2: seed ranges
package almanac
