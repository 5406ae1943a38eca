// Package segments is a small toolkit for half-open numeric intervals and
// the puzzles that need them.
//
// 🚀 What is inside?
//
//	segment/       : Segment[T], the Descriptor[T] algebra and two set containers
//	                 (sorted-slice Set[T], B-tree backed TreeSet[T])
//	almanac/       : piecewise offset maps applied to whole ranges of seeds
//	runner/        : problem registry, input/solver selection, warm-up and timing
//	cmd/segments/  : command-line front end (kingpin, logrus, TOML config)
//
// ✨ Why segments?
//
//   - Generic over every integer and float type
//   - Canonical form: members of a set never overlap or touch
//   - Range-over-func iteration with iter.Seq
//
// Quick ASCII example:
//
//	[10,20) ∪ [20,30) ∪ [40,50)   →   { [10, 30), [40, 50) }
//	   ██████████████      █████
//
//	go install github.com/katalvlaran/segments/cmd/segments@latest
package segments
