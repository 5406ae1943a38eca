package almanac

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	seedsRe     = regexp.MustCompile(`^seeds:((?:\s+\d+)*)\s*$`)
	mapHeaderRe = regexp.MustCompile(`^(\w+)-to-(\w+)\s+map:$`)
	mapLineRe   = regexp.MustCompile(`^(\d+)\s+(\d+)\s+(\d+)$`)
)

// Parse reads an almanac:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	...
//
// Blank lines separate blocks; surrounding whitespace on a line is ignored.
// Errors wrap ErrEmptyInput, ErrMissingSeeds, ErrBadHeader or ErrBadLine
// with the offending line number.
func Parse(r io.Reader) (*Almanac, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		lineNo++
		return strings.TrimSpace(sc.Text()), true
	}

	// first non-blank line holds the seeds
	line, ok := next()
	for ok && line == "" {
		line, ok = next()
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "almanac: read input")
	}
	if !ok {
		return nil, ErrEmptyInput
	}
	m := seedsRe.FindStringSubmatch(line)
	if m == nil {
		return nil, errors.Wrapf(ErrMissingSeeds, "line %d: %q", lineNo, line)
	}
	a := &Almanac{}
	for _, field := range strings.Fields(m[1]) {
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrMissingSeeds, "line %d: seed %q: %v", lineNo, field, err)
		}
		a.Seeds = append(a.Seeds, v)
	}

	var current *Map
	for line, ok = next(); ok; line, ok = next() {
		if line == "" {
			current = nil
			continue
		}
		if current == nil {
			h := mapHeaderRe.FindStringSubmatch(line)
			if h == nil {
				return nil, errors.Wrapf(ErrBadHeader, "line %d: %q", lineNo, line)
			}
			a.Maps = append(a.Maps, Map{From: h[1], To: h[2]})
			current = &a.Maps[len(a.Maps)-1]
			continue
		}
		row, err := parseMapLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		current.Lines = append(current.Lines, row)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "almanac: read input")
	}

	return a, nil
}

func parseMapLine(line string) (MapLine, error) {
	m := mapLineRe.FindStringSubmatch(line)
	if m == nil {
		return MapLine{}, errors.Wrapf(ErrBadLine, "%q", line)
	}
	var vals [3]int64
	for i := range vals {
		v, err := strconv.ParseInt(m[i+1], 10, 64)
		if err != nil {
			return MapLine{}, errors.Wrapf(ErrBadLine, "%q: %v", line, err)
		}
		vals[i] = v
	}
	return MapLine{Destination: vals[0], Source: vals[1], Length: vals[2]}, nil
}
