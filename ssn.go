package peoplegen

import "fmt"

// SSNSource produces formatted Social Security numbers for the
// generator. Next reports false when the source is exhausted.
type SSNSource interface {
	Next() (string, bool)
	Total() uint64
}

// SSNGenerator enumerates unique, guaranteed-fake Social Security
// numbers. It walks the prefix/middle/last space like an odometer: the
// last group increments fastest, then the middle group, then the prefix.
// Within one full pass every number is distinct.
//
// [NewSSNGenerator] prepopulates the space with prefixes that are never
// issued to real people, per https://stackoverflow.com/a/2313726/53495,
// yielding 99,980,001 fake SSNs before the sequence runs out. A
// non-cycling generator reports exhaustion from Next until Reset is
// called; [NewCyclingSSNGenerator] wraps around instead.
type SSNGenerator struct {
	prefixes    []int
	prefixIndex int
	midMin      int
	midCur      int
	midMax      int
	lastMin     int
	lastCur     int
	lastMax     int
	cycle       bool
}

// NewSSNGenerator returns a generator over the default fake-SSN space
// (prefixes 900-999 and 666, middle group 1-99, last group 1-9999) that
// does not cycle on exhaustion.
func NewSSNGenerator() *SSNGenerator {
	prefixes := make([]int, 0, 101)
	for p := 900; p <= 999; p++ {
		prefixes = append(prefixes, p)
	}
	prefixes = append(prefixes, 666)
	return &SSNGenerator{
		prefixes: prefixes,
		midMin:   1,
		midMax:   99,
		lastMin:  1,
		lastMax:  9999,
	}
}

// NewCyclingSSNGenerator is [NewSSNGenerator] with cycling enabled: on
// exhaustion the generator resets and the sequence repeats from the
// first number.
func NewCyclingSSNGenerator() *SSNGenerator {
	g := NewSSNGenerator()
	g.cycle = true
	return g
}

// NewCustomSSNGenerator returns a generator over a caller-chosen space.
// The middle group must fit in two digits and the last group in four,
// and both must start at 1 or above so the zero cursor can serve as the
// pre-start sentinel.
func NewCustomSSNGenerator(prefixes []int, midMin, midMax, lastMin, lastMax int, cycle bool) (*SSNGenerator, error) {
	switch {
	case len(prefixes) == 0:
		return nil, fmt.Errorf("%w: no prefixes", ErrSSNSpace)
	case midMin < 1:
		return nil, fmt.Errorf("%w: middle group minimum %d is below 1", ErrSSNSpace, midMin)
	case midMax > 99:
		return nil, fmt.Errorf("%w: middle group maximum %d exceeds 99", ErrSSNSpace, midMax)
	case midMin > midMax:
		return nil, fmt.Errorf("%w: middle group range [%d,%d] is inverted", ErrSSNSpace, midMin, midMax)
	case lastMin < 1:
		return nil, fmt.Errorf("%w: last group minimum %d is below 1", ErrSSNSpace, lastMin)
	case lastMax > 9999:
		return nil, fmt.Errorf("%w: last group maximum %d exceeds 9999", ErrSSNSpace, lastMax)
	case lastMin > lastMax:
		return nil, fmt.Errorf("%w: last group range [%d,%d] is inverted", ErrSSNSpace, lastMin, lastMax)
	}
	ps := make([]int, len(prefixes))
	copy(ps, prefixes)
	return &SSNGenerator{
		prefixes: ps,
		midMin:   midMin,
		midMax:   midMax,
		lastMin:  lastMin,
		lastMax:  lastMax,
		cycle:    cycle,
	}, nil
}

// Reset returns the generator to its initial state. The next call to
// Next yields the first number of the space again.
func (g *SSNGenerator) Reset() {
	g.prefixIndex = 0
	g.midCur = 0
	g.lastCur = 0
}

// Total returns the number of distinct SSNs in the space.
func (g *SSNGenerator) Total() uint64 {
	totalPrefixes := uint64(len(g.prefixes))
	totalMids := uint64(g.midMax - g.midMin + 1)
	totalLasts := uint64(g.lastMax - g.lastMin + 1)
	return totalPrefixes * totalMids * totalLasts
}

// Next returns the next SSN in the sequence. When the space is
// exhausted a cycling generator starts over from the beginning; a
// non-cycling one reports ok=false until Reset is called.
func (g *SSNGenerator) Next() (string, bool) {
	if g.prefixIndex == len(g.prefixes)-1 && g.midCur == g.midMax && g.lastCur == g.lastMax {
		if !g.cycle {
			return "", false
		}
		g.Reset()
	}

	switch {
	case g.prefixIndex == 0 && g.midCur == 0 && g.lastCur == 0:
		// Fresh or reset state: emit the first element, no carry.
		g.midCur = g.midMin
		g.lastCur = g.lastMin
	case g.midCur == g.midMax && g.lastCur == g.lastMax:
		g.prefixIndex++
		g.midCur = g.midMin
		g.lastCur = g.lastMin
	case g.lastCur == g.lastMax:
		g.midCur++
		g.lastCur = g.lastMin
	default:
		g.lastCur++
	}

	return fmt.Sprintf("%03d-%02d-%04d", g.prefixes[g.prefixIndex], g.midCur, g.lastCur), true
}
