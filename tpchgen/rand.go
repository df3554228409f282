package tpchgen

// The classic dbgen random streams: one multiplicative LCG per column,
// with a fixed starting seed and a declared number of uses per row.
// Keeping the per-row usage bookkeeping exact is what makes partitioned
// generation produce the same rows as whole-table generation.

const (
	lcgMultiplier = 16807
	lcgModulus    = 2147483647
)

// randStream is a bounded 31-bit dbgen stream.
type randStream struct {
	seed   int64
	usage  int64
	perRow int64
}

func newRandStream(seed, perRow int64) randStream {
	return randStream{seed: seed, perRow: perRow}
}

func (s *randStream) next() int64 {
	s.seed = (s.seed * lcgMultiplier) % lcgModulus
	s.usage++
	return s.seed
}

// boundedInt returns a value in [low, high] using dbgen's ratio method.
func (s *randStream) boundedInt(low, high int64) int64 {
	s.next()
	valueInRange := int64(float64(s.seed) / float64(lcgModulus) * float64(high-low+1))
	return low + valueInRange
}

// rowFinished burns the remaining uses for the current row so the next
// row starts at its well-known seed position.
func (s *randStream) rowFinished() {
	s.advanceSeed(s.perRow - s.usage)
	s.usage = 0
}

// advanceRows jumps the stream over the given number of rows without
// generating them. Used to seek to a partition start.
func (s *randStream) advanceRows(rows int64) {
	if s.usage != 0 {
		s.rowFinished()
	}
	s.advanceSeed(s.perRow * rows)
}

// advanceSeed applies count steps of the LCG in O(log count) by
// exponentiation of the multiplier. All intermediates fit in int64
// because the modulus is below 2^31.
func (s *randStream) advanceSeed(count int64) {
	multiplier := int64(lcgMultiplier)
	for count > 0 {
		if count%2 != 0 {
			s.seed = (multiplier * s.seed) % lcgModulus
		}
		count /= 2
		multiplier = (multiplier * multiplier) % lcgModulus
	}
}

// randStream64 is the 64-bit affine stream dbgen uses for key columns
// whose domain can exceed 31 bits at large scale factors.
type randStream64 struct {
	seed   uint64
	usage  int64
	perRow int64
}

const (
	longMultiplier = 6364136223846793005
	longIncrement  = 1442695040888963407
)

func newRandStream64(seed uint64, perRow int64) randStream64 {
	return randStream64{seed: seed, perRow: perRow}
}

func (s *randStream64) next() uint64 {
	s.seed = s.seed*longMultiplier + longIncrement
	s.usage++
	return s.seed
}

func (s *randStream64) boundedInt(low, high int64) int64 {
	s.next()
	rangeSize := uint64(high - low + 1)
	return low + int64(s.seed%rangeSize)
}

func (s *randStream64) rowFinished() {
	s.advanceSeed(uint64(s.perRow - s.usage))
	s.usage = 0
}

func (s *randStream64) advanceRows(rows int64) {
	if s.usage != 0 {
		s.rowFinished()
	}
	s.advanceSeed(uint64(s.perRow * rows))
}

// advanceSeed jumps an affine LCG by count steps using the standard
// doubling recurrence, modulo 2^64 via natural overflow.
func (s *randStream64) advanceSeed(count uint64) {
	curMult := uint64(longMultiplier)
	curPlus := uint64(longIncrement)
	accMult := uint64(1)
	accPlus := uint64(0)
	for count > 0 {
		if count&1 == 1 {
			accMult *= curMult
			accPlus = accPlus*curMult + curPlus
		}
		curPlus = (curMult + 1) * curPlus
		curMult *= curMult
		count >>= 1
	}
	s.seed = accMult*s.seed + accPlus
}
