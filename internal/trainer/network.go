package trainer

import "math"

const (
	// expTableSize is the number of samples in the precomputed sigmoid grid.
	expTableSize = 1000
	// maxExp bounds the sigmoid grid's domain to [-maxExp, +maxExp].
	maxExp = 6.0
	// unigramTableSize is the resolution of the negative-sampling noise
	// distribution table.
	unigramTableSize = 100_000_000
	// unigramPower is the exponent Mikolov's noise distribution raises raw
	// counts to before normalizing (U(w)^0.75 / Z).
	unigramPower = 0.75

	lcgMultiplier uint64 = 25214903917
	lcgIncrement  uint64 = 11
)

// nextRandom advances the reference's linear congruential generator. Go's
// native uint64 arithmetic wraps modulo 2^64 on overflow, which is exactly
// the unsigned-64-bit semantics the original C/Java need workarounds for.
func nextRandom(state uint64) uint64 {
	return state*lcgMultiplier + lcgIncrement
}

// buildExpTable precomputes sigmoid(x) at expTableSize evenly spaced points
// from -maxExp up to, but not including, +maxExp, in a table of
// expTableSize+1 slots. The last slot stays zero; it is reached only when f
// lands exactly on +maxExp in the negative-sampling branch, which saturates
// only for f > maxExp.
func buildExpTable() []float64 {
	table := make([]float64, expTableSize+1)
	for i := 0; i < expTableSize; i++ {
		x := math.Exp((float64(i)/float64(expTableSize)*2 - 1) * maxExp)
		table[i] = x / (x + 1)
	}
	return table
}

// sigmoid looks up the precomputed table for f in [-maxExp, maxExp]; callers
// special-case f outside that range before calling it.
func sigmoid(expTable []float64, f float64) float64 {
	idx := int((f + maxExp) * (float64(expTableSize) / maxExp / 2))
	return expTable[idx]
}

// buildUnigramTable builds the negative-sampling noise distribution: a flat
// table of vocabulary indices whose density matches count(w)^unigramPower,
// so a uniform draw over table indices yields the desired biased sample.
func buildUnigramTable(counts []int64) []int32 {
	table := make([]int32, unigramTableSize)
	var trainWordsPow float64
	for _, c := range counts {
		trainWordsPow += math.Pow(float64(c), unigramPower)
	}
	// The bounds clamp runs before the pow lookup rather than after, unlike
	// the reference's ordering, so a rounding-driven overrun at the tail of
	// the table indexes the last word instead of reading out of bounds.
	i := 0
	d1 := math.Pow(float64(counts[0]), unigramPower) / trainWordsPow
	for a := 0; a < unigramTableSize; a++ {
		table[a] = int32(i)
		if float64(a)/float64(unigramTableSize) > d1 {
			i++
			if i >= len(counts) {
				i = len(counts) - 1
			}
			d1 += math.Pow(float64(counts[i]), unigramPower) / trainWordsPow
		}
	}
	return table
}

// initSyn0 seeds the input embedding matrix with the reference's LCG-driven
// pseudo-random initialization, run single-threaded before any worker
// starts so it is reproducible independent of goroutine scheduling.
func initSyn0(vocabSize, layerSize int) []float64 {
	syn0 := make([]float64, vocabSize*layerSize)
	var s uint64 = 1
	for i := range syn0 {
		s = nextRandom(s)
		syn0[i] = (float64(s&0xFFFF)/65536 - 0.5) / float64(layerSize)
	}
	return syn0
}
