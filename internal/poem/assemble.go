package poem

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"strings"
	"time"
)

// DefaultLines is the number of lines in a poem unless configured otherwise.
const DefaultLines = 6

// Placeholder fills every line when the word pool is empty.
const Placeholder = "(no words found)"

const (
	minSegment = 2
	maxSegment = 5
)

// SegmentSize returns the number of words per line for a pool of poolSize
// words spread over lines lines: poolSize/lines clamped to [2,5], with 2 when
// the division floors to zero.
func SegmentSize(poolSize, lines int) int {
	seg := 0
	if lines > 0 {
		seg = poolSize / lines
	}
	if seg == 0 {
		seg = minSegment
	}
	return max(minSegment, min(maxSegment, seg))
}

// Assemble shuffles words and partitions them into exactly lines lines.
//
// The input slice is not modified. Every word in the output comes from words.
// A non-positive lines yields an empty poem.
func Assemble(words []string, lines int, rng *rand.Rand) []string {
	if lines <= 0 {
		return []string{}
	}
	if rng == nil {
		rng = NewRandom()
	}

	pool := make([]string, len(words))
	copy(pool, words)
	shuffle(rng, pool)

	out := make([]string, 0, lines)
	if len(pool) == 0 {
		for i := 0; i < lines; i++ {
			out = append(out, Placeholder)
		}
		return out
	}

	seg := SegmentSize(len(pool), lines)
	idx := 0
	for i := 0; i < lines; i++ {
		if idx >= len(pool) {
			shuffle(rng, pool)
			idx = 0
		}
		end := min(idx+seg, len(pool))
		out = append(out, strings.Join(pool[idx:end], " "))
		idx += seg
	}
	return out
}

// Text renders a poem as newline-separated lines.
func Text(lines []string) string {
	return strings.Join(lines, "\n")
}

func shuffle(rng *rand.Rand, s []string) {
	rng.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}

// NewRand returns a deterministic generator for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandom returns a generator seeded from the system's secure random
// source, falling back to the clock if that source is unavailable.
func NewRandom() *rand.Rand {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		now := uint64(time.Now().UnixNano())
		return NewRand(now)
	}
	return rand.New(rand.NewPCG(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])))
}
