// Package poem arranges a pool of candidate words into a fixed number of
// shuffled lines.
//
// # Assembly
//
// Assemble copies and shuffles the pool, then walks it with a cursor. Each line
// takes the next SegmentSize words. SegmentSize is derived once from the pool
// size and clamped to [2,5]. When the cursor reaches the end of the pool, the
// pool is reshuffled in place and the cursor restarts at zero, so words repeat
// across lines. A line taken just before a reshuffle may be shorter than the
// segment size. It is never padded and never longer.
//
// An empty pool short-circuits to N copies of Placeholder.
//
// # Randomness
//
// Callers pass a *rand.Rand. Production code uses NewRandom per request;
// tests use NewRand with a fixed seed to get repeatable poems.
package poem
