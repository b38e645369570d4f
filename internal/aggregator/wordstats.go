// Package aggregator owns the per-file accumulation the dispatcher folds
// collected results into: an additive histogram merge for WordStats, and a
// direct fill of the per-tau result vector for CCC.
package aggregator

import "github.com/alx/taskfarm/internal/taskmodel"

// WordStatsAggregate is one file's running (vowelCount, wordLen) histogram.
// Merge is additive, never overwriting: two chunks from the same file (or
// the same chunk merged twice, in a hypothetical retry) only ever add
// counts, so the aggregate is commutative and associative over the order
// chunk results arrive in.
type WordStatsAggregate struct {
	MaxLen     int32
	MaxVowel   int32
	WordLen    []int32
	VowelByLen [][]int32
}

// NewWordStatsAggregate returns a zero-valued aggregate ready for Merge. It
// starts with index-0 rows/columns already allocated so Merge never has to
// special-case an empty chunk.
func NewWordStatsAggregate() *WordStatsAggregate {
	return &WordStatsAggregate{
		WordLen:    []int32{0},
		VowelByLen: [][]int32{{0}},
	}
}

// Merge folds one chunk's ChunkStats into the running aggregate, growing the
// backing arrays if the chunk observed a longer word or higher vowel count
// than has been seen so far.
func (a *WordStatsAggregate) Merge(cs taskmodel.ChunkStats) {
	a.growTo(cs.MaxLen, cs.MaxVowel)

	for length, count := range cs.WordLen {
		a.WordLen[length] += count
	}
	for v, row := range cs.VowelByLen {
		for length, count := range row {
			a.VowelByLen[v][length] += count
		}
	}
}

func (a *WordStatsAggregate) growTo(maxLen, maxVowel int32) {
	if maxLen > a.MaxLen {
		for v := range a.VowelByLen {
			a.VowelByLen[v] = append(a.VowelByLen[v], make([]int32, maxLen-a.MaxLen)...)
		}
		a.WordLen = append(a.WordLen, make([]int32, maxLen-a.MaxLen)...)
		a.MaxLen = maxLen
	}
	if maxVowel > a.MaxVowel {
		for v := a.MaxVowel + 1; v <= maxVowel; v++ {
			a.VowelByLen = append(a.VowelByLen, make([]int32, a.MaxLen+1))
		}
		a.MaxVowel = maxVowel
	}
}

// TotalWords returns the total number of words folded into the aggregate so
// far, used by the conservation property test (sum of wordLen counts must
// equal the number of words tokenized across every chunk of the file).
func (a *WordStatsAggregate) TotalWords() int64 {
	var total int64
	for _, count := range a.WordLen {
		total += int64(count)
	}
	return total
}
